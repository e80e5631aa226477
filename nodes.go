package promptext

// The record tree produced by parsing one document. Each level owns an
// ordered slice; nothing is shared across regions.

// A CyclePredicate groups the prompts posted under one admissions cycle.
type CyclePredicate struct {
	Cycle   string
	Prompts []ParsedPrompt
}

// A SchoolPhrase is one school's entry within a region. Advisory is empty
// when the school has no timing note.
type SchoolPhrase struct {
	School    string
	Advisory  string
	Predicate CyclePredicate
}

// A RegionGroup is all school phrases parsed from one region.
type RegionGroup struct {
	Region  string
	Phrases []SchoolPhrase
}
