package promptext

// resyncToSchool advances the stream to the next SCHOOL token, or to the end
// of the stream if none remains, and returns the number of tokens skipped.
//
// This is the synchronisation boundary for malformed school phrases, in the
// manner of classic panic-mode recovery: everything skipped contributes no
// records, and the region's repetition resumes at the SCHOOL token. When the
// stream is exhausted instead, the region keeps the phrases already parsed
// and discards the tail.
func (p *Parser) resyncToSchool(ts *tokenStream) int {
	dropped := 0
	for {
		head, ok := ts.peek()
		if !ok || head.Kind == SchoolKind {
			return dropped
		}
		ts.next()
		dropped++
	}
}
