package promptext

import (
	"fmt"
	"strings"
)

// repeat applies parse while accept holds on the head token's kind,
// accumulating results, and returns once the predicate fails or the stream
// is exhausted. It is a loop rather than recursion so that region token
// counts, which can run to the hundreds, do not bound call-stack depth.
//
// parse must consume at least one token. A result reported not-ok is
// skipped without ending the repetition.
func repeat[T any](ts *tokenStream, accept func(Kind) bool, parse func(*tokenStream) (T, bool)) []T {
	var results []T
	for {
		head, ok := ts.peek()
		if !ok || !accept(head.Kind) {
			return results
		}
		if v, ok := parse(ts); ok {
			results = append(results, v)
		}
	}
}

// parseRegionGroup parses `region_group := REGION school_phrase*`. It
// reports ok=false only when the stream does not begin with a REGION token,
// which the classifier's contract should already rule out.
func (p *Parser) parseRegionGroup(ts *tokenStream, res *Result) (RegionGroup, bool) {
	head, ok := ts.peek()
	if !ok || head.Kind != RegionKind {
		msg := "empty token stream"
		if ok {
			msg = fmt.Sprintf("stream begins with %s, expected REGION", head.Kind)
		}
		p.report(res, Diagnostic{Kind: MissingRegion, Dropped: ts.remaining(), Message: msg})
		return RegionGroup{}, false
	}
	ts.next()
	group := RegionGroup{Region: head.Value}
	group.Phrases = repeat(ts,
		func(k Kind) bool { return k == SchoolKind },
		func(ts *tokenStream) (SchoolPhrase, bool) {
			return p.parseSchoolPhrase(ts, head.Value, res)
		},
	)
	// Best effort: an unparseable tail loses its tokens, not the region.
	if n := ts.remaining(); n > 0 {
		p.report(res, Diagnostic{
			Kind:    LeftoverTokens,
			Region:  group.Region,
			Dropped: n,
			Message: fmt.Sprintf("%d tokens left after region parsed; keeping parsed prefix", n),
		})
	}
	return group, true
}

// parseSchoolPhrase parses `school_phrase := SCHOOL ADVISORY? cycle_predicate`.
// A phrase without a CYCLE where one is required resynchronises to the next
// SCHOOL token and reports ok=false; everything dropped on the way produces
// no records.
func (p *Parser) parseSchoolPhrase(ts *tokenStream, region string, res *Result) (SchoolPhrase, bool) {
	school, _ := ts.next() // caller guarantees SCHOOL at the head
	consumed := 1
	phrase := SchoolPhrase{School: school.Value}
	if head, ok := ts.peek(); ok && head.Kind == AdvisoryKind {
		ts.next()
		consumed++
		phrase.Advisory = head.Value
	}
	head, ok := ts.peek()
	if !ok || head.Kind != CycleKind {
		dropped := consumed + p.resyncToSchool(ts)
		p.report(res, Diagnostic{
			Kind:    MalformedPhrase,
			Region:  region,
			School:  school.Value,
			Dropped: dropped,
			Message: "no cycle label where one was required; dropping phrase",
		})
		return SchoolPhrase{}, false
	}
	ts.next()
	phrase.Predicate = p.parseCyclePredicate(head.Value, ts, region, res)
	return phrase, true
}

// parseCyclePredicate parses `cycle_predicate := CYCLE prompt_element*`.
// The CYCLE token itself has already been consumed by the caller.
func (p *Parser) parseCyclePredicate(cycle string, ts *tokenStream, region string, res *Result) CyclePredicate {
	pred := CyclePredicate{Cycle: cycle}
	elements := repeat(ts,
		func(k Kind) bool { return k == PromptListKind || k == FlatPromptKind },
		func(ts *tokenStream) ([]ParsedPrompt, bool) {
			return p.parsePromptElement(ts, region, res)
		},
	)
	for _, prompts := range elements {
		pred.Prompts = append(pred.Prompts, prompts...)
	}
	return pred
}

// parsePromptElement expands one prompt-bearing token: a FLAT_PROMPT yields
// a single prompt, a PROMPT_LIST one prompt per surviving item.
func (p *Parser) parsePromptElement(ts *tokenStream, region string, res *Result) ([]ParsedPrompt, bool) {
	tok, _ := ts.next()
	switch tok.Kind {
	case FlatPromptKind:
		return []ParsedPrompt{ParsePrompt(tok.Value)}, true

	case PromptListKind:
		var prompts []ParsedPrompt
		for _, item := range tok.Items {
			text := strings.TrimSpace(item.Text())
			if text == "" {
				p.report(res, Diagnostic{
					Kind:    EmptyPrompt,
					Region:  region,
					Message: "list item carries no text; dropping prompt",
				})
				continue
			}
			prompts = append(prompts, ParsePrompt(text))
		}
		return prompts, true
	}
	return nil, false
}
