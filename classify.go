package promptext

import (
	"regexp"
	"strings"

	"github.com/admitkit/promptext/document"
)

// DefaultAdvisoryLabel is the bold label introducing an advisory paragraph.
const DefaultAdvisoryLabel = "Time-sensitive considerations:"

// Matches an admissions-cycle label: digits optionally joined by dashes or
// en-dashes, eg. "2022" or "2022-2023".
var cyclePattern = regexp.MustCompile(`^\d+([-–]\d+)*$`)

// classify maps one block to a token. Unrecognisable blocks report ok=false
// and are dropped by the caller.
//
// School names are always rendered as a bolded hyperlink, which is what
// distinguishes them from plain prose paragraphs.
func (p *Parser) classify(b document.Block) (Token, bool) {
	switch b.Kind() {
	case document.Heading:
		if name, ok := b.Emphasis(); ok {
			return Token{Kind: RegionKind, Value: name}, true
		}

	case document.Paragraph:
		if link, ok := b.Link(); ok {
			if name, ok := link.OnlyEmphasis(); ok {
				return Token{Kind: SchoolKind, Value: name}, true
			}
		}
		if label, rest, ok := b.LeadingEmphasis(); ok && strings.TrimSpace(label) == p.advisoryLabel {
			return Token{Kind: AdvisoryKind, Value: strings.TrimSpace(rest)}, true
		}
		text := strings.TrimSpace(b.Text())
		if cyclePattern.MatchString(text) {
			return Token{Kind: CycleKind, Value: text}, true
		}
		if text == "" || strings.Trim(text, "-") == "" {
			break // empty or a decorative separator
		}
		return Token{Kind: FlatPromptKind, Value: text}, true

	case document.List:
		if !b.Ordered() {
			break
		}
		var items []document.Block
		for _, item := range b.Items() {
			if strings.TrimSpace(item.Text()) != "" {
				items = append(items, item)
			}
		}
		return Token{Kind: PromptListKind, Items: items}, true
	}
	return Token{}, false
}

// tokenize classifies a region's ordered blocks into its token stream.
// Recovery from malformed streams is the grammar's job, not done here.
func (p *Parser) tokenize(blocks []document.Block) []Token {
	var tokens []Token
	for _, b := range blocks {
		if t, ok := p.classify(b); ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
