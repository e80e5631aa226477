package promptext

// tokenStream is an index cursor over a region's token sequence. All parse
// functions share one stream, so consumption is bounded by the slice length
// rather than call-stack depth.
type tokenStream struct {
	tokens []Token
	cursor int
}

func newTokenStream(tokens []Token) *tokenStream {
	return &tokenStream{tokens: tokens}
}

// peek returns the head token without consuming it.
func (s *tokenStream) peek() (Token, bool) {
	if s.cursor >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.cursor], true
}

// next consumes and returns the head token.
func (s *tokenStream) next() (Token, bool) {
	t, ok := s.peek()
	if ok {
		s.cursor++
	}
	return t, ok
}

// remaining reports how many tokens are left unconsumed.
func (s *tokenStream) remaining() int {
	return len(s.tokens) - s.cursor
}
