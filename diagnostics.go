package promptext

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a recoverable anomaly.
type DiagnosticKind int

const (
	// MissingRegion reports a region whose token stream did not start with
	// a REGION token. The region contributes no records.
	MissingRegion DiagnosticKind = iota
	// MalformedPhrase reports a school phrase without a valid CYCLE token.
	// The phrase and its tokens are dropped up to the next SCHOOL boundary.
	MalformedPhrase
	// LeftoverTokens reports tokens remaining after a region group fully
	// parsed. The parsed prefix is kept and the tail discarded.
	LeftoverTokens
	// EmptyPrompt reports a prompt item with no usable text.
	EmptyPrompt
)

func (k DiagnosticKind) String() string {
	switch k {
	case MissingRegion:
		return "missing-region"
	case MalformedPhrase:
		return "malformed-phrase"
	case LeftoverTokens:
		return "leftover-tokens"
	case EmptyPrompt:
		return "empty-prompt"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// A Diagnostic records one recoverable anomaly. Diagnostics never halt a
// run; they accumulate on the Result so callers can inspect or log them.
type Diagnostic struct {
	Kind    DiagnosticKind
	Region  string
	School  string
	Dropped int // tokens discarded, where applicable
	Message string
}

func (d Diagnostic) String() string {
	parts := []string{d.Kind.String()}
	if d.Region != "" {
		parts = append(parts, fmt.Sprintf("region %q", d.Region))
	}
	if d.School != "" {
		parts = append(parts, fmt.Sprintf("school %q", d.School))
	}
	parts = append(parts, d.Message)
	return strings.Join(parts, ": ")
}
