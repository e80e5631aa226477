package promptext

import (
	"fmt"

	"github.com/admitkit/promptext/document"
)

// Kind of a classified token.
type Kind int

const (
	// RegionKind introduces a region group.
	RegionKind Kind = iota
	// SchoolKind introduces a school phrase.
	SchoolKind
	// CycleKind is an admissions-cycle label, eg. "2022-2023".
	CycleKind
	// AdvisoryKind is an optional timing note following a school.
	AdvisoryKind
	// PromptListKind is an ordered list of prompts.
	PromptListKind
	// FlatPromptKind is a single prompt paragraph.
	FlatPromptKind
)

func (k Kind) String() string {
	switch k {
	case RegionKind:
		return "REGION"
	case SchoolKind:
		return "SCHOOL"
	case CycleKind:
		return "CYCLE"
	case AdvisoryKind:
		return "ADVISORY"
	case PromptListKind:
		return "PROMPT_LIST"
	case FlatPromptKind:
		return "FLAT_PROMPT"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Token is a classified unit of document structure.
//
// Value carries the token's text. Items is populated only for
// PromptListKind, holding the surviving list-item blocks; each yields one
// prompt string.
type Token struct {
	Kind  Kind
	Value string
	Items []document.Block
}

func (t Token) String() string {
	if t.Kind == PromptListKind {
		return fmt.Sprintf("%s(%d items)", t.Kind, len(t.Items))
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}
