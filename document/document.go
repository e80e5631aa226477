package document

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Kind is the structural kind of a block.
type Kind int

const (
	Other Kind = iota
	Heading
	Paragraph
	List
	Item
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "Heading"
	case Paragraph:
		return "Paragraph"
	case List:
		return "List"
	case Item:
		return "Item"
	}
	return "Other"
}

// A Document is a parsed markdown tree.
type Document struct {
	root   ast.Node
	source []byte
}

// Parse a markdown document.
func Parse(source []byte) *Document {
	root := goldmark.New().Parser().Parse(text.NewReader(source))
	return &Document{root: root, source: source}
}

// Blocks returns the ordered top-level blocks of the document.
func (d *Document) Blocks() []Block {
	return Block{node: d.root, source: d.source}.Children()
}

// A Block is one node of the document tree.
type Block struct {
	node   ast.Node
	source []byte
}

// Kind reports the structural kind of the block.
func (b Block) Kind() Kind {
	switch b.node.(type) {
	case *ast.Heading:
		return Heading
	case *ast.Paragraph, *ast.TextBlock:
		return Paragraph
	case *ast.List:
		return List
	case *ast.ListItem:
		return Item
	}
	return Other
}

// Children returns the ordered child blocks.
func (b Block) Children() []Block {
	var out []Block
	for n := b.node.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, Block{node: n, source: b.source})
	}
	return out
}

// Items returns the ordered items of a list block. For any other kind of
// block it returns nil.
func (b Block) Items() []Block {
	if b.Kind() != List {
		return nil
	}
	return b.Children()
}

// Ordered reports whether the block is an ordered (numbered) list.
func (b Block) Ordered() bool {
	l, ok := b.node.(*ast.List)
	return ok && l.IsOrdered()
}

// Text returns the concatenated plain text of the block, with line breaks
// collapsed to single spaces.
func (b Block) Text() string {
	var sb strings.Builder
	_ = ast.Walk(b.node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(b.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// Emphasis returns the text of the first emphasised (italic or bold) run
// anywhere in the block.
func (b Block) Emphasis() (string, bool) {
	var em ast.Node
	_ = ast.Walk(b.node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*ast.Emphasis); ok && entering {
			em = n
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if em == nil {
		return "", false
	}
	return Block{node: em, source: b.source}.Text(), true
}

// OnlyEmphasis returns the text of the block's emphasised run if that run is
// the block's entire content.
func (b Block) OnlyEmphasis() (string, bool) {
	if b.node.ChildCount() != 1 {
		return "", false
	}
	em, ok := b.node.FirstChild().(*ast.Emphasis)
	if !ok {
		return "", false
	}
	return Block{node: em, source: b.source}.Text(), true
}

// Link returns the first hyperlink in the block as a block of its own,
// so its content can be inspected.
func (b Block) Link() (Block, bool) {
	var link ast.Node
	_ = ast.Walk(b.node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*ast.Link); ok && entering {
			link = n
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if link == nil {
		return Block{}, false
	}
	return Block{node: link, source: b.source}, true
}

// LeadingEmphasis splits a block whose first inline element is an emphasised
// run into that run's text and the plain text of everything after it.
func (b Block) LeadingEmphasis() (label, rest string, ok bool) {
	first := b.node.FirstChild()
	em, isEm := first.(*ast.Emphasis)
	if !isEm {
		return "", "", false
	}
	label = Block{node: em, source: b.source}.Text()
	var sb strings.Builder
	for n := em.NextSibling(); n != nil; n = n.NextSibling() {
		sb.WriteString(Block{node: n, source: b.source}.Text())
	}
	return label, sb.String(), true
}
