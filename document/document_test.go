package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blocks(t *testing.T, source string) []Block {
	t.Helper()
	out := Parse([]byte(source)).Blocks()
	require.NotEmpty(t, out)
	return out
}

func TestKinds(t *testing.T) {
	bs := blocks(t, "# Title\n\nA paragraph.\n\n1. item\n\n---\n")
	require.Len(t, bs, 4)
	assert.Equal(t, Heading, bs[0].Kind())
	assert.Equal(t, Paragraph, bs[1].Kind())
	assert.Equal(t, List, bs[2].Kind())
	assert.Equal(t, Other, bs[3].Kind())
}

func TestTextCollapsesLineBreaks(t *testing.T) {
	bs := blocks(t, "Line one\nline two\n")
	assert.Equal(t, "Line one line two", bs[0].Text())
}

func TestEmphasis(t *testing.T) {
	bs := blocks(t, "# **California**\n")
	text, ok := bs[0].Emphasis()
	require.True(t, ok)
	assert.Equal(t, "California", text)

	bs = blocks(t, "# California\n")
	_, ok = bs[0].Emphasis()
	assert.False(t, ok)
}

func TestLinkWithOnlyEmphasis(t *testing.T) {
	bs := blocks(t, "[**UCSF**](https://example.edu)\n")
	link, ok := bs[0].Link()
	require.True(t, ok)
	name, ok := link.OnlyEmphasis()
	require.True(t, ok)
	assert.Equal(t, "UCSF", name)
}

func TestLinkWithPlainTextIsNotOnlyEmphasis(t *testing.T) {
	bs := blocks(t, "[UCSF](https://example.edu)\n")
	link, ok := bs[0].Link()
	require.True(t, ok)
	_, ok = link.OnlyEmphasis()
	assert.False(t, ok)
}

func TestLeadingEmphasis(t *testing.T) {
	bs := blocks(t, "**Label:** the rest of it.\n")
	label, rest, ok := bs[0].LeadingEmphasis()
	require.True(t, ok)
	assert.Equal(t, "Label:", label)
	assert.Equal(t, " the rest of it.", rest)
}

func TestLeadingEmphasisRequiresLeadingPosition(t *testing.T) {
	bs := blocks(t, "prefix **Label:** rest\n")
	_, _, ok := bs[0].LeadingEmphasis()
	assert.False(t, ok)
}

func TestListItems(t *testing.T) {
	bs := blocks(t, "1. alpha\n2. beta\n")
	require.Equal(t, List, bs[0].Kind())
	assert.True(t, bs[0].Ordered())
	items := bs[0].Items()
	require.Len(t, items, 2)
	assert.Equal(t, Item, items[0].Kind())
	assert.Equal(t, "alpha", items[0].Text())
	assert.Equal(t, "beta", items[1].Text())
}

func TestUnorderedList(t *testing.T) {
	bs := blocks(t, "- alpha\n- beta\n")
	require.Equal(t, List, bs[0].Kind())
	assert.False(t, bs[0].Ordered())
}

func TestItemsOnNonList(t *testing.T) {
	bs := blocks(t, "just a paragraph\n")
	assert.Nil(t, bs[0].Items())
}
