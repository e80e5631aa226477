package promptext

import (
	"bytes"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitkit/promptext/document"
	"github.com/admitkit/promptext/table"
)

func extractCSV(t *testing.T, source []byte) []byte {
	t.Helper()
	p := mustParser(t)
	res, err := p.Extract(document.Parse(source))
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, Header, Rows(Flatten(res.Groups))))
	return buf.Bytes()
}

func TestExtractGolden(t *testing.T) {
	source, err := os.ReadFile("testdata/prompts.md")
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "prompts", extractCSV(t, source))
}

func TestExtractIsDeterministic(t *testing.T) {
	source, err := os.ReadFile("testdata/prompts.md")
	require.NoError(t, err)
	assert.Equal(t, extractCSV(t, source), extractCSV(t, source))
}

func TestExtractIsolatesMalformedRegions(t *testing.T) {
	// The first region's heading has no emphasis, so its tokens have no
	// REGION marker; the second region must still come through intact.
	source := []byte("# Broken\n\n" +
		"[**Nowhere State**](https://example.edu)\n\n" +
		"2022\n\n" +
		"Lost prompt.\n\n" +
		"# **New York**\n\n" +
		"[**Columbia University**](https://example.edu)\n\n" +
		"2022\n\n" +
		"Kept prompt. (100 words)\n")
	p := mustParser(t)
	res, err := p.Extract(document.Parse(source))
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "New York", res.Groups[0].Region)
	records := Flatten(res.Groups)
	require.Len(t, records, 1)
	assert.Equal(t, "Kept prompt.", records[0].Prompt)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, MissingRegion, res.Diagnostics[0].Kind)
}
