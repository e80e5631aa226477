package promptext

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/admitkit/promptext/document"
)

// A Parser extracts the record tree from a document. A single Parser may be
// reused across documents; each Extract call owns all of its state.
type Parser struct {
	advisoryLabel string
	logger        *zap.Logger
}

// New creates a Parser, applying any options.
func New(options ...Option) (*Parser, error) {
	p := &Parser{
		advisoryLabel: DefaultAdvisoryLabel,
		logger:        zap.NewNop(),
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return p, nil
}

// Result of extracting one document: the parsed region groups plus every
// diagnostic raised along the way.
type Result struct {
	Groups      []RegionGroup
	Diagnostics []Diagnostic
}

// Extract parses the whole document into region groups. Recoverable
// anomalies are reported on the Result; the error is reserved for internal
// invariant violations and is nil for any well-formed document tree.
func (p *Parser) Extract(doc *document.Document) (*Result, error) {
	res := &Result{}
	for _, region := range splitRegions(doc.Blocks()) {
		tokens := p.tokenize(region)
		if len(tokens) == 0 {
			continue
		}
		group, ok := p.parseRegionGroup(newTokenStream(tokens), res)
		if ok {
			res.Groups = append(res.Groups, group)
		}
	}
	return res, nil
}

// splitRegions cuts the top-level block sequence into regions, one per
// heading. Blocks before the first heading form a headingless prefix region
// that only matters if something in it classifies to a token.
func splitRegions(blocks []document.Block) [][]document.Block {
	var regions [][]document.Block
	for _, b := range blocks {
		if b.Kind() == document.Heading || len(regions) == 0 {
			regions = append(regions, nil)
		}
		regions[len(regions)-1] = append(regions[len(regions)-1], b)
	}
	return regions
}

// report appends a diagnostic to the result and logs it.
func (p *Parser) report(res *Result, d Diagnostic) {
	res.Diagnostics = append(res.Diagnostics, d)
	p.logger.Warn("recoverable anomaly",
		zap.Stringer("kind", d.Kind),
		zap.String("region", d.Region),
		zap.String("school", d.School),
		zap.Int("dropped", d.Dropped),
		zap.String("message", d.Message),
	)
}
