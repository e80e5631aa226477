package promptext

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// AdvisoryLabel overrides the bold label that marks advisory paragraphs.
// Matching ignores surrounding whitespace.
func AdvisoryLabel(label string) Option {
	return func(p *Parser) error {
		label = strings.TrimSpace(label)
		if label == "" {
			return errors.New("advisory label cannot be empty")
		}
		p.advisoryLabel = label
		return nil
	}
}

// Logger directs diagnostic logging to the given logger. By default
// diagnostics are only accumulated on the Result, not logged.
func Logger(logger *zap.Logger) Option {
	return func(p *Parser) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}
