package promptext

import "regexp"

// A ParsedPrompt is a single essay prompt with its declared limit, if any.
//
// Limit is either empty or a string of decimal digits. Unit is "words",
// "characters", or empty when no limit was declared.
type ParsedPrompt struct {
	Text  string
	Limit string
	Unit  string
}

// Matches a trailing limit annotation, eg. "Why us? (500 words)".
var limitPattern = regexp.MustCompile(`^(.+?)\s*\((\d+)\s+(words|characters)\)$`)

// ParsePrompt splits a prompt string into its body and declared limit. A
// string without a limit annotation is returned unchanged with empty limit
// and unit.
func ParsePrompt(text string) ParsedPrompt {
	if m := limitPattern.FindStringSubmatch(text); m != nil {
		return ParsedPrompt{Text: m[1], Limit: m[2], Unit: m[3]}
	}
	return ParsedPrompt{Text: text}
}
