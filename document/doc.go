// Package document wraps a parsed markdown tree in the small query surface
// the extraction pipeline needs: ordered children, structural kind, plain
// text, emphasised runs, links and list items. Nothing else from the
// underlying goldmark AST leaks out.
package document
