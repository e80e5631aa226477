// Package promptext extracts application essay prompts from a
// semi-structured document into a flat table of records.
//
// The document is a sequence of regions, each introduced by a heading.
// Within a region, blocks are classified into tokens and parsed with a small
// hand-written grammar:
//
//	region_group    := REGION school_phrase*
//	school_phrase   := SCHOOL ADVISORY? cycle_predicate
//	cycle_predicate := CYCLE prompt_element*
//	prompt_element  := PROMPT_LIST | FLAT_PROMPT
//
// Malformed school phrases are recovered from by resynchronising on the next
// SCHOOL token. All recoverable anomalies are reported as Diagnostics on the
// Result rather than aborting the run, so a single malformed region or
// phrase never loses the records that could still be derived.
package promptext
