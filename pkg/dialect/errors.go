package dialect

import (
	"errors"
	"fmt"
)

// ErrPublished is returned when a mutating call reaches a published dialect.
// Derive a new dialect with CopyAs instead of editing a published one.
var ErrPublished = errors.New("dialect is published and can no longer be modified")

// ErrNotPublished is returned when an unpublished dialect is handed to a
// consumer that requires a validated, frozen dialect.
var ErrNotPublished = errors.New("dialect must be published first")

// DuplicateDefinitionError is returned when registering a name that already
// exists without requesting replacement.
type DuplicateDefinitionError struct {
	Dialect string
	Name    string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("dialect %s: %q is already defined; pass replace to override", e.Dialect, e.Name)
}

// UnknownSegmentError is returned when replacing a name that does not
// exist, or when a reference names a rule missing from the registry.
type UnknownSegmentError struct {
	Dialect string
	Name    string
}

func (e *UnknownSegmentError) Error() string {
	return fmt.Sprintf("dialect %s: no segment or grammar named %q", e.Dialect, e.Name)
}

// KeywordClassificationError is returned when a keyword would end up in two
// mutually exclusive sets at once. Demote it from the conflicting set first.
type KeywordClassificationError struct {
	Dialect     string
	Keyword     string
	Set         string
	ConflictSet string
}

func (e *KeywordClassificationError) Error() string {
	return fmt.Sprintf("dialect %s: keyword %q cannot join set %q while still a member of %q",
		e.Dialect, e.Keyword, e.Set, e.ConflictSet)
}

// MalformedGrammarError is returned for structural misconfiguration found
// during validation: empty required sequences, missing delimiters,
// uncompilable patterns, references to unknown keyword sets.
type MalformedGrammarError struct {
	Dialect string
	Segment string
	Reason  string
}

func (e *MalformedGrammarError) Error() string {
	return fmt.Sprintf("dialect %s: segment %q: %s", e.Dialect, e.Segment, e.Reason)
}

// AmbiguousAlternativeError is returned when an alternative combinator is
// configured such that the longest-match tie-break cannot be applied.
type AmbiguousAlternativeError struct {
	Dialect string
	Segment string
	Reason  string
}

func (e *AmbiguousAlternativeError) Error() string {
	return fmt.Sprintf("dialect %s: segment %q: %s", e.Dialect, e.Segment, e.Reason)
}
