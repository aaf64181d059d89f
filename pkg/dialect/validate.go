package dialect

import (
	"fmt"

	"github.com/leapstack-labs/sqlgram/pkg/grammar"
)

// validate checks the whole dialect before publication: every reference
// resolves against the finished registry (the second phase of two-phase
// resolution), every combinator is structurally sound, and the keyword
// exclusivity invariant holds. All problems are reported as registration
// time errors; nothing is deferred to matching time.
func (d *Dialect) validate() error {
	for _, name := range d.SegmentNames() {
		seg := d.registry[name]
		if seg.Match == nil {
			return &MalformedGrammarError{Dialect: d.name, Segment: name, Reason: "segment has no match grammar"}
		}
		if err := d.validateTree(name, seg.Match); err != nil {
			return err
		}
	}
	return d.validateExclusivity()
}

// validateTree walks one match grammar without following references.
func (d *Dialect) validateTree(segName string, root grammar.Node) error {
	return grammar.Walk(root, func(n grammar.Node) error {
		switch n := n.(type) {
		case *grammar.RegexMatcher:
			if err := n.Err(); err != nil {
				return &MalformedGrammarError{
					Dialect: d.name, Segment: segName,
					Reason: fmt.Sprintf("pattern %q does not compile: %v", n.Pattern, err),
				}
			}
		case *grammar.Sequence:
			if len(n.Children) == 0 {
				return &MalformedGrammarError{Dialect: d.name, Segment: segName, Reason: "empty sequence"}
			}
		case *grammar.Choice:
			if len(n.Alternatives) == 0 {
				return &MalformedGrammarError{Dialect: d.name, Segment: segName, Reason: "alternative with no candidates"}
			}
			for _, alt := range n.Alternatives {
				if grammar.IsOptional(alt) {
					return &AmbiguousAlternativeError{
						Dialect: d.name, Segment: segName,
						Reason: "alternatives must not be individually optional; make the whole alternative optional instead",
					}
				}
			}
		case *grammar.Repeat:
			if len(n.Children) == 0 {
				return &MalformedGrammarError{Dialect: d.name, Segment: segName, Reason: "repetition with no candidates"}
			}
		case *grammar.Brackets:
			if n.Start == "" || n.End == "" {
				return &MalformedGrammarError{Dialect: d.name, Segment: segName, Reason: "bracket pair not configured"}
			}
		case *grammar.DelimitedList:
			if len(n.Children) == 0 {
				return &MalformedGrammarError{Dialect: d.name, Segment: segName, Reason: "delimited list with no element grammar"}
			}
			if n.Delimiter == nil {
				return &MalformedGrammarError{Dialect: d.name, Segment: segName, Reason: "delimited list with no delimiter"}
			}
		case *grammar.Reference:
			if _, ok := d.registry[n.Name]; !ok {
				return &UnknownSegmentError{Dialect: d.name, Name: n.Name}
			}
		case *grammar.SetMatcher:
			if _, ok := d.sets[n.Set]; !ok {
				return &MalformedGrammarError{
					Dialect: d.name, Segment: segName,
					Reason: fmt.Sprintf("no keyword set %q", n.Set),
				}
			}
		}
		return nil
	})
}

// validateExclusivity re-checks the mutual-exclusion invariant across
// keyword sets. Update enforces it on the way in; this catches axes
// declared after their sets were populated.
func (d *Dialect) validateExclusivity() error {
	for _, group := range d.exclusive {
		for i, a := range group {
			setA, ok := d.sets[a]
			if !ok {
				continue
			}
			for _, b := range group[i+1:] {
				setB, ok := d.sets[b]
				if !ok {
					continue
				}
				for kw := range setA.members {
					if _, dup := setB.members[kw]; dup {
						return &KeywordClassificationError{
							Dialect: d.name, Keyword: kw, Set: a, ConflictSet: b,
						}
					}
				}
			}
		}
	}
	return nil
}
