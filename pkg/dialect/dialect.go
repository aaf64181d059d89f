// Package dialect provides SQL dialect definitions as composable grammar
// registries: named keyword sets, a registry of segment definitions, and
// value-copy derivation for building one dialect from another.
//
// A dialect is mutable while it is being defined, then validated and frozen
// by Publish. Derivation never shares mutable state with the parent:
// CopyAs produces a full structural copy plus an explicit, auditable list
// of subsequent edits, not a delta resolved at lookup time. Concrete
// dialect definitions live in pkg/dialects/*/ packages and register
// themselves in the global registry from their init functions.
package dialect

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/sqlgram/pkg/grammar"
)

// Segment is a named grammar rule with a semantic type tag: the unit of
// registration, inheritance, and override. The type tag classifies nodes
// for downstream consumers and is never matched on. A segment's match
// grammar is owned wholesale: overriding replaces it entirely, never
// partially.
type Segment struct {
	Name  string
	Type  string
	Match grammar.Node
}

// NewSegment creates a segment definition.
func NewSegment(name, segType string, match grammar.Node) *Segment {
	return &Segment{Name: name, Type: segType, Match: match}
}

// Dialect is a named bundle of keyword sets and a segment registry.
type Dialect struct {
	name      string
	parent    string // name of the dialect this was derived from, for diagnostics only
	sets      map[string]*KeywordSet
	exclusive [][]string // groups of mutually exclusive set names
	registry  map[string]*Segment
	published bool
}

// New creates an empty, unpublished dialect.
func New(name string) *Dialect {
	return &Dialect{
		name:     name,
		sets:     make(map[string]*KeywordSet),
		registry: make(map[string]*Segment),
	}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// Parent returns the name of the dialect this one was derived from, or ""
// for a base dialect. It is informational: lookups never consult the
// parent.
func (d *Dialect) Parent() string {
	return d.parent
}

// Published reports whether the dialect has been validated and frozen.
func (d *Dialect) Published() bool {
	return d.published
}

// Sets returns the named keyword set, creating it empty on first use.
// Once the dialect is published the set map is frozen: asking for a set
// the dialect lacks returns a detached empty set that is never inserted,
// so concurrent readers never observe a map write.
func (d *Dialect) Sets(name string) *KeywordSet {
	if s, ok := d.sets[name]; ok {
		return s
	}
	s := &KeywordSet{name: name, owner: d, members: make(map[string]struct{})}
	if !d.published {
		d.sets[name] = s
	}
	return s
}

// SetNames returns the names of all keyword sets, sorted.
func (d *Dialect) SetNames() []string {
	names := make([]string, 0, len(d.sets))
	for name := range d.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExclusiveSets declares the named keyword sets mutually exclusive: a
// keyword may belong to at most one of them. Moving a keyword between
// exclusive sets requires DifferenceUpdate from the source before Update
// into the target.
func (d *Dialect) ExclusiveSets(names ...string) error {
	if d.published {
		return ErrPublished
	}
	for _, name := range names {
		d.Sets(name) // ensure the sets exist
	}
	group := make([]string, len(names))
	copy(group, names)
	d.exclusive = append(d.exclusive, group)
	return nil
}

// exclusiveConflict returns the name of a set that already holds keyword
// and is mutually exclusive with set, or "".
func (d *Dialect) exclusiveConflict(set, keyword string) string {
	for _, group := range d.exclusive {
		inGroup := false
		for _, name := range group {
			if name == set {
				inGroup = true
				break
			}
		}
		if !inGroup {
			continue
		}
		for _, name := range group {
			if name == set {
				continue
			}
			if other, ok := d.sets[name]; ok && other.Contains(keyword) {
				return name
			}
		}
	}
	return ""
}

// CopyAs derives a new dialect: a deep structural copy of all keyword sets
// and the full segment registry, fully independent of the receiver.
// Grammar node trees are shared because they are immutable once
// constructed; overriding a segment always installs a whole new tree.
// The copy is unpublished regardless of the receiver's state.
func (d *Dialect) CopyAs(name string) *Dialect {
	derived := New(name)
	derived.parent = d.name

	for setName, set := range d.sets {
		copied := derived.Sets(setName)
		for kw := range set.members {
			copied.members[kw] = struct{}{}
		}
	}
	derived.exclusive = make([][]string, len(d.exclusive))
	for i, group := range d.exclusive {
		derived.exclusive[i] = append([]string(nil), group...)
	}
	for segName, seg := range d.registry {
		derived.registry[segName] = &Segment{Name: seg.Name, Type: seg.Type, Match: seg.Match}
	}
	return derived
}

// Add registers a named reusable grammar fragment. It fails with a
// DuplicateDefinitionError when the name already exists; use Register with
// replace to override a definition deliberately.
func (d *Dialect) Add(name string, match grammar.Node) error {
	if d.published {
		return ErrPublished
	}
	if _, exists := d.registry[name]; exists {
		return &DuplicateDefinitionError{Dialect: d.name, Name: name}
	}
	d.registry[name] = &Segment{Name: name, Match: match}
	return nil
}

// Register inserts a segment definition. Without replace the name must be
// new; with replace it must already exist and is replaced wholesale, match
// grammar and type tag both.
func (d *Dialect) Register(seg *Segment, replace bool) error {
	if d.published {
		return ErrPublished
	}
	if seg == nil || seg.Name == "" {
		return &MalformedGrammarError{Dialect: d.name, Segment: "", Reason: "segment must have a name"}
	}
	_, exists := d.registry[seg.Name]
	if exists && !replace {
		return &DuplicateDefinitionError{Dialect: d.name, Name: seg.Name}
	}
	if !exists && replace {
		return &UnknownSegmentError{Dialect: d.name, Name: seg.Name}
	}
	d.registry[seg.Name] = &Segment{Name: seg.Name, Type: seg.Type, Match: seg.Match}
	return nil
}

// Segment returns the definition registered under name.
func (d *Dialect) Segment(name string) (*Segment, error) {
	seg, ok := d.registry[name]
	if !ok {
		return nil, &UnknownSegmentError{Dialect: d.name, Name: name}
	}
	return seg, nil
}

// SegmentNames returns all registered names, sorted.
func (d *Dialect) SegmentNames() []string {
	names := make([]string, 0, len(d.registry))
	for name := range d.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveGrammar implements grammar.Resolver against the registry.
func (d *Dialect) ResolveGrammar(name string) (grammar.Node, error) {
	seg, ok := d.registry[name]
	if !ok {
		return nil, &UnknownSegmentError{Dialect: d.name, Name: name}
	}
	return seg.Match, nil
}

// InSet implements grammar.Resolver against the keyword sets.
func (d *Dialect) InSet(set, keyword string) (bool, error) {
	s, ok := d.sets[set]
	if !ok {
		return false, fmt.Errorf("dialect %s: no keyword set %q", d.name, set)
	}
	return s.Contains(keyword), nil
}

// Publish validates the dialect and freezes it. After a successful
// Publish the dialect and its grammar trees are read-only and safe for
// concurrent use by parallel matching operations. Publishing an already
// published dialect is a no-op.
func (d *Dialect) Publish() error {
	if d.published {
		return nil
	}
	if err := d.validate(); err != nil {
		return err
	}
	d.published = true
	return nil
}
