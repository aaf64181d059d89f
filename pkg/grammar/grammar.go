// Package grammar provides the composable matching rules that dialects are
// built from: single-token matchers, composite combinators, and lazily
// resolved references into a dialect's rule registry.
//
// Nodes are immutable once constructed and safe for concurrent matching.
// Matching is span-based: a node either consumes a run of tokens or reports
// no-match. Ordinary non-match is never an error; errors are reserved for
// structural misconfiguration such as a reference that cannot be resolved.
package grammar

import (
	"fmt"

	"github.com/leapstack-labs/sqlgram/pkg/token"
)

// Resolver resolves rule names and keyword-set membership at matching time.
// It is implemented by a published dialect.
type Resolver interface {
	// ResolveGrammar returns the match grammar registered under name.
	// It fails with a distinguishable error for unknown names.
	ResolveGrammar(name string) (Node, error)
	// InSet reports whether keyword belongs to the named keyword set.
	InSet(set, keyword string) (bool, error)
}

// Context carries the token stream and resolver for one matching walk.
// A Context is used by a single goroutine; the grammar tree it walks is
// shared and read-only.
type Context struct {
	Tokens   []token.Token
	Resolver Resolver
}

// At returns the token at pos, or false when pos is past the end.
func (c *Context) At(pos int) (token.Token, bool) {
	if pos < 0 || pos >= len(c.Tokens) {
		return token.Token{}, false
	}
	return c.Tokens[pos], true
}

// Node is a matchable grammar fragment.
type Node interface {
	// Match attempts to match at pos and returns the number of tokens
	// consumed. ok=false with a nil error is the ordinary failed-to-match
	// outcome.
	Match(ctx *Context, pos int) (consumed int, ok bool, err error)
}

// Optional marks a child as skippable inside a containing Sequence.
// On its own it matches exactly like its inner node.
type Optional struct {
	Inner Node
}

// Opt wraps a node so a containing Sequence may skip it without failing.
func Opt(n Node) *Optional {
	return &Optional{Inner: n}
}

// Match delegates to the inner node.
func (o *Optional) Match(ctx *Context, pos int) (int, bool, error) {
	return o.Inner.Match(ctx, pos)
}

// IsOptional reports whether a containing Sequence may skip the node when
// it fails to match.
func IsOptional(n Node) bool {
	switch n := n.(type) {
	case *Optional:
		return true
	case *Reference:
		return n.Opt
	}
	return false
}

// Walk visits n and every node structurally reachable from it (children,
// delimiters, exclusions) in depth-first order. References are not
// followed; resolving them needs a registry and happens at publish time.
func Walk(n Node, fn func(Node) error) error {
	if n == nil {
		return nil
	}
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range structuralChildren(n) {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

func structuralChildren(n Node) []Node {
	switch n := n.(type) {
	case *Optional:
		return []Node{n.Inner}
	case *Sequence:
		return n.Children
	case *Choice:
		return n.Alternatives
	case *Repeat:
		return n.Children
	case *Brackets:
		return n.Children
	case *DelimitedList:
		children := make([]Node, 0, len(n.Children)+1)
		children = append(children, n.Children...)
		if n.Delimiter != nil {
			children = append(children, n.Delimiter)
		}
		return children
	case *Reference:
		if n.ExcludeNode != nil {
			return []Node{n.ExcludeNode}
		}
	}
	return nil
}

// errUnresolvable decorates resolver failures with the failing position.
func errUnresolvable(name string, err error) error {
	return fmt.Errorf("resolving reference %q: %w", name, err)
}
