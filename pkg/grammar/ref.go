package grammar

// Reference is a lazily resolved pointer into a dialect's rule registry.
// It lets rules refer to each other by name, including recursively,
// without requiring definition order. Resolution happens at matching time
// against the Context's resolver; publish-time validation guarantees every
// reference in a published dialect resolves.
type Reference struct {
	Name string
	// Opt marks the reference skippable inside a containing Sequence.
	Opt bool
	// ExcludeNode, when set, must NOT match at the position for this
	// reference to succeed.
	ExcludeNode Node
}

// Ref refers to the rule registered under name.
func Ref(name string) *Reference {
	return &Reference{Name: name}
}

// Optional marks the reference skippable inside a containing Sequence.
func (r *Reference) Optional() *Reference {
	r.Opt = true
	return r
}

// Exclude adds a grammar that must fail at the position for the reference
// to match. Used for things like identifiers that must not be reserved
// keywords.
func (r *Reference) Exclude(n Node) *Reference {
	r.ExcludeNode = n
	return r
}

// Match implements Node.
func (r *Reference) Match(ctx *Context, pos int) (int, bool, error) {
	if r.ExcludeNode != nil {
		_, excluded, err := r.ExcludeNode.Match(ctx, pos)
		if err != nil {
			return 0, false, err
		}
		if excluded {
			return 0, false, nil
		}
	}
	target, err := ctx.Resolver.ResolveGrammar(r.Name)
	if err != nil {
		return 0, false, errUnresolvable(r.Name, err)
	}
	return target.Match(ctx, pos)
}
