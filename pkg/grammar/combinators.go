package grammar

// Sequence matches its children strictly in order. A failed required child
// fails the whole sequence atomically: no partial consumption is reported.
// Children wrapped in Opt (and optional references) are skipped when they
// fail, without failing the sequence.
type Sequence struct {
	Children []Node
}

// Seq matches the given children in order.
func Seq(children ...Node) *Sequence {
	return &Sequence{Children: children}
}

// Match implements Node.
func (s *Sequence) Match(ctx *Context, pos int) (int, bool, error) {
	total := 0
	for _, child := range s.Children {
		n, ok, err := child.Match(ctx, pos+total)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			if IsOptional(child) {
				continue
			}
			return 0, false, nil
		}
		total += n
	}
	return total, true, nil
}

// Choice matches the best of its alternatives: the longest match wins, and
// equal lengths are resolved by declaration order. The tie-break is fixed
// here rather than left to callers so that every dialect sees the same
// resolution.
type Choice struct {
	Alternatives []Node
}

// OneOf matches whichever alternative consumes the most tokens, preferring
// earlier alternatives on ties.
func OneOf(alternatives ...Node) *Choice {
	return &Choice{Alternatives: alternatives}
}

// Match implements Node.
func (c *Choice) Match(ctx *Context, pos int) (int, bool, error) {
	best := -1
	for _, alt := range c.Alternatives {
		n, ok, err := alt.Match(ctx, pos)
		if err != nil {
			return 0, false, err
		}
		if ok && n > best {
			best = n
		}
	}
	if best < 0 {
		return 0, false, nil
	}
	return best, true, nil
}

// Repeat matches its children zero or more times, choosing the best child
// per iteration the way Choice does, and stops at the first position where
// no child matches.
type Repeat struct {
	Children []Node
}

// AnyNumberOf matches any number of the given children, in any order.
func AnyNumberOf(children ...Node) *Repeat {
	return &Repeat{Children: children}
}

// Match implements Node.
func (r *Repeat) Match(ctx *Context, pos int) (int, bool, error) {
	inner := Choice{Alternatives: r.Children}
	total := 0
	for {
		n, ok, err := inner.Match(ctx, pos+total)
		if err != nil {
			return 0, false, err
		}
		// A zero-width iteration would never terminate; treat it as done.
		if !ok || n == 0 {
			return total, true, nil
		}
		total += n
	}
}

// Brackets matches its children as a sequence wrapped in a paired
// delimiter, parentheses unless configured otherwise.
type Brackets struct {
	Start    string
	End      string
	Children []Node
}

// Bracketed matches the given children inside ( ... ).
func Bracketed(children ...Node) *Brackets {
	return &Brackets{Start: "(", End: ")", Children: children}
}

// WithBrackets overrides the bracket pair, e.g. "[" and "]".
func (b *Brackets) WithBrackets(start, end string) *Brackets {
	b.Start = start
	b.End = end
	return b
}

// Match implements Node.
func (b *Brackets) Match(ctx *Context, pos int) (int, bool, error) {
	open, ok := ctx.At(pos)
	if !ok || open.Raw != b.Start {
		return 0, false, nil
	}
	content := Sequence{Children: b.Children}
	n, ok, err := content.Match(ctx, pos+1)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	closing, ok := ctx.At(pos + 1 + n)
	if !ok || closing.Raw != b.End {
		return 0, false, nil
	}
	return n + 2, true, nil
}

// OptionallyBracketed matches the given children either inside ( ... ) or
// bare. The bracketed form is preferred when both match.
func OptionallyBracketed(children ...Node) *Choice {
	return OneOf(
		Bracketed(children...),
		Seq(children...),
	)
}

// DelimitedList matches one or more items separated by a delimiter. Each
// item matches the best of the configured children, Choice-style. A
// trailing delimiter is left unconsumed unless explicitly allowed, so a
// surrounding match that requires full consumption rejects it.
type DelimitedList struct {
	Children  []Node
	Delimiter Node
	Trailing  bool
}

// Delimited matches a comma-separated list of the given children.
func Delimited(children ...Node) *DelimitedList {
	return &DelimitedList{Children: children, Delimiter: Sym(",")}
}

// WithDelimiter overrides the separator node.
func (d *DelimitedList) WithDelimiter(delimiter Node) *DelimitedList {
	d.Delimiter = delimiter
	return d
}

// AllowTrailing permits a trailing delimiter after the final item.
func (d *DelimitedList) AllowTrailing() *DelimitedList {
	d.Trailing = true
	return d
}

// Match implements Node.
func (d *DelimitedList) Match(ctx *Context, pos int) (int, bool, error) {
	item := Choice{Alternatives: d.Children}

	n, ok, err := item.Match(ctx, pos)
	if err != nil || !ok {
		return 0, ok, err
	}
	total := n

	for {
		sep, ok, err := d.Delimiter.Match(ctx, pos+total)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return total, true, nil
		}
		n, ok, err := item.Match(ctx, pos+total+sep)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			if d.Trailing {
				return total + sep, true, nil
			}
			// No trailing delimiter: leave the separator unconsumed.
			return total, true, nil
		}
		total += sep + n
	}
}
