package grammar

// SuffixedSequence returns a sequence constructor that appends the given
// suffix as one extra trailing child to whatever children are supplied.
// It centralizes a cross-cutting rule, such as "every statement also
// accepts an optional trailing terminator", in one place instead of
// repeating it at every call site.
//
// The returned constructor is pure (same children always produce the same
// augmented sequence) and guards against double-appending: re-wrapping a
// child list that already ends with this wrapper's suffix leaves it alone,
// so nesting wrapped sequences composes correctly.
func SuffixedSequence(suffix Node) func(children ...Node) *Sequence {
	return func(children ...Node) *Sequence {
		if len(children) > 0 && children[len(children)-1] == suffix {
			return Seq(children...)
		}
		augmented := make([]Node, 0, len(children)+1)
		augmented = append(augmented, children...)
		augmented = append(augmented, suffix)
		return Seq(augmented...)
	}
}
