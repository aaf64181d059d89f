package token

// CommentKind distinguishes line vs block comments.
type CommentKind int

// Comment kinds.
const (
	LineComment  CommentKind = iota // -- comment
	BlockComment                    // /* comment */
)

// Comment is a SQL comment collected during lexing. Comments never take
// part in grammar matching but are kept with positions for tooling.
type Comment struct {
	Kind CommentKind
	Text string // includes delimiters (-- or /* */)
	Span Span
}

// IsLine reports whether this is a -- line comment.
func (c *Comment) IsLine() bool {
	return c.Kind == LineComment
}
