package token

// Position is a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid reports whether the position has been set (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span is a half-open range [Start, End) in the source text.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether the span covers the given byte offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}
