// Package token provides source location types shared by the gate and
// the tools that drive it.
package token

import "fmt"

// Position represents a location in shader source.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number; 0 when only the line is known
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String formats the position as "line:column", or just the line when the
// column is unknown.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Column <= 0 {
		return fmt.Sprintf("%d", p.Line)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range in shader source.
type Span struct {
	Start Position
	End   Position
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}
