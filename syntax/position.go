package syntax

import "fmt"

// Position represents a line/column position in source text.
// Line numbers are 1-based, columns are 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a source region from start to end position.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("@%s-%s", s.Start, s.End)
}

// PositionTracker maintains line/column state during tokenization.
// Advances through source text, tracking position for each consumed rune.
type PositionTracker struct {
	line   int // 1-based
	column int // 0-based within line
}

// NewPositionTracker creates a tracker starting at the beginning of a file.
func NewPositionTracker() *PositionTracker {
	return &PositionTracker{line: 1, column: 0}
}

// Advance updates position after consuming a single rune.
// Newlines increment the line and reset the column.
func (pt *PositionTracker) Advance(r rune) {
	if r == '\n' {
		pt.line++
		pt.column = 0
	} else {
		pt.column++
	}
}

// Current returns the current position snapshot.
func (pt *PositionTracker) Current() Position {
	return Position{Line: pt.line, Column: pt.column}
}
