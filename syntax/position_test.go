package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionTrackerAdvance(t *testing.T) {
	pt := NewPositionTracker()
	assert.Equal(t, Position{Line: 1, Column: 0}, pt.Current())

	for _, r := range "ab" {
		pt.Advance(r)
	}
	assert.Equal(t, Position{Line: 1, Column: 2}, pt.Current())

	pt.Advance('\n')
	assert.Equal(t, Position{Line: 2, Column: 0}, pt.Current())

	pt.Advance('x')
	assert.Equal(t, Position{Line: 2, Column: 1}, pt.Current())
}

func TestSpanString(t *testing.T) {
	s := Span{Start: Position{Line: 12, Column: 5}, End: Position{Line: 12, Column: 9}}
	assert.Equal(t, "@12:5-12:9", s.String())
}
