package ir

import "fmt"

// Point is a place in a source document: 1-indexed line and column
// plus the 0-indexed absolute offset.
type Point struct {
	Line   int
	Column int
	Offset int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d (offset %d)", p.Line, p.Column, p.Offset)
}

// Position is the source span of a node.
type Position struct {
	Start Point
	End   Point
}

func (p Position) String() string {
	return fmt.Sprintf("%s - %s", p.Start, p.End)
}
