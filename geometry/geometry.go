// Package geometry provides the validated spatial structure of a line set:
// an ordered vertex list and the ordered segments connecting the vertices.
//
// Validation is a gate, not a lint: every constructor and mutator re-checks
// that each segment endpoint dereferences a real vertex, and rejects the
// change otherwise. Downstream consumers may therefore index vertices by
// segment endpoints without bounds checks of their own.
package geometry

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/strataforge/lineset/attribute"
)

// Segment is a directed pair of vertex indices forming one line cell.
// Index 0 is the start vertex, index 1 is the end vertex.
type Segment [2]int

// Start returns the start vertex index.
func (s Segment) Start() int { return s[0] }

// End returns the end vertex index.
func (s Segment) End() int { return s[1] }

// LineSet holds the spatial information of a line set. Vertex coordinates
// are relative to Origin; segments reference vertices by position in the
// vertex list.
//
// A LineSet exclusively owns its vertex and segment slices: inputs are
// copied on the way in, and the slices returned by Vertices and Segments
// must be treated as read-only snapshots. Mutation goes through
// SetVertices and SetSegments, which validate before committing, so no
// partially-valid state is ever observable.
type LineSet struct {
	origin   r3.Vec
	vertices []r3.Vec
	segments []Segment
}

// New creates a LineSet from the given origin, vertices and segments.
// The input slices are copied. It returns *ErrInvalidGeometry if any
// segment endpoint is negative or not a valid vertex index.
func New(origin r3.Vec, vertices []r3.Vec, segments []Segment) (*LineSet, error) {
	if err := validate(len(vertices), segments); err != nil {
		return nil, err
	}
	return &LineSet{
		origin:   origin,
		vertices: slices.Clone(vertices),
		segments: slices.Clone(segments),
	}, nil
}

// Origin returns the spatial origin the vertex coordinates are relative to.
func (ls *LineSet) Origin() r3.Vec { return ls.origin }

// Vertices returns the vertex list. The returned slice is owned by the
// LineSet and must not be modified.
func (ls *LineSet) Vertices() []r3.Vec { return ls.vertices }

// Segments returns the segment list. The returned slice is owned by the
// LineSet and must not be modified.
func (ls *LineSet) Segments() []Segment { return ls.segments }

// NumNodes returns the number of nodes (vertices).
func (ls *LineSet) NumNodes() int { return len(ls.vertices) }

// NumCells returns the number of cells (segments).
func (ls *LineSet) NumCells() int { return len(ls.segments) }

// LocationLength returns the expected data array length for the given
// attribute location: NumCells for segment data, NumNodes otherwise.
func (ls *LineSet) LocationLength(loc attribute.Location) int {
	if loc == attribute.LocationSegments {
		return ls.NumCells()
	}
	return ls.NumNodes()
}

// SetVertices replaces the vertex list. The input is copied. It returns
// *ErrInvalidGeometry and leaves the LineSet unchanged if the existing
// segments reference an index outside the new vertex list.
func (ls *LineSet) SetVertices(vertices []r3.Vec) error {
	if err := validate(len(vertices), ls.segments); err != nil {
		return err
	}
	ls.vertices = slices.Clone(vertices)
	return nil
}

// SetSegments replaces the segment list. The input is copied. It returns
// *ErrInvalidGeometry and leaves the LineSet unchanged if any new segment
// references an index outside the existing vertex list.
func (ls *LineSet) SetSegments(segments []Segment) error {
	if err := validate(len(ls.vertices), segments); err != nil {
		return err
	}
	ls.segments = slices.Clone(segments)
	return nil
}
