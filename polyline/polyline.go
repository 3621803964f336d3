// Package polyline groups contiguous line segments into polylines.
//
// A polyline group is a maximal run of segments, in sequence order, forming
// a directed chain: each segment starts where the previous one ended. The
// grouping is a strict directed-chain heuristic; it does not merge
// reversed-direction continuations (end meeting end) or detect branching.
// Merging reversed continuations is a possible future enhancement.
package polyline

import (
	"errors"

	"github.com/strataforge/lineset/geometry"
)

// ErrEmptyGeometry is returned when grouping is requested for a line set
// with no segments.
var ErrEmptyGeometry = errors.New("line set has no segments")

// Group assigns each segment a polyline group id.
//
// Group ids start at 0 and are monotonically non-decreasing along the
// sequence: segment i stays in the current group when its start vertex
// equals segment i-1's end vertex, and opens a new group (id incremented
// by exactly 1) otherwise. The result always has one id per segment.
//
// Group returns ErrEmptyGeometry when segments is empty; a grouping of
// nothing is undefined.
func Group(segments []geometry.Segment) ([]int32, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyGeometry
	}

	ids := make([]int32, len(segments))
	last := segments[0].Start()

	var id int32
	for i, seg := range segments {
		if seg.Start() != last {
			id++
		}
		ids[i] = id
		last = seg.End()
	}

	return ids, nil
}
