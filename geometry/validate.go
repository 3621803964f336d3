package geometry

import "fmt"

// ErrInvalidGeometry indicates a segment endpoint that does not dereference
// a real vertex: either a negative index or one at or beyond the vertex
// count.
type ErrInvalidGeometry struct {
	Segment  int // position of the offending segment
	Index    int // the offending vertex index
	NumNodes int // vertex count the index was checked against
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid geometry: segment %d has negative vertex index %d", e.Segment, e.Index)
	}
	return fmt.Sprintf("invalid geometry: segment %d references vertex %d, only %d vertices exist", e.Segment, e.Index, e.NumNodes)
}

// validate checks every segment endpoint against the vertex count.
// It is pure and runs in O(len(segments)).
func validate(numNodes int, segments []Segment) error {
	for i, seg := range segments {
		for _, idx := range seg {
			if idx < 0 || idx >= numNodes {
				return &ErrInvalidGeometry{Segment: i, Index: idx, NumNodes: numNodes}
			}
		}
	}
	return nil
}
