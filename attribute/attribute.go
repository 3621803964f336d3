// Package attribute defines named data arrays attached to line set geometry.
//
// An attribute lives either on the vertices (node data) or on the segments
// (cell data). The Location tag selects which count the attribute's array
// must match; the geometry reports that count via LocationLength.
package attribute

// Location identifies where on the geometry an attribute array is attached.
type Location string

const (
	// LocationVertices attaches one value per vertex (node data).
	LocationVertices Location = "vertices"

	// LocationSegments attaches one value per segment (cell data).
	LocationSegments Location = "segments"
)

// Valid reports whether l is one of the known locations.
func (l Location) Valid() bool {
	return l == LocationVertices || l == LocationSegments
}

// Array is a typed data array. Implementations are plain slices; Len
// returns the number of values so attachment checks stay type-agnostic.
type Array interface {
	Len() int
}

// Floats is a float64 data array.
type Floats []float64

// Len returns the number of values.
func (a Floats) Len() int { return len(a) }

// Ints is an int32 data array.
type Ints []int32

// Len returns the number of values.
func (a Ints) Len() int { return len(a) }

// Attribute is a named data array with a declared location.
//
// The library only reads attributes: it checks that the array length
// matches the location's count and copies the array into the output mesh.
// Numeric content is opaque.
type Attribute struct {
	Name     string
	Location Location
	Array    Array
}

// Len returns the length of the underlying array, or 0 if unset.
func (a Attribute) Len() int {
	if a.Array == nil {
		return 0
	}
	return a.Array.Len()
}
