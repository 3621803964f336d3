// Package util provides helpers for generating line set test data.
package util

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/strataforge/lineset/geometry"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateVertices generates random vertex coordinates using the given RNG.
func (r *RNG) GenerateVertices(num int) []r3.Vec {
	vertices := make([]r3.Vec, num)
	for i := range vertices {
		vertices[i] = r3.Vec{
			X: r.rand.Float64() * 100,
			Y: r.rand.Float64() * 100,
			Z: r.rand.Float64() * 100,
		}
	}

	return vertices
}

// GenerateSegments generates num valid random segments over numNodes
// vertices. Each segment after the first continues the previous one with
// probability chain, so the result mixes directed chains with breaks.
func (r *RNG) GenerateSegments(num, numNodes int, chain float64) []geometry.Segment {
	segments := make([]geometry.Segment, num)
	last := 0
	for i := range segments {
		start := last
		if i == 0 || r.rand.Float64() >= chain {
			start = r.rand.Intn(numNodes)
		}
		end := r.rand.Intn(numNodes)
		segments[i] = geometry.Segment{start, end}
		last = end
	}

	return segments
}
