package lineset

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/strataforge/lineset/attribute"
	"github.com/strataforge/lineset/geometry"
)

func testGeometry(t *testing.T) *geometry.LineSet {
	t.Helper()

	geom, err := geometry.New(r3.Vec{},
		[]r3.Vec{{X: 0}, {X: 1}, {X: 2}},
		[]geometry.Segment{{0, 1}, {1, 2}},
	)
	require.NoError(t, err)
	return geom
}

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t))
		require.NoError(t, err)

		assert.Equal(t, "holes", elem.Name())
		assert.Equal(t, SubtypeLine, elem.Subtype())
		assert.Empty(t, elem.Description())
		assert.NotEqual(t, uuid.Nil, elem.UID())
	})

	t.Run("Options", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t),
			WithSubtype(SubtypeBorehole),
			WithDescription("exploration drilling, phase 2"),
			WithLogger(nil),
			WithMetricsCollector(nil),
		)
		require.NoError(t, err)

		assert.Equal(t, SubtypeBorehole, elem.Subtype())
		assert.Equal(t, "exploration drilling, phase 2", elem.Description())
	})

	t.Run("NilGeometry", func(t *testing.T) {
		_, err := New("holes", nil)
		require.Error(t, err)
	})

	t.Run("FreshUIDs", func(t *testing.T) {
		a, err := New("a", testGeometry(t))
		require.NoError(t, err)
		b, err := New("b", testGeometry(t))
		require.NoError(t, err)

		assert.NotEqual(t, a.UID(), b.UID())
	})
}

func TestAddAttribute(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t))
		require.NoError(t, err)

		require.NoError(t, elem.AddAttribute(attribute.Attribute{
			Name:     "grade",
			Location: attribute.LocationSegments,
			Array:    attribute.Floats{0.1, 0.2},
		}))
		require.NoError(t, elem.AddAttribute(attribute.Attribute{
			Name:     "elevation",
			Location: attribute.LocationVertices,
			Array:    attribute.Floats{0, 1, 2},
		}))
		assert.Len(t, elem.Attributes(), 2)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t))
		require.NoError(t, err)

		err = elem.AddAttribute(attribute.Attribute{
			Name:     "grade",
			Location: attribute.LocationSegments,
			Array:    attribute.Floats{0.1, 0.2, 0.3},
		})

		var alm *ErrAttributeLengthMismatch
		require.ErrorAs(t, err, &alm)
		assert.Equal(t, "grade", alm.Name)
		assert.Equal(t, 2, alm.Want)
		assert.Equal(t, 3, alm.Got)
		assert.Empty(t, elem.Attributes())
	})

	t.Run("InvalidLocation", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t))
		require.NoError(t, err)

		err = elem.AddAttribute(attribute.Attribute{
			Name:     "grade",
			Location: "cells",
			Array:    attribute.Floats{0.1, 0.2},
		})

		var il *ErrInvalidLocation
		require.ErrorAs(t, err, &il)
	})
}

func TestElementString(t *testing.T) {
	elem, err := New("holes", testGeometry(t))
	require.NoError(t, err)

	assert.Equal(t, "Element(line holes: 3 nodes, 2 cells)", elem.String())
}
