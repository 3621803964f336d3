package lineset

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/strataforge/lineset/attribute"
	"github.com/strataforge/lineset/geometry"
	"github.com/strataforge/lineset/vtk"
)

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("SingleConnectedPolyline", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t))
		require.NoError(t, err)

		m, err := elem.Export(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, m.NumPoints())
		assert.Equal(t, 2, m.NumLines())
		assert.Empty(t, cmp.Diff([][2]int{{0, 1}, {1, 2}}, m.Lines))

		groups, ok := m.CellArray(LineIndexArrayName)
		require.True(t, ok)
		assert.Equal(t, attribute.Ints{0, 0}, groups)
	})

	t.Run("TwoDisjointPolylines", func(t *testing.T) {
		geom, err := geometry.New(r3.Vec{},
			[]r3.Vec{{X: 0}, {X: 1}, {X: 5, Y: 5, Z: 5}, {X: 6, Y: 5, Z: 5}},
			[]geometry.Segment{{0, 1}, {2, 3}},
		)
		require.NoError(t, err)

		elem, err := New("holes", geom)
		require.NoError(t, err)

		m, err := elem.Export(ctx)
		require.NoError(t, err)

		groups, ok := m.CellArray(LineIndexArrayName)
		require.True(t, ok)
		assert.Equal(t, attribute.Ints{0, 1}, groups)
	})

	t.Run("PointsPreserveOrderAndCoordinates", func(t *testing.T) {
		vertices := []r3.Vec{{X: 0}, {X: 1, Y: 2, Z: 3}, {X: -4, Y: 5.5}}
		geom, err := geometry.New(r3.Vec{}, vertices, []geometry.Segment{{2, 0}})
		require.NoError(t, err)

		elem, err := New("holes", geom)
		require.NoError(t, err)

		m, err := elem.Export(ctx)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(vertices, m.Points))
		assert.Equal(t, "holes", m.Title)
	})

	t.Run("AttributesLandInMatchingCollections", func(t *testing.T) {
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

		m, err := elem.Export(ctx)
		require.NoError(t, err)

		arr, ok := m.CellArray("grade")
		require.True(t, ok)
		assert.Equal(t, attribute.Floats{0.1, 0.2}, arr)

		arr, ok = m.PointArray("elevation")
		require.True(t, ok)
		assert.Equal(t, attribute.Floats{0, 1, 2}, arr)

		_, ok = m.PointArray("grade")
		assert.False(t, ok)
	})

	t.Run("SubtypeRecordedAsField", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t), WithSubtype(SubtypeBorehole))
		require.NoError(t, err)

		m, err := elem.Export(ctx)
		require.NoError(t, err)

		subtype, ok := m.FieldValue(SubtypeFieldName)
		require.True(t, ok)
		assert.Equal(t, string(SubtypeBorehole), subtype)

		var buf bytes.Buffer
		require.NoError(t, vtk.Write(&buf, m))
		assert.Contains(t, buf.String(), "borehole")
	})

	t.Run("DefaultSubtypeRecordedAsField", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t))
		require.NoError(t, err)

		m, err := elem.Export(ctx)
		require.NoError(t, err)

		subtype, ok := m.FieldValue(SubtypeFieldName)
		require.True(t, ok)
		assert.Equal(t, string(SubtypeLine), subtype)
	})

	t.Run("EmptyGeometry", func(t *testing.T) {
		geom, err := geometry.New(r3.Vec{}, []r3.Vec{{X: 0}}, nil)
		require.NoError(t, err)

		elem, err := New("holes", geom)
		require.NoError(t, err)

		_, err = elem.Export(ctx)
		require.ErrorIs(t, err, ErrEmptyGeometry)
	})

	t.Run("StaleAttributeAfterMutation", func(t *testing.T) {
		elem, err := New("holes", testGeometry(t))
		require.NoError(t, err)

		require.NoError(t, elem.AddAttribute(attribute.Attribute{
			Name:     "grade",
			Location: attribute.LocationSegments,
			Array:    attribute.Floats{0.1, 0.2},
		}))

		// The attribute was valid at attach time; shrinking the segment
		// list afterwards must surface the mismatch at export time.
		require.NoError(t, elem.Geometry().SetSegments([]geometry.Segment{{0, 1}}))

		_, err = elem.Export(ctx)
		var alm *ErrAttributeLengthMismatch
		require.ErrorAs(t, err, &alm)
		assert.Equal(t, 1, alm.Want)
		assert.Equal(t, 2, alm.Got)
	})

	t.Run("MetricsRecorded", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}

		elem, err := New("holes", testGeometry(t), WithMetricsCollector(metrics))
		require.NoError(t, err)

		_, err = elem.Export(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(1), metrics.ExportCount.Load())
		assert.Equal(t, int64(2), metrics.ExportCells.Load())
		assert.Equal(t, int64(0), metrics.ExportErrors.Load())
	})
}

func TestExportAll(t *testing.T) {
	ctx := context.Background()

	t.Run("OrderPreserved", func(t *testing.T) {
		var elements []*Element
		for _, name := range []string{"a", "b", "c", "d"} {
			elem, err := New(name, testGeometry(t))
			require.NoError(t, err)
			elements = append(elements, elem)
		}

		meshes, err := ExportAll(ctx, elements)
		require.NoError(t, err)
		require.Len(t, meshes, 4)

		for i, m := range meshes {
			assert.Equal(t, elements[i].Name(), m.Title)
		}
	})

	t.Run("FirstFailureWins", func(t *testing.T) {
		good, err := New("good", testGeometry(t))
		require.NoError(t, err)

		emptyGeom, err := geometry.New(r3.Vec{}, []r3.Vec{{X: 0}}, nil)
		require.NoError(t, err)
		bad, err := New("bad", emptyGeom)
		require.NoError(t, err)

		_, err = ExportAll(ctx, []*Element{good, bad})
		require.ErrorIs(t, err, ErrEmptyGeometry)
	})

	t.Run("BatchMetrics", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}

		elem, err := New("a", testGeometry(t))
		require.NoError(t, err)

		_, err = ExportAll(ctx, []*Element{elem}, WithMetricsCollector(metrics))
		require.NoError(t, err)

		assert.Equal(t, int64(1), metrics.BatchExportCount.Load())
		assert.Equal(t, int64(1), metrics.BatchExportItems.Load())
		assert.Equal(t, int64(0), metrics.BatchExportFails.Load())
	})

	t.Run("Empty", func(t *testing.T) {
		meshes, err := ExportAll(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, meshes)
	})
}
