// Package mesh defines the plain visualization mesh value produced by an
// export: a point list, a line-cell list and named data arrays attached to
// points or cells.
//
// The type deliberately has no dependency on any visualization toolkit.
// Adapters (for example the vtk package) convert a Mesh into a concrete
// third-party representation.
package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/strataforge/lineset/attribute"
)

// DataArray is a named, typed data array attached to the mesh.
type DataArray struct {
	Name  string
	Array attribute.Array
}

// Field is a named string value attached to the whole mesh rather than to
// individual points or cells, e.g. the line set subtype that downstream
// tube filters key on.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Len returns the length of the underlying array, or 0 if unset.
func (d DataArray) Len() int {
	if d.Array == nil {
		return 0
	}
	return d.Array.Len()
}

// Mesh is an assembled line mesh ready for visualization.
//
// Points and Lines preserve the order of the source geometry; line cells
// reference point indices directly, with no renumbering. PointData holds
// one value per point, CellData one value per line.
type Mesh struct {
	Title     string
	Points    []r3.Vec
	Lines     [][2]int
	PointData []DataArray
	CellData  []DataArray
	Fields    []Field
}

// NumPoints returns the number of points.
func (m *Mesh) NumPoints() int { return len(m.Points) }

// NumLines returns the number of line cells.
func (m *Mesh) NumLines() int { return len(m.Lines) }

// AddPointData appends a named per-point array.
func (m *Mesh) AddPointData(name string, arr attribute.Array) {
	m.PointData = append(m.PointData, DataArray{Name: name, Array: arr})
}

// AddCellData appends a named per-cell array.
func (m *Mesh) AddCellData(name string, arr attribute.Array) {
	m.CellData = append(m.CellData, DataArray{Name: name, Array: arr})
}

// AddField appends a named mesh-level field.
func (m *Mesh) AddField(name, value string) {
	m.Fields = append(m.Fields, Field{Name: name, Value: value})
}

// FieldValue returns the mesh-level field with the given name.
func (m *Mesh) FieldValue(name string) (string, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// PointArray returns the per-point array with the given name.
func (m *Mesh) PointArray(name string) (attribute.Array, bool) {
	return lookup(m.PointData, name)
}

// CellArray returns the per-cell array with the given name.
func (m *Mesh) CellArray(name string) (attribute.Array, bool) {
	return lookup(m.CellData, name)
}

func lookup(arrays []DataArray, name string) (attribute.Array, bool) {
	for _, d := range arrays {
		if d.Name == name {
			return d.Array, true
		}
	}
	return nil, false
}
