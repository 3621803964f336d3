// Package vtk writes a mesh.Mesh as legacy VTK polydata (ASCII).
//
// This is an adapter on top of the plain mesh value: the export pipeline
// itself has no knowledge of VTK. Array names are sanitized for the legacy
// format, which does not allow whitespace in array names; within the Mesh
// value names are always kept verbatim.
package vtk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/strataforge/lineset/attribute"
	"github.com/strataforge/lineset/mesh"
)

// Write writes m to w in legacy VTK polydata ASCII format.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	title := m.Title
	if title == "" {
		title = "lineset"
	}

	fmt.Fprintf(bw, "# vtk DataFile Version 3.0\n%s\nASCII\nDATASET POLYDATA\n", title)

	if len(m.Fields) > 0 {
		fmt.Fprintf(bw, "FIELD FieldData %d\n", len(m.Fields))
		for _, f := range m.Fields {
			fmt.Fprintf(bw, "%s 1 1 string\n%s\n", sanitizeName(f.Name), f.Value)
		}
	}

	fmt.Fprintf(bw, "POINTS %d double\n", m.NumPoints())
	for _, p := range m.Points {
		fmt.Fprintf(bw, "%g %g %g\n", p.X, p.Y, p.Z)
	}

	// Each line cell is "2 a b": the point count plus two point indices.
	fmt.Fprintf(bw, "LINES %d %d\n", m.NumLines(), m.NumLines()*3)
	for _, l := range m.Lines {
		fmt.Fprintf(bw, "2 %d %d\n", l[0], l[1])
	}

	if len(m.CellData) > 0 {
		fmt.Fprintf(bw, "CELL_DATA %d\n", m.NumLines())
		if err := writeArrays(bw, m.CellData); err != nil {
			return err
		}
	}

	if len(m.PointData) > 0 {
		fmt.Fprintf(bw, "POINT_DATA %d\n", m.NumPoints())
		if err := writeArrays(bw, m.PointData); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteGzip writes m to w as gzip-compressed legacy VTK polydata.
func WriteGzip(w io.Writer, m *mesh.Mesh) error {
	zw := gzip.NewWriter(w)
	if err := Write(zw, m); err != nil {
		return err
	}
	return zw.Close()
}

// WriteFile writes m to the named file, gzip-compressed when the name ends
// in ".gz".
func WriteFile(path string, m *mesh.Mesh) error {
	f, err := os.Create(path) //nolint:gosec // G304: path is caller-chosen
	if err != nil {
		return fmt.Errorf("vtk: create %s: %w", path, err)
	}

	var werr error
	if strings.HasSuffix(path, ".gz") {
		werr = WriteGzip(f, m)
	} else {
		werr = Write(f, m)
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

func writeArrays(w io.Writer, arrays []mesh.DataArray) error {
	for _, d := range arrays {
		switch arr := d.Array.(type) {
		case attribute.Ints:
			fmt.Fprintf(w, "SCALARS %s int 1\nLOOKUP_TABLE default\n", sanitizeName(d.Name))
			for _, v := range arr {
				fmt.Fprintf(w, "%d\n", v)
			}
		case attribute.Floats:
			fmt.Fprintf(w, "SCALARS %s double 1\nLOOKUP_TABLE default\n", sanitizeName(d.Name))
			for _, v := range arr {
				fmt.Fprintf(w, "%g\n", v)
			}
		default:
			return fmt.Errorf("vtk: cannot write data array %q: unsupported array type %T", d.Name, d.Array)
		}
	}
	return nil
}

// sanitizeName replaces whitespace, which the legacy format cannot carry
// inside array names.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, name)
}
