// Package lineset provides a validated line-mesh geometry and its export
// to a plain visualization mesh.
//
// A line set is an ordered vertex list plus ordered segments connecting
// the vertices. The geometry is validated on construction and on every
// mutation, so segment indices always dereference a real vertex. Export
// groups contiguous segments into polylines and assembles a mesh value
// with points, line cells, the "Line Index" grouping array and any
// attached node or cell attributes.
//
// # Quick Start
//
//	geom, _ := geometry.New(r3.Vec{}, vertices, segments)
//	elem, _ := lineset.New("drillholes", geom,
//	    lineset.WithSubtype(lineset.SubtypeBorehole))
//
//	_ = elem.AddAttribute(attribute.Attribute{
//	    Name:     "assay",
//	    Location: attribute.LocationSegments,
//	    Array:    attribute.Floats{0.2, 0.4},
//	})
//
//	m, _ := elem.Export(ctx)
//	_ = vtk.Write(os.Stdout, m)
//
// # Polyline Grouping
//
// During export every segment receives an integer group id. A run of
// segments stays in one group as long as each segment starts at the
// previous segment's end vertex; any break in that chain opens a new
// group. The ids land in the exported mesh as the "Line Index" cell
// array, so downstream filters can color or tube whole polylines.
//
// # Concurrency
//
// All operations are synchronous and pure over their inputs. Concurrent
// exports over one element are safe as long as no caller mutates the
// geometry while an export is in flight; the library takes no locks.
package lineset
