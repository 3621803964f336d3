package lineset

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/strataforge/lineset/attribute"
	"github.com/strataforge/lineset/mesh"
	"github.com/strataforge/lineset/polyline"
)

// LineIndexArrayName is the name of the cell array carrying the polyline
// group id of each segment in an exported mesh.
const LineIndexArrayName = "Line Index"

// SubtypeFieldName is the name of the mesh-level field carrying the
// element subtype, so downstream filters can pick borehole sets out for
// tube rendering.
const SubtypeFieldName = "subtype"

// Export assembles the visualization mesh for the element.
//
// The mesh contains one point per vertex and one 2-point line cell per
// segment, both order-preserving and without renumbering, plus the
// "Line Index" cell array and every attached attribute under its own name
// in the collection matching its location. Attribute lengths are
// re-verified against the geometry at assembly time.
//
// The element and its geometry are read-only inputs: either a fully
// assembled mesh is returned or no output is produced.
func (e *Element) Export(ctx context.Context) (*mesh.Mesh, error) {
	start := time.Now()

	m, polylines, err := e.export()

	e.metrics.RecordExport(e.geometry.NumCells(), time.Since(start), err)
	log := e.logger.WithElement(e.name).WithNodes(e.geometry.NumNodes()).WithCells(e.geometry.NumCells())
	log.LogExport(ctx, polylines, err)

	return m, err
}

func (e *Element) export() (*mesh.Mesh, int, error) {
	groups, err := polyline.Group(e.geometry.Segments())
	if err != nil {
		return nil, 0, err
	}

	m := &mesh.Mesh{
		Title:  e.name,
		Points: slices.Clone(e.geometry.Vertices()),
		Lines:  make([][2]int, e.geometry.NumCells()),
	}
	for i, seg := range e.geometry.Segments() {
		m.Lines[i] = [2]int(seg)
	}

	m.AddCellData(LineIndexArrayName, attribute.Ints(groups))
	m.AddField(SubtypeFieldName, string(e.subtype))

	for _, attr := range e.attrs {
		if err := e.checkAttribute(attr); err != nil {
			return nil, 0, err
		}
		if attr.Location == attribute.LocationSegments {
			m.AddCellData(attr.Name, attr.Array)
		} else {
			m.AddPointData(attr.Name, attr.Array)
		}
	}

	return m, int(groups[len(groups)-1]) + 1, nil
}

// ExportAll exports the given elements concurrently and returns the meshes
// in input order.
//
// Each export treats its element as read-only, so no locking is needed;
// callers must not mutate any geometry while the batch is in flight. The
// first failure cancels the remaining work and is returned.
func ExportAll(ctx context.Context, elements []*Element, optFns ...Option) ([]*mesh.Mesh, error) {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	meshes := make([]*mesh.Mesh, len(elements))

	g, ctx := errgroup.WithContext(ctx)
	for i, elem := range elements {
		i, elem := i, elem
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := elem.Export(ctx)
			if err != nil {
				return err
			}
			meshes[i] = m
			return nil
		})
	}

	err := g.Wait()

	failed := 0
	for _, m := range meshes {
		if m == nil {
			failed++
		}
	}
	opts.metrics.RecordBatchExport(len(elements), failed, time.Since(start))
	opts.logger.LogBatchExport(ctx, len(elements), err)

	if err != nil {
		return nil, err
	}
	return meshes, nil
}
