package lineset

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/strataforge/lineset/attribute"
	"github.com/strataforge/lineset/geometry"
)

// Subtype categorizes a line set for downstream consumers.
type Subtype string

const (
	// SubtypeLine marks a plain line set.
	SubtypeLine Subtype = "line"

	// SubtypeBorehole marks a line set whose polylines represent
	// boreholes; viewers typically render these as tubes.
	SubtypeBorehole Subtype = "borehole"
)

// Element bundles a line set geometry with identity, attributes and
// options. It is the unit of export.
type Element struct {
	uid         uuid.UUID
	name        string
	description string
	subtype     Subtype
	geometry    *geometry.LineSet
	attrs       []attribute.Attribute
	logger      *Logger
	metrics     MetricsCollector
}

// New creates an element around the given geometry and assigns it a fresh
// UID. The geometry must be non-nil.
func New(name string, geom *geometry.LineSet, optFns ...Option) (*Element, error) {
	if geom == nil {
		return nil, errors.New("lineset: geometry must not be nil")
	}

	opts := options{
		subtype: SubtypeLine,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Element{
		uid:         uuid.New(),
		name:        name,
		description: opts.description,
		subtype:     opts.subtype,
		geometry:    geom,
		logger:      opts.logger,
		metrics:     opts.metrics,
	}, nil
}

// UID returns the element's unique identifier.
func (e *Element) UID() uuid.UUID { return e.uid }

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// Description returns the element description.
func (e *Element) Description() string { return e.description }

// Subtype returns the element subtype.
func (e *Element) Subtype() Subtype { return e.subtype }

// Geometry returns the underlying line set geometry.
func (e *Element) Geometry() *geometry.LineSet { return e.geometry }

// Attributes returns the attached attributes in attachment order.
// The returned slice is owned by the element and must not be modified.
func (e *Element) Attributes() []attribute.Attribute { return e.attrs }

// AddAttribute attaches a named data array to the element.
//
// The location tag must be valid and the array length must equal the
// geometry's count for that location. The same checks run again at export
// time, since the geometry may have been mutated in between.
func (e *Element) AddAttribute(attr attribute.Attribute) error {
	if err := e.checkAttribute(attr); err != nil {
		return err
	}
	e.attrs = append(e.attrs, attr)
	return nil
}

func (e *Element) checkAttribute(attr attribute.Attribute) error {
	if !attr.Location.Valid() {
		return &ErrInvalidLocation{Name: attr.Name, Location: attr.Location}
	}
	if want := e.geometry.LocationLength(attr.Location); attr.Len() != want {
		return &ErrAttributeLengthMismatch{
			Name:     attr.Name,
			Location: attr.Location,
			Want:     want,
			Got:      attr.Len(),
		}
	}
	return nil
}

// String returns a short description of the element.
func (e *Element) String() string {
	return fmt.Sprintf("Element(%s %s: %d nodes, %d cells)", e.subtype, e.name, e.geometry.NumNodes(), e.geometry.NumCells())
}
