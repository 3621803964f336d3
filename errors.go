package lineset

import (
	"fmt"

	"github.com/strataforge/lineset/attribute"
	"github.com/strataforge/lineset/polyline"
)

// ErrEmptyGeometry is returned when an export is requested for a line set
// with no segments. It aliases the polyline package's sentinel so callers
// can match with errors.Is at either level.
var ErrEmptyGeometry = polyline.ErrEmptyGeometry

// ErrAttributeLengthMismatch indicates an attribute whose array length
// does not equal the expected count for its declared location.
type ErrAttributeLengthMismatch struct {
	Name     string
	Location attribute.Location
	Want     int
	Got      int
}

func (e *ErrAttributeLengthMismatch) Error() string {
	return fmt.Sprintf("attribute %q: location %q expects %d values, got %d", e.Name, e.Location, e.Want, e.Got)
}

// ErrInvalidLocation indicates an attribute with an unknown location tag.
type ErrInvalidLocation struct {
	Name     string
	Location attribute.Location
}

func (e *ErrInvalidLocation) Error() string {
	return fmt.Sprintf("attribute %q: invalid location %q", e.Name, e.Location)
}
