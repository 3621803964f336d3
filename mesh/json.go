package mesh

import (
	"encoding/json"
	"fmt"

	"github.com/strataforge/lineset/attribute"
)

// dataArrayJSON is the wire form of a DataArray. The array type is
// discriminated by the "type" field so a decoded mesh round-trips with
// the same concrete array types.
type dataArrayJSON struct {
	Name   string    `json:"name"`
	Type   string    `json:"type"`
	Floats []float64 `json:"floats,omitempty"`
	Ints   []int32   `json:"ints,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (d DataArray) MarshalJSON() ([]byte, error) {
	aux := dataArrayJSON{Name: d.Name}

	switch arr := d.Array.(type) {
	case nil:
		aux.Type = "float64"
	case attribute.Floats:
		aux.Type = "float64"
		aux.Floats = arr
	case attribute.Ints:
		aux.Type = "int32"
		aux.Ints = arr
	default:
		return nil, fmt.Errorf("mesh: cannot encode data array %q: unsupported array type %T", d.Name, d.Array)
	}

	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DataArray) UnmarshalJSON(data []byte) error {
	var aux dataArrayJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.Name = aux.Name

	switch aux.Type {
	case "float64":
		d.Array = attribute.Floats(aux.Floats)
	case "int32":
		d.Array = attribute.Ints(aux.Ints)
	default:
		return fmt.Errorf("mesh: cannot decode data array %q: unknown array type %q", aux.Name, aux.Type)
	}

	return nil
}
