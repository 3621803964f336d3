package lineset

import (
	"github.com/strataforge/lineset/codec"
	"github.com/strataforge/lineset/mesh"
)

// EncodeMesh serializes an exported mesh for transport. A nil codec falls
// back to codec.Default; a nil compressor leaves the bytes uncompressed.
//
// The codec and compressor choices are a compatibility boundary: record
// their names alongside the bytes if the receiver is not fixed.
func EncodeMesh(m *mesh.Mesh, c codec.Codec, comp codec.Compressor) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	b, err := c.Marshal(m)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return b, nil
	}
	return comp.Compress(b)
}

// DecodeMesh reverses EncodeMesh. It must be called with the same codec
// and compressor the bytes were encoded with.
func DecodeMesh(data []byte, c codec.Codec, comp codec.Compressor) (*mesh.Mesh, error) {
	if c == nil {
		c = codec.Default
	}

	if comp != nil {
		var err error
		data, err = comp.Decompress(data)
		if err != nil {
			return nil, err
		}
	}

	var m mesh.Mesh
	if err := c.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
