package lineset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataforge/lineset/codec"
)

func TestEncodeMesh(t *testing.T) {
	elem, err := New("holes", testGeometry(t), WithSubtype(SubtypeBorehole))
	require.NoError(t, err)

	m, err := elem.Export(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name string
		c    codec.Codec
		comp codec.Compressor
	}{
		{name: "defaults"},
		{name: "json gzip", c: codec.JSON{}, comp: codec.Gzip{}},
		{name: "json lz4", c: codec.JSON{}, comp: codec.LZ4{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EncodeMesh(m, tt.c, tt.comp)
			require.NoError(t, err)

			got, err := DecodeMesh(b, tt.c, tt.comp)
			require.NoError(t, err)

			assert.Equal(t, m.Points, got.Points)
			assert.Equal(t, m.Lines, got.Lines)
			assert.Equal(t, m.CellData, got.CellData)
			assert.Equal(t, m.Fields, got.Fields)
		})
	}
}

func TestDecodeMeshWrongCompressor(t *testing.T) {
	elem, err := New("holes", testGeometry(t))
	require.NoError(t, err)

	m, err := elem.Export(context.Background())
	require.NoError(t, err)

	b, err := EncodeMesh(m, nil, codec.LZ4{})
	require.NoError(t, err)

	_, err = DecodeMesh(b, nil, codec.Gzip{})
	require.Error(t, err)
}
