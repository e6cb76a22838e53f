package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeVector(t *testing.T) {
	tests := []struct {
		name   string
		vector []float32
	}{
		{"empty", []float32{}},
		{"single", []float32{0.5}},
		{"typical", []float32{0.1, -0.2, 0.3, 1e9, -1e-9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := EncodeVector(tt.vector)
			assert.Len(t, blob, 4*len(tt.vector))

			got, err := DecodeVector(blob)
			require.NoError(t, err)
			assert.Equal(t, tt.vector, got)
		})
	}
}

func TestDecodeVector_Truncated(t *testing.T) {
	_, err := DecodeVector([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrInvalidVector)
}
