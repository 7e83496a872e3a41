package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0x00,
		},
		{
			name:     "two bytes",
			data:     []byte{0x01, 0x02},
			expected: 0x03,
		},
		{
			name:     "self-cancelling",
			data:     []byte{0x01, 0x02, 0x03},
			expected: 0x00,
		},
		{
			name:     "get VCP brightness request",
			data:     []byte{0x6E, 0x51, 0x82, 0x01, 0x10},
			expected: 0xAC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Checksum(tt.data), "Checksum() = 0x%02X, want 0x%02X", Checksum(tt.data), tt.expected)
		})
	}
}

func TestChecksumWithDestination(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		dest     byte
		expected byte
	}{
		{
			name:     "two bytes",
			data:     []byte{0x01, 0x02},
			dest:     VirtualHostAddress,
			expected: 0x52,
		},
		{
			name:     "three bytes",
			data:     []byte{0x01, 0x02, 0x03},
			dest:     VirtualHostAddress,
			expected: 0x51,
		},
		{
			name:     "null message verifies",
			data:     NullMessage,
			dest:     VirtualHostAddress,
			expected: 0x00,
		},
		{
			name:     "empty data",
			data:     nil,
			dest:     VirtualHostAddress,
			expected: VirtualHostAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChecksumWithDestination(tt.data, tt.dest))
		})
	}
}

func TestChecksumSelfInverse(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xFF, 0xFF},
		{0x6E, 0x51, 0x84, 0x03, 0x10, 0x00, 0x32},
		{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03},
	}

	for _, in := range inputs {
		framed := append(append([]byte{}, in...), Checksum(in))
		assert.Zero(t, Checksum(framed), "checksum of % X plus its checksum", in)
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(data)
	}
}
