package frame

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{[]byte("hello"), {}, []byte("a longer payload with some bytes")}
	var buf []byte
	for _, p := range payloads {
		buf = Append(buf, p)
	}

	s := NewSplitter(buf)
	for _, want := range payloads {
		require.True(t, s.More())
		got, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, len(want), got.Size())
		assert.Equal(t, want, got.Slice())
	}
	require.False(t, s.More())
}

func TestPayloadAliasesBuffer(t *testing.T) {
	buf := Append(nil, []byte{1, 2, 3})
	s := NewSplitter(buf)
	p, err := s.Next()
	require.NoError(t, err)

	// The payload view shares the frame buffer; the first payload byte
	// sits right after the one-byte varint length.
	buf[1] = 9
	require.Equal(t, byte(9), *p.At(0))
}

func TestChecksumMismatch(t *testing.T) {
	buf := Append(nil, []byte("hello"))
	buf[2] ^= 0xff
	_, err := NewSplitter(buf).Next()
	require.ErrorIs(t, err, ErrChecksum)
}

func TestTruncated(t *testing.T) {
	buf := Append(nil, []byte("hello"))
	_, err := NewSplitter(buf[:len(buf)-1]).Next()
	require.ErrorIs(t, err, ErrShortFrame)

	_, err = NewSplitter(nil).Next()
	require.ErrorIs(t, err, ErrShortFrame)
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("seed"))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, payload []byte) {
		buf := Append(nil, payload)
		p, err := NewSplitter(buf).Next()
		require.NoError(t, err)
		require.Equal(t, len(payload), p.Size())
		require.True(t, bytes.Equal(payload, p.Slice()))
	})
}
