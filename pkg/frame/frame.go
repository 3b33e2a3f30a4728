// Package frame implements zero-copy length-prefixed framing over byte
// views. A frame is a varint payload length, the payload, and a CRC-32
// (IEEE) of the payload. Splitting a buffer yields payload views that alias
// it; the buffer must outlive every view handed out.
package frame

import (
	"encoding/binary"
	"errors"
	"hash/crc32"

	view "github.com/awwaw/contiguous-view"
	"github.com/awwaw/contiguous-view/internal/common"
)

// Bytes is a dynamic byte view into a frame buffer.
type Bytes = view.View[byte, view.Dynamic]

var (
	ErrShortFrame = errors.New("frame: truncated frame")
	ErrChecksum   = errors.New("frame: checksum mismatch")
)

const crcSize = 4

// Append serializes payload as one frame at the end of dst and returns the
// extended buffer.
func Append(dst, payload []byte) []byte {
	dst = common.WriteVarUintTo(dst, uint64(len(payload)))
	dst = append(dst, payload...)
	crc := crc32.ChecksumIEEE(payload)
	out := append(dst, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[len(out)-crcSize:], crc)
	return out
}

// Splitter walks the frames of a buffer without copying payloads.
type Splitter struct {
	rest Bytes
}

// NewSplitter returns a splitter over buf. buf must stay alive and unmodified
// while any payload view returned by Next is in use.
func NewSplitter(buf []byte) *Splitter {
	return &Splitter{rest: view.FromSlice(buf)}
}

// More reports whether undecoded bytes remain.
func (s *Splitter) More() bool { return !s.rest.Empty() }

// Next decodes the next frame and returns its payload as a view into the
// buffer. The CRC is verified against the payload bytes.
func (s *Splitter) Next() (Bytes, error) {
	n, hdr := common.ReadVarUint(s.rest.Slice())
	if hdr == 0 || n > uint64(s.rest.Size()) {
		return Bytes{}, ErrShortFrame
	}
	total := hdr + int(n) + crcSize
	if total > s.rest.Size() {
		return Bytes{}, ErrShortFrame
	}
	payload := s.rest.Subview(hdr, int(n))
	sum := s.rest.Subview(hdr+int(n), crcSize)
	if crc32.ChecksumIEEE(payload.Slice()) != binary.LittleEndian.Uint32(sum.Slice()) {
		return Bytes{}, ErrChecksum
	}
	s.rest = s.rest.Subview(total, view.DynamicExtent)
	return payload, nil
}
