package script

import (
	"encoding/binary"
	"io"
	"math"
)

// byteReader is a little-endian cursor over a byte slice. A read past
// the end sets a sticky error and returns zero values; callers check
// Err after a group of reads. The disassembler relies on this to turn
// truncated instructions into inline failure markers instead of
// aborting the whole listing.
type byteReader struct {
	data []byte
	off  int
	err  error
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) Err() error  { return r.err }
func (r *byteReader) Offset() int { return r.off }

func (r *byteReader) Remaining() int {
	if r.off >= len(r.data) {
		return 0
	}
	return len(r.data) - r.off
}

func (r *byteReader) fail() {
	if r.err == nil {
		r.err = io.ErrUnexpectedEOF
	}
}

func (r *byteReader) U8() uint8 {
	if r.err != nil || r.off+1 > len(r.data) {
		r.fail()
		return 0
	}
	v := r.data[r.off]
	r.off++
	return v
}

func (r *byteReader) U16() uint16 {
	if r.err != nil || r.off+2 > len(r.data) {
		r.fail()
		return 0
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

func (r *byteReader) U32() uint32 {
	if r.err != nil || r.off+4 > len(r.data) {
		r.fail()
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

func (r *byteReader) F32() float32 {
	return math.Float32frombits(r.U32())
}

func (r *byteReader) Bytes(n int) []byte {
	if r.err != nil || n < 0 || r.off+n > len(r.data) {
		r.fail()
		return nil
	}
	v := r.data[r.off : r.off+n]
	r.off += n
	return v
}

func (r *byteReader) Skip(n int) {
	if r.err != nil || n < 0 || r.off+n > len(r.data) {
		r.fail()
		return
	}
	r.off += n
}

// CString reads bytes up to and including a NUL terminator and returns
// them without the terminator.
func (r *byteReader) CString() []byte {
	if r.err != nil {
		return nil
	}
	start := r.off
	for r.off < len(r.data) {
		if r.data[r.off] == 0 {
			v := r.data[start:r.off]
			r.off++
			return v
		}
		r.off++
	}
	r.fail()
	return nil
}

// WString reads UTF-16 code units up to and including a NUL terminator
// and returns the raw bytes without the terminator.
func (r *byteReader) WString() []byte {
	if r.err != nil {
		return nil
	}
	start := r.off
	for r.off+2 <= len(r.data) {
		if r.data[r.off] == 0 && r.data[r.off+1] == 0 {
			v := r.data[start:r.off]
			r.off += 2
			return v
		}
		r.off += 2
	}
	r.fail()
	return nil
}

// Since returns the bytes consumed since the given offset. Used for
// the hex column in disassembly listings.
func (r *byteReader) Since(start int) []byte {
	if start < 0 || start > r.off || r.off > len(r.data) {
		return nil
	}
	return r.data[start:r.off]
}

func f32frombits(b uint32) float32 { return math.Float32frombits(b) }
