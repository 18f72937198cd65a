package script

import "fmt"

// prsDecompress expands PRS-compressed data (the LZ77 variant used for
// embedded image data). It returns the expanded bytes and the number
// of input bytes consumed, since a label's block may carry trailing
// data after the compressed stream's end marker.
func prsDecompress(data []byte) ([]byte, int, error) {
	r := newByteReader(data)
	out := []byte{}

	var ctrl uint8
	var bitsLeft int
	readBit := func() int {
		if bitsLeft == 0 {
			ctrl = r.U8()
			bitsLeft = 8
		}
		b := ctrl & 1
		ctrl >>= 1
		bitsLeft--
		return int(b)
	}

	for r.Err() == nil {
		if readBit() == 1 {
			// literal
			out = append(out, r.U8())
			continue
		}
		var offset, size int
		if readBit() == 1 {
			// long copy; a zero word terminates the stream
			v := int(r.U16())
			if v == 0 {
				if err := r.Err(); err != nil {
					break
				}
				return out, r.Offset(), nil
			}
			offset = (v >> 3) - 0x2000
			size = v & 7
			if size == 0 {
				size = int(r.U8()) + 1
			} else {
				size += 2
			}
		} else {
			// short copy
			size = readBit()<<1 + 2
			size += readBit()
			offset = int(r.U8()) - 0x100
		}
		for i := 0; i < size; i++ {
			pos := len(out) + offset
			if pos < 0 {
				return nil, 0, fmt.Errorf("%w: backreference before start of output", ErrCompressedTooShort)
			}
			out = append(out, out[pos])
		}
	}
	return nil, 0, fmt.Errorf("%w: no end marker", ErrCompressedTooShort)
}
