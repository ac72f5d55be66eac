package tpdu

import (
	"fmt"
	"strconv"
)

// Reader reads a TPDU hex string sequentially. All lengths are counted in hex
// digits, two hex digits per octet. Every decoder consumes exactly the number
// of hex digits its field spans, so the position stays aligned for the
// decoders that follow.
type Reader struct {
	data string
	pos  int
}

// NewReader returns a Reader positioned at the start of the given hex string.
func NewReader(data string) *Reader {
	return &Reader{data: data}
}

// Read consumes the next n hex digits. It fails if fewer than n digits remain.
func (r *Reader) Read(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("cannot read a negative number of hex digits: %d", n)
	}
	if r.pos+n > len(r.data) {
		return "", fmt.Errorf("cannot read %d hex digits at position %d, only %d remaining", n, r.pos, len(r.data)-r.pos)
	}
	result := r.data[r.pos : r.pos+n]
	r.pos += n
	return result, nil
}

// ReadAtMost consumes up to n hex digits, returning fewer if the data ends
// early. This is the entry point for the recoverable truncation handling of
// UCS-2 user data.
func (r *Reader) ReadAtMost(n int) string {
	if n < 0 {
		return ""
	}
	end := r.pos + n
	if end > len(r.data) {
		end = len(r.data)
	}
	result := r.data[r.pos:end]
	r.pos = end
	return result
}

// ReadOctet consumes the next two hex digits as one octet.
func (r *Reader) ReadOctet() (byte, error) {
	pos := r.pos
	data, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseUint(data, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid octet %q at position %d", data, pos)
	}
	return byte(value), nil
}

// Pos returns the current position in hex digits.
func (r *Reader) Pos() int {
	return r.pos
}

// Seek moves the reader to the given position.
func (r *Reader) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(r.data) {
		pos = len(r.data)
	}
	r.pos = pos
}

// Remaining returns the number of hex digits left to read.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// BitReader extracts bit fields from a single octet, most significant bit
// first. Any octet is structurally valid, semantic validation of the
// extracted values is up to the caller.
type BitReader struct {
	octet byte
	pos   uint
}

// NewBitReader returns a BitReader over the given octet.
func NewBitReader(octet byte) *BitReader {
	return &BitReader{octet: octet}
}

// Bool reads the next bit as a boolean.
func (r *BitReader) Bool() bool {
	result := r.octet&(0x80>>r.pos) != 0
	r.pos++
	return result
}

// Uint reads the next n bits as an unsigned integer.
func (r *BitReader) Uint(n uint) byte {
	var result byte
	for i := uint(0); i < n; i++ {
		result <<= 1
		if r.Bool() {
			result |= 1
		}
	}
	return result
}

// Skip skips over n reserved bits.
func (r *BitReader) Skip(n uint) {
	r.pos += n
}
