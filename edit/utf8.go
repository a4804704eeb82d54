package edit

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a leading byte does not classify as
// any valid UTF-8 lead byte, or a continuation byte is malformed.
//
// The original toiletline implementation called exit(1) here; a library
// must return a recoverable error instead (spec open question #1).
var ErrInvalidEncoding = errors.New("edit: invalid utf-8 encoding")

// Char is a single UTF-8 character: up to 4 bytes plus the byte count
// that classifies it. Size is always in {1,2,3,4} for a validly parsed
// Char.
type Char struct {
	Bytes [4]byte
	Size  uint8
}

// Rune decodes the character's bytes into a rune.
func (c Char) Rune() rune {
	r, _ := utf8.DecodeRune(c.Bytes[:c.Size])
	return r
}

// Width reports the number of terminal columns this character occupies.
// Double-width (CJK) measurement is out of scope; every character is
// treated as exactly one column (see spec open question #6).
func (c Char) Width() int {
	return 1
}

// leadByteSize classifies a lead byte and returns the total encoded
// length of the character it introduces, or 0 if the byte cannot start
// a UTF-8 character (a continuation byte, or no valid pattern matches).
//
// The masks below are the corrected ones: 3-byte is b&0xF0==0xE0,
// 4-byte is b&0xF8==0xF0 (spec open question #5 — two earlier sources
// duplicated the 4-byte test for both 3- and 4-byte lead bytes).
func leadByteSize(b byte) uint8 {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// isContinuation reports whether b matches the 10xxxxxx continuation
// pattern.
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// ByteReader supplies the follow-up bytes of a multi-byte UTF-8
// character. It is satisfied by Backend.ReadByte.
type ByteReader interface {
	ReadByte() (byte, error)
}

// ParseChar inspects first's high bits to determine how many bytes the
// character occupies, then reads the remaining bytes from r. It fails
// with ErrInvalidEncoding if first is a continuation byte or matches no
// lead-byte pattern, or if a continuation byte fails its own
// classification check.
func ParseChar(first byte, r ByteReader) (Char, error) {
	size := leadByteSize(first)
	if size == 0 {
		return Char{}, ErrInvalidEncoding
	}

	var c Char
	c.Bytes[0] = first
	c.Size = size

	for i := uint8(1); i < size; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return Char{}, err
		}
		if !isContinuation(b) {
			return Char{}, ErrInvalidEncoding
		}
		c.Bytes[i] = b
	}

	return c, nil
}

// StrLen counts the number of UTF-8 characters in a null-terminated
// byte buffer: every byte whose top two bits are not 10 starts a new
// character.
func StrLen(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b == 0 {
			break
		}
		if b&0xC0 != 0x80 {
			n++
		}
	}
	return n
}

// UTF8StrLen returns the number of UTF-8 characters in a null-terminated
// string, mirroring tl_utf8_strlen. Unlike len(s), this counts code
// points, not bytes.
func UTF8StrLen(s string) int {
	return StrLen([]byte(s))
}
