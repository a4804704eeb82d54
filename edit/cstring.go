package edit

import "errors"

// ErrOutOfBounds is returned by CString operations that would move or
// erase past the begin/end of the string.
var ErrOutOfBounds = errors.New("edit: out of bounds")

// charNode is one element of a CString's doubly linked character list.
type charNode struct {
	next *charNode
	prev *charNode
	c    Char
}

// CString is an ordered sequence of UTF-8 characters supporting O(1)
// insert and delete at a "held position" (see Editor). Length is the
// number of characters; Size is the sum of their byte counts.
//
// CString is exclusively owned by its creator: Clear releases every
// character, and there is no shared-ownership or reference counting.
type CString struct {
	begin  *charNode
	end    *charNode
	length int
	size   int
}

// NewCString returns an empty character string.
func NewCString() *CString {
	return &CString{}
}

// Length returns the number of characters in the string.
func (s *CString) Length() int { return s.length }

// Size returns the total number of bytes across all characters.
func (s *CString) Size() int { return s.size }

// nth returns the node at character index i, or nil if i == s.length.
// i must be in [0, s.length].
func (s *CString) nth(i int) *charNode {
	if i == s.length {
		return nil
	}
	// Walk from whichever end is closer; lines edited interactively are
	// short, so this stays effectively O(1) near either end in practice.
	if i <= s.length/2 {
		n := s.begin
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := s.end
	for j := s.length - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

// insertBefore places ch immediately before held (nil means end-of-string)
// and returns the new node.
func (s *CString) insertBefore(held *charNode, ch Char) *charNode {
	n := &charNode{c: ch}

	switch {
	case s.length == 0:
		s.begin, s.end = n, n
	case held == nil:
		// Insert at end.
		n.prev = s.end
		s.end.next = n
		s.end = n
	case held == s.begin:
		n.next = s.begin
		s.begin.prev = n
		s.begin = n
	default:
		n.next = held
		n.prev = held.prev
		held.prev.next = n
		held.prev = n
	}

	s.length++
	s.size += int(ch.Size)
	allocCount++
	return n
}

// eraseNode unlinks and releases node, updating begin/end/length/size.
func (s *CString) eraseNode(node *charNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		s.begin = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		s.end = node.prev
	}

	s.length--
	s.size -= int(node.c.Size)
	allocCount--
}

// CloneInto deep-copies s into dst, which becomes an independently
// owned string. dst's prior contents are discarded.
func (s *CString) CloneInto(dst *CString) {
	allocCount -= dst.length
	dst.begin, dst.end = nil, nil
	dst.length, dst.size = 0, 0

	var prev *charNode
	for n := s.begin; n != nil; n = n.next {
		nn := &charNode{c: n.c}
		if prev == nil {
			dst.begin = nn
		} else {
			prev.next = nn
			nn.prev = prev
		}
		prev = nn
		allocCount++
	}
	dst.end = prev
	dst.length = s.length
	dst.size = s.size
}

// Equals reports whether s and other hold byte-identical character
// sequences.
func (s *CString) Equals(other *CString) bool {
	if s.size != other.size || s.length != other.length {
		return false
	}
	a, b := s.begin, other.begin
	for a != nil {
		if a.c.Size != b.c.Size || a.c.Bytes != b.c.Bytes {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

// Clear releases every character, resetting the string to empty.
func (s *CString) Clear() {
	allocCount -= s.length
	s.begin, s.end = nil, nil
	s.length, s.size = 0, 0
}

// ToBytes serializes the string into a null-terminated byte slice. It
// fails with ErrOutOfBounds if the content plus the terminator does not
// fit in cap bytes.
func (s *CString) ToBytes(cap int) ([]byte, error) {
	out := make([]byte, 0, s.size+1)
	for n := s.begin; n != nil; n = n.next {
		if len(out)+int(n.c.Size) > cap-1 {
			return nil, ErrOutOfBounds
		}
		out = append(out, n.c.Bytes[:n.c.Size]...)
	}
	out = append(out, 0)
	return out, nil
}

// String returns the string's content without a trailing NUL, for
// convenience in tests and callers that want a Go string directly.
func (s *CString) String() string {
	out := make([]byte, 0, s.size)
	for n := s.begin; n != nil; n = n.next {
		out = append(out, n.c.Bytes[:n.c.Size]...)
	}
	return string(out)
}

// Words returns the character-index ranges [start, end) of each
// space-delimited token in s, in order. It is tested directly against
// spec §8 scenarios 7-8.
func (s *CString) Words() [][2]int {
	var ranges [][2]int
	start := -1
	i := 0
	for n := s.begin; n != nil; n = n.next {
		if n.c.Size == 1 && n.c.Bytes[0] == ' ' {
			if start >= 0 {
				ranges = append(ranges, [2]int{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i++
	}
	if start >= 0 {
		ranges = append(ranges, [2]int{start, i})
	}
	return ranges
}

// FromString rebuilds a CString from a Go string, one Char per code
// point. It is the counterpart used by round-trip tests
// (from_bytes(to_bytes(s)) == s).
func FromString(s string) (*CString, error) {
	cs := NewCString()
	b := []byte(s)
	for i := 0; i < len(b); {
		size := leadByteSize(b[i])
		if size == 0 || i+int(size) > len(b) {
			return nil, ErrInvalidEncoding
		}
		var c Char
		c.Size = size
		copy(c.Bytes[:size], b[i:i+int(size)])
		for j := 1; j < int(size); j++ {
			if !isContinuation(b[i+j]) {
				return nil, ErrInvalidEncoding
			}
		}
		cs.insertBefore(nil, c)
		i += int(size)
	}
	return cs, nil
}
