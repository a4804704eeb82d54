package edit

import "testing"

func mustFromString(t *testing.T, s string) *CString {
	t.Helper()
	cs, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return cs
}

func TestFromStringToBytesRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", "日本語", "a😀b"} {
		cs := mustFromString(t, s)
		out, err := cs.ToBytes(len(s) + 1)
		if err != nil {
			t.Fatalf("ToBytes(%q): %v", s, err)
		}
		if string(out[:len(out)-1]) != s {
			t.Errorf("round trip = %q, want %q", out[:len(out)-1], s)
		}
		if out[len(out)-1] != 0 {
			t.Errorf("ToBytes missing NUL terminator")
		}
	}
}

func TestCStringLengthAndSize(t *testing.T) {
	cs := mustFromString(t, "héllo")
	if cs.Length() != 5 {
		t.Errorf("Length() = %d, want 5", cs.Length())
	}
	if cs.Size() != 6 { // é is 2 bytes
		t.Errorf("Size() = %d, want 6", cs.Size())
	}
}

func TestCStringInsertBeforeAtEachPosition(t *testing.T) {
	cs := NewCString()
	cs.insertBefore(nil, Char{Bytes: [4]byte{'b'}, Size: 1})
	cs.insertBefore(cs.begin, Char{Bytes: [4]byte{'a'}, Size: 1})
	cs.insertBefore(nil, Char{Bytes: [4]byte{'c'}, Size: 1})

	if cs.String() != "abc" {
		t.Fatalf("String() = %q, want abc", cs.String())
	}
}

func TestCStringEraseNode(t *testing.T) {
	cs := mustFromString(t, "abc")
	cs.eraseNode(cs.nth(1))
	if cs.String() != "ac" {
		t.Errorf("after erase middle: %q, want ac", cs.String())
	}

	cs2 := mustFromString(t, "abc")
	cs2.eraseNode(cs2.nth(0))
	if cs2.String() != "bc" {
		t.Errorf("after erase begin: %q, want bc", cs2.String())
	}

	cs3 := mustFromString(t, "abc")
	cs3.eraseNode(cs3.nth(2))
	if cs3.String() != "ab" {
		t.Errorf("after erase end: %q, want ab", cs3.String())
	}
}

func TestCStringCloneIntoIsIndependent(t *testing.T) {
	src := mustFromString(t, "hello")
	dst := NewCString()
	src.CloneInto(dst)

	if !src.Equals(dst) {
		t.Fatalf("clone not equal to source")
	}

	dst.eraseNode(dst.nth(0))
	if src.String() != "hello" {
		t.Errorf("mutating clone affected source: %q", src.String())
	}
}

func TestCStringEquals(t *testing.T) {
	a := mustFromString(t, "abc")
	b := mustFromString(t, "abc")
	c := mustFromString(t, "abd")

	if !a.Equals(b) {
		t.Errorf("expected a.Equals(b)")
	}
	if a.Equals(c) {
		t.Errorf("expected !a.Equals(c)")
	}
}

func TestCStringToBytesOverflow(t *testing.T) {
	cs := mustFromString(t, "hello world")
	_, err := cs.ToBytes(4)
	if err != ErrOutOfBounds {
		t.Errorf("ToBytes with too-small cap: err = %v, want ErrOutOfBounds", err)
	}
}

func TestFromStringInvalidEncoding(t *testing.T) {
	_, err := FromString(string([]byte{0xFF}))
	if err != ErrInvalidEncoding {
		t.Errorf("FromString(invalid): err = %v, want ErrInvalidEncoding", err)
	}
}

func TestCStringClear(t *testing.T) {
	cs := mustFromString(t, "hello")
	cs.Clear()
	if cs.Length() != 0 || cs.Size() != 0 || cs.String() != "" {
		t.Errorf("Clear() left non-empty state: length=%d size=%d string=%q", cs.Length(), cs.Size(), cs.String())
	}
}
