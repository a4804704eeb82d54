package edit

import "testing"

func newTestEditor(t *testing.T, s string, cursorAtEnd bool) *Editor {
	t.Helper()
	e := NewEditor(1024, "", nil)
	if s != "" {
		if err := e.SetLine(s); err != nil {
			t.Fatalf("SetLine(%q): %v", s, err)
		}
	}
	if !cursorAtEnd {
		e.pos = 0
		e.syncHeld()
	}
	return e
}

// Scenario 1: insert each character of "hello, world" into an empty
// editor, then Enter — the resulting buffer equals the input.
func TestScenario1_InsertEachChar(t *testing.T) {
	e := NewEditor(64, "", nil)
	for _, r := range "hello, world" {
		b := []byte(string(r))
		rd := &sliceReader{b: b[1:]}
		c, err := ParseChar(b[0], rd)
		if err != nil {
			t.Fatalf("ParseChar(%q): %v", r, err)
		}
		if !e.Put(c) {
			t.Fatalf("Put(%q) rejected", r)
		}
	}
	out, err := e.ToOutput()
	if err != nil {
		t.Fatalf("ToOutput: %v", err)
	}
	if string(out[:len(out)-1]) != "hello, world" {
		t.Errorf("got %q, want %q", out[:len(out)-1], "hello, world")
	}
}

// Scenario 2: "hello world sailor", shift(pos=12, count=6, backward)
// erases "world " leaving "hello sailor".
func TestScenario2_ShiftBackward(t *testing.T) {
	e := newTestEditor(t, "hello world sailor", true)
	e.pos = 12
	e.syncHeld()

	if err := e.Erase(6, backward); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if got := e.Line().String(); got != "hello sailor" {
		t.Errorf("got %q, want %q", got, "hello sailor")
	}
}

// Scenario 3: Cyrillic string, shift(pos=1, count=1, backward) removes
// the first character.
func TestScenario3_ShiftBackwardUnicode(t *testing.T) {
	e := newTestEditor(t, "это строка", true)
	e.pos = 1
	e.syncHeld()

	if err := e.Erase(1, backward); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if got := e.Line().String(); got != "то строка" {
		t.Errorf("got %q, want %q", got, "то строка")
	}
}

// Scenario 4: erase(pos=10, count=3, backward) on "это строка" (10
// characters) removes the last 3, leaving "это стр".
func TestScenario4_EraseBackwardAtEnd(t *testing.T) {
	e := newTestEditor(t, "это строка", true)

	if e.Pos() != 10 {
		t.Fatalf("precondition: Pos() = %d, want 10", e.Pos())
	}
	if err := e.Erase(3, backward); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if got := e.Line().String(); got != "это стр" {
		t.Errorf("got %q, want %q", got, "это стр")
	}
}

// Scenario 5: erase(pos=10, count=3, forward) past end-of-string is a
// no-op; the buffer is unchanged.
func TestScenario5_EraseForwardPastEndIsNoOp(t *testing.T) {
	e := newTestEditor(t, "это строка", true)

	err := e.Erase(3, forward)
	if err != ErrOutOfBounds {
		t.Fatalf("Erase forward past end: err = %v, want ErrOutOfBounds", err)
	}
	if got := e.Line().String(); got != "это строка" {
		t.Errorf("state mutated on rejected erase: got %q", got)
	}
	if e.Pos() != 10 {
		t.Errorf("cursor moved on rejected erase: Pos() = %d", e.Pos())
	}
}

// Scenario 6: insert(pos=8, 'A') on "hello, wrld" yields "hello, wArld".
func TestScenario6_InsertMidString(t *testing.T) {
	e := newTestEditor(t, "hello, wrld", false)
	e.pos = 8
	e.syncHeld()

	if !e.Put(Char{Bytes: [4]byte{'A'}, Size: 1}) {
		t.Fatalf("Put('A') rejected")
	}
	if got := e.Line().String(); got != "hello, wArld" {
		t.Errorf("got %q, want %q", got, "hello, wArld")
	}
}

// Scenario 7/8: word-range splitting on space-delimited tokens.
func TestScenario7And8_Words(t *testing.T) {
	tests := []struct {
		s    string
		want [][2]int
	}{
		{"hello world sailor", [][2]int{{0, 5}, {6, 11}, {12, 18}}},
		{"привет как дела", [][2]int{{0, 6}, {7, 10}, {11, 15}}},
	}
	for _, tt := range tests {
		cs := mustFromString(t, tt.s)
		got := cs.Words()
		if len(got) != len(tt.want) {
			t.Fatalf("Words(%q) = %v, want %v", tt.s, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Words(%q)[%d] = %v, want %v", tt.s, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEditorInsertEraseInverse(t *testing.T) {
	// Invariant 4: insert(p, c) followed by erase_backward(p+1, 1)
	// restores the prior string and cursor position.
	e := newTestEditor(t, "hello world", false)
	for p := 0; p <= e.Line().Length(); p++ {
		before := e.Line().String()
		e.pos = p
		e.syncHeld()
		if !e.Put(Char{Bytes: [4]byte{'X'}, Size: 1}) {
			t.Fatalf("Put at pos %d rejected", p)
		}
		if err := e.Erase(1, backward); err != nil {
			t.Fatalf("Erase at pos %d: %v", p, err)
		}
		if got := e.Line().String(); got != before {
			t.Errorf("insert/erase inverse failed at pos %d: got %q, want %q", p, got, before)
		}
	}
}

func TestEditorCursorBoundsInvariant(t *testing.T) {
	e := newTestEditor(t, "hello", false)
	e.MoveLeft(100)
	if e.Pos() != 0 {
		t.Errorf("MoveLeft saturation: Pos() = %d, want 0", e.Pos())
	}
	e.MoveRight(100)
	if e.Pos() != e.Line().Length() {
		t.Errorf("MoveRight saturation: Pos() = %d, want %d", e.Pos(), e.Line().Length())
	}
}

func TestEditorWordJumpsAreMonotone(t *testing.T) {
	e := newTestEditor(t, "hello world sailor again", true)
	pos := e.Pos()
	for i := 0; i < 10; i++ {
		n := e.WordLeft()
		newPos := pos - n
		if newPos > pos {
			t.Fatalf("WordLeft increased cursor position: %d -> %d", pos, newPos)
		}
		pos = newPos
		if pos == 0 {
			break
		}
	}
}

func TestEditorPutRejectsOverCapacity(t *testing.T) {
	e := NewEditor(2, "", nil) // room for 1 byte + NUL
	if !e.Put(Char{Bytes: [4]byte{'a'}, Size: 1}) {
		t.Fatalf("first Put should succeed")
	}
	if e.Put(Char{Bytes: [4]byte{'b'}, Size: 1}) {
		t.Fatalf("Put over capacity should be rejected")
	}
	if e.Line().String() != "a" {
		t.Errorf("state mutated on rejected Put: %q", e.Line().String())
	}
}

func TestEditorHistoryNavigation(t *testing.T) {
	h := NewHistory(0, 0)
	_ = h.Append("first")
	_ = h.Append("second")

	e := NewEditor(64, "", h)
	_ = e.SetLine("typing...")

	e.HistoryUp()
	if e.Line().String() != "second" {
		t.Fatalf("HistoryUp: got %q, want %q", e.Line().String(), "second")
	}
	e.HistoryUp()
	if e.Line().String() != "first" {
		t.Fatalf("HistoryUp again: got %q, want %q", e.Line().String(), "first")
	}
	e.HistoryDown()
	if e.Line().String() != "second" {
		t.Fatalf("HistoryDown: got %q, want %q", e.Line().String(), "second")
	}
	e.HistoryDown()
	if e.Line().String() != "typing..." {
		t.Fatalf("HistoryDown past most recent: got %q, want %q", e.Line().String(), "typing...")
	}
}
