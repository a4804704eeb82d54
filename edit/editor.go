package edit

// Editor holds exclusive ownership of one CString plus the cursor state
// needed to edit it interactively: the logical insertion point, the
// node currently at that point (or nil at end-of-line), and the
// in-progress history selection.
//
// Invariant: held == line.nth(pos); held.prev == line.nth(pos-1).
type Editor struct {
	line       *CString
	held       *charNode
	pos        int
	historySel int // -1 means "editing a fresh line, not yet in history"
	outCap     int
	prompt     string
	hist       *History
}

// NewEditor returns an Editor over a fresh CString. outCap bounds the
// serialized size (including the trailing NUL) that ToBytes/Put will
// accept; hist may be nil if history navigation is not needed.
func NewEditor(outCap int, prompt string, hist *History) *Editor {
	return &Editor{
		line:       NewCString(),
		pos:        0,
		historySel: -1,
		outCap:     outCap,
		prompt:     prompt,
		hist:       hist,
	}
}

// Line exposes the underlying CString for read-only inspection (render,
// tests).
func (e *Editor) Line() *CString { return e.line }

// Pos returns the current logical cursor position, in characters.
func (e *Editor) Pos() int { return e.pos }

// Prompt returns the editor's prompt string.
func (e *Editor) Prompt() string { return e.prompt }

// syncHeld recomputes held from pos. Called after any structural edit
// that might have invalidated the cached pointer.
func (e *Editor) syncHeld() {
	e.held = e.line.nth(e.pos)
}

// Put inserts ch immediately before the cursor and advances the cursor
// past it. It reports false (and leaves state unchanged) if the
// resulting size would exceed the output capacity — capacity errors are
// rejected silently per spec (no error surfaced, state unchanged).
func (e *Editor) Put(ch Char) bool {
	if e.line.size+int(ch.Size) > e.outCap-1 {
		return false
	}

	e.line.insertBefore(e.held, ch)
	e.pos++
	e.syncHeld()
	return true
}

// direction selects which side of the cursor Erase/gotoToken act on.
type direction int

const (
	forward direction = iota
	backward
)

// Erase removes n characters starting at the cursor (forward: the held
// character; backward: the character before it), adjusting the cursor
// to stay at the same logical edit point. It fails with ErrOutOfBounds,
// leaving the editor unchanged, if fewer than n characters lie in the
// requested direction.
func (e *Editor) Erase(n int, dir direction) error {
	if dir == backward {
		if n > e.pos {
			return ErrOutOfBounds
		}
	} else {
		if n > e.line.length-e.pos {
			return ErrOutOfBounds
		}
	}

	for i := 0; i < n; i++ {
		if dir == backward {
			e.line.eraseNode(e.line.nth(e.pos - 1))
			e.pos--
		} else {
			e.line.eraseNode(e.line.nth(e.pos))
		}
	}
	e.syncHeld()
	return nil
}

// MoveRight advances the cursor by up to n characters, saturating at
// end-of-line.
func (e *Editor) MoveRight(n int) {
	for i := 0; i < n && e.pos < e.line.length; i++ {
		e.held = e.held.next
		e.pos++
	}
}

// MoveLeft retreats the cursor by up to n characters, saturating at
// start-of-line.
func (e *Editor) MoveLeft(n int) {
	for i := 0; i < n && e.pos > 0; i++ {
		if e.held != nil {
			e.held = e.held.prev
		} else {
			e.held = e.line.end
		}
		e.pos--
	}
}

// isDelim classifies a byte as an ASCII word-delimiter (punctuation or
// whitespace). Unicode classification is out of scope; only the first
// byte of a multi-byte character is consulted, which is never itself an
// ASCII byte, so non-ASCII characters are never misclassified as
// delimiters.
func isDelim(b byte) bool {
	switch {
	case b == ' ', b == '\t', b == '\n', b == '\r', b == '\v', b == '\f':
		return true
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	default:
		return false
	}
}

func (e *Editor) charAt(i int) byte {
	return e.line.nth(i).c.Bytes[0]
}

// WordLeft returns the number of characters Ctrl+Left would cross: the
// run of delimiters immediately before the cursor (if any), followed by
// the run of non-delimiter characters before that — landing at the
// start of the previous word. See spec §4.D composite-action policy.
func (e *Editor) WordLeft() int {
	pos := e.pos
	for pos > 0 && isDelim(e.charAt(pos-1)) {
		pos--
	}
	for pos > 0 && !isDelim(e.charAt(pos-1)) {
		pos--
	}
	return e.pos - pos
}

// WordRight returns the number of characters Ctrl+Right would cross:
// the run of non-delimiter characters at/after the cursor (if any),
// followed by the run of delimiters after that — landing at the start
// of the following word (or end of line).
func (e *Editor) WordRight() int {
	pos := e.pos
	for pos < e.line.length && !isDelim(e.charAt(pos)) {
		pos++
	}
	for pos < e.line.length && isDelim(e.charAt(pos)) {
		pos++
	}
	return pos - e.pos
}

// HistoryUp implements Up-arrow navigation: on first press it snapshots
// the current non-empty line into history, then walks one entry back.
func (e *Editor) HistoryUp() {
	if e.hist == nil {
		return
	}

	if e.historySel == -1 {
		e.historySel = e.hist.Size()
		if e.line.length > 0 {
			_ = e.hist.Append(e.line.String())
		}
	}

	if e.historySel > 0 {
		e.historySel--
		e.loadHistory(e.historySel)
	}
}

// HistoryDown implements Down-arrow navigation: it walks one entry
// forward, or clears the line and exits history browsing once past the
// most recent entry.
func (e *Editor) HistoryDown() {
	if e.hist == nil {
		return
	}

	if e.historySel >= 0 && e.historySel < e.hist.Size()-1 {
		e.historySel++
		e.loadHistory(e.historySel)
	} else if e.hist.Size() > 0 {
		e.Clear()
		e.historySel = -1
	}
}

// loadHistory overwrites the editor's line with a clone of history
// entry idx and moves the cursor to the end of it.
func (e *Editor) loadHistory(idx int) {
	e.Clear()
	entry, ok := e.hist.Get(idx)
	if !ok {
		return
	}
	cs, err := FromString(entry)
	if err != nil {
		return
	}
	cs.CloneInto(e.line)
	cs.Clear() // release the temporary: CloneInto copies, it doesn't transfer ownership
	e.pos = e.line.length
	e.syncHeld()
}

// Clear releases every character and resets the cursor to the start.
func (e *Editor) Clear() {
	e.line.Clear()
	e.pos = 0
	e.held = nil
}

// SetLine replaces the editor's content with s, placing the cursor at
// the end. This mirrors the original's tl_setline, used to pre-seed the
// buffer before a ReadLine call (spec §5 supplemental feature #2).
func (e *Editor) SetLine(s string) error {
	cs, err := FromString(s)
	if err != nil {
		return err
	}
	e.Clear()
	cs.CloneInto(e.line)
	cs.Clear() // release the temporary: CloneInto copies, it doesn't transfer ownership
	e.pos = e.line.length
	e.syncHeld()
	return nil
}

// ToOutput serializes the current line into a null-terminated buffer
// bounded by the editor's output capacity.
func (e *Editor) ToOutput() ([]byte, error) {
	return e.line.ToBytes(e.outCap)
}
