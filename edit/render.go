package edit

import (
	"bytes"
	"fmt"
)

// Renderer emits the minimal escape-sequence output needed to redraw an
// Editor's line after each keystroke, handling soft wrap when prompt +
// content exceeds the terminal width.
//
// Renderer is not safe for concurrent use; it keeps the wrap-row count
// from the previous render so the next one can move the cursor back up
// before redrawing (spec §4.F step 2).
type Renderer struct {
	cols       int
	prevWrapRows int
}

// NewRenderer returns a Renderer targeting a terminal cols columns wide.
// A cols of 0 or less is treated as unbounded (spec §7: unknown
// terminal size is treated as a single extremely wide column, so no
// wrapping is performed).
func NewRenderer(cols int) *Renderer {
	return &Renderer{cols: cols}
}

// SetCols updates the terminal width used for subsequent renders.
func (r *Renderer) SetCols(cols int) { r.cols = cols }

// Render produces the byte sequence that redraws e's current state.
// The emitted bytes depend on (cols, prompt, line content, cursor
// position) and on prevWrapRows, the wrap-row count left by the previous
// render. Calling Render twice in a row with unchanged e and terminal
// width therefore yields byte-identical output (spec §8 render
// idempotence) whenever the first call starts with the wrap-row count it
// leaves behind: always when the line does not wrap, and for every call
// after the first one from a given wrapped state.
func (r *Renderer) Render(e *Editor) []byte {
	var out bytes.Buffer

	out.WriteString("\x1b[?25l")

	if r.prevWrapRows > 0 {
		fmt.Fprintf(&out, "\x1b[%dF", r.prevWrapRows)
	}

	out.WriteString("\r")
	out.WriteString("\x1b[0K")
	out.WriteString(e.prompt)

	promptLen := UTF8StrLen(e.prompt)
	cols := r.cols
	if cols <= 0 {
		cols = 1 << 30
	}

	wrapped, wrapRows, cursorRowOffset := wrapLine(e.line, e.pos, promptLen, cols)
	out.Write(wrapped)

	debugf("len: %d cols: %d wrapRows: %d cursorRowOffset: %d", e.line.Length(), cols, wrapRows, cursorRowOffset)

	col := e.pos + promptLen - wrapRows*cols + 1 + cursorRowOffset
	fmt.Fprintf(&out, "\x1b[%dG", col)

	out.WriteString("\x1b[?25h")

	r.prevWrapRows = wrapRows
	return out.Bytes()
}

// wrapLine serializes s, inserting "\r\n" once the running column count
// (prompt width + characters emitted so far) reaches cols-2 — the -2
// margin absorbs ambiguous double-width characters (spec §4.F step 5).
// It returns the serialized bytes, the number of wrap rows the cursor
// needs to be moved up from (used by the caller to reposition after a
// previous wrapped render), and the number of bytes of "\r\n" pairs
// injected at or before the cursor position (wrapOffset, two per pair,
// used to compute the final cursor column).
func wrapLine(s *CString, cursorPos, promptLen, cols int) (out []byte, wrapRows, wrapOffset int) {
	if cols <= 0 {
		cols = 1
	}

	col := promptLen
	i := 0
	for n := s.begin; n != nil; n = n.next {
		out = append(out, n.c.Bytes[:n.c.Size]...)
		col++
		i++

		if col >= cols-2 {
			out = append(out, '\r', '\n')
			col = 0
			wrapRows++
			if i <= cursorPos {
				wrapOffset += 2
			}
		}
	}

	return out, wrapRows, wrapOffset
}
