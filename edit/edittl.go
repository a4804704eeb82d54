package edit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Code is the library's return-code type, mirroring the original's
// integer sentinels while satisfying the error interface so callers can
// use it directly in an if err != nil check when only failure matters.
type Code int

const (
	// CodeSuccess indicates ReadLine filled buf with a complete,
	// null-terminated line, or GetC copied one character's bytes to the
	// start of buf (GetC writes no terminator).
	CodeSuccess Code = 0
	// CodePressedEnter is returned by GetC when Enter completed the line.
	CodePressedEnter Code = -1
	// CodePressedInterrupt is returned when Ctrl+C was read mid-line.
	CodePressedInterrupt Code = -2
	// CodePressedControlSequence is returned when an unrecognized escape
	// or control sequence was consumed without modifying the line.
	CodePressedControlSequence Code = -3
	// CodeError is a generic I/O or encoding failure.
	CodeError Code = 1
	// CodeErrorSize indicates the caller's output buffer is too small for
	// the current line content.
	CodeErrorSize Code = 2
	// CodeErrorAlloc indicates an allocation failure (Go's allocator
	// never fails this way in practice; retained for parity with the
	// return-code contract of §6).
	CodeErrorAlloc Code = 3
	// CodeEOF is returned when the backend's read reported io.EOF before
	// Enter was pressed. Ctrl+D in raw mode arrives as byte 4 and is
	// reported as CodePressedControlSequence, not CodeEOF. This
	// supplements spec.md's return-code table per §5 supplemental
	// feature #4: the original's example.c checks for this case under
	// TL_PRESSED_EOF even though toiletline.h does not define it.
	CodeEOF Code = -4
)

// Error satisfies the error interface so a non-success Code can be
// returned and checked like any other Go error.
func (c Code) Error() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodePressedEnter:
		return "pressed enter"
	case CodePressedInterrupt:
		return "pressed interrupt"
	case CodePressedControlSequence:
		return "pressed control sequence"
	case CodeError:
		return "generic error"
	case CodeErrorSize:
		return "buffer too small"
	case CodeErrorAlloc:
		return "allocation failed"
	case CodeEOF:
		return "end of input"
	default:
		return fmt.Sprintf("edit: unknown code %d", int(c))
	}
}

// state holds the process-wide singleton the public API operates on,
// matching the original's global line buffer / history / backend triple
// (spec §5: "global mutable state permitted, not reentrant"). A second
// Init before Exit returns an error rather than silently discarding the
// first session's backend.
type state struct {
	backend     Backend
	parser      *Parser
	render      *Renderer
	hist        *History
	active      bool
	preset      string
	lastControl KeyEvent
	sigCh       chan os.Signal
	sigDone     chan struct{}
}

var global state

// Init enters raw mode and prepares the process-wide editor state.
// Calling Init twice without an intervening Exit returns an error.
func Init() error {
	if global.active {
		return fmt.Errorf("edit: already initialized")
	}

	b := newBackend()
	if err := b.Init(); err != nil {
		return fmt.Errorf("edit: init failed: %w", err)
	}

	_, cols, err := b.Size()
	if err != nil {
		cols = 0 // unknown size: Renderer treats <=0 as unbounded (spec §7)
	}

	sigCh := make(chan os.Signal, 1)
	sigDone := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGINT)

	global = state{
		backend: b,
		parser:  NewParser(b),
		render:  NewRenderer(cols),
		hist:    NewHistory(0, 0),
		active:  true,
		sigCh:   sigCh,
		sigDone: sigDone,
	}

	// A SIGINT reaching the process outside the normal read loop (e.g.
	// sent by another process, or delivered before the first ReadByte)
	// is the one path that both restores the terminal and terminates the
	// process (spec §7 last line); in-call Ctrl-C instead arrives as
	// byte 3 and yields CodePressedInterrupt without exiting (spec §4.D).
	go func() {
		select {
		case <-sigCh:
			_ = global.backend.Restore()
			fmt.Fprintln(os.Stdout, "\nInterrupted.")
			os.Exit(0)
		case <-sigDone:
		}
	}()

	debugf("init: cols=%d", cols)
	return nil
}

// Exit restores the terminal to its pre-Init state. Safe to call even
// if Init was never called or already failed.
func Exit() error {
	if !global.active {
		return nil
	}
	signal.Stop(global.sigCh)
	close(global.sigDone)
	err := global.backend.Restore()
	global.active = false
	debugf("exit: alloc count=%d", AllocCount())
	assertAllocBalance()
	if err != nil {
		return fmt.Errorf("edit: exit failed: %w", err)
	}
	return nil
}

// GlobalHistory returns the process-wide history store so callers can
// Load or Dump it around a sequence of ReadLine calls.
func GlobalHistory() *History { return global.hist }

// SetLine pre-seeds the content the next ReadLine call starts from, with
// the cursor placed at its end. This mirrors the original's tl_setline,
// consumed once and then cleared (spec §5 supplemental feature #2).
func SetLine(s string) {
	global.preset = s
}

// ReadLine reads one line of input into buf, echoing and editing it
// interactively until Enter or Ctrl+C is pressed, an unrecognized control
// key or escape sequence (Ctrl+D among them) is read, or input ends. The prompt is
// displayed each time the line is redrawn. completions may be nil; a
// non-nil root is consulted on Tab using the word at the cursor as the
// lookup key (spec §5 supplemental feature #1).
func ReadLine(buf []byte, prompt string, completions *CompletionNode) Code {
	if !global.active {
		return CodeError
	}

	ed := NewEditor(len(buf), prompt, global.hist)
	defer ed.Clear() // release the line buffer's nodes on every return path (spec §4.H)
	if global.preset != "" {
		_ = ed.SetLine(global.preset)
		global.preset = ""
	}
	global.render.SetCols(currentCols())

	for {
		draw(ed)

		first, err := global.backend.ReadByte()
		if err != nil {
			return eofOrError(err)
		}

		ev, err := global.parser.Next(first)
		if err != nil {
			return eofOrError(err)
		}

		switch ev.Key {
		case KeyEnter:
			out, err := ed.ToOutput()
			if err != nil {
				return CodeErrorSize
			}
			copy(buf, out)
			_ = global.hist.Append(ed.Line().String())
			return CodeSuccess

		case KeyInterrupt:
			return CodePressedInterrupt

		case KeyChar:
			ch, err := ParseChar(first, global.backend)
			if err != nil {
				return CodeError
			}
			if !ed.Put(ch) {
				continue
			}

		case KeyBackspace:
			n := 1
			if ev.Modifiers.Has(ModCtrl) {
				n = ed.WordLeft()
			}
			if err := ed.Erase(n, backward); err != nil {
				continue
			}

		case KeyDelete:
			n := 1
			if ev.Modifiers.Has(ModCtrl) {
				n = ed.WordRight()
			}
			if err := ed.Erase(n, forward); err != nil {
				continue
			}

		case KeyLeft:
			if ev.Modifiers.Has(ModCtrl) {
				ed.MoveLeft(ed.WordLeft())
			} else {
				ed.MoveLeft(1)
			}

		case KeyRight:
			if ev.Modifiers.Has(ModCtrl) {
				ed.MoveRight(ed.WordRight())
			} else {
				ed.MoveRight(1)
			}

		case KeyHome:
			ed.MoveLeft(ed.Pos())

		case KeyEnd:
			ed.MoveRight(ed.Line().Length() - ed.Pos())

		case KeyUp:
			ed.HistoryUp()

		case KeyDown:
			ed.HistoryDown()

		case KeyTab:
			applyCompletion(ed, completions)

		default:
			global.lastControl = ev
			return CodePressedControlSequence
		}
	}
}

// LastControl returns the KeyEvent that produced the most recent
// CodePressedControlSequence result, mirroring the original's
// tl_last_control (spec §5 supplemental feature — example_getc.c reads
// this to report which control sequence it received).
func LastControl() KeyEvent { return global.lastControl }

// GetC reads a single character (or control key) without line editing,
// returning CodeSuccess with buf[0:n] filled for a printable character,
// or the Code describing the non-character key that was read.
func GetC(buf []byte, prompt string) Code {
	if !global.active {
		return CodeError
	}

	p := NewEditor(len(buf), prompt, nil)
	defer p.Clear() // release the line buffer's nodes on every return path (spec §4.H)
	global.render.SetCols(currentCols())
	draw(p)

	first, err := global.backend.ReadByte()
	if err != nil {
		return eofOrError(err)
	}

	ev, err := global.parser.Next(first)
	if err != nil {
		return eofOrError(err)
	}

	switch ev.Key {
	case KeyEnter:
		return CodePressedEnter
	case KeyInterrupt:
		return CodePressedInterrupt
	case KeyChar:
		ch, err := ParseChar(first, global.backend)
		if err != nil {
			return CodeError
		}
		n := copy(buf, ch.Bytes[:ch.Size])
		if n < int(ch.Size) {
			return CodeErrorSize
		}
		return CodeSuccess
	default:
		global.lastControl = ev
		return CodePressedControlSequence
	}
}

// currentCols re-queries the backend's width so a mid-session terminal
// resize is picked up on the next ReadLine/GetC call.
func currentCols() int {
	_, cols, err := global.backend.Size()
	if err != nil {
		return 0
	}
	return cols
}

func draw(ed *Editor) {
	out := global.render.Render(ed)
	_, _ = os.Stdout.Write(out)
}

// eofOrError maps a backend read error to CodeEOF when it is io.EOF,
// and CodeError otherwise (spec §5 supplemental feature #4).
func eofOrError(err error) Code {
	if errors.Is(err, io.EOF) {
		return CodeEOF
	}
	return CodeError
}

// applyCompletion replaces the word immediately before the cursor with
// the sole match for it under root's children, if exactly one exists.
// Ambiguous or absent matches leave the line unchanged (Tab is a no-op),
// matching the original's single-candidate completion behavior.
func applyCompletion(ed *Editor, root *CompletionNode) {
	if root == nil {
		return
	}

	wordLen := ed.WordLeft()
	start := ed.Pos() - wordLen
	word := ed.Line().String()[byteOffsetForChar(ed, start):byteOffsetForChar(ed, ed.Pos())]

	matches := root.Matches(word)
	if len(matches) != 1 {
		return
	}

	for _, r := range matches[0][len(word):] {
		b := []byte(string(r))
		c, err := ParseChar(b[0], &byteSliceReader{b: b[1:]})
		if err != nil {
			return
		}
		if !ed.Put(c) {
			return
		}
	}
}

// byteOffsetForChar converts a character index into the byte offset
// within ed.Line().String(), since CString nodes may each be up to 4
// bytes wide.
func byteOffsetForChar(ed *Editor, charIdx int) int {
	n := ed.Line().begin
	off := 0
	for i := 0; i < charIdx && n != nil; i++ {
		off += int(n.c.Size)
		n = n.next
	}
	return off
}

// byteSliceReader adapts a fixed byte slice to ByteReader, used to feed
// ParseChar the remaining bytes of a rune already split by range.
type byteSliceReader struct {
	b []byte
	i int
}

func (r *byteSliceReader) ReadByte() (byte, error) {
	if r.i >= len(r.b) {
		return 0, io.EOF
	}
	c := r.b[r.i]
	r.i++
	return c, nil
}
