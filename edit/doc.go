// Package edit provides a self-contained, UTF-8 aware line editor for
// interactive terminal input — a minimal replacement for GNU Readline.
//
// It puts the terminal into raw mode, assembles raw bytes into normalized
// keystroke events, maintains an editable UTF-8 string with cursor
// semantics, and renders the edited line back to the terminal with
// minimal escape-sequence output, including soft-wrap handling.
//
// # Basic usage
//
//	if err := edit.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer edit.Exit()
//
//	buf := make([]byte, 1024)
//	code := edit.ReadLine(buf, "$ ", nil)
//	switch code {
//	case edit.CodeSuccess:
//	    fmt.Println(string(buf[:bytes.IndexByte(buf, 0)]))
//	case edit.CodePressedInterrupt:
//	    fmt.Println("interrupted")
//	}
//
// # Scope
//
// This package edits a single logical line. It does not handle
// multi-line input, syntax highlighting, bracketed paste, IME
// composition, grapheme clusters, bidirectional text, history search,
// right-prompts, or mouse input. Double-width (CJK) characters are
// measured as a single column; the cursor can drift on such input.
//
// # Concurrency
//
// Package-level state (history, the line pre-seeded by SetLine, the last
// control event, and the allocation counter) is process-wide. Editor
// functions are not safe to call concurrently; the library runs
// single-threaded, cooperatively blocking in the byte reader between
// events.
package edit
