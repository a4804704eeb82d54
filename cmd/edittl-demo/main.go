// Package main demonstrates line editing with history, tab completion,
// and line pre-seeding. Use Up/Down to browse history, Tab to complete
// a word against the sample completion tree, and Ctrl+C or Ctrl+D to
// exit.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/dshills/edittl/edit"
	"golang.org/x/term"
)

const (
	lineBufSize = 1024
	historyFile = "edittl_history.txt"
)

// buildCompletions reproduces the sample completion tree from the
// original toiletline example: first->second->third, what->{other,
// something->else}, and two bare roots.
func buildCompletions() *edit.CompletionNode {
	root := edit.NewCompletionRoot()

	first := edit.Add(root, "first")
	second := edit.Add(first, "second")
	edit.Add(second, "third")

	what := edit.Add(root, "what")
	edit.Add(what, "other")
	something := edit.Add(what, "something")
	edit.Add(something, "else")

	edit.Add(root, "wow")
	edit.Add(root, "привет")

	return root
}

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("edittl-demo requires an interactive terminal")
	}

	if err := edit.Init(); err != nil {
		log.Fatalf("failed to enter raw mode: %v", err)
	}
	defer edit.Exit()

	fmt.Println("Welcome to the edittl demo! Use Up/Down to browse history.")

	completions := buildCompletions()

	hist := edit.GlobalHistory()
	if err := hist.Load(historyFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "could not load history: %v\n", err)
	}

	seeded := []string{"erase me :3c", "leaving soon..."}

	buf := make([]byte, lineBufSize)
	for i := 0; ; i++ {
		if i < len(seeded) {
			edit.SetLine(seeded[i])
		}

		code := edit.ReadLine(buf, "$ ", completions)

		if code == edit.CodePressedInterrupt || code == edit.CodeEOF {
			fmt.Println("\nInterrupted.")
			break
		}
		if code != edit.CodeSuccess {
			fmt.Fprintf(os.Stderr, "\nan error occurred (%v)\n", code)
			break
		}

		line := string(buf[:bytes.IndexByte(buf, 0)])
		fmt.Printf("\nreceived string: %q of length %d\n", line, edit.UTF8StrLen(line))

		if i >= 9 {
			fmt.Println("reached 10 messages, exiting!")
			break
		}
	}

	if err := hist.Dump(historyFile); err != nil {
		fmt.Fprintf(os.Stderr, "could not save history: %v\n", err)
	}
}
