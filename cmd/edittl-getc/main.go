// Package main demonstrates single-character reads with GetC: each call
// returns one printable character, or reports which control key or
// escape sequence was pressed instead.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/dshills/edittl/edit"
	"golang.org/x/term"
)

const charBufSize = 8

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("edittl-getc requires an interactive terminal")
	}

	if err := edit.Init(); err != nil {
		log.Fatalf("failed to enter raw mode: %v", err)
	}
	defer edit.Exit()

	fmt.Println("Welcome to the edittl GetC demo.")

	buf := make([]byte, charBufSize)
	code := edit.Code(-1)

	for i := 0; code <= 0; i++ {
		for j := range buf {
			buf[j] = 0
		}
		code = edit.GetC(buf, "> ")

		switch code {
		case edit.CodePressedControlSequence:
			fmt.Println()
			fmt.Printf("received control sequence %v\n", edit.LastControl().Key)
		case edit.CodeSuccess:
			fmt.Printf("received character: %q\n", string(bytes.TrimRight(buf, "\x00")))
		}

		if i >= 19 {
			fmt.Println("read 20 characters, exiting!")
			break
		}
	}

	switch code {
	case edit.CodePressedInterrupt:
		fmt.Println("\nInterrupted.")
	case edit.CodeSuccess, edit.CodePressedControlSequence:
	default:
		fmt.Println("\nan error occurred.")
	}
}
