// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores the terminal; satisfied by tcell.Screen
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finisher

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// RegisterTerminal sets the screen finalized before a crash report is printed
// Pass nil once the screen has been finalized normally
func RegisterTerminal(t Finisher) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing to stderr
	if term != nil {
		term.Fini()
	}

	stack := debug.Stack()
	log.Printf("crash: %v\n%s", r, stack)

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", stack)

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
