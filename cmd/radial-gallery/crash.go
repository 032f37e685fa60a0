package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
)

// watchScreen registers the screen restored by handleCrash
func watchScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// handleCrash restores the terminal and prints the stack trace before exiting
func handleCrash(r any) {
	if r == nil {
		return
	}
	crashMu.Lock()
	if crashScreen != nil {
		crashScreen.Fini()
		crashScreen = nil
	}
	crashMu.Unlock()

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mRADIAL-GALLERY CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}

// goSafe runs fn in a goroutine whose panic still restores the terminal
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
