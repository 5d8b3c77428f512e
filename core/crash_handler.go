package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	restoreMu   sync.Mutex
	restoreHook func()
	sessionID   string
)

// SetCrashRestore registers the function run before the crash report is printed,
// typically the active frontend's screen teardown
func SetCrashRestore(fn func()) {
	restoreMu.Lock()
	restoreHook = fn
	restoreMu.Unlock()
}

// SetCrashSession tags crash reports with the run's session id
func SetCrashSession(id string) {
	restoreMu.Lock()
	sessionID = id
	restoreMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreMu.Lock()
	hook, id := restoreHook, sessionID
	restoreMu.Unlock()

	if hook != nil {
		hook()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	if id != "" {
		fmt.Fprintf(os.Stderr, "Session: %s\r\n", id)
	}
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure display cleanup on crash.
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
