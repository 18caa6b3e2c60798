// Package run executes monkey source files, with an optional watch mode
// that re-runs a file whenever it changes on disk.
package run

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/monkey/object"
	"github.com/akashmaji946/monkey/repl"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
)

var redColor = color.New(color.FgRed)

// File reads path and renders it in mode to w. Parse and evaluation
// errors are printed to w and do not make File return an error; a non-nil
// error means the file could not be read or rendering panicked, so the
// caller can choose a process exit code for those faults.
func File(w io.Writer, path string, mode repl.Mode) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[runtime error] %v\n", recovered)
			err = fmt.Errorf("panic while running %s: %v", path, recovered)
		}
	}()

	source, readErr := os.ReadFile(path)
	if readErr != nil {
		return fmt.Errorf("could not read %s: %w", path, readErr)
	}

	env := object.NewEnvironment()
	repl.Render(w, string(source), mode, env)
	return nil
}

// Watch runs path once, then re-runs it every time the underlying file is
// written to, until the process is interrupted. Each run gets a fresh
// environment so stale bindings from a previous version of the file never
// leak into the next.
func Watch(w io.Writer, path string, mode repl.Mode) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not start file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("could not watch %s: %w", path, err)
	}

	fmt.Fprintf(w, "watching %s for changes, ctrl-c to stop\n", path)
	if err := File(w, path, mode); err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(w, "\n--- %s changed, re-running ---\n", path)
			if err := File(w, path, mode); err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "watch error: %v\n", werr)
		}
	}
}
