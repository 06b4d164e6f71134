package ui

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// terminal holds the switches the CLI sets from its flags and environment.
var terminal struct {
	sync.RWMutex
	promptsOff bool
	colorOff   bool
}

// SetNonInteractive disables prompts and the browser even on a terminal.
func SetNonInteractive(off bool) {
	terminal.Lock()
	defer terminal.Unlock()
	terminal.promptsOff = off
}

// SetNoColor disables styling for everything this package prints.
func SetNoColor(off bool) {
	terminal.Lock()
	defer terminal.Unlock()
	terminal.colorOff = off
}

// IsInteractive reports whether liftconf may prompt the user: prompts were
// not disabled and stdin is a terminal.
func IsInteractive() bool {
	terminal.RLock()
	defer terminal.RUnlock()
	return !terminal.promptsOff && isTerminal(os.Stdin)
}

// ColorEnabled reports whether printed output is styled: color was not
// disabled and stdout is a terminal.
func ColorEnabled() bool {
	terminal.RLock()
	defer terminal.RUnlock()
	return !terminal.colorOff && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
