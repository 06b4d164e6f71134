package ui

import "testing"

func TestSwitchesOverrideTerminal(t *testing.T) {
	t.Cleanup(func() {
		SetNonInteractive(false)
		SetNoColor(false)
	})

	SetNonInteractive(true)
	if IsInteractive() {
		t.Error("IsInteractive() = true after SetNonInteractive(true)")
	}

	SetNoColor(true)
	if ColorEnabled() {
		t.Error("ColorEnabled() = true after SetNoColor(true)")
	}
}

func TestRenderWithoutTerminal(t *testing.T) {
	// go test pipes stdout, so nothing is styled even with color allowed.
	SetNoColor(false)
	if ColorEnabled() {
		t.Skip("stdout is a terminal")
	}
	if got := render(ErrorStyle, "x"); got != "x" {
		t.Errorf("render() = %q, want unstyled text", got)
	}
}
