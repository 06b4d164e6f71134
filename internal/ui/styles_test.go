package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPaletteHasBothModes(t *testing.T) {
	for name, c := range map[string]lipgloss.AdaptiveColor{
		"AccentColor":  AccentColor,
		"FailColor":    FailColor,
		"CautionColor": CautionColor,
		"MutedColor":   MutedColor,
	} {
		if c.Light == "" || c.Dark == "" {
			t.Errorf("%s is missing a light or dark variant: %+v", name, c)
		}
	}
}

func TestStylesKeepContent(t *testing.T) {
	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"TitleStyle", TitleStyle},
		{"SubtleStyle", SubtleStyle},
		{"InfoStyle", InfoStyle},
		{"ErrorStyle", ErrorStyle},
		{"WarningStyle", WarningStyle},
		{"BoxStyle", BoxStyle},
		{"KeyStyle", KeyStyle},
		{"AbsentStyle", AbsentStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.style.Render("importantRules")
			if !strings.Contains(out, "importantRules") {
				t.Errorf("%s.Render() lost its content: %q", tt.name, out)
			}
		})
	}
}
