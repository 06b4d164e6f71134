package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// PickConfig asks the user to choose one of the found configurations.
// The active one is preselected. With fewer than two candidates, or when
// prompting is disabled, the first candidate is returned without asking.
func PickConfig(root string, found []string) (string, error) {
	if len(found) == 0 {
		return "", fmt.Errorf("no configuration to pick from")
	}
	if len(found) == 1 || !IsInteractive() {
		return found[0], nil
	}

	choice := found[0]
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which configuration?").
				Options(pickOptions(root, found)...).
				Value(&choice),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return choice, nil
}

func pickOptions(root string, found []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(found))
	for i, path := range found {
		label := relativeTo(root, path)
		if i == 0 {
			label += " (active)"
		}
		opts = append(opts, huh.NewOption(label, path))
	}
	return opts
}
