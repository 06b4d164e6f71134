package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvandessel/liftconf/internal/config"
)

// LoadFunc loads the configuration file at path.
type LoadFunc func(path string) (*config.Record, error)

type browserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

var browserKeys = browserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("pgup", "pgdown"),
		key.WithHelp("pgup/pgdown", "scroll"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k browserKeyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Up, k.Down, k.Scroll, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

type candidateItem struct {
	title, desc string
	path        string
}

func (i candidateItem) Title() string       { return i.title }
func (i candidateItem) Description() string { return i.desc }
func (i candidateItem) FilterValue() string { return i.title }

// Browser lists the configurations found under a project root and shows
// the parsed contents of the highlighted one.
type Browser struct {
	root     string
	list     list.Model
	detail   viewport.Model
	load     LoadFunc
	selected int
	width    int
	height   int
}

// NewBrowser creates a browser over found, which must be in priority order.
func NewBrowser(root string, found []string, load LoadFunc) Browser {
	items := make([]list.Item, 0, len(found))
	for i, path := range found {
		desc := "active"
		if i > 0 {
			desc = "shadowed by " + relativeTo(root, found[0])
		}
		items = append(items, candidateItem{
			title: relativeTo(root, path),
			desc:  desc,
			path:  path,
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Lift configurations in " + root
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	b := Browser{
		root:     root,
		list:     l,
		detail:   viewport.New(0, 0),
		load:     load,
		selected: -1,
	}
	b.resize(80, 24)
	b.refreshDetail()
	return b
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			return b, tea.Quit
		case key.Matches(msg, browserKeys.Scroll):
			var cmd tea.Cmd
			b.detail, cmd = b.detail.Update(msg)
			return b, cmd
		}
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	b.refreshDetail()
	return b, cmd
}

func (b Browser) View() string {
	if len(b.list.Items()) == 0 {
		return BoxStyle.Render(fmt.Sprintf("No Lift configuration found in %s\n\n%s",
			b.root, SubtleStyle.Render("q to quit")))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		b.list.View(),
		BoxStyle.Render(b.detail.View()),
		SubtleStyle.Render(browserKeys.help()),
	)
}

func (b *Browser) resize(width, height int) {
	b.width, b.height = width, height

	listHeight := min(len(b.list.Items())*3+4, height/2)
	b.list.SetSize(width, listHeight)

	h, v := BoxStyle.GetFrameSize()
	b.detail.Width = max(width-h, 10)
	b.detail.Height = max(height-listHeight-v-1, 3)
}

// refreshDetail re-renders the detail pane when the highlighted item changed.
func (b *Browser) refreshDetail() {
	idx := b.list.Index()
	if idx == b.selected {
		return
	}
	b.selected = idx

	item, ok := b.list.SelectedItem().(candidateItem)
	if !ok {
		b.detail.SetContent("")
		return
	}

	rec, err := b.load(item.path)
	if err != nil {
		b.detail.SetContent(ErrorStyle.Render("Failed to load configuration") + "\n\n" + err.Error())
		return
	}
	b.detail.SetContent(RenderRecord(rec, true))
	b.detail.GotoTop()
}

// Selected returns the path of the highlighted configuration, if any.
func (b Browser) Selected() (string, bool) {
	item, ok := b.list.SelectedItem().(candidateItem)
	return item.path, ok
}

// RunBrowser opens the browser full screen and blocks until it is closed.
func RunBrowser(root string, found []string, load LoadFunc) error {
	_, err := tea.NewProgram(NewBrowser(root, found, load), tea.WithAltScreen()).Run()
	return err
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
