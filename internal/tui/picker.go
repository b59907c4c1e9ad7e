package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"browser-shell/internal/theme"
)

// PickerModel lists every known theme with a live preview and applies the
// chosen one through the controller.
type PickerModel struct {
	ctx       context.Context
	store     ThemeStore
	keys      keyMap
	bookmarks []string

	names         []string
	selectedIndex int
	previewed     *theme.Theme

	width    int
	height   int
	status   string
	err      error
	quitting bool
	applied  string
}

// NewPickerModel starts with the cursor on the current theme. bookmarks are
// titles shown in the preview's bookmark bar.
func NewPickerModel(ctx context.Context, store ThemeStore, bookmarks []string) PickerModel {
	m := PickerModel{
		ctx:       ctx,
		store:     store,
		keys:      defaultKeyMap(),
		bookmarks: bookmarks,
		width:     100,
		height:    30,
	}
	m.refresh(store.Current().Name())
	return m
}

// Applied is the name of the theme confirmed with enter, or "".
func (m PickerModel) Applied() string {
	return m.applied
}

func (m PickerModel) Selected() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.selectedIndex]
}

func (m *PickerModel) refresh(focus string) {
	m.names = m.store.ThemeNames()
	m.selectedIndex = 0
	for i, n := range m.names {
		if n == focus {
			m.selectedIndex = i
			break
		}
	}
	m.previewed = m.store.FindByName(m.Selected())
}

func (m *PickerModel) move(delta int) {
	next := m.selectedIndex + delta
	if next < 0 || next >= len(m.names) {
		return
	}
	m.selectedIndex = next
	m.previewed = m.store.FindByName(m.names[next])
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		m.status = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil

		case key.Matches(msg, m.keys.Apply):
			if err := m.store.SetCurrentTheme(m.ctx, m.previewed); err != nil {
				m.err = err
				return m, nil
			}
			m.applied = m.previewed.Name()
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Remove):
			if m.previewed == m.store.Default() {
				m.status = "The default theme cannot be removed"
				return m, nil
			}
			name := m.previewed.Name()
			if err := m.store.RemoveTheme(m.ctx, m.previewed); err != nil {
				m.err = err
				return m, nil
			}
			m.status = fmt.Sprintf("Removed %q", name)
			m.refresh(m.store.Current().Name())
			return m, nil
		}
	}

	return m, nil
}
