package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"browser-shell/internal/theme"
)

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.previewed, m.store.Palette())

	leftWidth := m.width / 3
	if leftWidth < 28 {
		leftWidth = 28
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	border := borderColor(m.previewed)

	left := lipgloss.NewStyle().
		Width(leftWidth).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1).
		Render(m.renderThemeList(styles, leftWidth))

	right := lipgloss.NewStyle().
		Width(rightWidth).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1).
		Render(m.renderPreview(styles, rightWidth))

	var b strings.Builder
	b.WriteString(styles.TUITitle.Render("Themes"))
	b.WriteString("\n")
	b.WriteString(styles.TUISubtitle.Render(fmt.Sprintf("Current: %s", m.store.Current().Name())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(styles.Info.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(styles.TUIHelp.Render(m.keys.helpLine()))
	return b.String()
}

func (m PickerModel) renderThemeList(styles *theme.Styles, width int) string {
	var b strings.Builder

	b.WriteString(styles.Accent.Render("Available Themes"))
	b.WriteString("\n\n")

	current := m.store.Current().Name()
	for i, name := range m.names {
		prefix := "  "
		if i == m.selectedIndex {
			prefix = "▶ "
		}

		line := prefix + name
		if name == current {
			line += " ✓"
		}

		if i == m.selectedIndex {
			line = styles.Selected.Width(width - 4).Render(line)
		} else {
			line = styles.Muted.Width(width - 4).Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderPreview draws a miniature browser window in the previewed theme.
func (m PickerModel) renderPreview(styles *theme.Styles, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(styles.Accent.Render("Preview"))
	b.WriteString("\n\n")

	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ActiveTab.Render(m.previewed.Name()),
		styles.InactiveTab.Render("New Tab"),
	)
	b.WriteString(styles.Frame.Width(inner).Render(tabs))
	b.WriteString("\n")

	omnibox := styles.Omnibox.Width(inner - 6).Render("aboutbrowser://newtab")
	b.WriteString(styles.Toolbar.Width(inner).Render(" ← " + omnibox))
	b.WriteString("\n")

	b.WriteString(styles.Bookmark.Width(inner).Render(" " + m.bookmarkBar(inner-2)))
	b.WriteString("\n")

	ntp := styles.NTP.Width(inner).Padding(1, 1).Render(
		"New Tab\n" + styles.NTPLink.Render("Customize this page"),
	)
	b.WriteString(ntp)
	b.WriteString("\n\n")

	b.WriteString(m.renderSwatches(styles))
	return b.String()
}

func (m PickerModel) bookmarkBar(width int) string {
	if len(m.bookmarks) == 0 {
		return "No bookmarks"
	}

	bar := strings.Join(m.bookmarks, "  ")
	if lipgloss.Width(bar) > width && width > 1 {
		runes := []rune(bar)
		if len(runes) > width-1 {
			runes = runes[:width-1]
		}
		bar = string(runes) + "…"
	}
	return bar
}

func (m PickerModel) renderSwatches(styles *theme.Styles) string {
	roles := []string{
		theme.RoleFrame,
		theme.RoleToolbar,
		theme.RoleTabText,
		theme.RoleNTPBackground,
	}
	if m.previewed.IsExtended() {
		roles = append(roles, theme.RoleAccent)
	}

	var b strings.Builder
	for _, role := range roles {
		col, ok := m.previewed.Color(role)
		if !ok {
			continue
		}
		b.WriteString(theme.Swatch(col))
		b.WriteString(" ")
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%-20s %s", role, col.Hex())))
		b.WriteString("\n")
	}
	return b.String()
}

func borderColor(t *theme.Theme) lipgloss.Color {
	col, _ := t.Color(theme.RoleToolbar)
	return lipgloss.Color(col.Hex())
}
