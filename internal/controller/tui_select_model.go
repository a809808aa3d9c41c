package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// selectDelegate renders one finding per row with its checkbox.
type selectDelegate struct{}

func (d selectDelegate) Height() int  { return 1 }
func (d selectDelegate) Spacing() int { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d selectDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	fi, ok := item.(findingItem)
	if !ok {
		return
	}

	box := "[ ]"
	if fi.selected {
		box = "[x]"
	}

	width := lm.Width() - 6 // cursor (2) + box (3) + space (1)
	text := truncateToWidth(fi.label(), width)

	if index == lm.Index() {
		cursor := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		_, _ = fmt.Fprint(w, cursor.Render("> "+box+" "+text))

		return
	}

	boxStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	if fi.selected {
		boxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	}

	_, _ = fmt.Fprintf(w, "  %s %s", boxStyle.Render(box), text)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// selectModel lets the user toggle findings before a change is applied.
type selectModel struct {
	width    int
	height   int
	list     list.Model
	aborted  bool
	finished bool
}

func newSelectModel(items []list.Item) selectModel {
	l := list.New(items, selectDelegate{}, 80, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by path or text…"

	return selectModel{width: 80, height: 24, list: l}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) resize(width, height int) selectModel {
	m.width = width
	m.height = height
	m.list.SetWidth(max(width-4, 10))
	m.list.SetHeight(max(height-6, 3))

	return m
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.finished = true
			return m, tea.Quit
		case " ", "x":
			return m, m.toggle(m.list.GlobalIndex())
		case "a":
			return m, m.toggleAll()
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *selectModel) toggle(index int) tea.Cmd {
	items := m.list.Items()
	if index < 0 || index >= len(items) {
		return nil
	}

	fi, ok := items[index].(findingItem)
	if !ok {
		return nil
	}

	fi.selected = !fi.selected

	return m.list.SetItem(index, fi)
}

// toggleAll selects everything unless everything is already selected.
func (m *selectModel) toggleAll() tea.Cmd {
	items := m.list.Items()
	target := m.countSelected() != len(items)

	for i, it := range items {
		if fi, ok := it.(findingItem); ok {
			fi.selected = target
			items[i] = fi
		}
	}

	return m.list.SetItems(items)
}

func (m selectModel) countSelected() int {
	n := 0

	for _, it := range m.list.Items() {
		if fi, ok := it.(findingItem); ok && fi.selected {
			n++
		}
	}

	return n
}

func (m selectModel) selectedItems() []findingItem {
	var out []findingItem

	for _, it := range m.list.Items() {
		if fi, ok := it.(findingItem); ok && fi.selected {
			out = append(out, fi)
		}
	}

	return out
}

func (m selectModel) View() string {
	if m.finished || m.aborted {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("dbgc: select debug statements")
	counts := countStyle.Render(fmt.Sprintf("%s of %s selected",
		accentStyle.Render(fmt.Sprintf("%d", m.countSelected())),
		accentStyle.Render(fmt.Sprintf("%d", len(m.list.Items()))),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 0, 0, 2).
		Render("space toggle • a all/none • / filter • enter apply • q cancel")

	return lipgloss.JoinVertical(lipgloss.Left, title, counts, m.list.View(), footer)
}
