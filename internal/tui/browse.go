package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offspring.dev/offspring/internal/engine"
)

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Top, k.Bottom},
		{k.Toggle, k.Quit},
	}
}

var defaultBrowseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "root"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "offspring"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}

type browseStyles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	name     lipgloss.Style
	dim      lipgloss.Style
}

func newBrowseStyles() browseStyles {
	return browseStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		name:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// browseModel is the bubbletea model for exploring a family tree
type browseModel struct {
	nodes    []*engine.Node // breadth-first order
	cursor   int
	expanded bool
	styles   browseStyles
	keys     browseKeyMap
	help     help.Model
}

func newBrowseModel(root *engine.Node) browseModel {
	var nodes []*engine.Node
	for node := range engine.BreadthFirst(root) {
		nodes = append(nodes, node)
	}
	return browseModel{
		nodes:  nodes,
		styles: newBrowseStyles(),
		keys:   defaultBrowseKeys,
		help:   help.New(),
	}
}

// NewBrowseModel creates a tea.Model that browses the tree below root
func NewBrowseModel(root *engine.Node) tea.Model {
	return newBrowseModel(root)
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0

		case key.Matches(msg, m.keys.Bottom):
			if len(m.nodes) > 0 {
				m.cursor = len(m.nodes) - 1
			}

		case key.Matches(msg, m.keys.Toggle):
			m.expanded = !m.expanded
		}
	}

	return m, nil
}

// Selected returns the node under the cursor, nil for an empty tree
func (m browseModel) Selected() *engine.Node {
	if len(m.nodes) == 0 {
		return nil
	}
	return m.nodes[m.cursor]
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Family Tree"))
	b.WriteString("\n")

	if len(m.nodes) == 0 {
		b.WriteString(m.styles.dim.Render("Tree is empty."))
		b.WriteString("\n")
		return b.String()
	}

	for i, node := range m.nodes {
		cursor := "  "
		style := m.styles.name
		if i == m.cursor {
			cursor = m.styles.cursor.Render("▸ ")
			style = m.styles.selected
		}
		generation := m.styles.dim.Render(fmt.Sprintf("(generation %d)", node.Depth()))
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, style.Render(node.Name()), generation))
	}

	selected := m.Selected()
	size, _ := engine.Size(selected, "")
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render(fmt.Sprintf("%s: height %d, %d below", selected.Name(), selected.Depth(), size)))
	b.WriteString("\n")

	if m.expanded {
		lines, _ := engine.Report(selected, "")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// RunBrowseTUI runs the tree browser until the user quits
func RunBrowseTUI(root *engine.Node, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newBrowseModel(root), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
