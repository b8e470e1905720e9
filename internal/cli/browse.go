package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/pkg/drawer"
	"github.com/matzehuels/roadmap/pkg/observability"
	"github.com/matzehuels/roadmap/pkg/pipeline"
	"github.com/matzehuels/roadmap/pkg/roadmap"
	"github.com/matzehuels/roadmap/pkg/selection"
)

const drawerPaneWidth = 48

var (
	listDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	listHeadStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	drawerStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(drawerPaneWidth)
)

// browseCommand creates the browse command, a terminal roadmap viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var selected string

	cmd := &cobra.Command{
		Use:   "browse [document|builtin:name]",
		Short: "Browse a roadmap in the terminal",
		Long: `Browse a roadmap in the terminal.

Move through the nodes with the arrow keys, press enter to open the detail
drawer for a node and esc to close it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := pipeline.Load(pipeline.Options{Source: args[0], Logger: c.Logger})
			if err != nil {
				return err
			}
			m := NewBrowseModel(cmd.Context(), g)
			if selected != "" {
				m.SelectID(selected)
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&selected, "selected", "", "node id to open on start")
	return cmd
}

// =============================================================================
// BrowseModel - Interactive roadmap viewer
// =============================================================================

// BrowseModel is the bubbletea model for the roadmap viewer. The drawer
// pane always shows drawer.Resolve of the machine's state.
type BrowseModel struct {
	Graph   *roadmap.Graph
	Nodes   []*roadmap.Node
	Machine *selection.Machine
	Cursor  int
	Offset  int
	Height  int
}

// NewBrowseModel creates a viewer for g. Selection events are reported to
// the registered observability.SelectionHooks under ctx.
func NewBrowseModel(ctx context.Context, g *roadmap.Graph) *BrowseModel {
	m := &BrowseModel{
		Graph:   g,
		Nodes:   g.Nodes(),
		Machine: selection.New(),
		Height:  15,
	}
	m.Machine.OnNodeActivated(func(id string) {
		_, found := g.Node(id)
		observability.Selection().OnSelect(ctx, id, found)
	})
	m.Machine.OnDrawerDismissed(func() {
		observability.Selection().OnClear(ctx)
	})
	return m
}

// SelectID activates id and moves the cursor onto it when it exists.
func (m *BrowseModel) SelectID(id string) {
	for i, n := range m.Nodes {
		if n.ID == id {
			m.Cursor = i
			m.scroll()
			break
		}
	}
	m.Machine.Select(id)
}

// Drawer returns the drawer currently shown.
func (m *BrowseModel) Drawer() drawer.View {
	return drawer.Resolve(m.Graph, m.Machine.State())
}

func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.Machine.Clear()
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.scroll()
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				m.scroll()
			}
		case "enter", " ":
			if len(m.Nodes) > 0 {
				m.Machine.Select(m.Nodes[m.Cursor].ID)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.scroll()
	}
	return m, nil
}

func (m *BrowseModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m *BrowseModel) View() string {
	var b strings.Builder

	title := m.Graph.Meta().Title
	if title == "" {
		title = "Roadmap"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  esc close  q quit"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", renderDrawerPane(m.Drawer())))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.Nodes), m.Machine.State())))
	return b.String()
}

func (m *BrowseModel) listView() string {
	end := min(m.Offset+m.Height, len(m.Nodes))
	activeID, _ := m.Machine.State().Active()

	var rows [][]string
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := ""
		if n.ID == activeID {
			mark = "●"
		}
		rows = append(rows, []string{cursor, mark, n.DisplayTitle(), n.Kind.String(), n.Label})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(listDimStyle).
		Headers("", "", "Topic", "Kind", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeadStyle
			}
			idx := m.Offset + row
			base := lipgloss.NewStyle()
			if idx < len(m.Nodes) && m.Nodes[idx].ID == activeID {
				base = base.Foreground(colorGreen)
			}
			if idx == m.Cursor {
				return base.Bold(true).Foreground(colorCyan)
			}
			if col == 3 || col == 4 {
				return base.Foreground(colorDim)
			}
			return base
		}).
		Render()
}

// renderDrawerPane draws a drawer view as a bordered terminal pane.
func renderDrawerPane(v drawer.View) string {
	if !v.Available {
		return drawerStyle.Render(listDimStyle.Render(v.Placeholder))
	}

	var b strings.Builder
	if v.Category != "" {
		b.WriteString(listDimStyle.Render(strings.ToUpper(v.Category)))
		b.WriteString("\n")
	}
	b.WriteString(StyleTitle.Render(v.Title))
	b.WriteString("\n")
	if v.Description != "" {
		b.WriteString("\n")
		b.WriteString(v.Description)
		b.WriteString("\n")
	}
	if len(v.Resources) > 0 {
		b.WriteString("\n")
		b.WriteString(listHeadStyle.Render(drawer.Heading))
		b.WriteString("\n")
		for _, r := range v.Resources {
			line := r.Icon.Glyph() + " " + r.Title
			if r.Placeholder {
				b.WriteString(listDimStyle.Render(line))
			} else {
				b.WriteString(line + "\n  " + StyleLink.Render(r.URL))
			}
			if r.Caption != "" {
				b.WriteString(listDimStyle.Render("  " + r.Caption))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(StyleHighlight.Render("[ " + drawer.CTA + " ]"))
	return drawerStyle.Render(b.String())
}
