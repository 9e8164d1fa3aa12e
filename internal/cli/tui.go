package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/galleykit/galley/pkg/plan"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EquipmentListModel - Interactive equipment catalog browser
// =============================================================================

// EquipmentListModel is the bubbletea model for browsing the equipment
// catalog. Space toggles an item's selection; Selected holds the picked
// catalog ids when the program quits via enter.
type EquipmentListModel struct {
	Specs    []plan.EquipmentSpec
	Cursor   int
	Picked   map[string]bool
	Height   int
	Offset   int
	Done     bool
	Selected []string
}

// NewEquipmentListModel creates a new equipment browser model.
func NewEquipmentListModel(specs []plan.EquipmentSpec) EquipmentListModel {
	return EquipmentListModel{
		Specs:  specs,
		Picked: make(map[string]bool),
		Height: 15,
	}
}

func (m EquipmentListModel) Init() tea.Cmd {
	return nil
}

func (m EquipmentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Specs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			id := m.Specs[m.Cursor].ID
			m.Picked[id] = !m.Picked[id]
		case "enter":
			for _, s := range m.Specs {
				if m.Picked[s.ID] {
					m.Selected = append(m.Selected, s.ID)
				}
			}
			m.Done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m EquipmentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Equipment Catalog"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Specs) {
		end = len(m.Specs)
	}

	rows := [][]string{}
	picked := 0
	for _, ok := range m.Picked {
		if ok {
			picked++
		}
	}
	for i := m.Offset; i < end; i++ {
		s := m.Specs[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		mark := " "
		if m.Picked[s.ID] {
			mark = "✓"
		}

		rows = append(rows, []string{
			cursor, mark, s.ID, s.Name, string(s.Category),
			fmt.Sprintf("%.1f × %.1f m", s.Width, s.Depth),
			needsLabel(s),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "ID", "Name", "Zone", "Size", "Needs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Specs) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor
			isPicked := m.Picked[m.Specs[actualIdx].ID]

			if isCurrent {
				if isPicked {
					return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
				}
				return listSelectedStyle
			}
			if isPicked {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			if col == 6 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] · %d selected", m.Cursor+1, len(m.Specs), picked)))

	return b.String()
}

// needsLabel summarizes an item's utility requirements.
func needsLabel(s plan.EquipmentSpec) string {
	var needs []string
	if s.RequiresWall {
		needs = append(needs, "wall")
	}
	if s.RequiresVentilation {
		needs = append(needs, "vent")
	}
	if s.RequiresWater {
		needs = append(needs, "water")
	}
	if s.RequiresDrain {
		needs = append(needs, "drain")
	}
	if len(needs) == 0 {
		return "—"
	}
	return strings.Join(needs, ",")
}
