package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/matte/pkg/errors"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PickerModel - Interactive row selection
// =============================================================================

// PickerModel is the bubbletea model for choosing one row of a table, used by
// "template pick" and "font pick".
type PickerModel struct {
	Title    string
	Headers  []string
	Rows     [][]string
	Cursor   int
	Selected int // -1 until a row is chosen
	Height   int
	Offset   int
}

// NewPickerModel creates a picker with the cursor on row initial.
func NewPickerModel(title string, headers []string, rows [][]string, initial int) PickerModel {
	m := PickerModel{
		Title:    title,
		Headers:  headers,
		Rows:     rows,
		Selected: -1,
		Height:   15,
	}
	if initial > 0 && initial < len(rows) {
		m.Cursor = initial
		if m.Cursor >= m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Rows) == 0 {
				return m, nil
			}
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, m.Rows[i]...))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(append([]string{""}, m.Headers...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// runPicker shows the picker and returns the chosen row index.
func runPicker(m PickerModel) (int, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return -1, errors.Wrap(errors.ErrCodeInternal, err, "run picker")
	}
	picked := final.(PickerModel)
	if picked.Selected < 0 {
		return -1, errors.New(errors.ErrCodeInvalidInput, "nothing selected")
	}
	return picked.Selected, nil
}
