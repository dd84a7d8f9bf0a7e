// Package tui is the terminal arrangement inspector: a scrollable
// section list with intensity bars, harmony and per-track summaries.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yrbane/acidgrid/engine"
	"github.com/yrbane/acidgrid/music"
	"github.com/yrbane/acidgrid/theme"
)

const barWidth = 24

type Model struct {
	Arr      *engine.Arrangement
	Title    string
	Theme    *theme.Theme
	cursor   int
	quitting bool
}

func NewModel(arr *engine.Arrangement, title string, th *theme.Theme) Model {
	return Model{
		Arr:   arr,
		Title: title,
		Theme: th,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			if m.cursor < len(m.Arr.Sections)-1 {
				m.cursor++
			}

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}

		case "g":
			m.cursor = 0

		case "G":
			m.cursor = len(m.Arr.Sections) - 1
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(headerStyle.Render(fmt.Sprintf("%s  [%s]  %dbpm  %d measures  seed %d",
		m.Title, m.Arr.Style, m.Arr.Tempo, m.Arr.Measures, m.Arr.Seed)))
	out.WriteString("\n")
	out.WriteString(dimStyle.Render(m.Arr.Harmony.String()))
	if m.Arr.TempoWarning != "" {
		out.WriteString("  ")
		out.WriteString(warnStyle.Render(m.Arr.TempoWarning))
	}
	out.WriteString("\n\n")

	for i, sec := range m.Arr.Sections {
		cursor := ' '
		if i == m.cursor {
			cursor = m.Theme.Symbols.Cursor
		}
		flags := " "
		if sec.IsBreak {
			flags = string(m.Theme.Symbols.Break)
		} else if sec.HasFill {
			flags = string(m.Theme.Symbols.Fill)
		}
		line := fmt.Sprintf("%c %-10s %4d+%-3d %s %s",
			cursor, sec.Type, sec.Start, sec.Length, m.intensityBar(sec.Intensity, sec.EndIntensity), flags)
		if i == m.cursor {
			out.WriteString(lipgloss.NewStyle().Foreground(m.Theme.FG()).Render(line))
		} else {
			out.WriteString(dimStyle.Render(line))
		}
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(m.trackSummary(dimStyle))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render("j/k:move  g/G:top/bottom  q:quit"))
	return out.String()
}

// intensityBar draws the section's start-to-end intensity ramp colored
// by the palette.
func (m Model) intensityBar(lo, hi float64) string {
	var b strings.Builder
	for i := 0; i < barWidth; i++ {
		t := float64(i) / float64(barWidth-1)
		v := lo + (hi-lo)*t
		cell := m.Theme.Symbols.BarEmpty
		if v >= 0.15 {
			cell = m.Theme.Symbols.BarFull
		}
		b.WriteString(lipgloss.NewStyle().Foreground(m.Theme.Color(v)).Render(string(cell)))
	}
	return b.String()
}

func (m Model) trackSummary(style lipgloss.Style) string {
	parts := make([]string, 0, music.NumTracks)
	for i, tl := range m.Arr.Timelines {
		parts = append(parts, fmt.Sprintf("%s:%d", music.Track(i).String(), len(tl)))
	}
	return style.Render("notes  " + strings.Join(parts, "  "))
}
