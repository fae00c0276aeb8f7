package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Report describes one measured run.
type Report struct {
	Elapsed time.Duration
	// folded instructions executed
	Retired int64
	// source-level operations executed, a folded +5 counts as five
	Ops int64
	// tape length at the end of the run, the tape never shrinks
	TapeCells int
}

func (r Report) NsPerInstruction() float64 {
	if r.Retired == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Retired)
}

var (
	colorTitle = lipgloss.Color("#8B5CF6")
	colorLabel = lipgloss.Color("#94A3B8")
	colorValue = lipgloss.Color("#F8FAFC")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorValue)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTitle).
			Padding(0, 1)
)

func (r Report) Render() string {
	rows := [][2]string{
		{"elapsed", r.Elapsed.String()},
		{"instructions", fmt.Sprintf("%d", r.Retired)},
		{"operations", fmt.Sprintf("%d", r.Ops)},
		{"ns/instr", fmt.Sprintf("%.2f", r.NsPerInstruction())},
		{"tape cells", fmt.Sprintf("%d", r.TapeCells)},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("stats"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(row[0]),
			valueStyle.Render(row[1]),
		))
	}
	return panelStyle.Render(b.String())
}
