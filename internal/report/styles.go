package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/betsim/internal/statistics"
)

// Static styles for terminal summary elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	BestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// RenderSummary renders a styled block for the terminal: the top strategies
// by win count and the concluding best line. A non-positive top renders
// every strategy. Ties keep summary order.
func RenderSummary(summary *statistics.Summary, top int) string {
	rows := make([]statistics.Aggregate, len(summary.Results))
	copy(rows, summary.Results)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Wins > rows[j].Wins
	})
	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("top %d of %d strategies", len(rows), len(summary.Results))))
	sb.WriteString("\n")
	for i, a := range rows {
		low, high := a.ConfidenceInterval95()
		sb.WriteString(fmt.Sprintf("%3d. %s %d/%d %s\n",
			i+1,
			NameStyle.Render(a.Name),
			a.Wins, a.Trials,
			DimStyle.Render(fmt.Sprintf("ratio %.4f ci95 [%.4f, %.4f] steps %.1f", a.Ratio(), low, high, a.MeanSteps()))))
	}
	if line, ok := BestLine(summary); ok {
		sb.WriteString(BestStyle.Render(line))
		sb.WriteString("\n")
	}
	return sb.String()
}
