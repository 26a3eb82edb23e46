package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/betsim/internal/statistics"
)

// Model is the Bubble Tea model for the live leaderboard shown in watch
// mode. The simulation runs in its own goroutine and feeds the model via
// ResultMsg/DoneMsg sent through the running program.
type Model struct {
	logger *log.Logger

	// UI components
	board viewport.Model
	meter progress.Model

	// State
	total    int // strategies expected for this run
	trials   int // trials per strategy
	results  []statistics.Aggregate
	summary  *statistics.Summary
	err      error
	done     bool
	quitting bool

	// Dimensions
	width       int
	height      int
	initialized bool // Track if the viewport has been properly sized
}

// ResultMsg carries a completed strategy aggregate into the UI.
type ResultMsg struct {
	Result statistics.Aggregate
}

// DoneMsg signals that every strategy has finished.
type DoneMsg struct {
	Summary *statistics.Summary
}

// ErrMsg signals that the simulation failed.
type ErrMsg struct {
	Err error
}

// NewModel creates a leaderboard model for a run of total strategies with
// trials rounds each.
func NewModel(total, trials int, logger *log.Logger) *Model {
	// Minimal initial size, properly sized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	meter := progress.New(progress.WithDefaultGradient())

	return &Model{
		logger:  logger.WithPrefix("tui"),
		board:   vp,
		meter:   meter,
		total:   total,
		trials:  trials,
		results: []statistics.Aggregate{},
	}
}

// Init initializes the leaderboard model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages from the terminal and the simulation goroutine
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		// Remaining keys scroll the leaderboard
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.meter.Width = msg.Width - 6
		boardHeight := msg.Height - 8
		if boardHeight < 3 {
			boardHeight = 3
		}
		m.board.Width = msg.Width - 4
		m.board.Height = boardHeight
		m.board.SetContent(m.renderBoard())
		m.initialized = true
		return m, nil

	case ResultMsg:
		m.results = append(m.results, msg.Result)
		m.board.SetContent(m.renderBoard())
		return m, nil

	case DoneMsg:
		m.done = true
		m.summary = msg.Summary
		m.board.SetContent(m.renderBoard())
		m.logger.Debug("simulation finished", "strategies", len(m.results))
		return m, nil

	case ErrMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the leaderboard
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "Starting simulation..."
	}

	title := TitleStyle.Render("betsim")
	info := InfoStyle.Render(fmt.Sprintf("%d strategies, %d trials each", m.total, m.trials))
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", info)

	meter := m.meter.ViewAs(m.fraction())

	board := BoardStyle.Width(m.board.Width).Render(m.board.View())

	var footer string
	if m.done {
		footer = BestStyle.Render(m.bestLine()) + "  " + HelpStyle.Render("q to exit")
	} else {
		footer = HelpStyle.Render(fmt.Sprintf("%d/%d complete • ↑/↓ scroll • q to quit", len(m.results), m.total))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, meter, board, footer)
}

// Summary returns the final summary, nil until DoneMsg arrives.
func (m *Model) Summary() *statistics.Summary {
	return m.summary
}

// Err returns the simulation error delivered via ErrMsg, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) fraction() float64 {
	if m.done {
		return 1.0
	}
	if m.total == 0 {
		return 0
	}
	return float64(len(m.results)) / float64(m.total)
}

func (m *Model) bestLine() string {
	if m.summary == nil {
		return ""
	}
	best, ok := m.summary.Best()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Best: %s %d %d", best.Name, best.Wins, best.Trials)
}

// renderBoard formats the results seen so far, highest win count first.
// Ties keep arrival order so the ranking is stable between updates.
func (m *Model) renderBoard() string {
	if len(m.results) == 0 {
		return InfoStyle.Render("waiting for results...")
	}

	ranked := make([]statistics.Aggregate, len(m.results))
	copy(ranked, m.results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Wins > ranked[j].Wins
	})

	var b strings.Builder
	for i, r := range ranked {
		row := fmt.Sprintf("%4d. %-24s %8d/%-8d %8.4f", i+1, r.Name, r.Wins, r.Trials, r.Ratio())
		if i == 0 {
			b.WriteString(LeaderStyle.Render(row))
		} else {
			b.WriteString(RowStyle.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
