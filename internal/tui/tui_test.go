package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/betsim/internal/statistics"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func sized(t *testing.T, m *Model) *Model {
	t.Helper()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*Model)
}

func TestLeaderboard(t *testing.T) {
	t.Run("results rank by win count", func(t *testing.T) {
		m := sized(t, NewModel(3, 100, quietLogger()))

		model, _ := m.Update(ResultMsg{Result: statistics.Aggregate{Name: "min", Wins: 12, Trials: 100, Steps: 400}})
		m = model.(*Model)
		model, _ = m.Update(ResultMsg{Result: statistics.Aggregate{Name: "all", Wins: 40, Trials: 100, Steps: 150}})
		m = model.(*Model)

		require.Len(t, m.results, 2)

		board := m.renderBoard()
		require.True(t, strings.Contains(board, "all"))
		require.True(t, strings.Contains(board, "min"))
		assert.Less(t, strings.Index(board, "all"), strings.Index(board, "min"))
	})

	t.Run("ties keep arrival order", func(t *testing.T) {
		m := sized(t, NewModel(2, 50, quietLogger()))

		model, _ := m.Update(ResultMsg{Result: statistics.Aggregate{Name: "fixed_1", Wins: 5, Trials: 50}})
		m = model.(*Model)
		model, _ = m.Update(ResultMsg{Result: statistics.Aggregate{Name: "fixed_2", Wins: 5, Trials: 50}})
		m = model.(*Model)

		board := m.renderBoard()
		assert.Less(t, strings.Index(board, "fixed_1"), strings.Index(board, "fixed_2"))
	})

	t.Run("done message records the summary", func(t *testing.T) {
		m := sized(t, NewModel(2, 100, quietLogger()))

		summary := statistics.NewSummary()
		require.NoError(t, summary.Add(statistics.Aggregate{Name: "all", Wins: 40, Trials: 100}))
		require.NoError(t, summary.Add(statistics.Aggregate{Name: "min", Wins: 12, Trials: 100}))

		model, _ := m.Update(DoneMsg{Summary: summary})
		m = model.(*Model)

		assert.True(t, m.done)
		assert.Equal(t, summary, m.Summary())
		assert.Equal(t, 1.0, m.fraction())
		assert.Contains(t, m.View(), "Best: all")
	})

	t.Run("logging stays on the injected logger", func(t *testing.T) {
		// Watch mode hands the model a logger that points away from the
		// terminal, so nothing may write anywhere else
		var buf bytes.Buffer
		logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
		m := sized(t, NewModel(1, 10, logger))

		summary := statistics.NewSummary()
		require.NoError(t, summary.Add(statistics.Aggregate{Name: "all", Wins: 4, Trials: 10}))
		model, _ := m.Update(DoneMsg{Summary: summary})
		m = model.(*Model)

		require.True(t, m.done)
		assert.Contains(t, buf.String(), "simulation finished")
	})

	t.Run("error message quits", func(t *testing.T) {
		m := sized(t, NewModel(2, 100, quietLogger()))

		model, cmd := m.Update(ErrMsg{Err: errors.New("boom")})
		m = model.(*Model)

		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
		assert.EqualError(t, m.Err(), "boom")
	})

	t.Run("quit keys stop the program", func(t *testing.T) {
		keys := []tea.KeyMsg{
			{Type: tea.KeyCtrlC},
			{Type: tea.KeyEsc},
			{Type: tea.KeyRunes, Runes: []rune("q")},
		}
		for _, key := range keys {
			m := sized(t, NewModel(1, 10, quietLogger()))
			_, cmd := m.Update(key)
			require.NotNil(t, cmd, "key %s", key.String())
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok, "key %s", key.String())
		}
	})

	t.Run("view before sizing", func(t *testing.T) {
		m := NewModel(1, 10, quietLogger())
		assert.Equal(t, "Starting simulation...", m.View())
	})

	t.Run("progress fraction", func(t *testing.T) {
		m := sized(t, NewModel(4, 10, quietLogger()))
		assert.Equal(t, 0.0, m.fraction())

		model, _ := m.Update(ResultMsg{Result: statistics.Aggregate{Name: "all", Wins: 1, Trials: 10}})
		m = model.(*Model)
		assert.Equal(t, 0.25, m.fraction())
	})
}
