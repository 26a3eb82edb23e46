package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/betsim/internal/game"
	"github.com/lox/betsim/internal/report"
	"github.com/lox/betsim/internal/runid"
	"github.com/lox/betsim/internal/simulator"
	"github.com/lox/betsim/internal/statistics"
	"github.com/lox/betsim/internal/strategy"
	"github.com/lox/betsim/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Probability float64 `short:"p" default:"0.4" help:"Chance of winning a single flip"`
	Start       int     `short:"s" default:"2000" help:"Starting bankroll"`
	Target      int     `short:"t" default:"10000" help:"Amount that counts as walking away a winner"`
	NumRounds   int     `short:"n" default:"10000" help:"Trials per strategy"`
	WinIsBet    bool    `short:"W" help:"Use total bet amount for target, instead of the total amount in hand"`
	MinBet      int     `default:"1" help:"Table minimum bet"`
	Seed        int64   `help:"RNG seed (0 for time-based)"`
	Workers     int     `help:"Strategies evaluated concurrently (0 for one per CPU)"`
	Catalog     string  `default:"betsim.hcl" help:"Strategy sweep config file (defaults apply when missing)"`
	Progress    int     `default:"100" help:"Log progress every N completed strategies (0 to disable)"`
	Top         int     `default:"10" help:"Strategies shown in the terminal summary"`
	Watch       bool    `help:"Show a live leaderboard while the simulation runs"`
	Debug       bool    `short:"D" help:"Enable debug logging"`

	Version kong.VersionFlag `short:"v" help:"Show version"`

	Outfile string `arg:"" optional:"" help:"Write result rows to this file instead of stdout"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("betsim"),
		kong.Description("Monte Carlo simulator for betting strategies against a biased coin"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	logger := setupLogger(cli.Debug)

	out := termenv.NewOutput(os.Stderr)
	lipgloss.SetColorProfile(out.ColorProfile())

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id, err := runid.New()
	if err != nil {
		return fmt.Errorf("failed to generate run id: %w", err)
	}
	logger = logger.With("run", id)

	cfg := game.Config{
		P:              cli.Probability,
		Start:          cli.Start,
		Target:         cli.Target,
		MinBet:         cli.MinBet,
		WinIsBetAmount: cli.WinIsBet,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	sweeps, err := strategy.LoadSweepConfig(cli.Catalog)
	if err != nil {
		return err
	}
	catalog, err := strategy.Build(cfg, sweeps)
	if err != nil {
		return err
	}

	logger.Info("starting simulation",
		"strategies", catalog.Len(),
		"trials", cli.NumRounds,
		"p", cli.Probability,
		"start", cli.Start,
		"target", cli.Target,
		"win_is_bet", cli.WinIsBet,
		"seed", seed)

	simCfg := simulator.Config{
		Game:          cfg,
		Trials:        cli.NumRounds,
		Seed:          seed,
		Workers:       cli.Workers,
		ProgressEvery: cli.Progress,
		Logger:        logger,
	}

	var summary *statistics.Summary
	if cli.Watch {
		summary, err = runWatch(simCfg, catalog)
	} else {
		simCfg.OnResult = func(a statistics.Aggregate) {
			logger.Info(report.Row(a))
		}
		summary, err = simulator.New(simCfg).Run(context.Background(), catalog)
	}
	if err != nil {
		return err
	}

	if err := writeResults(cli.Outfile, summary); err != nil {
		return err
	}
	if cli.Outfile != "" {
		logger.Info("results written", "outfile", cli.Outfile, "strategies", len(summary.Results))
	}

	if line, ok := report.BestLine(summary); ok {
		fmt.Println(line)
	}

	if !cli.Watch && out.ColorProfile() != termenv.Ascii {
		fmt.Fprint(os.Stderr, report.RenderSummary(summary, cli.Top))
	}
	return nil
}

func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// runWatch runs the simulation behind a live leaderboard. Results stream
// into the UI as strategies finish; the collected summary comes back once
// the user exits.
func runWatch(cfg simulator.Config, catalog *strategy.Catalog) (*statistics.Summary, error) {
	// One silent logger behind the program: stderr writes from either the
	// simulator or the model would tear the alternate screen
	quiet := log.New(io.Discard)
	cfg.Logger = quiet

	model := tui.NewModel(catalog.Len(), cfg.Trials, quiet)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

	cfg.OnResult = func(a statistics.Aggregate) {
		program.Send(tui.ResultMsg{Result: a})
	}

	go func() {
		summary, err := simulator.New(cfg).Run(context.Background(), catalog)
		if err != nil {
			program.Send(tui.ErrMsg{Err: err})
			return
		}
		program.Send(tui.DoneMsg{Summary: summary})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run leaderboard: %w", err)
	}

	m := final.(*tui.Model)
	if err := m.Err(); err != nil {
		return nil, err
	}
	if m.Summary() == nil {
		return nil, fmt.Errorf("interrupted before the simulation finished")
	}
	return m.Summary(), nil
}

func writeResults(outfile string, summary *statistics.Summary) error {
	if outfile == "" {
		return report.NewWriter(os.Stdout).WriteSummary(summary)
	}
	return report.WriteSummaryFile(outfile, summary)
}
