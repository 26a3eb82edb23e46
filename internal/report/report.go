// Package report renders simulation results as delimited text for the
// outfile and as a styled summary for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lox/betsim/internal/statistics"
)

// Header is the column header preceding the result rows.
const Header = "name,nwins,n,ratio"

// Row renders one aggregate as a delimited row.
func Row(a statistics.Aggregate) string {
	return fmt.Sprintf("%s,%d,%d,%s", a.Name, a.Wins, a.Trials, formatRatio(a.Ratio()))
}

// BestLine renders the concluding line naming the winning strategy, or
// false when the summary is empty.
func BestLine(summary *statistics.Summary) (string, bool) {
	best, ok := summary.Best()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Best: %s %d %d", best.Name, best.Wins, best.Trials), true
}

// formatRatio renders a win rate with the shortest representation that
// round-trips, so 1/4 prints as 0.25 rather than a padded decimal.
func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// Writer streams report rows to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter creates a report writer. A nil writer falls back to stdout.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		w = os.Stdout
	}
	return &Writer{w: w}
}

// WriteHeader writes the column header.
func (r *Writer) WriteHeader() error {
	_, err := fmt.Fprintln(r.w, Header)
	return err
}

// WriteRow writes one aggregate row.
func (r *Writer) WriteRow(a statistics.Aggregate) error {
	_, err := fmt.Fprintln(r.w, Row(a))
	return err
}

// WriteSummary writes the header and every aggregate in summary order.
func (r *Writer) WriteSummary(summary *statistics.Summary) error {
	if err := r.WriteHeader(); err != nil {
		return err
	}
	for _, a := range summary.Results {
		if err := r.WriteRow(a); err != nil {
			return err
		}
	}
	return nil
}
