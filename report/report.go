// Package report renders root-finding results for humans.
//
// FormatTable draws a bordered lipgloss table, FormatPlain one line per row
// for piping into other tools.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvroot/roots"
	"github.com/katalvlaran/lvroot/store"
)

// Format selects the output layout.
type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
)

// Palette
var (
	colorOK    = lipgloss.Color("#10B981") // Emerald
	colorFail  = lipgloss.Color("#EF4444") // Red
	colorMuted = lipgloss.Color("#6B7280") // Gray

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = cellStyle.Foreground(colorOK)
	failStyle   = cellStyle.Foreground(colorFail)
	borderStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Write renders results in the given format. Results keep their order.
func Write(w io.Writer, results []roots.Result, format Format) error {
	switch format {
	case FormatPlain:
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\troot=%s\titerations=%d\n",
				r.Interval, r.Method, r.Status, formatRoot(r), r.Iterations); err != nil {
				return err
			}
		}

		return nil
	case FormatTable, "":
		rows := make([][]string, len(results))
		for i, r := range results {
			rows[i] = []string{
				strconv.Itoa(i + 1),
				r.Interval.String(),
				r.Method.String(),
				r.Status.String(),
				formatRoot(r),
				strconv.Itoa(r.Iterations),
			}
		}
		t := newTable("#", "Interval", "Method", "Status", "Root", "Iterations").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 3 && results[row].OK():
					return okStyle
				case col == 3:
					return failStyle
				}

				return cellStyle
			})
		_, err := fmt.Fprintln(w, t.Render())

		return err
	}

	return fmt.Errorf("report: unknown format %q", format)
}

// WriteIntervals renders the candidate intervals of a scan.
func WriteIntervals(w io.Writer, intervals []roots.Interval, format Format) error {
	switch format {
	case FormatPlain:
		for _, iv := range intervals {
			if _, err := fmt.Fprintln(w, iv); err != nil {
				return err
			}
		}

		return nil
	case FormatTable, "":
		t := newTable("#", "Lo", "Hi", "Width")
		for i, iv := range intervals {
			t.Row(strconv.Itoa(i+1), formatFloat(iv.Lo), formatFloat(iv.Hi), formatFloat(iv.Width()))
		}
		_, err := fmt.Fprintln(w, t.Render())

		return err
	}

	return fmt.Errorf("report: unknown format %q", format)
}

// WriteRuns renders a run listing: one row per run with its status summary.
func WriteRuns(w io.Writer, runs []store.Run, format Format) error {
	switch format {
	case FormatPlain:
		for _, r := range runs {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"), r.Method, r.Function, domain(r)); err != nil {
				return err
			}
		}

		return nil
	case FormatTable, "":
		t := newTable("Run", "Created", "Method", "Function", "Domain")
		for _, r := range runs {
			t.Row(r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Method.String(), r.Function, domain(r))
		}
		_, err := fmt.Fprintln(w, t.Render())

		return err
	}

	return fmt.Errorf("report: unknown format %q", format)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func domain(r store.Run) string {
	return fmt.Sprintf("[%g, %g] step %g", r.Start, r.End, r.Step)
}

// formatRoot prints "-" when the result carries no estimate.
func formatRoot(r roots.Result) string {
	if !r.HasRoot() {
		return "-"
	}

	return formatFloat(r.Root)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 10, 64)
}
