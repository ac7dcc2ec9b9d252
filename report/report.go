// Package report renders experiment summaries, either as the tab-separated
// status lines of the comparison driver or as aligned tables.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/randwalk/experiment"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output rendering.
type Format int

const (
	TSV      Format = iota // one tab-separated line per summary, streamed
	Table                  // box-drawn table, rendered on Flush
	Markdown               // GitHub-flavoured Markdown table, rendered on Flush
)

var formatNames = [...]string{TSV: "tsv", Table: "table", Markdown: "markdown"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat maps "tsv", "table" or "markdown" to a Format.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Layout selects which columns are printed.
type Layout int

const (
	// Compare prints counts, aborts and every estimate with its 95% interval.
	Compare Layout = iota
	// Sample prints running means of the cover time and mean hitting time.
	Sample
)

var compareColumns = []string{"agent", "N", "M", "type", "count", "abort", "C", "95%", "H", "95%", "E[H]", "95%"}

var sampleColumns = []string{"agent", "graph", "|V|", "|E|", "trial", "C", "E[H]"}

// Header returns the comment line that precedes comparison status lines.
func Header() string {
	return "# agent    \t" + strings.Join(compareColumns[1:], "\t")
}

// StatusLine formats s as one tab-separated comparison line. Estimates are
// rounded to whole steps.
func StatusLine(s experiment.Summary) string {
	return fmt.Sprintf("%-12s\t%d\t%d\t%s\t%d\t%d\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f",
		s.Label(), s.Vertices, s.Edges, s.Graph, s.Count, s.Aborts,
		s.Cover.Mean, s.Cover.Conf95,
		s.Target.Mean, s.Target.Conf95,
		s.MeanHitting.Mean, s.MeanHitting.Conf95)
}

// SampleHeader returns the comment line that precedes sample lines.
func SampleHeader() string {
	return "# agent    graph       |V|    |E|  trial       C      E[H]"
}

// SampleLine formats s as one fixed-width sampling line. Sampling runs every
// agent at a single α, so only the agent name is printed.
func SampleLine(s experiment.Summary) string {
	return fmt.Sprintf("%-10s %-8s %6d %6d %6d %8.2f %8.2f",
		s.Agent, s.Graph, s.Vertices, s.Edges, s.Count, s.Cover.Mean, s.MeanHitting.Mean)
}

// Printer writes summaries to an io.Writer. TSV output is written as each
// summary arrives; table formats are buffered until Flush.
type Printer struct {
	w      io.Writer
	format Format
	layout Layout

	tbl     table.Writer
	started bool
}

// NewPrinter returns a Printer for the given format and layout.
func NewPrinter(w io.Writer, f Format, l Layout) *Printer {
	return &Printer{w: w, format: f, layout: l}
}

// Add prints or buffers s.
func (p *Printer) Add(s experiment.Summary) error {
	if p.format == TSV {
		if !p.started {
			p.started = true
			if _, err := fmt.Fprintln(p.w, p.header()); err != nil {
				return fmt.Errorf("Add: %w", err)
			}
		}
		if _, err := fmt.Fprintln(p.w, p.line(s)); err != nil {
			return fmt.Errorf("Add: %w", err)
		}

		return nil
	}

	if p.tbl == nil {
		p.tbl = newTable(p.layout)
	}
	p.tbl.AppendRow(p.row(s))

	return nil
}

// Flush renders buffered rows. It is a no-op for TSV or when nothing was added.
func (p *Printer) Flush() error {
	if p.tbl == nil {
		return nil
	}
	var out string
	if p.format == Markdown {
		out = p.tbl.RenderMarkdown()
	} else {
		out = p.tbl.Render()
	}
	p.tbl = nil
	if _, err := io.WriteString(p.w, out+"\n"); err != nil {
		return fmt.Errorf("Flush: %w", err)
	}

	return nil
}

// Write renders all summaries at once in format f with the comparison layout.
func Write(w io.Writer, f Format, summaries []experiment.Summary) error {
	p := NewPrinter(w, f, Compare)
	for _, s := range summaries {
		if err := p.Add(s); err != nil {
			return err
		}
	}

	return p.Flush()
}

func (p *Printer) header() string {
	if p.layout == Sample {
		return SampleHeader()
	}

	return Header()
}

func (p *Printer) line(s experiment.Summary) string {
	if p.layout == Sample {
		return SampleLine(s)
	}

	return StatusLine(s)
}

func (p *Printer) row(s experiment.Summary) table.Row {
	if p.layout == Sample {
		return table.Row{
			s.Agent, s.Graph, s.Vertices, s.Edges, s.Count,
			fmt.Sprintf("%.2f", s.Cover.Mean), fmt.Sprintf("%.2f", s.MeanHitting.Mean),
		}
	}

	return table.Row{
		s.Label(), s.Vertices, s.Edges, s.Graph, s.Count, s.Aborts,
		round(s.Cover.Mean), round(s.Cover.Conf95),
		round(s.Target.Mean), round(s.Target.Conf95),
		round(s.MeanHitting.Mean), round(s.MeanHitting.Conf95),
	}
}

func round(x float64) string { return fmt.Sprintf("%.0f", x) }

func newTable(l Layout) table.Writer {
	cols := compareColumns
	textCols := map[int]bool{1: true, 4: true}
	if l == Sample {
		cols = sampleColumns
		textCols = map[int]bool{1: true, 2: true}
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	header := make(table.Row, len(cols))
	configs := make([]table.ColumnConfig, 0, len(cols))
	for i, c := range cols {
		header[i] = c
		if !textCols[i+1] {
			configs = append(configs, table.ColumnConfig{Number: i + 1, Align: text.AlignRight})
		}
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	return t
}
