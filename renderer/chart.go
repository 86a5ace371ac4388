// Package renderer formats chart reports as markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/perfchart"
	md "github.com/nao1215/markdown"
)

// ChartMarkdown renders a chart report. currency is used to display the
// portfolio value, an unknown or empty currency prints the bare amount.
func ChartMarkdown(r *perfchart.ChartReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Points == 0 {
		doc.H1("Performance")
		doc.PlainText("No trading day in the selected window.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Performance %s to %s", day(r.From), day(r.To)))
	if r.HasValue {
		doc.PlainText(fmt.Sprintf("Portfolio value: **%s**", Money(r.PortfolioValue, currency)))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Series", "Return", "Low", "High", "Label"},
		Rows:   [][]string{},
	}
	for _, s := range r.Series {
		if s.Points == 0 {
			table.Rows = append(table.Rows, []string{s.Label, "-", "-", "-", "-"})
			continue
		}
		table.Rows = append(table.Rows, []string{
			s.Label,
			s.Last.SignedString(),
			s.Min.String(),
			s.Max.String(),
			fmt.Sprintf("%.0fpx", s.LabelY),
		})
	}
	doc.Table(table)

	doc.H2("Return area")
	doc.PlainText(fmt.Sprintf("Positive color down to %.1f%% of the height.", 100*r.GradientOffset))

	return doc.String()
}

// LabelsMarkdown renders end of line label positions.
func LabelsMarkdown(r *perfchart.ChartReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Series", "Key", "Y"},
		Rows:      [][]string{},
	}
	for _, s := range r.Series {
		if s.Points == 0 {
			continue
		}
		table.Rows = append(table.Rows, []string{s.Label, s.Key, fmt.Sprintf("%.2f", s.LabelY)})
	}
	doc.Table(table)
	return doc.String()
}

// day trims datetimes to their date.
func day(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
