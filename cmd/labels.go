package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfchart"
	"github.com/etnz/perfchart/renderer"
	"github.com/google/subcommands"
)

// layoutFlags describe the vertical room of the chart.
type layoutFlags struct {
	height float64
	margin float64
	gap    float64
}

func (l *layoutFlags) setFlags(f *flag.FlagSet) {
	f.Float64Var(&l.height, "height", 300, "Chart height in pixels")
	f.Float64Var(&l.margin, "margin", 8, "Top and bottom margin in pixels")
	f.Float64Var(&l.gap, "gap", 14, "Minimum distance between two labels in pixels")
}

func (l *layoutFlags) layout() perfchart.LabelLayout {
	return perfchart.LabelLayout{Top: l.margin, Bottom: l.height - l.margin, MinGap: l.gap}
}

type labelsCmd struct {
	input  chartInput
	layout layoutFlags
}

func (*labelsCmd) Name() string     { return "labels" }
func (*labelsCmd) Synopsis() string { return "compute end of line label positions" }
func (*labelsCmd) Usage() string {
	return `pchart labels -p <file> [chart flags] [-height 300] [-margin 8] [-gap 14]

  Builds the chart like the chart command and prints where the end of line
  label of each series goes so that labels do not overlap.
`
}

func (c *labelsCmd) SetFlags(f *flag.FlagSet) {
	c.input.setFlags(f)
	c.layout.setFlags(f)
}

func (c *labelsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := c.layout.layout()
	if l.Bottom <= l.Top {
		fmt.Fprintf(os.Stderr, "height %v is too small for a %v margin\n", c.layout.height, c.layout.margin)
		return subcommands.ExitUsageError
	}
	points, benches, err := c.input.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building chart: %v\n", err)
		return subcommands.ExitFailure
	}
	report := perfchart.NewChartReport(points, benches, c.input.keys(), l)
	printMarkdown(renderer.LabelsMarkdown(report))
	return subcommands.ExitSuccess
}
