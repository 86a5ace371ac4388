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

type summaryCmd struct {
	input  chartInput
	layout layoutFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a performance chart summary" }
func (*summaryCmd) Usage() string {
	return `pchart summary -p <file> [chart flags]

  Builds the chart like the chart command and displays, for the portfolio and
  each benchmark, its return over the window, its range and the position of its
  end of line label.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.input.setFlags(f)
	c.layout.setFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	points, benches, err := c.input.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building chart: %v\n", err)
		return subcommands.ExitFailure
	}
	report := perfchart.NewChartReport(points, benches, c.input.keys(), c.layout.layout())
	printMarkdown(renderer.ChartMarkdown(report, portfolioCurrency()))
	return subcommands.ExitSuccess
}
