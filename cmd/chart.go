package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfchart"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// chartInput holds the flags shared by the commands that build a chart.
type chartInput struct {
	portfolio  string
	path       string
	benchmarks stringList
	window     string
	snapshot   bool
	evidence   evidenceFlags
}

func (in *chartInput) setFlags(f *flag.FlagSet) {
	f.StringVar(&in.portfolio, "p", "", "Portfolio performance file (JSON, YAML or TOML)")
	f.StringVar(&in.path, "path", "", "JSONPath of the rows inside the portfolio file, like $.data")
	f.Var(&in.benchmarks, "b", "Benchmark file, can be repeated")
	f.StringVar(&in.window, "window", "all", "Display window: 1d, 5d, 1m, 6m, 1y, mtd, ytd, all...")
	f.BoolVar(&in.snapshot, "snapshot", false, "Name benchmark keys by ticker instead of by position")
	in.evidence.setFlags(f)
}

func (in *chartInput) keys() perfchart.KeyScheme {
	if in.snapshot {
		return perfchart.TickerKeys()
	}
	return perfchart.IndexKeys()
}

// build loads the inputs and runs the chart pipeline.
func (in *chartInput) build() ([]perfchart.Point, []perfchart.BenchmarkSeries, error) {
	if in.portfolio == "" {
		return nil, nil, fmt.Errorf("-p is required")
	}
	base, err := decodeFile(in.portfolio, in.path, perfchart.DecodePoints)
	if err != nil {
		return nil, nil, err
	}

	// benchmark files are decoded concurrently, their order is kept.
	files := make([][]perfchart.BenchmarkSeries, len(in.benchmarks))
	var g errgroup.Group
	for i, name := range in.benchmarks {
		g.Go(func() (err error) {
			files[i], err = decodeFile(name, "", perfchart.DecodeBenchmarks)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	var benches []perfchart.BenchmarkSeries
	for _, bs := range files {
		benches = append(benches, bs...)
	}

	ev, err := in.evidence.load()
	if err != nil {
		return nil, nil, err
	}

	opts := perfchart.ChartOptions{Evidence: ev, Keys: in.keys()}
	if last, ok := perfchart.LastDate(base); ok {
		opts.Window, err = perfchart.ParseWindow(in.window, last)
		if err != nil {
			return nil, nil, err
		}
	}

	points := perfchart.BuildChart(base, benches, opts)
	log.WithFields(log.Fields{
		"rows":       len(base),
		"points":     len(points),
		"benchmarks": len(benches),
		"window":     in.window,
		"evidence":   ev != nil,
	}).Debug("chart built")
	return points, benches, nil
}

type chartCmd struct {
	input chartInput
	round int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "print chart ready performance points" }
func (*chartCmd) Usage() string {
	return `pchart chart -p <file> [-path <jsonpath>] [-b <file>]... [-window <w>] [-snapshot] [-evidence <file> | -evidence-from <file>]

  Drops non trading days, cuts the display window, rebases the portfolio
  returns on its first day and merges the benchmarks onto the remaining dates.
  Points are printed as JSON lines.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.input.setFlags(f)
	f.IntVar(&c.round, "round", -1, "Round values to that many decimals, negative to keep full precision")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	points, _, err := c.input.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.round >= 0 {
		points = perfchart.RoundPoints(points, int32(c.round))
	}

	enc := json.NewEncoder(os.Stdout)
	for _, p := range points {
		if err := enc.Encode(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing point %s: %v\n", p.Date, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
