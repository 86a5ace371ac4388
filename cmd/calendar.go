package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/perfchart"
	"github.com/etnz/perfchart/calendar"
	"github.com/google/subcommands"
)

// evidenceFlags select authoritative trading sessions.
type evidenceFlags struct {
	file string // an evidence document
	from string // a benchmark document whose dates are the sessions
}

func (e *evidenceFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&e.file, "evidence", "", "Evidence file of observed trading sessions (defaults to $"+EnvEvidence+")")
	f.StringVar(&e.from, "evidence-from", "", "Benchmark file whose dates are used as observed trading sessions")
}

// load returns the evidence to use, nil when there is none.
func (e *evidenceFlags) load() (*calendar.Evidence, error) {
	if e.file != "" && e.from != "" {
		return nil, fmt.Errorf("-evidence and -evidence-from are mutually exclusive")
	}
	if e.from != "" {
		benches, err := decodeFile(e.from, "", perfchart.DecodeBenchmarks)
		if err != nil {
			return nil, err
		}
		if len(benches) == 0 {
			return nil, fmt.Errorf("no benchmark in %q", e.from)
		}
		return perfchart.EvidenceFromSeries(benches[0]), nil
	}
	file := e.file
	if file == "" {
		file = os.Getenv(EnvEvidence)
	}
	if file == "" {
		return nil, nil
	}
	return decodeFile(file, "", perfchart.DecodeEvidence)
}

type tradingDayCmd struct {
	evidence evidenceFlags
}

func (*tradingDayCmd) Name() string     { return "tradingday" }
func (*tradingDayCmd) Synopsis() string { return "tell whether dates are NYSE trading days" }
func (*tradingDayCmd) Usage() string {
	return `pchart tradingday [-evidence <file>] <date>...

  Prints each date followed by true when the NYSE is open that day.
  Dates are YYYY-MM-DD, or datetimes starting with one. Unreadable dates are
  reported as trading days.
`
}

func (c *tradingDayCmd) SetFlags(f *flag.FlagSet) { c.evidence.setFlags(f) }

func (c *tradingDayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one date is required")
		return subcommands.ExitUsageError
	}
	ev, err := c.evidence.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading evidence: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, day := range f.Args() {
		fmt.Printf("%s\t%s\n", day, strconv.FormatBool(calendar.IsTradingDay(day, ev)))
	}
	return subcommands.ExitSuccess
}

type holidaysCmd struct{}

func (*holidaysCmd) Name() string     { return "holidays" }
func (*holidaysCmd) Synopsis() string { return "list NYSE full day closures" }
func (*holidaysCmd) Usage() string {
	return `pchart holidays <year>...

  Lists the weekdays the NYSE is closed during each year.
`
}

func (*holidaysCmd) SetFlags(*flag.FlagSet) {}

func (*holidaysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one year is required")
		return subcommands.ExitUsageError
	}
	for _, arg := range f.Args() {
		year, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing year %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		for _, d := range calendar.Default.Holidays(year) {
			fmt.Printf("%s\t%s\n", d, d.Weekday())
		}
	}
	return subcommands.ExitSuccess
}
