package perfchart

import (
	"github.com/etnz/perfchart/calendar"
	"github.com/etnz/perfchart/date"
)

// ChartOptions configure BuildChart.
type ChartOptions struct {
	Calendar TradingCalendar    // defaults to calendar.Default
	Evidence *calendar.Evidence // authoritative sessions, optional
	Window   *date.Range        // display window, nil for the whole series
	Keys     KeyScheme          // defaults to IndexKeys
}

// BuildChart runs the whole pipeline on raw API rows: non trading days are
// dropped, the display window is cut and rebased, then benchmarks are merged
// onto the remaining dates.
func BuildChart(base []Point, benchmarks []BenchmarkSeries, opts ChartOptions) []Point {
	cal := opts.Calendar
	if cal == nil {
		cal = calendar.Default
	}
	keys := opts.Keys
	if keys.Token == nil {
		keys = IndexKeys()
	}

	points := FilterTradingDays(base, cal, opts.Evidence)
	if opts.Window != nil {
		points = Window(points, *opts.Window)
	}
	points = RebasePerformanceWindow(points)
	return MergeBenchmarkSeries(points, benchmarks, keys)
}

// SeriesKeys returns the keys to draw as lines: the portfolio return followed by
// each benchmark's return.
func SeriesKeys(benchmarks []BenchmarkSeries, keys KeyScheme) []string {
	out := []string{KeyTimeWeightedReturn}
	for i, b := range benchmarks {
		out = append(out, keys.Return(keys.Token(i, b)))
	}
	return out
}
