package perfchart

import (
	"github.com/etnz/perfchart/calendar"
)

// BenchmarkPoint is a benchmark's own cumulative return, drawdown and money
// weighted return at a date, as supplied by the API (not rebased).
type BenchmarkPoint struct {
	Date        string  `json:"date"`
	ReturnPct   float64 `json:"return_pct"`
	DrawdownPct float64 `json:"drawdown_pct"`
	MwrPct      float64 `json:"mwr_pct"`
}

// BenchmarkSeries is a benchmark to overlay on a performance chart.
type BenchmarkSeries struct {
	Ticker string           `json:"ticker"`
	Label  string           `json:"label,omitempty"`
	Color  string           `json:"color,omitempty"`
	Data   []BenchmarkPoint `json:"data"`
}

// Name returns the label to display for b.
func (b BenchmarkSeries) Name() string {
	if b.Label != "" {
		return b.Label
	}
	return b.Ticker
}

// hasMwr reports whether b supplies money weighted returns at all.
func (b BenchmarkSeries) hasMwr() bool {
	for _, p := range b.Data {
		if p.MwrPct != 0 && finite(p.MwrPct) {
			return true
		}
	}
	return false
}

// byDate indexes b's points by date.
func (b BenchmarkSeries) byDate() map[string]BenchmarkPoint {
	index := make(map[string]BenchmarkPoint, len(b.Data))
	for _, p := range b.Data {
		index[p.Date] = p
	}
	return index
}

// EvidenceFromSeries uses the sessions a benchmark actually traded as
// authoritative calendar evidence over the benchmark's date range.
func EvidenceFromSeries(b BenchmarkSeries) *calendar.Evidence {
	days := make([]string, len(b.Data))
	for i, p := range b.Data {
		days[i] = p.Date
	}
	return calendar.NewEvidence(days)
}
