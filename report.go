package perfchart

// SeriesSummary describes one line of a chart.
type SeriesSummary struct {
	Key    string
	Label  string
	Color  string
	Points int // number of defined values
	First  Percent
	Last   Percent
	Min    Percent
	Max    Percent
	LabelY float64 // end of line label position, in pixels
}

// LabelLayout is the vertical room available to end of line labels.
type LabelLayout struct {
	Top, Bottom float64 // pixel bounds, Top < Bottom
	MinGap      float64 // minimum distance between two labels
}

// DefaultLabelLayout matches the height of the dashboard chart.
var DefaultLabelLayout = LabelLayout{Top: 8, Bottom: 292, MinGap: 14}

// ChartReport summarizes a chart ready series.
type ChartReport struct {
	From, To       string
	Points         int
	PortfolioValue float64
	HasValue       bool
	// GradientOffset is where the portfolio return area switches color.
	GradientOffset float64
	Series         []SeriesSummary
}

// NewChartReport summarizes merged points: one series for the portfolio return
// and one per benchmark, with their end label positions laid out in layout.
func NewChartReport(points []Point, benchmarks []BenchmarkSeries, keys KeyScheme, layout LabelLayout) *ChartReport {
	r := &ChartReport{Points: len(points)}
	if len(points) > 0 {
		r.From, r.To = points[0].Date, points[len(points)-1].Date
	}
	for i := len(points) - 1; i >= 0; i-- {
		if v, ok := points[i].Finite(KeyPortfolioValue); ok {
			r.PortfolioValue, r.HasValue = v, true
			break
		}
	}
	r.GradientOffset = CalcGradientOffset(points, KeyTimeWeightedReturn)

	seriesKeys := SeriesKeys(benchmarks, keys)
	for i, k := range seriesKeys {
		s := summarize(points, k)
		s.Label = "Portfolio"
		if i > 0 {
			b := benchmarks[i-1]
			s.Label, s.Color = b.Name(), b.Color
		}
		r.Series = append(r.Series, s)
	}

	lo, hi, ok := Extent(points, seriesKeys...)
	if !ok {
		return r
	}
	scale := NewYScale(lo, hi, layout.Top, layout.Bottom)
	ys := StackLabelPositions(EndLabelCandidates(points, seriesKeys, scale), layout.Top, layout.Bottom, layout.MinGap)
	for i := range r.Series {
		r.Series[i].LabelY = ys[r.Series[i].Key]
	}
	return r
}

func summarize(points []Point, key string) SeriesSummary {
	s := SeriesSummary{Key: key}
	for _, p := range points {
		v, ok := p.Finite(key)
		if !ok {
			continue
		}
		pv := Percent(v)
		if s.Points == 0 {
			s.First, s.Min, s.Max = pv, pv, pv
		}
		s.Last = pv
		s.Min, s.Max = min(s.Min, pv), max(s.Max, pv)
		s.Points++
	}
	return s
}
