package perfchart

import "strconv"

// KeyScheme names the keys a merged benchmark writes into the base points.
//
// Token identifies the i-th benchmark; Return, Drawdown and Mwr turn the token
// into keys. A nil Mwr writes no money weighted return.
type KeyScheme struct {
	Token    func(i int, b BenchmarkSeries) string
	Return   func(token string) string
	Drawdown func(token string) string
	Mwr      func(token string) string
}

// IndexKeys is the scheme of interactive charts: bench_0_return,
// bench_0_drawdown, bench_0_mwr, bench_1_return...
func IndexKeys() KeyScheme {
	return KeyScheme{
		Token:    func(i int, _ BenchmarkSeries) string { return strconv.Itoa(i) },
		Return:   func(tok string) string { return "bench_" + tok + "_return" },
		Drawdown: func(tok string) string { return "bench_" + tok + "_drawdown" },
		Mwr:      func(tok string) string { return "bench_" + tok + "_mwr" },
	}
}

// TickerKeys is the scheme of point-in-time snapshots, where benchmarks are
// known by their ticker: bench_SPY_return, bench_SPY_drawdown.
func TickerKeys() KeyScheme {
	return KeyScheme{
		Token:    func(_ int, b BenchmarkSeries) string { return b.Ticker },
		Return:   func(tok string) string { return "bench_" + tok + "_return" },
		Drawdown: func(tok string) string { return "bench_" + tok + "_drawdown" },
	}
}

// benchState is the running state of one benchmark folded over the base series.
type benchState struct {
	baseGrowth float64
	baseMwr    float64
	useMwr     bool // the benchmark supplies MWR and its base is usable

	peak                               float64
	seen                               bool // a base date matched already
	lastReturn, lastDrawdown, lastMwr float64
}

func newBenchState(b BenchmarkSeries, base []Point, index map[string]BenchmarkPoint) benchState {
	s := benchState{baseGrowth: 1, peak: 1}
	hasMwr := b.hasMwr()
	for _, p := range base {
		first, ok := index[p.Date]
		if !ok {
			continue
		}
		s.baseGrowth = growth(orZero(first.ReturnPct, true))
		if hasMwr {
			s.baseMwr = growth(orZero(first.MwrPct, true))
			s.useMwr = s.baseMwr != 0
		}
		break
	}
	return s
}

// observe folds the benchmark's point of the day into the state.
func (s *benchState) observe(bp BenchmarkPoint) {
	ret := 0.0
	if s.baseGrowth != 0 {
		ret = percent(growth(orZero(bp.ReturnPct, true)) / s.baseGrowth)
	}
	g := growth(ret)
	s.peak = max(s.peak, g)

	s.lastReturn = ret
	s.lastDrawdown = percent(g / s.peak)
	s.lastMwr = ret
	if s.useMwr {
		s.lastMwr = percent(growth(orZero(bp.MwrPct, true)) / s.baseMwr)
	}
	s.seen = true
}

// MergeBenchmarkSeries aligns benchmarks onto the dates of base.
//
// Each benchmark is rebased on the first base date it has data for, so that it
// starts at 0% with the base series. Its return, drawdown (from its own running
// peak) and money weighted return are written under the keys of the scheme. On
// base dates the benchmark has no data for, the last computed values are carried
// forward; before its first data point the keys stay undefined.
//
// The base points are copied, never modified.
func MergeBenchmarkSeries(base []Point, benchmarks []BenchmarkSeries, keys KeyScheme) []Point {
	if len(base) == 0 || len(benchmarks) == 0 {
		return base
	}
	out := make([]Point, len(base))
	for i, p := range base {
		out[i] = p.Clone()
	}

	for bi, b := range benchmarks {
		index := b.byDate()
		tok := keys.Token(bi, b)
		retKey, ddKey := keys.Return(tok), keys.Drawdown(tok)
		mwrKey := ""
		if keys.Mwr != nil {
			mwrKey = keys.Mwr(tok)
		}

		state := newBenchState(b, base, index)
		for i := range out {
			if bp, ok := index[out[i].Date]; ok {
				state.observe(bp)
			}
			if !state.seen {
				continue
			}
			out[i].Set(retKey, state.lastReturn)
			out[i].Set(ddKey, state.lastDrawdown)
			if mwrKey != "" {
				out[i].Set(mwrKey, state.lastMwr)
			}
		}
	}
	return out
}
