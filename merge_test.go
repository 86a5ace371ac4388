package perfchart

import (
	"reflect"
	"testing"
)

func fiveDays() []Point {
	return []Point{
		pt("2025-01-06", KeyTimeWeightedReturn, 0.0),
		pt("2025-01-07", KeyTimeWeightedReturn, 1.0),
		pt("2025-01-08", KeyTimeWeightedReturn, 2.0),
		pt("2025-01-09", KeyTimeWeightedReturn, 3.0),
		pt("2025-01-10", KeyTimeWeightedReturn, 4.0),
	}
}

func TestMergeBenchmarkSeries(t *testing.T) {
	base := fiveDays()
	spy := BenchmarkSeries{Ticker: "SPY", Data: []BenchmarkPoint{
		{Date: "2025-01-06", ReturnPct: 10},
		{Date: "2025-01-07", ReturnPct: 20},
		{Date: "2025-01-08", ReturnPct: 0},
	}}
	got := MergeBenchmarkSeries(base, []BenchmarkSeries{spy}, IndexKeys())

	wantReturn := []float64{0, 9.090909, -9.090909, -9.090909, -9.090909}
	wantDrawdown := []float64{0, 0, -16.666667, -16.666667, -16.666667}
	for i, p := range got {
		assertValue(t, p, "bench_0_return", wantReturn[i])
		assertValue(t, p, "bench_0_drawdown", wantDrawdown[i])
		// no MWR supplied: it falls back to the return.
		assertValue(t, p, "bench_0_mwr", wantReturn[i])
		assertValue(t, p, KeyTimeWeightedReturn, float64(i))
	}

	// base points are untouched.
	for _, p := range base {
		assertUndefined(t, p, "bench_0_return")
	}
}

func TestMergeUndefinedBeforeFirstMatch(t *testing.T) {
	b := BenchmarkSeries{Ticker: "QQQ", Data: []BenchmarkPoint{
		{Date: "2025-01-03", ReturnPct: 50}, // before the base window
		{Date: "2025-01-08", ReturnPct: 5},
		{Date: "2025-01-10", ReturnPct: 15.5},
	}}
	got := MergeBenchmarkSeries(fiveDays(), []BenchmarkSeries{b}, IndexKeys())
	assertUndefined(t, got[0], "bench_0_return")
	assertUndefined(t, got[1], "bench_0_drawdown")
	assertValue(t, got[2], "bench_0_return", 0)
	assertValue(t, got[3], "bench_0_return", 0)
	assertValue(t, got[4], "bench_0_return", 10)
}

func TestMergeMoneyWeightedReturn(t *testing.T) {
	b := BenchmarkSeries{Ticker: "SPY", Data: []BenchmarkPoint{
		{Date: "2025-01-07", ReturnPct: 0, MwrPct: 5},
		{Date: "2025-01-08", ReturnPct: 1, MwrPct: 10.25},
	}}
	got := MergeBenchmarkSeries(fiveDays(), []BenchmarkSeries{b}, IndexKeys())
	assertUndefined(t, got[0], "bench_0_mwr")
	assertValue(t, got[1], "bench_0_mwr", 0)
	assertValue(t, got[2], "bench_0_mwr", 5)
	assertValue(t, got[4], "bench_0_mwr", 5)
	assertValue(t, got[2], "bench_0_return", 1)
}

func TestMergeIndependentBenchmarks(t *testing.T) {
	a := BenchmarkSeries{Ticker: "A", Data: []BenchmarkPoint{
		{Date: "2025-01-06", ReturnPct: 0},
		{Date: "2025-01-07", ReturnPct: 10},
	}}
	b := BenchmarkSeries{Ticker: "B", Data: []BenchmarkPoint{
		{Date: "2025-01-09", ReturnPct: 100},
		{Date: "2025-01-10", ReturnPct: 80},
	}}
	got := MergeBenchmarkSeries(fiveDays(), []BenchmarkSeries{a, b}, IndexKeys())
	assertValue(t, got[4], "bench_0_return", 10)
	assertValue(t, got[4], "bench_0_drawdown", 0)
	assertValue(t, got[3], "bench_1_return", 0)
	assertValue(t, got[4], "bench_1_return", -10)
	assertValue(t, got[4], "bench_1_drawdown", -10)
}

func TestMergeZeroBaseGrowth(t *testing.T) {
	b := BenchmarkSeries{Ticker: "X", Data: []BenchmarkPoint{
		{Date: "2025-01-06", ReturnPct: -100},
		{Date: "2025-01-07", ReturnPct: 20},
	}}
	got := MergeBenchmarkSeries(fiveDays(), []BenchmarkSeries{b}, IndexKeys())
	for _, p := range got {
		assertValue(t, p, "bench_0_return", 0)
		assertValue(t, p, "bench_0_drawdown", 0)
	}
}

func TestMergeNoMatch(t *testing.T) {
	b := BenchmarkSeries{Ticker: "X", Data: []BenchmarkPoint{{Date: "2024-01-02", ReturnPct: 3}}}
	got := MergeBenchmarkSeries(fiveDays(), []BenchmarkSeries{b}, IndexKeys())
	for _, p := range got {
		assertUndefined(t, p, "bench_0_return")
	}
}

func TestMergeTickerKeys(t *testing.T) {
	b := BenchmarkSeries{Ticker: "SPY", Data: []BenchmarkPoint{{Date: "2025-01-06", ReturnPct: 3}}}
	got := MergeBenchmarkSeries(fiveDays(), []BenchmarkSeries{b}, TickerKeys())
	want := []string{"bench_SPY_drawdown", "bench_SPY_return", KeyTimeWeightedReturn}
	if keys := got[4].Keys(); !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestMergePassThrough(t *testing.T) {
	base := fiveDays()
	if got := MergeBenchmarkSeries(base, nil, IndexKeys()); !reflect.DeepEqual(got, base) {
		t.Errorf("MergeBenchmarkSeries() without benchmarks = %v, want %v", got, base)
	}
	b := BenchmarkSeries{Ticker: "SPY", Data: []BenchmarkPoint{{Date: "2025-01-06", ReturnPct: 3}}}
	if got := MergeBenchmarkSeries(nil, []BenchmarkSeries{b}, IndexKeys()); len(got) != 0 {
		t.Errorf("MergeBenchmarkSeries() without base = %v, want empty", got)
	}
}

func TestMergeIdempotent(t *testing.T) {
	b := BenchmarkSeries{Ticker: "SPY", Data: []BenchmarkPoint{
		{Date: "2025-01-06", ReturnPct: 2},
		{Date: "2025-01-08", ReturnPct: -1},
	}}
	once := MergeBenchmarkSeries(fiveDays(), []BenchmarkSeries{b}, IndexKeys())
	twice := MergeBenchmarkSeries(once, []BenchmarkSeries{b}, IndexKeys())
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merging twice changed the result:\n%v\n%v", once, twice)
	}
}
