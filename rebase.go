package perfchart

// RebasePerformanceWindow rebases a chronological window so that its first
// point reads 0% time weighted return, and recomputes the drawdown from the
// window's own running peak. The money weighted return is rebased the same
// way, against its own base, without drawdown.
//
// A return key is rebased only when some point of the window defines it; on
// those points a missing or non-finite value counts as 0. When a base growth
// factor is zero the raw values are kept.
func RebasePerformanceWindow(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Clone()
	}
	if len(points) == 0 {
		return out
	}

	if anyHas(points, KeyTimeWeightedReturn) {
		base := growth(orZero(points[0].TWR()))
		peak := 1.0
		for i := range out {
			twr := rebase(orZero(out[i].TWR()), base)
			g := growth(twr)
			peak = max(peak, g)
			out[i].Set(KeyTimeWeightedReturn, twr)
			out[i].Set(KeyCurrentDrawdown, percent(g/peak))
		}
	}

	if anyHas(points, KeyMoneyWeightedReturn) {
		base := growth(orZero(points[0].MWR()))
		for i := range out {
			out[i].Set(KeyMoneyWeightedReturn, rebase(orZero(out[i].MWR()), base))
		}
	}
	return out
}

// rebase expresses the cumulative return pct relative to the growth factor base.
func rebase(pct, base float64) float64 {
	if base == 0 {
		return pct
	}
	return percent(growth(pct) / base)
}

func anyHas(points []Point, key string) bool {
	for _, p := range points {
		if p.Has(key) {
			return true
		}
	}
	return false
}
