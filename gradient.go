package perfchart

// Extent returns the smallest and largest finite values of keys across points.
// ok is false when there is no such value.
func Extent(points []Point, keys ...string) (lo, hi float64, ok bool) {
	for _, p := range points {
		for _, k := range keys {
			v, defined := p.Finite(k)
			if !defined {
				continue
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	return lo, hi, ok
}

// CalcGradientOffset returns where, as a fraction of the chart height from the
// top, the series of key crosses zero. A bicolor area fill switches from the
// positive to the negative color at that offset.
//
// It is 0.5 without values, 0 when all values are negative or zero, and 1 when
// all are positive or zero.
func CalcGradientOffset(points []Point, key string) float64 {
	lo, hi, ok := Extent(points, key)
	switch {
	case !ok:
		return 0.5
	case hi <= 0:
		return 0
	case lo >= 0:
		return 1
	default:
		return hi / (hi - lo)
	}
}
