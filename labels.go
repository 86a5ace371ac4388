package perfchart

import (
	"cmp"
	"slices"
)

// LabelCandidate is the unconstrained vertical pixel position wanted by an end
// of line label.
type LabelCandidate struct {
	ID   string
	RawY float64
}

// Scale maps values linearly onto pixels: DomainMin onto PixelMin and
// DomainMax onto PixelMax.
type Scale struct {
	DomainMin, DomainMax float64
	PixelMin, PixelMax   float64
}

// NewYScale returns the scale of a vertical axis, where pixels grow downward:
// the domain maximum is drawn at top and the minimum at bottom.
func NewYScale(domainMin, domainMax, top, bottom float64) Scale {
	return Scale{DomainMin: domainMin, DomainMax: domainMax, PixelMin: bottom, PixelMax: top}
}

// Pixel returns the pixel for v. A degenerate domain maps everything to the
// middle of the pixel range.
func (s Scale) Pixel(v float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 || !finite(span) {
		return (s.PixelMin + s.PixelMax) / 2
	}
	return s.PixelMin + (v-s.DomainMin)/span*(s.PixelMax-s.PixelMin)
}

// Value is the inverse of Pixel.
func (s Scale) Value(y float64) float64 {
	span := s.PixelMax - s.PixelMin
	if span == 0 || !finite(span) {
		return (s.DomainMin + s.DomainMax) / 2
	}
	return s.DomainMin + (y-s.PixelMin)/span*(s.DomainMax-s.DomainMin)
}

// EndLabelCandidates positions a label for each key at the pixel of its last
// finite value. Keys without any value get no label.
func EndLabelCandidates(points []Point, keys []string, s Scale) []LabelCandidate {
	cands := make([]LabelCandidate, 0, len(keys))
	for _, k := range keys {
		for i := len(points) - 1; i >= 0; i-- {
			if v, ok := points[i].Finite(k); ok {
				cands = append(cands, LabelCandidate{ID: k, RawY: s.Pixel(v)})
				break
			}
		}
	}
	return cands
}

// StackLabelPositions moves labels apart so that they are at least minGap
// pixels from each other, within [minY, maxY], keeping their vertical order.
//
// Labels are sorted by RawY (then ID) and pushed down only as far as needed.
// The stack is then shifted back inside the bounds. When the labels cannot
// fit, (n-1)*minGap > maxY-minY, the stack may still overflow the bounds.
func StackLabelPositions(cands []LabelCandidate, minY, maxY, minGap float64) map[string]float64 {
	pos := make(map[string]float64, len(cands))
	if len(cands) == 0 {
		return pos
	}

	sorted := slices.Clone(cands)
	slices.SortFunc(sorted, func(a, b LabelCandidate) int {
		if c := cmp.Compare(a.RawY, b.RawY); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	ys := make([]float64, len(sorted))
	ys[0] = min(max(sorted[0].RawY, minY), maxY)
	for i := 1; i < len(sorted); i++ {
		ys[i] = max(sorted[i].RawY, ys[i-1]+minGap)
	}

	last := len(ys) - 1
	if overflow := ys[last] - maxY; overflow > 0 {
		shift(ys, -overflow)
	}
	if deficit := minY - ys[0]; deficit > 0 {
		shift(ys, deficit)
	}
	for i := 1; i < len(ys); i++ {
		ys[i] = max(ys[i], ys[i-1]+minGap)
	}
	if overflow := ys[last] - maxY; overflow > 0 {
		shift(ys, -overflow)
	}

	for i, c := range sorted {
		pos[c.ID] = ys[i]
	}
	return pos
}

func shift(ys []float64, by float64) {
	for i := range ys {
		ys[i] += by
	}
}
