package perfchart

import (
	"reflect"
	"testing"
)

func TestStackLabelPositions(t *testing.T) {
	tests := []struct {
		name       string
		cands      []LabelCandidate
		minY, maxY float64
		gap        float64
		want       map[string]float64
	}{
		{
			name: "empty",
			minY: 0, maxY: 100, gap: 10,
			want: map[string]float64{},
		},
		{
			name:  "no overlap",
			cands: []LabelCandidate{{"c", 90}, {"a", 10}, {"b", 50}},
			minY:  0, maxY: 100, gap: 12,
			want: map[string]float64{"a": 10, "b": 50, "c": 90},
		},
		{
			name:  "overlap pushes down",
			cands: []LabelCandidate{{"a", 50}, {"b", 52}, {"c", 53}},
			minY:  0, maxY: 100, gap: 10,
			want: map[string]float64{"a": 50, "b": 60, "c": 70},
		},
		{
			name:  "ties broken by id",
			cands: []LabelCandidate{{"b", 50}, {"a", 50}},
			minY:  0, maxY: 100, gap: 10,
			want: map[string]float64{"a": 50, "b": 60},
		},
		{
			name:  "bottom cluster shifted up",
			cands: []LabelCandidate{{"a", 95}, {"b", 96}, {"c", 97}},
			minY:  0, maxY: 100, gap: 10,
			want: map[string]float64{"a": 80, "b": 90, "c": 100},
		},
		{
			name:  "top cluster clamped",
			cands: []LabelCandidate{{"a", -5}, {"b", 0}},
			minY:  0, maxY: 100, gap: 10,
			want: map[string]float64{"a": 0, "b": 10},
		},
		{
			// the final shift moves the whole stack, including labels that
			// were already in place.
			name:  "overflow shift moves the whole stack",
			cands: []LabelCandidate{{"a", -50}, {"b", 150}},
			minY:  0, maxY: 100, gap: 10,
			want: map[string]float64{"a": -50, "b": 100},
		},
		{
			name:  "too many labels overflow",
			cands: []LabelCandidate{{"a", 50}, {"b", 50}, {"c", 50}, {"d", 50}, {"e", 50}},
			minY:  0, maxY: 100, gap: 30,
			want: map[string]float64{"a": -20, "b": 10, "c": 40, "d": 70, "e": 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StackLabelPositions(tt.cands, tt.minY, tt.maxY, tt.gap)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StackLabelPositions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStackLabelPositionsInvariants(t *testing.T) {
	cands := []LabelCandidate{
		{"spy", 120}, {"qqq", 118}, {"twr", 121}, {"iwm", 60}, {"dia", 119},
	}
	const minY, maxY, gap = 10.0, 130.0, 14.0
	got := StackLabelPositions(cands, minY, maxY, gap)

	order := []string{"iwm", "qqq", "dia", "spy", "twr"}
	for i, id := range order {
		y := got[id]
		if y < minY || y > maxY {
			t.Errorf("%s = %v, outside [%v, %v]", id, y, minY, maxY)
		}
		if i > 0 {
			if prev := got[order[i-1]]; y-prev < gap-epsilon {
				t.Errorf("%s = %v is %v below %s, want at least %v", id, y, y-prev, order[i-1], gap)
			}
		}
	}

	// stacking is stable on its own output.
	var again []LabelCandidate
	for id, y := range got {
		again = append(again, LabelCandidate{id, y})
	}
	if second := StackLabelPositions(again, minY, maxY, gap); !reflect.DeepEqual(second, got) {
		t.Errorf("StackLabelPositions() is not idempotent: %v then %v", got, second)
	}

	// inputs are not reordered.
	if cands[0].ID != "spy" {
		t.Errorf("StackLabelPositions() modified its input")
	}
}

func TestScale(t *testing.T) {
	s := NewYScale(-10, 10, 0, 200)
	tests := []struct{ v, y float64 }{{10, 0}, {-10, 200}, {0, 100}, {5, 50}}
	for _, tt := range tests {
		if got := s.Pixel(tt.v); !approx(got, tt.y) {
			t.Errorf("Pixel(%v) = %v, want %v", tt.v, got, tt.y)
		}
		if got := s.Value(tt.y); !approx(got, tt.v) {
			t.Errorf("Value(%v) = %v, want %v", tt.y, got, tt.v)
		}
	}
	flat := NewYScale(3, 3, 0, 200)
	if got := flat.Pixel(3); got != 100 {
		t.Errorf("degenerate Pixel(3) = %v, want 100", got)
	}
}

func TestEndLabelCandidates(t *testing.T) {
	points := []Point{
		pt("2025-01-06", "a", 0.0, "b", 4.0),
		pt("2025-01-07", "a", 10.0),
	}
	s := NewYScale(0, 10, 0, 100)
	got := EndLabelCandidates(points, []string{"a", "b", "missing"}, s)
	want := []LabelCandidate{{"a", 0}, {"b", 60}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EndLabelCandidates() = %v, want %v", got, want)
	}
}
