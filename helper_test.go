package perfchart

import (
	"math"
	"testing"
)

// pt is a helper for test to build a point from alternating keys and values.
func pt(day string, kv ...any) Point {
	p := Point{Date: day}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i].(string), kv[i+1].(float64))
	}
	return p
}

const epsilon = 1e-4

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

// assertValue checks that key is defined on p with value want.
func assertValue(t *testing.T, p Point, key string, want float64) {
	t.Helper()
	got, ok := p.Get(key)
	if !ok {
		t.Errorf("%s: %s is undefined, want %v", p.Date, key, want)
		return
	}
	if !approx(got, want) {
		t.Errorf("%s: %s = %v, want %v", p.Date, key, got, want)
	}
}

// assertUndefined checks that key is not defined on p.
func assertUndefined(t *testing.T, p Point, key string) {
	t.Helper()
	if v, ok := p.Get(key); ok {
		t.Errorf("%s: %s = %v, want undefined", p.Date, key, v)
	}
}
