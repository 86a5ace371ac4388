package perfchart

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// Well known keys of a performance point.
const (
	KeyDate                = "date"
	KeyPortfolioValue      = "portfolio_value"
	KeyNetDeposits         = "net_deposits"
	KeyTimeWeightedReturn  = "time_weighted_return"
	KeyMoneyWeightedReturn = "money_weighted_return"
	KeyCurrentDrawdown     = "current_drawdown"
)

// Point is one dated record of a chart series.
//
// Beyond its date, a point holds an open set of named numeric values. A key
// with no value is undefined, which is different from a value of zero.
type Point struct {
	Date   string
	values map[string]float64
}

// NewPoint returns a point holding a copy of values.
func NewPoint(day string, values map[string]float64) Point {
	p := Point{Date: day, values: make(map[string]float64, len(values))}
	for k, v := range values {
		p.values[k] = v
	}
	return p
}

// Get returns the value for key, and whether it is defined.
func (p Point) Get(key string) (float64, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Finite returns the value for key when it is defined and finite.
func (p Point) Finite(key string) (float64, bool) {
	v, ok := p.values[key]
	if !ok || !finite(v) {
		return 0, false
	}
	return v, true
}

// Has reports whether key is defined.
func (p Point) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Set defines key.
func (p *Point) Set(key string, v float64) {
	if p.values == nil {
		p.values = make(map[string]float64)
	}
	p.values[key] = v
}

// Delete undefines key.
func (p *Point) Delete(key string) { delete(p.values, key) }

// Clone returns a copy of p that shares nothing with it.
func (p Point) Clone() Point { return NewPoint(p.Date, p.values) }

// Keys returns the defined keys, sorted.
func (p Point) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Typed accessors for the fixed fields.

func (p Point) PortfolioValue() (float64, bool) { return p.Get(KeyPortfolioValue) }
func (p Point) NetDeposits() (float64, bool)    { return p.Get(KeyNetDeposits) }
func (p Point) TWR() (float64, bool)            { return p.Get(KeyTimeWeightedReturn) }
func (p Point) MWR() (float64, bool)            { return p.Get(KeyMoneyWeightedReturn) }
func (p Point) Drawdown() (float64, bool)       { return p.Get(KeyCurrentDrawdown) }

// Round returns a copy of p with every finite value rounded to places decimals.
func (p Point) Round(places int32) Point {
	q := p.Clone()
	for k, v := range q.values {
		if finite(v) {
			q.values[k] = decimal.NewFromFloat(v).Round(places).InexactFloat64()
		}
	}
	return q
}

// MarshalJSON writes the point as a flat object, date first and keys sorted.
// Non-finite values are written as null.
func (p Point) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(KeyDate, p.Date)
	for _, k := range p.Keys() {
		v := p.values[k]
		if !finite(v) {
			w.Append(k, nil)
			continue
		}
		w.Append(k, json.Number(decimal.NewFromFloat(v).String()))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON reads a flat object. Numeric values may be quoted; null and
// non-numeric values are left undefined.
func (p *Point) UnmarshalJSON(b []byte) error {
	var row map[string]any
	if err := unmarshalNumbers(b, &row); err != nil {
		return err
	}
	q, err := pointFromRow(row)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// Dates returns the date of each point.
func Dates(points []Point) []string {
	days := make([]string, len(points))
	for i, p := range points {
		days[i] = p.Date
	}
	return days
}

// RoundPoints rounds every point, see Point.Round.
func RoundPoints(points []Point, places int32) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Round(places)
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// orZero returns v when it is finite, 0 otherwise.
func orZero(v float64, ok bool) float64 {
	if !ok || !finite(v) {
		return 0
	}
	return v
}

func (p Point) String() string { return fmt.Sprintf("%s%v", p.Date, p.values) }
