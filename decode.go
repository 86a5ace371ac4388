package perfchart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/perfchart/calendar"
	"github.com/etnz/perfchart/date"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format of an exported document.
type Format int

const (
	JSON Format = iota
	YAML
	TOML
)

// FormatOf guesses the format of a file from its extension, defaulting to JSON.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return JSON
	}
}

// DecodeDocument reads a whole JSON, YAML or TOML document and returns the value
// selected by the jsonpath expression path ("" selects the whole document).
func DecodeDocument(r io.Reader, format Format, path string) (any, error) {
	var doc any
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("cannot decode yaml: %w", err)
		}
	case TOML:
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("cannot decode toml: %w", err)
		}
	default:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("cannot decode json: %w", err)
		}
	}
	if path == "" || path == "$" {
		return doc, nil
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return val, nil
}

// DecodePoints reads performance rows: an array of objects, each with a "date"
// and numeric fields.
func DecodePoints(r io.Reader, format Format, path string) ([]Point, error) {
	doc, err := DecodeDocument(r, format, path)
	if err != nil {
		return nil, err
	}
	rows, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("performance rows: want an array, got %T", doc)
	}
	points := make([]Point, 0, len(rows))
	for i, jrow := range rows {
		row, ok := jrow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("performance row #%d: want an object, got %T", i, jrow)
		}
		p, err := pointFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("performance row #%d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// DecodeBenchmarks reads either a single benchmark object or an array of them.
func DecodeBenchmarks(r io.Reader, format Format, path string) ([]BenchmarkSeries, error) {
	doc, err := DecodeDocument(r, format, path)
	if err != nil {
		return nil, err
	}
	var objs []any
	switch v := doc.(type) {
	case []any:
		objs = v
	case map[string]any:
		objs = []any{v}
	default:
		return nil, fmt.Errorf("benchmarks: want an object or an array, got %T", doc)
	}
	series := make([]BenchmarkSeries, 0, len(objs))
	for i, jobj := range objs {
		obj, ok := jobj.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("benchmark #%d: want an object, got %T", i, jobj)
		}
		b, err := benchmarkFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("benchmark #%d: %w", i, err)
		}
		series = append(series, b)
	}
	return series, nil
}

// DecodeEvidence reads observed trading sessions: either an array of dates or
// an object {"start", "end", "dates"}.
func DecodeEvidence(r io.Reader, format Format, path string) (*calendar.Evidence, error) {
	doc, err := DecodeDocument(r, format, path)
	if err != nil {
		return nil, err
	}
	if list, ok := doc.([]any); ok {
		doc = map[string]any{"dates": list}
	}
	// round trip through the calendar's own json form.
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("evidence: %w", err)
	}
	ev := new(calendar.Evidence)
	if err := json.Unmarshal(b, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func benchmarkFromObject(obj map[string]any) (BenchmarkSeries, error) {
	b := BenchmarkSeries{
		Ticker: asString(obj["ticker"]),
		Label:  asString(obj["label"]),
		Color:  asString(obj["color"]),
	}
	if b.Ticker == "" {
		return b, fmt.Errorf("missing ticker")
	}
	rows, ok := obj["data"].([]any)
	if !ok && obj["data"] != nil {
		return b, fmt.Errorf("%s data: want an array, got %T", b.Ticker, obj["data"])
	}
	b.Data = make([]BenchmarkPoint, 0, len(rows))
	for i, jrow := range rows {
		row, ok := jrow.(map[string]any)
		if !ok {
			return b, fmt.Errorf("%s data #%d: want an object, got %T", b.Ticker, i, jrow)
		}
		day, ok := asDate(row[KeyDate])
		if !ok {
			return b, fmt.Errorf("%s data #%d: invalid date %v", b.Ticker, i, row[KeyDate])
		}
		ret, _ := asFloat(row["return_pct"])
		dd, _ := asFloat(row["drawdown_pct"])
		mwr, _ := asFloat(row["mwr_pct"])
		b.Data = append(b.Data, BenchmarkPoint{Date: day, ReturnPct: ret, DrawdownPct: dd, MwrPct: mwr})
	}
	return b, nil
}

func pointFromRow(row map[string]any) (Point, error) {
	day, ok := asDate(row[KeyDate])
	if !ok {
		return Point{}, fmt.Errorf("invalid date %v", row[KeyDate])
	}
	p := Point{Date: day, values: make(map[string]float64, len(row))}
	for k, jv := range row {
		if k == KeyDate {
			continue
		}
		if v, ok := asFloat(jv); ok {
			p.values[k] = v
		}
	}
	return p, nil
}

// unmarshalNumbers is json.Unmarshal keeping numbers as json.Number.
func unmarshalNumbers(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(v)
}

// asFloat reads a number from a decoded document. APIs sometimes return numbers
// as strings, possibly with a percent sign.
func asFloat(jv any) (float64, bool) {
	var d decimal.Decimal
	var err error
	switch v := jv.(type) {
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case float64:
		if !finite(v) {
			return 0, false
		}
		return v, true
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
		if s == "" {
			return 0, false
		}
		d, err = decimal.NewFromString(s)
	default:
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

func asString(jv any) string {
	switch v := jv.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// asDate reads a date, keeping it as an ISO string. Datetimes are kept as is,
// the calendar only looks at their first 10 characters.
func asDate(jv any) (string, bool) {
	switch v := jv.(type) {
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case time.Time:
		return v.UTC().Format(date.Format), true
	case toml.LocalDate:
		return v.String(), true
	case toml.LocalDateTime:
		return v.LocalDate.String(), true
	default:
		return "", false
	}
}
