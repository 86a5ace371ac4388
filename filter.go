package perfchart

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/etnz/perfchart/calendar"
	"github.com/etnz/perfchart/date"
)

// TradingCalendar decides whether a date is a trading session.
// *calendar.Calendar implements it.
type TradingCalendar interface {
	IsTradingDay(day string, ev *calendar.Evidence) bool
}

// FilterTradingDays keeps, in order, the points dated on a trading session.
func FilterTradingDays(points []Point, cal TradingCalendar, ev *calendar.Evidence) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if cal.IsTradingDay(p.Date, ev) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Window keeps the points dated within r (boundaries included). Points whose
// date cannot be read are dropped, there is no way to place them.
func Window(points []Point, r date.Range) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(p.Date) < 10 {
			continue
		}
		d, err := date.Parse(p.Date[:10])
		if err != nil {
			continue
		}
		if r.Contains(d) {
			out = append(out, p.Clone())
		}
	}
	return out
}

var windowRE = regexp.MustCompile(`^(\d+)([dwmy])$`)

// ParseWindow reads a display window ending on last:
//
//	1d 5d 1w 2w 1m 3m 6m 1y 3y 5y   trailing windows
//	wtd mtd qtd ytd                 period to date
//	all max ""                      no window (nil range)
func ParseWindow(s string, last date.Date) (*date.Range, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "all", "max":
		return nil, nil
	case "wtd", "mtd", "qtd", "ytd":
		p, err := date.ParsePeriod(s[:1])
		if err != nil {
			return nil, err
		}
		r := date.ToDate(last, p)
		return &r, nil
	}

	match := windowRE.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("invalid window %q", s)
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("invalid window %q: %w", s, err)
	}
	var from date.Date
	switch match[2] {
	case "d":
		from = last.Add(-n)
	case "w":
		from = last.Add(-7 * n)
	case "m":
		from = last.AddMonth(-n)
	case "y":
		from = last.AddMonth(-12 * n)
	}
	r := date.NewRange(from, last)
	return &r, nil
}

// LastDate returns the date of the last point that has a readable date.
func LastDate(points []Point) (date.Date, bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if len(points[i].Date) < 10 {
			continue
		}
		if d, err := date.Parse(points[i].Date[:10]); err == nil {
			return d, true
		}
	}
	return date.Date{}, false
}
