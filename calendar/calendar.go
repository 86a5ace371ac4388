// Package calendar decides which calendar dates are US equity trading sessions.
//
// The rule engine encodes full-market closures only (weekends and exchange
// holidays); early-close sessions remain trading days. Closures the rules cannot
// express, like a one-off national day of mourning, are captured by an
// Evidence set of observed sessions that overrides the rules within its range.
package calendar

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"github.com/etnz/perfchart/date"
	"golang.org/x/sync/singleflight"
)

var isoDayRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Calendar answers trading-session questions. It caches the holiday set of
// each year on first use; a Calendar is safe for concurrent use.
// A singleflight.Group computes a missing year only once.
type Calendar struct {
	mu    sync.RWMutex
	years map[int]map[date.Date]struct{}
	group singleflight.Group
}

// New returns a Calendar with an empty holiday cache.
func New() *Calendar {
	return &Calendar{years: make(map[int]map[date.Date]struct{})}
}

// Default is the process-wide calendar used by the package level functions.
var Default = New()

// IsTradingDay reports whether day is a trading session according to the Default calendar.
func IsTradingDay(day string, ev *Evidence) bool { return Default.IsTradingDay(day, ev) }

// normalize returns the ISO day held in the first 10 characters of s.
func normalize(s string) (string, date.Date, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	if !isoDayRE.MatchString(s) {
		return s, date.Date{}, false
	}
	d, err := date.Parse(s)
	if err != nil {
		return s, date.Date{}, false
	}
	return s, d, true
}

// IsTradingDay reports whether day, an ISO-8601 date or datetime, is a trading session.
//
// Days that cannot be read as a date are considered trading days. When ev covers
// the day, its observed sessions are authoritative.
func (c *Calendar) IsTradingDay(day string, ev *Evidence) bool {
	s, d, ok := normalize(day)
	if !ok {
		return true
	}
	if ev.Covers(s) {
		return ev.Has(s)
	}
	return c.isSession(d)
}

// IsTradingDate is like IsTradingDay for an already parsed date.
func (c *Calendar) IsTradingDate(d date.Date, ev *Evidence) bool {
	s := d.String()
	if ev.Covers(s) {
		return ev.Has(s)
	}
	return c.isSession(d)
}

func (c *Calendar) isSession(d date.Date) bool {
	if d.IsWeekend() {
		return false
	}
	_, closed := c.closures(d.Year())[d]
	return !closed
}

// closures returns the cached holiday set for year, computing it on first use.
// The returned set is shared and must not be modified.
func (c *Calendar) closures(year int) map[date.Date]struct{} {
	if set, ok := c.cached(year); ok {
		return set
	}
	v, _, _ := c.group.Do(strconv.Itoa(year), func() (any, error) {
		if set, ok := c.cached(year); ok {
			return set, nil
		}
		set := holidays(year)
		c.mu.Lock()
		c.years[year] = set
		c.mu.Unlock()
		return set, nil
	})
	return v.(map[date.Date]struct{})
}

func (c *Calendar) cached(year int) (map[date.Date]struct{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.years[year]
	return set, ok
}

// Holidays returns the sorted full-market closures that fall within year.
func (c *Calendar) Holidays(year int) []date.Date {
	var days []date.Date
	for d := range maps.Keys(c.closures(year)) {
		if d.Year() == year && !d.IsWeekend() {
			days = append(days, d)
		}
	}
	slices.SortFunc(days, compare)
	return days
}

// TradingDays returns the sessions within r, in chronological order.
func (c *Calendar) TradingDays(r date.Range, ev *Evidence) []date.Date {
	var days []date.Date
	for d := range r.Days() {
		if c.IsTradingDate(d, ev) {
			days = append(days, d)
		}
	}
	return days
}

// maxSearch bounds the scan for an adjacent session; an evidence set with a long
// empty range could otherwise never yield one.
const maxSearch = 366

// Next returns the first session strictly after d.
func (c *Calendar) Next(d date.Date, ev *Evidence) (date.Date, bool) { return c.step(d, 1, ev) }

// Previous returns the last session strictly before d.
func (c *Calendar) Previous(d date.Date, ev *Evidence) (date.Date, bool) { return c.step(d, -1, ev) }

func (c *Calendar) step(d date.Date, dir int, ev *Evidence) (date.Date, bool) {
	for i := 1; i <= maxSearch; i++ {
		if next := d.Add(dir * i); c.IsTradingDate(next, ev) {
			return next, true
		}
	}
	return date.Date{}, false
}

func compare(a, b date.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
