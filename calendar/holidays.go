package calendar

import (
	"time"

	"github.com/etnz/perfchart/date"
)

// First years for holidays the exchange did not always observe.
const (
	mlkFirstYear        = 1998
	juneteenthFirstYear = 2022
)

// Observed returns the day a fixed-date holiday is observed on: a Saturday
// moves to the preceding Friday, a Sunday to the following Monday.
func Observed(d date.Date) date.Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.Add(-1)
	case time.Sunday:
		return d.Add(1)
	default:
		return d
	}
}

// NthWeekday returns the n-th (1-based) weekday wd of the given month.
func NthWeekday(year int, month time.Month, wd time.Weekday, n int) date.Date {
	first := date.New(year, month, 1)
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.Add(offset + 7*(n-1))
}

// LastWeekday returns the last weekday wd of the given month.
func LastWeekday(year int, month time.Month, wd time.Weekday) date.Date {
	last := date.New(year, month+1, 0)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.Add(-offset)
}

// Easter returns Easter Sunday of the Gregorian calendar (anonymous Gregorian algorithm).
func Easter(year int) date.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date.New(year, time.Month(month), day)
}

// holidays computes the full-market closures that can affect days of 'year'.
//
// The next year's New Year's Day is included because, when it falls on a
// Saturday, it is observed on December 31st of 'year'.
func holidays(year int) map[date.Date]struct{} {
	days := []date.Date{
		Observed(date.New(year, time.January, 1)),
		Observed(date.New(year+1, time.January, 1)),
		NthWeekday(year, time.February, time.Monday, 3), // Presidents Day
		Easter(year).Add(-2),                            // Good Friday
		LastWeekday(year, time.May, time.Monday),        // Memorial Day
		Observed(date.New(year, time.July, 4)),
		NthWeekday(year, time.September, time.Monday, 1),  // Labor Day
		NthWeekday(year, time.November, time.Thursday, 4), // Thanksgiving
		Observed(date.New(year, time.December, 25)),
	}
	if year >= mlkFirstYear {
		days = append(days, NthWeekday(year, time.January, time.Monday, 3))
	}
	if year >= juneteenthFirstYear {
		days = append(days, Observed(date.New(year, time.June, 19)))
	}

	set := make(map[date.Date]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}
