package calendar

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Evidence is an authoritative list of sessions actually traded between Start
// and End (inclusive ISO dates). A nil *Evidence covers nothing.
type Evidence struct {
	Observed map[string]struct{}
	Start    string
	End      string
}

// NewEvidence builds evidence from observed session dates. Its range spans the
// earliest to the latest date; entries that are not ISO dates are ignored.
func NewEvidence(days []string) *Evidence {
	ev := &Evidence{Observed: make(map[string]struct{}, len(days))}
	for _, day := range days {
		s, _, ok := normalize(day)
		if !ok {
			continue
		}
		ev.Observed[s] = struct{}{}
		if ev.Start == "" || s < ev.Start {
			ev.Start = s
		}
		if ev.End == "" || s > ev.End {
			ev.End = s
		}
	}
	return ev
}

// Covers reports whether day (an ISO date) falls within the evidence range.
func (ev *Evidence) Covers(day string) bool {
	if ev == nil || ev.Start == "" || ev.End == "" {
		return false
	}
	return ev.Start <= day && day <= ev.End
}

// Has reports whether day was observed as a session.
func (ev *Evidence) Has(day string) bool {
	if ev == nil {
		return false
	}
	_, ok := ev.Observed[day]
	return ok
}

// Days returns the observed sessions sorted chronologically.
func (ev *Evidence) Days() []string {
	if ev == nil {
		return nil
	}
	days := make([]string, 0, len(ev.Observed))
	for d := range ev.Observed {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

type evidenceJSON struct {
	Start string   `json:"start,omitempty"`
	End   string   `json:"end,omitempty"`
	Dates []string `json:"dates"`
}

func (ev *Evidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(evidenceJSON{Start: ev.Start, End: ev.End, Dates: ev.Days()})
}

// UnmarshalJSON reads {"start", "end", "dates"}. Missing boundaries default to
// the extreme observed dates.
func (ev *Evidence) UnmarshalJSON(b []byte) error {
	var j evidenceJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return fmt.Errorf("invalid evidence: %w", err)
	}
	*ev = *NewEvidence(j.Dates)
	if j.Start != "" {
		if _, _, ok := normalize(j.Start); !ok {
			return fmt.Errorf("invalid evidence start %q", j.Start)
		}
		ev.Start = j.Start[:10]
	}
	if j.End != "" {
		if _, _, ok := normalize(j.End); !ok {
			return fmt.Errorf("invalid evidence end %q", j.End)
		}
		ev.End = j.End[:10]
	}
	return nil
}
