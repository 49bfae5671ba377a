package model

import (
	"strings"
	"time"
)

type TimeWindow string

const (
	WindowNow      TimeWindow = "NOW"
	WindowTomorrow TimeWindow = "TOMORROW"
	WindowThisWeek TimeWindow = "THIS_WEEK"
)

// SessionFilter is the read-side filter for the catalog. Empty fields are
// inactive; active predicates combine with logical AND.
type SessionFilter struct {
	Window   TimeWindow `json:"window,omitempty" validate:"omitempty,oneof=NOW TOMORROW THIS_WEEK"`
	Query    string     `json:"query,omitempty" validate:"omitempty,max=120"`
	Language string     `json:"language,omitempty" validate:"omitempty,min=2,max=40"`
}

// Matches evaluates the filter against a session relative to now. It is the
// single predicate every consumer uses, so catalog views cannot disagree on
// what a window or language constraint means.
func (f SessionFilter) Matches(s *Session, now time.Time) bool {
	return f.matchesWindow(s, now) && f.matchesQuery(s) && f.matchesLanguage(s)
}

func (f SessionFilter) matchesWindow(s *Session, now time.Time) bool {
	switch f.Window {
	case WindowNow:
		today := startOfDay(now)
		return !s.StartTime.Before(today) && s.StartTime.Before(today.AddDate(0, 0, 1))
	case WindowTomorrow:
		tomorrow := startOfDay(now).AddDate(0, 0, 1)
		return !s.StartTime.Before(tomorrow) && s.StartTime.Before(tomorrow.AddDate(0, 0, 1))
	default:
		// THIS_WEEK and the empty window are passthrough.
		return true
	}
}

func (f SessionFilter) matchesQuery(s *Session) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Location), q) ||
		strings.Contains(strings.ToLower(s.OperatorName), q)
}

func (f SessionFilter) matchesLanguage(s *Session) bool {
	if f.Language == "" {
		return true
	}
	for _, lang := range s.Captain.Languages {
		if strings.EqualFold(lang, f.Language) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
