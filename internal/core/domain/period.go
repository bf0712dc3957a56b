package domain

import (
	"fmt"
	"time"
)

// Period selects which creatives a report covers.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod validates a period name. An empty name means PeriodAll.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return p, nil
	case "":
		return PeriodAll, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// PeriodWindow is the start-date constraint a period translates to. Every
// period except PeriodAll only covers creatives that are still running.
type PeriodWindow struct {
	ActiveOnly bool
	StartOn    *time.Time
	StartFrom  *time.Time
}

// Window resolves p against today.
func (p Period) Window(today time.Time) PeriodWindow {
	switch p {
	case PeriodToday:
		return PeriodWindow{ActiveOnly: true, StartOn: &today}
	case PeriodWeek:
		from := today.AddDate(0, 0, -7)
		return PeriodWindow{ActiveOnly: true, StartFrom: &from}
	case PeriodMonth:
		from := today.AddDate(0, 0, -30)
		return PeriodWindow{ActiveOnly: true, StartFrom: &from}
	default:
		return PeriodWindow{}
	}
}

// Label is the human-readable description of p used as a report subtitle.
func (p Period) Label(today time.Time) string {
	switch p {
	case PeriodToday:
		return "on " + today.Format("02.01.2006")
	case PeriodWeek:
		return "from " + today.AddDate(0, 0, -7).Format("02.01") + " to " + today.Format("02.01")
	case PeriodMonth:
		return "last 30 days"
	default:
		return "all time"
	}
}
