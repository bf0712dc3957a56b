package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoStartDate  = errors.New("no start date in text")
	ErrUnknownMonth = errors.New("unknown month name")
	ErrInvalidDate  = errors.New("invalid calendar date")
)

// MonthPrefix maps the leading letters of a localized month name to a month.
// Prefixes are tried in table order, so longer forms must come before the
// shorter ones they share a stem with.
type MonthPrefix struct {
	Prefix string
	Month  time.Month
}

// DateLocale describes how one ad library language renders the start of
// run. Every pattern must define the named groups day, month and year.
type DateLocale struct {
	Name     string
	Patterns []*regexp.Regexp
	Months   []MonthPrefix
}

// DateLocales is consulted in order by ParseStartDate. Supporting another
// ad library language means appending a locale here.
var DateLocales = []DateLocale{
	{
		Name: "uk",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Початок показу:\s*(?P<day>\d{1,2})\s+(?P<month>\p{L}+)\.?\s+(?P<year>\d{4})`),
		},
		Months: []MonthPrefix{
			{"січ", time.January},
			{"лют", time.February},
			{"бер", time.March},
			{"квіт", time.April},
			{"кві", time.April},
			{"трав", time.May},
			{"черв", time.June},
			{"чер", time.June},
			{"лип", time.July},
			{"серп", time.August},
			{"вер", time.September},
			{"сер", time.August},
			{"жовт", time.October},
			{"жов", time.October},
			{"лис", time.November},
			{"груд", time.December},
			{"гру", time.December},
		},
	},
	{
		Name: "en",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Started running on\s*(?P<day>\d{1,2})\s+(?P<month>\p{L}+)\.?,?\s+(?P<year>\d{4})`),
			regexp.MustCompile(`(?i)Started running on\s*(?P<month>\p{L}+)\.?\s+(?P<day>\d{1,2}),?\s+(?P<year>\d{4})`),
		},
		Months: []MonthPrefix{
			{"jan", time.January},
			{"feb", time.February},
			{"mar", time.March},
			{"apr", time.April},
			{"may", time.May},
			{"jun", time.June},
			{"jul", time.July},
			{"aug", time.August},
			{"sep", time.September},
			{"oct", time.October},
			{"nov", time.November},
			{"dec", time.December},
		},
	},
}

// ParseStartDate extracts the date an ad started running from the text of
// its card. The returned time is midnight UTC of that date.
func ParseStartDate(text string) (time.Time, error) {
	for _, loc := range DateLocales {
		for _, re := range loc.Patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			return loc.date(
				m[re.SubexpIndex("day")],
				m[re.SubexpIndex("month")],
				m[re.SubexpIndex("year")],
			)
		}
	}
	return time.Time{}, ErrNoStartDate
}

func (l DateLocale) month(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	for _, p := range l.Months {
		if strings.HasPrefix(name, p.Prefix) {
			return p.Month, true
		}
	}
	return 0, false
}

func (l DateLocale) date(dayText, monthText, yearText string) (time.Time, error) {
	month, ok := l.month(monthText)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q (%s)", ErrUnknownMonth, monthText, l.Name)
	}
	day, _ := strconv.Atoi(dayText)
	year, _ := strconv.Atoi(yearText)

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("%w: %s %s %s", ErrInvalidDate, dayText, monthText, yearText)
	}
	return t, nil
}

var similarityHintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`використовуються в\s+(\d+)\s+оголошеннях`),
	regexp.MustCompile(`(?i)used in\s+(\d+)\s+ads`),
}

// ParseSimilarityHint returns the number of ads the library reports as
// sharing this creative, or 0 when the card does not say.
func ParseSimilarityHint(text string) int {
	for _, re := range similarityHintPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				return n
			}
		}
	}
	return 0
}
