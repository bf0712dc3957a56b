package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintDistance(t *testing.T) {
	a := Fingerprint(0)
	b := Fingerprint(0b1011)
	assert.Equal(t, 3, a.Distance(b))
	assert.Equal(t, 3, b.Distance(a))
	assert.Equal(t, 0, b.Distance(b))
	assert.Equal(t, 64, a.Distance(^a))
}

func TestFingerprintText(t *testing.T) {
	f, err := ParseFingerprint("c3a5b4d2e1f00f1e")
	require.NoError(t, err)
	assert.Equal(t, "c3a5b4d2e1f00f1e", f.String())

	_, err = ParseFingerprint("abc")
	assert.True(t, errors.Is(err, ErrInvalidFingerprint))
	_, err = ParseFingerprint("zzzzzzzzzzzzzzzz")
	assert.True(t, errors.Is(err, ErrInvalidFingerprint))

	raw, err := json.Marshal(AdCreative{Fingerprint: &f})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"fingerprint":"c3a5b4d2e1f00f1e"`)
}

func TestDurationDays(t *testing.T) {
	start := date(2024, 1, 1)
	assert.Equal(t, 1, DurationDays(start, start))
	assert.Equal(t, 2, DurationDays(start, date(2024, 1, 2)))
	assert.Equal(t, 367, DurationDays(start, date(2025, 1, 1)))
	assert.Equal(t, 1, DurationDays(date(2024, 2, 1), start))
}

func TestDayOf(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	// 23:30 UTC is already the next day in Kyiv.
	now := time.Date(2024, 5, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2024, 5, 11), DayOf(now, kyiv))
	assert.Equal(t, date(2024, 5, 10), DayOf(now, time.UTC))
}

func TestSnapshotIndexKeepsFirst(t *testing.T) {
	snap := Snapshot{
		{AdID: "1", RawStartText: "first"},
		{AdID: "2"},
		{AdID: "1", RawStartText: "second"},
	}
	idx := snap.Index()
	assert.Len(t, idx, 2)
	assert.Equal(t, "first", idx["1"].RawStartText)
	assert.Equal(t, []string{"1", "2"}, snap.AdIDs())
}

func TestPeriodWindow(t *testing.T) {
	today := date(2024, 3, 15)

	w := PeriodToday.Window(today)
	require.NotNil(t, w.StartOn)
	assert.True(t, w.ActiveOnly)
	assert.Equal(t, today, *w.StartOn)

	w = PeriodWeek.Window(today)
	require.NotNil(t, w.StartFrom)
	assert.Equal(t, date(2024, 3, 8), *w.StartFrom)

	w = PeriodMonth.Window(today)
	require.NotNil(t, w.StartFrom)
	assert.Equal(t, date(2024, 2, 14), *w.StartFrom)

	w = PeriodAll.Window(today)
	assert.False(t, w.ActiveOnly)
	assert.Nil(t, w.StartFrom)
	assert.Nil(t, w.StartOn)

	assert.Equal(t, "on 15.03.2024", PeriodToday.Label(today))
	assert.Equal(t, "from 08.03 to 15.03", PeriodWeek.Label(today))

	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodAll, p)
	_, err = ParsePeriod("year")
	assert.Error(t, err)
}

func TestRunSummaryAdd(t *testing.T) {
	var s RunSummary
	s.Add(BusinessOutcome{Result: &ReconciliationResult{Created: 2, Refreshed: 1, ParseFailures: []ParseFailure{{AdID: "x"}}}})
	s.Add(BusinessOutcome{Stage: StageScrape, Error: "boom"})
	s.Add(BusinessOutcome{Result: &ReconciliationResult{Deactivated: 4}})

	assert.Equal(t, 2, s.Created)
	assert.Equal(t, 1, s.Refreshed)
	assert.Equal(t, 4, s.Deactivated)
	assert.Equal(t, 1, s.ParseFailures)
	assert.Equal(t, 1, s.Failed)
	assert.Len(t, s.Businesses, 3)
}
