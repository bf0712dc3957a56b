package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParseFailure is an observed ad that was not stored because its start date
// could not be read. It may succeed on a later run.
type ParseFailure struct {
	AdID   string `json:"ad_id"`
	Reason string `json:"reason"`
}

// ReconciliationResult counts what one business's reconciliation changed.
type ReconciliationResult struct {
	BusinessID    int64          `json:"business_id"`
	Observed      int            `json:"observed"`
	Created       int            `json:"created"`
	Refreshed     int            `json:"refreshed"`
	Deactivated   int            `json:"deactivated"`
	ParseFailures []ParseFailure `json:"parse_failures,omitempty"`
}

// EmptySnapshot reports that nothing was observed for the business. Any
// previously active creatives have still been deactivated.
func (r ReconciliationResult) EmptySnapshot() bool {
	return r.Observed == 0
}

// FailureStage names the step a business failed in.
type FailureStage string

const (
	StageScrape    FailureStage = "scrape"
	StageReconcile FailureStage = "reconcile"
)

// BusinessOutcome is the per-business part of a run summary. Exactly one of
// Result and Error is set.
type BusinessOutcome struct {
	Business Business              `json:"business"`
	Result   *ReconciliationResult `json:"result,omitempty"`
	Stage    FailureStage          `json:"stage,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// Failed reports whether the business could not be reconciled.
func (o BusinessOutcome) Failed() bool {
	return o.Error != ""
}

// RunStatus distinguishes a run that did work from the no-op outcomes.
type RunStatus string

const (
	RunCompleted    RunStatus = "completed"
	RunSkipped      RunStatus = "skipped"
	RunNoBusinesses RunStatus = "no_businesses"
	// RunFailed is only reported to observers. Callers of RunOnce get an
	// error instead.
	RunFailed RunStatus = "failed"
)

// RunSummary describes one pass of the scrape coordinator.
type RunSummary struct {
	RunID      uuid.UUID         `json:"run_id"`
	Status     RunStatus         `json:"status"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Businesses []BusinessOutcome `json:"businesses,omitempty"`

	Created       int `json:"created"`
	Refreshed     int `json:"refreshed"`
	Deactivated   int `json:"deactivated"`
	ParseFailures int `json:"parse_failures"`
	Failed        int `json:"failed_businesses"`
}

// Add folds a business outcome into the summary totals.
func (s *RunSummary) Add(o BusinessOutcome) {
	s.Businesses = append(s.Businesses, o)
	if o.Failed() {
		s.Failed++
		return
	}
	if o.Result != nil {
		s.Created += o.Result.Created
		s.Refreshed += o.Result.Refreshed
		s.Deactivated += o.Result.Deactivated
		s.ParseFailures += len(o.Result.ParseFailures)
	}
}
