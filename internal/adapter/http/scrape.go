package httpadapter

import (
	"context"
	"net/http"

	"adwatch/internal/core/domain"
)

// handleScrape runs a reconciliation pass and returns its summary. The run
// is detached from the request so a client hanging up does not abort it.
// A pass rejected because another one is running yields HTTP 409.
func (h *Handler) handleScrape(w http.ResponseWriter, r *http.Request) {
	summary, err := h.deps.Scrape.RunOnce(context.WithoutCancel(r.Context()))
	if err != nil {
		h.internalError(w, r, "manual scrape error", err)
		return
	}
	status := http.StatusOK
	if summary.Status == domain.RunSkipped {
		status = http.StatusConflict
	}
	h.writeJSON(w, status, summary)
}
