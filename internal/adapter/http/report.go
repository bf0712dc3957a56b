package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

// parseReportRequest reads the optional `period` (today, week, month, all)
// and `business_id` query parameters.
func parseReportRequest(r *http.Request) (port.ReportRequest, error) {
	q := r.URL.Query()
	period, err := domain.ParsePeriod(q.Get("period"))
	if err != nil {
		return port.ReportRequest{}, err
	}
	req := port.ReportRequest{Period: period}
	if bid := q.Get("business_id"); bid != "" {
		id, err := strconv.ParseInt(bid, 10, 64)
		if err != nil {
			return port.ReportRequest{}, fmt.Errorf("invalid business_id %q", bid)
		}
		req.BusinessID = &id
	}
	return req, nil
}

func (h *Handler) handleUniqueReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := h.deps.Reports.UniqueReport(r.Context(), req)
	if h.reportFailed(w, r, err) {
		return
	}
	h.writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) handleFullReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := h.deps.Reports.FullReport(r.Context(), req)
	if h.reportFailed(w, r, err) {
		return
	}
	h.writeJSON(w, http.StatusOK, rep)
}

// handleFullReportXLSX returns the full report as a workbook with one sheet
// per business.
func (h *Handler) handleFullReportXLSX(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := h.deps.Reports.FullReport(r.Context(), req)
	if h.reportFailed(w, r, err) {
		return
	}
	data, err := fullReportWorkbook(rep)
	if err != nil {
		h.internalError(w, r, "build workbook error", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="adwatch_full_%s.xlsx"`, rep.Period))
	_, _ = w.Write(data)
}

func (h *Handler) reportFailed(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "business not found")
	default:
		h.internalError(w, r, "report error", err)
	}
	return true
}
