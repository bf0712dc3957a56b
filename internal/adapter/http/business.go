package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adwatch/internal/core/port"
)

type createBusinessRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	PageID string `json:"page_id" validate:"required,numeric,max=32"`
}

func (h *Handler) handleListBusinesses(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Businesses.ListBusinesses(r.Context())
	if err != nil {
		h.internalError(w, r, "list businesses error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleCreateBusiness starts monitoring a page. Duplicated page ids
// produce HTTP 409.
func (h *Handler) handleCreateBusiness(w http.ResponseWriter, r *http.Request) {
	var req createBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.deps.Businesses.AddBusiness(r.Context(), req.Name, req.PageID)
	switch {
	case errors.Is(err, port.ErrBusinessExists):
		h.writeError(w, http.StatusConflict, "business with this page id already exists")
	case err != nil:
		h.internalError(w, r, "add business error", err)
	default:
		h.writeJSON(w, http.StatusCreated, b)
	}
}

// handleDeleteBusiness removes a business together with its creatives.
func (h *Handler) handleDeleteBusiness(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	b, err := h.deps.Businesses.DeleteBusiness(r.Context(), pageID)
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "business not found")
	case err != nil:
		h.internalError(w, r, "delete business error", err)
	default:
		h.writeJSON(w, http.StatusOK, b)
	}
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
