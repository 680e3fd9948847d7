package handler

import (
	"log/slog"
	"net/http"

	models "docweld/internal/domain/models/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
	"docweld/internal/httputil"
)

// SectionHandler handles section HTTP requests
type SectionHandler struct {
	service docsysSvc.SectionService
	logger  *slog.Logger
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(service docsysSvc.SectionService, logger *slog.Logger) *SectionHandler {
	return &SectionHandler{service: service, logger: logger}
}

// CreateSection handles POST /api/sections
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.CreateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Actor = httputil.GetUserID(r)

	section, err := h.service.CreateSection(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, section)
}

// ListSections handles GET /api/sections. The container scope comes from the
// project_id or library_id query parameter.
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	keys := models.ScopeKeys{
		ProjectID: r.URL.Query().Get("project_id"),
		LibraryID: r.URL.Query().Get("library_id"),
	}

	sections, err := h.service.ListSections(r.Context(), keys)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sections)
}

// UpdateSection handles PATCH /api/sections/{id}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.UpdateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Actor = httputil.GetUserID(r)

	section, err := h.service.UpdateSection(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// DeleteSection handles DELETE /api/sections/{id}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSection(r.Context(), r.PathValue("id"), httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
