package handler

import (
	"log/slog"
	"net/http"

	docsysSvc "docweld/internal/domain/services/docsystem"
	"docweld/internal/httputil"
)

// LibraryHandler handles library HTTP requests
type LibraryHandler struct {
	service docsysSvc.LibraryService
	logger  *slog.Logger
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(service docsysSvc.LibraryService, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{service: service, logger: logger}
}

// CreateLibrary handles POST /api/libraries
func (h *LibraryHandler) CreateLibrary(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.CreateContainerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Actor = httputil.GetUserID(r)

	library, err := h.service.CreateLibrary(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, library)
}

// GetLibrary handles GET /api/libraries/{id}
func (h *LibraryHandler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	library, err := h.service.GetLibrary(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, library)
}

// ListLibraries handles GET /api/libraries
func (h *LibraryHandler) ListLibraries(w http.ResponseWriter, r *http.Request) {
	libraries, err := h.service.ListLibraries(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, libraries)
}

// UpdateLibrary handles PATCH /api/libraries/{id}
func (h *LibraryHandler) UpdateLibrary(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.UpdateContainerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Actor = httputil.GetUserID(r)

	library, err := h.service.UpdateLibrary(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, library)
}

// DeleteLibrary handles DELETE /api/libraries/{id}
func (h *LibraryHandler) DeleteLibrary(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLibrary(r.Context(), r.PathValue("id"), httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
