package handler

import (
	"log/slog"
	"net/http"

	models "docweld/internal/domain/models/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
	"docweld/internal/httputil"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	service docsysSvc.DocumentService
	logger  *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service docsysSvc.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, logger: logger}
}

// HealthCheck handles GET /health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetDocument handles GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDocument(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ListDocuments handles GET /api/documents. The container scope comes from
// query parameters; section_id narrows the listing to one section, with
// section_id=none selecting unassigned documents.
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := docsysSvc.ListDocumentsRequest{
		Keys: models.ScopeKeys{
			ProjectID: q.Get("project_id"),
			LibraryID: q.Get("library_id"),
			WeldLogID: q.Get("weld_log_id"),
			WeldID:    q.Get("weld_id"),
		},
	}

	if q.Has("section_id") {
		req.FilterBySection = true
		if sectionID := q.Get("section_id"); sectionID != "none" {
			req.SectionID = &sectionID
		}
	}

	docs, err := h.service.ListDocuments(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}

// RenameDocument handles PATCH /api/documents/{id}
func (h *DocumentHandler) RenameDocument(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.RenameDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Actor = httputil.GetUserID(r)

	doc, err := h.service.RenameDocument(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ReorderDocument handles PATCH /api/documents/{id}/order
func (h *DocumentHandler) ReorderDocument(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.ReorderDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Actor = httputil.GetUserID(r)

	doc, err := h.service.ReorderDocument(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// DeleteDocument handles DELETE /api/documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDocument(r.Context(), r.PathValue("id"), httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DownloadDocument handles GET /api/documents/{id}/download
func (h *DocumentHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	url, err := h.service.DownloadURL(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"url": url})
}
