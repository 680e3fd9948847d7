package handler

import (
	"log/slog"
	"net/http"

	docsysSvc "docweld/internal/domain/services/docsystem"
	"docweld/internal/httputil"
)

// WeldLogHandler handles weld log HTTP requests
type WeldLogHandler struct {
	service docsysSvc.WeldLogService
	logger  *slog.Logger
}

// NewWeldLogHandler creates a new weld log handler
func NewWeldLogHandler(service docsysSvc.WeldLogService, logger *slog.Logger) *WeldLogHandler {
	return &WeldLogHandler{service: service, logger: logger}
}

// CreateWeldLog handles POST /api/projects/{id}/weld-logs
func (h *WeldLogHandler) CreateWeldLog(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.CreateWeldLogRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ProjectID = r.PathValue("id")
	req.Actor = httputil.GetUserID(r)

	weldLog, err := h.service.CreateWeldLog(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, weldLog)
}

// GetWeldLog handles GET /api/weld-logs/{id}
func (h *WeldLogHandler) GetWeldLog(w http.ResponseWriter, r *http.Request) {
	weldLog, err := h.service.GetWeldLog(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, weldLog)
}

// ListWeldLogs handles GET /api/projects/{id}/weld-logs
func (h *WeldLogHandler) ListWeldLogs(w http.ResponseWriter, r *http.Request) {
	weldLogs, err := h.service.ListWeldLogs(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, weldLogs)
}

// UpdateWeldLog handles PATCH /api/weld-logs/{id}
func (h *WeldLogHandler) UpdateWeldLog(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.UpdateContainerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Actor = httputil.GetUserID(r)

	weldLog, err := h.service.UpdateWeldLog(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, weldLog)
}

// DeleteWeldLog handles DELETE /api/weld-logs/{id}
func (h *WeldLogHandler) DeleteWeldLog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteWeldLog(r.Context(), r.PathValue("id"), httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
