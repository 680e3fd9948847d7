package handler

import (
	"log/slog"
	"net/http"

	models "docweld/internal/domain/models/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
	"docweld/internal/httputil"
)

// ImportHandler handles cross-container import HTTP requests
type ImportHandler struct {
	service docsysSvc.ImportService
	logger  *slog.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(service docsysSvc.ImportService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{service: service, logger: logger}
}

// importRequest is the wire shape of a batch import
type importRequest struct {
	Items           []docsysSvc.ImportItem  `json:"items"`
	DestinationType string                  `json:"destination_type"`
	DestinationID   string                  `json:"destination_id"`
	Context         docsysSvc.ImportContext `json:"context"`
}

// Import handles POST /api/import. Items are imported with per-item failure
// isolation; the response always carries the full outcome unless the
// destination itself is unroutable.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Items) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "items is required")
		return
	}

	result, err := h.service.ImportItems(r.Context(), &docsysSvc.ImportItemsRequest{
		Items:           req.Items,
		DestinationType: models.DestinationType(req.DestinationType),
		DestinationID:   req.DestinationID,
		Context:         req.Context,
		Actor:           httputil.GetUserID(r),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	status := http.StatusOK
	if len(result.Errors) > 0 && len(result.Sections) == 0 && len(result.Documents) == 0 {
		status = http.StatusUnprocessableEntity
	}
	httputil.RespondJSON(w, status, result)
}
