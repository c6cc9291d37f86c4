package handler

import (
	"net/http"
	"strconv"

	"github.com/Dixit-Goti/hospital-management/internal/usecase"
	"github.com/Dixit-Goti/hospital-management/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List returns a page of the audit trail, newest first
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, pageInfo, err := h.auditLogUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.Err(w, err)
		return
	}

	meta := &response.Meta{
		Page:       pageInfo.Page,
		Limit:      pageInfo.Limit,
		Total:      pageInfo.Total,
		TotalPages: pageInfo.TotalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs, meta)
}
