package converter

import (
	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        log.ID,
		ActorRole: log.ActorRole,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
	if log.ActorID != nil {
		resp.ActorID = log.ActorID.String()
	}
	return resp
}

func AuditLogsToResponse(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}
