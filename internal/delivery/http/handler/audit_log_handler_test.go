package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/dto"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditLogUsecase struct {
	list func(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *dto.AuditPage, error)
}

func (f *fakeAuditLogUsecase) List(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *dto.AuditPage, error) {
	return f.list(ctx, page, limit)
}

func TestAuditLogList_MetaReflectsClampedLimit(t *testing.T) {
	h := NewAuditLogHandler(&fakeAuditLogUsecase{
		list: func(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *dto.AuditPage, error) {
			// Raw query values pass through; defaulting and clamping live
			// in the usecase.
			assert.Equal(t, 0, page)
			assert.Equal(t, 500, limit)
			return []dto.AuditLogResponse{}, &dto.AuditPage{Page: 1, Limit: 100, Total: 250, TotalPages: 3}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.List(rec, authenticatedRequest(http.MethodGet, "/api/audit-logs?limit=500", "", entity.RoleDoctor))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 100, resp.Meta.Limit)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
