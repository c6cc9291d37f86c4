package dto

import "time"

// AuditPage carries the pagination actually applied to an audit listing,
// after defaulting and clamping, so response metadata reflects the real page.
type AuditPage struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	ActorID   string                 `json:"actorId,omitempty"`
	ActorRole string                 `json:"actorRole,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
