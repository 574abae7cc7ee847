package models

import "time"

// AuditAction constants represent moderator actions to be logged.
const (
	AuditActionApprove = "approve"
	AuditActionReject  = "reject"
	AuditActionDelete  = "delete"
	AuditActionPurge   = "purge"
)

// Audit resource types.
const (
	AuditResourceDraft  = "draft"
	AuditResourceCourse = "course"
)

// AuditLog is one append-only record in admin_audit_logs. The service writes
// these on every moderation decision and never reads them back.
type AuditLog struct {
	ID           string    `db:"id" json:"id"`
	AdminID      string    `db:"admin_id" json:"admin_id"`
	Action       string    `db:"action" json:"action"`
	ResourceType string    `db:"resource_type" json:"resource_type"`
	ResourceID   string    `db:"resource_id" json:"resource_id"`
	Metadata     []byte    `db:"metadata" json:"metadata,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
