package dto

import "time"

// CreateSessionRequest carries the shared admin access key.
type CreateSessionRequest struct {
	AccessKey string `json:"access_key" validate:"required"`
}

// SessionResponse returns the issued session token.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
