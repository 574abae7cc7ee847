package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/dto"
	"github.com/lotuslabs/lotus-arcana-api/internal/middleware"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
	"github.com/lotuslabs/lotus-arcana-api/pkg/response"
)

type sessionService interface {
	CreateSession(accessKey string) (string, time.Time, error)
}

// SessionHandler manages the admin session gate.
type SessionHandler struct {
	service      sessionService
	secureCookie bool
}

// NewSessionHandler constructs the handler. secureCookie should be true in
// production so the session cookie is HTTPS-only.
func NewSessionHandler(service sessionService, secureCookie bool) *SessionHandler {
	return &SessionHandler{service: service, secureCookie: secureCookie}
}

// Create godoc
// @Summary Exchange the admin access key for a session token
// @Tags Admin Session
// @Accept json
// @Produce json
// @Param payload body dto.CreateSessionRequest true "Access key"
// @Success 201 {object} response.Envelope
// @Router /admin/session [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessKey == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "access_key is required"))
		return
	}
	token, expiresAt, err := h.service.CreateSession(req.AccessKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secureCookie, true)
	response.Created(c, dto.SessionResponse{Token: token, ExpiresAt: expiresAt})
}

// Check godoc
// @Summary Report whether the current session token is valid
// @Tags Admin Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/session [get]
func (h *SessionHandler) Check(c *gin.Context) {
	// Reaching this handler means the session middleware accepted the token.
	response.OK(c, gin.H{"authenticated": true})
}

// Destroy godoc
// @Summary Clear the admin session cookie
// @Tags Admin Session
// @Produce json
// @Success 204 "No Content"
// @Router /admin/session [delete]
func (h *SessionHandler) Destroy(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	response.NoContent(c)
}
