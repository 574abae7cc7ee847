package service

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	"github.com/lotuslabs/lotus-arcana-api/pkg/config"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
)

const tokenIssuer = "lotus-arcana-api"

// AdminAuthService turns knowledge of the shared admin access key into a
// bounded, signed session token. The check is entirely stateless: no
// server-side session table, just a signed claim verified per request.
type AdminAuthService struct {
	cfg    config.AdminConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewAdminAuthService constructs the service.
func NewAdminAuthService(cfg config.AdminConfig, logger *zap.Logger) *AdminAuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminAuthService{cfg: cfg, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// CreateSession verifies the access key and issues a signed admin token.
func (s *AdminAuthService) CreateSession(accessKey string) (string, time.Time, error) {
	if !s.verifyAccessKey(accessKey) {
		return "", time.Time{}, appErrors.ErrInvalidAccessKey
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.SessionTTL)
	claims := &models.AdminClaims{
		SessionID: uuid.NewString(),
		Role:      models.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session token")
	}
	s.logger.Info("admin session created", zap.String("session_id", claims.SessionID), zap.Time("expires_at", expiresAt))
	return token, expiresAt, nil
}

// ValidateToken parses and verifies a session token.
func (s *AdminAuthService) ValidateToken(token string) (*models.AdminClaims, error) {
	claims := &models.AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired session token")
	}
	return claims, nil
}

// verifyAccessKey prefers a bcrypt hash from config so the plaintext key need
// not live in the environment; otherwise it falls back to a constant-time
// comparison against the plain key.
func (s *AdminAuthService) verifyAccessKey(accessKey string) bool {
	if accessKey == "" {
		return false
	}
	if s.cfg.AccessKeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AccessKeyHash), []byte(accessKey)) == nil
	}
	if s.cfg.AccessKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.AccessKey), []byte(accessKey)) == 1
}
