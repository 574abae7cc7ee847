package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/middleware"
	"github.com/lotuslabs/lotus-arcana-api/internal/models"
)

func adminFromContext(c *gin.Context) *models.AdminClaims {
	value, exists := c.Get(middleware.ContextAdminKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.AdminClaims)
	if !ok {
		return nil
	}
	return claims
}
