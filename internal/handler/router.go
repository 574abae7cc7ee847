package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/middleware"
	"github.com/lotuslabs/lotus-arcana-api/internal/models"
)

type sessionValidator interface {
	ValidateToken(token string) (*models.AdminClaims, error)
}

// Router groups the API handlers and wires them onto a gin engine.
type Router struct {
	Intake     *IntakeHandler
	Moderation *ModerationHandler
	Catalog    *CatalogHandler
	Session    *SessionHandler
	Export     *ExportHandler
	Auth       sessionValidator
}

// Register mounts all API routes under the given prefix. Session creation and
// teardown stay outside the admin gate; everything else under /admin requires
// a valid admin session token.
func (r *Router) Register(engine *gin.Engine, prefix string) {
	api := engine.Group(prefix)

	api.POST("/drafts", r.Intake.Submit)
	api.GET("/courses", r.Catalog.ListApproved)
	api.POST("/courses/:id/views", r.Catalog.IncrementViews)

	api.POST("/admin/session", r.Session.Create)
	api.DELETE("/admin/session", r.Session.Destroy)

	admin := api.Group("/admin", middleware.AdminSession(r.Auth))
	admin.GET("/session", r.Session.Check)
	admin.GET("/drafts", r.Moderation.ListPending)
	admin.POST("/drafts/:id/approve", r.Moderation.Approve)
	admin.POST("/drafts/:id/reject", r.Moderation.Reject)
	admin.POST("/maintenance/drafts/purge", r.Moderation.PurgePublished)
	admin.GET("/courses", r.Catalog.ListAll)
	admin.DELETE("/courses/:id", r.Catalog.Delete)
	admin.GET("/export/courses", r.Export.Catalog)
}
