package routes

import (
	adminapi "artist-site/internal/api/admin"
	authapi "artist-site/internal/api/auth"
	feedbackapi "artist-site/internal/api/feedback"
	siteapi "artist-site/internal/api/site"
	"artist-site/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups the handlers that carry configured dependencies.
// Public pages read database.DB directly.
type Handlers struct {
	Auth     *authapi.Handler
	Feedback *feedbackapi.Handler
	Admin    *adminapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", siteapi.Home)
	r.GET("/bio", siteapi.Bio)
	r.GET("/bio/:slug", siteapi.BioBySlug)
	r.GET("/repertoire", siteapi.Repertoire)
	r.GET("/events", siteapi.Events)
	r.GET("/media", siteapi.Media)
	r.GET("/contacts", siteapi.Contacts)

	r.GET("/feedback", h.Feedback.Form)
	r.POST("/feedback", h.Feedback.Submit)

	// Session context for login state and admin
	withSession := r.Group("/")
	withSession.Use(middleware.Session())

	withSession.GET("/login", h.Auth.LoginForm)
	withSession.POST("/login", h.Auth.Login)
	withSession.GET("/logout", h.Auth.Logout)

	// Admin routes; every handler is gated by the admin surface itself
	admin := withSession.Group("/admin")
	admin.GET("", h.Admin.Dashboard)
	admin.GET("/:entity", h.Admin.List)
	admin.POST("/:entity", h.Admin.Create)
	admin.GET("/:entity/:id", h.Admin.Read)
	admin.PUT("/:entity/:id", h.Admin.Update)
	admin.DELETE("/:entity/:id", h.Admin.Delete)
}
