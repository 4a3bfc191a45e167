package auth

import (
	"net/http"

	"artist-site/internal/app/http/middleware"
	"artist-site/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	auth         *access.Authenticator
	sessions     *access.Sessions
	secureCookie bool
}

// NewHandler wires login/logout. secureCookie marks the session cookie
// Secure and should be on everywhere except local development.
func NewHandler(auth *access.Authenticator, sessions *access.Sessions, secureCookie bool) *Handler {
	return &Handler{auth: auth, sessions: sessions, secureCookie: secureCookie}
}

// GET /login
func (h *Handler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"login", "password"}})
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Login    string `json:"login" form:"login" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"notification": "Incorrect data"})
		return
	}

	if !h.auth.Authenticate(input.Login, input.Password) {
		log.Warn().Str("ip", c.ClientIP()).Msg("admin login failed")
		c.JSON(http.StatusUnauthorized, gin.H{"notification": "Incorrect data"})
		return
	}

	sess, err := h.sessions.Issue(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("session issue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	h.setCookie(c, sess.Token, int(h.sessions.TTL().Seconds()))
	log.Info().Str("ip", c.ClientIP()).Msg("admin logged in")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// GET /logout
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Revoke(c.Request.Context(), middleware.SessionFrom(c))
	h.setCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.secureCookie, true)
}
