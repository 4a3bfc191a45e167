package adminapi

import (
	"errors"
	"net/http"
	"strconv"

	"artist-site/internal/app/http/middleware"
	"artist-site/internal/domain/access"
	"artist-site/internal/domain/admin"
	"artist-site/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	surface *admin.Surface
}

func NewHandler(s *admin.Surface) *Handler {
	return &Handler{surface: s}
}

// GET /admin
func (h *Handler) Dashboard(c *gin.Context) {
	entities, err := h.surface.Entities(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entities": entities})
}

// GET /admin/:entity
func (h *Handler) List(c *gin.Context) {
	records, err := h.surface.List(c.Request.Context(), middleware.SessionFrom(c), c.Param("entity"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /admin/:entity/:id
func (h *Handler) Read(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	id, ok := parseID(c, sess, h.surface)
	if !ok {
		return
	}
	rec, err := h.surface.Read(c.Request.Context(), sess, c.Param("entity"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /admin/:entity
func (h *Handler) Create(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	input, ok := bindFields(c, sess, h.surface)
	if !ok {
		return
	}
	rec, err := h.surface.Create(c.Request.Context(), sess, c.Param("entity"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// PUT /admin/:entity/:id
func (h *Handler) Update(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	id, ok := parseID(c, sess, h.surface)
	if !ok {
		return
	}
	input, ok := bindFields(c, sess, h.surface)
	if !ok {
		return
	}
	rec, err := h.surface.Update(c.Request.Context(), sess, c.Param("entity"), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DELETE /admin/:entity/:id
func (h *Handler) Delete(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	id, ok := parseID(c, sess, h.surface)
	if !ok {
		return
	}
	if err := h.surface.Delete(c.Request.Context(), sess, c.Param("entity"), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads :id. A malformed id is reported as Forbidden to callers
// without a session so the route shape reveals nothing.
func parseID(c *gin.Context, sess access.Session, s *admin.Surface) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err == nil && id > 0 {
		return uint(id), true
	}
	if _, gerr := s.Entities(c.Request.Context(), sess); gerr != nil {
		respondError(c, gerr)
		return 0, false
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	return 0, false
}

// bindFields decodes the JSON body into a field map. A malformed body is
// a 400 only for authorized callers.
func bindFields(c *gin.Context, sess access.Session, s *admin.Surface) (map[string]any, bool) {
	input := map[string]any{}
	if err := c.ShouldBindJSON(&input); err == nil {
		return input, true
	}
	if _, gerr := s.Entities(c.Request.Context(), sess); gerr != nil {
		respondError(c, gerr)
		return nil, false
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"body": "malformed JSON object"}})
	return nil, false
}

func respondError(c *gin.Context, err error) {
	var verr *admin.ValidationError
	switch {
	case errors.Is(err, access.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, admin.ErrUnknownEntity):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown entity"})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, content.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Record conflicts with an existing one"})
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("admin operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
