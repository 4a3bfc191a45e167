package siteapi

import (
	"errors"
	"net/http"

	"artist-site/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GET /
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /bio
func Bio(c *gin.Context) {
	q := queries()
	ctx := c.Request.Context()

	selected, err := q.DefaultBiography(ctx)
	if err != nil {
		if errors.Is(err, content.ErrMisconfiguredContent) {
			log.Error().Err(err).Msg("default biography missing")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load biography"})
		return
	}
	renderBio(c, q, selected)
}

// GET /bio/:slug
func BioBySlug(c *gin.Context) {
	q := queries()

	selected, err := q.BiographyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Biography not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load biography"})
		return
	}
	renderBio(c, q, selected)
}

func renderBio(c *gin.Context, q *content.Queries, selected *content.Biography) {
	all, err := q.AllBiographies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load biographies"})
		return
	}
	c.JSON(http.StatusOK, BioResponse{Selected: selected, Biographies: all})
}

// GET /repertoire
func Repertoire(c *gin.Context) {
	q := queries()
	ctx := c.Request.Context()

	lists := make(map[content.Category][]content.RepertoireEntry, len(content.Categories))
	for _, cat := range content.Categories {
		entries, err := q.Repertoire(ctx, cat)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load repertoire"})
			return
		}
		lists[cat] = entries
	}

	c.JSON(http.StatusOK, RepertoireResponse{
		Solo:          lists[content.CategorySolo],
		WithPiano:     lists[content.CategoryWithPiano],
		WithOrchestra: lists[content.CategoryWithOrchestra],
		Chamber:       lists[content.CategoryChamber],
	})
}

// GET /events
func Events(c *gin.Context) {
	events, err := queries().Events(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /media
func Media(c *gin.Context) {
	photos, videos, err := queries().Media(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}
	c.JSON(http.StatusOK, MediaResponse{Photos: photos, Videos: videos})
}

// GET /contacts
func Contacts(c *gin.Context) {
	contacts, err := queries().Contacts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}
