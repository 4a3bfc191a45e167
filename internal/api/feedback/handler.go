package feedbackapi

import (
	"errors"
	"net/http"

	"artist-site/internal/domain/feedback"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dispatcher *feedback.Dispatcher
}

func NewHandler(d *feedback.Dispatcher) *Handler {
	return &Handler{dispatcher: d}
}

// GET /feedback
func (h *Handler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"email", "subject", "text"}})
}

// POST /feedback
func (h *Handler) Submit(c *gin.Context) {
	var input feedback.Submission
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"form": "malformed request"}})
		return
	}

	err := h.dispatcher.Submit(c.Request.Context(), input)

	var verr *feedback.ValidationError
	var derr *feedback.DeliveryError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"notification": "The message was sent successfully"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.As(err, &derr):
		c.JSON(http.StatusBadGateway, gin.H{"notification": "The message could not be sent, please try again later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
	}
}
