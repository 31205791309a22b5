package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const slowReply = "I apologize, I'm thinking a bit slow right now. Could you ask that again?"

type Handler struct {
	completer Completer
}

func NewHandler(completer Completer) *Handler {
	return &Handler{completer: completer}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.completer.Complete(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if reply == "" {
		reply = slowReply
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
