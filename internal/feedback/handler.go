package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type feedbackRequest struct {
	Rating  int    `json:"rating"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) Submit(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "rating and message are required",
		})
		return
	}

	fb := &Feedback{Rating: req.Rating, Message: req.Message}
	if err := h.repo.Save(c.Request.Context(), fb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Feedback saved",
	})
}
