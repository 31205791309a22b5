package predict

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	classifier Classifier
}

func NewHandler(classifier Classifier) *Handler {
	return &Handler{classifier: classifier}
}

func (h *Handler) Predict(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.classifier.Predict(c.Request.Context(), req.Features())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "prediction error: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
