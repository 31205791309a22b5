package scan

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/document"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// User uploads a medical report for scanning
// --------------------------------------------------
func (h *Handler) ScanReport(c *gin.Context) {
	userID := c.GetString("userID")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	if err := ValidateFileExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	rec, err := h.service.ScanReport(
		c.Request.Context(),
		userID,
		data,
		header.Header.Get("Content-Type"),
		header.Filename,
	)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrDocumentConversion),
			errors.Is(err, document.ErrEmptyDocument):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Could not convert PDF. Try uploading an Image.",
			})
		case errors.Is(err, document.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image file."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rec,
	})
}

// --------------------------------------------------
// User views past scans
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	userID := c.GetString("userID")

	scans, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if scans == nil {
		scans = []ReportScan{}
	}

	c.JSON(http.StatusOK, gin.H{"scans": scans})
}
