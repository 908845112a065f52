package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type photoRequest struct {
	ContentType string `json:"content_type"`
}

// presignPhoto hands out a presigned upload URL. The body is optional.
func (h *handler) presignPhoto(c *gin.Context) {
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	up, err := h.photos.PresignUpload(c.Request.Context(), req.ContentType)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, up)
}

// downloadPhoto redirects to a short-lived presigned download URL, so
// stored photo links never expire.
func (h *handler) downloadPhoto(c *gin.Context) {
	url, err := h.photos.PresignDownload(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}
