package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/gin-gonic/gin"
)

type generateRequest struct {
	Topic  string `json:"topic"`
	Style  string `json:"style"`
	Length string `json:"length"`
}

type analyticsRequest struct {
	Articles []models.ArticleStats `json:"articles"`
}

func (h *handler) generateArticle(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	g, err := h.ai.GenerateArticle(c.Request.Context(), req.Topic, req.Style, req.Length)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// analytics summarises the articles in the body or, when none are sent, the
// caller's own articles.
func (h *handler) analytics(c *gin.Context) {
	var req analyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	if req.Articles == nil {
		own, err := h.articles.ListByAuthor(c.Request.Context(), currentUserID(c))
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		req.Articles = make([]models.ArticleStats, 0, len(own))
		for _, a := range own {
			req.Articles = append(req.Articles, models.ArticleStats{Title: a.Title, Views: a.Views})
		}
	}

	c.JSON(http.StatusOK, h.ai.Analytics(c.Request.Context(), req.Articles))
}

func (h *handler) recommendations(c *gin.Context) {
	c.JSON(http.StatusOK, h.ai.Recommendations(c.Request.Context()))
}
