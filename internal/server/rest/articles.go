package rest

import (
	"net/http"

	"github.com/dmitrijs2005/newsroom/internal/server/models"
	"github.com/gin-gonic/gin"
)

type articleRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
	Photo       *string  `json:"photo"`
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *handler) listArticles(c *gin.Context) {
	list, err := h.articles.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) getArticle(c *gin.Context) {
	a, err := h.articles.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *handler) createArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	a, err := h.articles.Create(c.Request.Context(), currentUserID(c), &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
		Photo:       req.Photo,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info(c.Request.Context(), "article created", "slug", a.Slug, "author_id", a.AuthorID)
	c.JSON(http.StatusCreated, gin.H{"message": "article created", "article": a})
}

func (h *handler) updateArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	a, err := h.articles.Update(c.Request.Context(), c.Param("slug"), currentUserID(c), models.ArticleUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article updated", "article": a})
}

func (h *handler) deleteArticle(c *gin.Context) {
	if err := h.articles.Delete(c.Request.Context(), c.Param("slug"), currentUserID(c)); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

func (h *handler) listComments(c *gin.Context) {
	list, err := h.comments.ListForArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) addComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), c.Param("slug"), currentUserID(c), req.Text)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "comment added", "comment": comment})
}

func (h *handler) toggleLike(c *gin.Context) {
	state, err := h.likes.Toggle(c.Request.Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	msg := "like removed"
	if state.Liked {
		msg = "like added"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "liked": state.Liked, "likes_count": state.LikesCount})
}
