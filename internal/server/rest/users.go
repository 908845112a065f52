package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	UserName string  `json:"username"`
	Email    string  `json:"email"`
	Photo    *string `json:"photo"`
}

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	user, token, err := h.users.Register(c.Request.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": user, "token": token})
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": user, "token": token})
}

func (h *handler) profile(c *gin.Context) {
	p, err := h.users.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), currentUserID(c), req.UserName, req.Email, req.Photo)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "user": user})
}

func (h *handler) userArticles(c *gin.Context) {
	list, err := h.articles.ListByAuthor(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) userLikes(c *gin.Context) {
	list, err := h.likes.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) userComments(c *gin.Context) {
	list, err := h.comments.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) userFavorites(c *gin.Context) {
	list, err := h.articles.ListFavorites(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
