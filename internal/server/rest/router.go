package rest

import (
	"net/http"

	"github.com/dmitrijs2005/newsroom/internal/logging"
	"github.com/gin-gonic/gin"
)

// Deps are the collaborators of the API handlers.
type Deps struct {
	Users          UserService
	Articles       ArticleService
	Comments       CommentService
	Likes          LikeService
	Photos         PhotoService
	AI             AIService
	Auth           Authenticator
	Logger         logging.Logger
	AllowedOrigins []string
}

type handler struct {
	users    UserService
	articles ArticleService
	comments CommentService
	likes    LikeService
	photos   PhotoService
	ai       AIService
	logger   logging.Logger
}

// NewRouter builds the gin engine serving the /api routes.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	h := &handler{
		users:    d.Users,
		articles: d.Articles,
		comments: d.Comments,
		likes:    d.Likes,
		photos:   d.Photos,
		ai:       d.AI,
		logger:   logger,
	}

	r := gin.New()
	r.Use(RequestLogger(logger), Recovery(logger), CORS(d.AllowedOrigins))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	api := r.Group("/api")
	api.GET("/test", h.ping)
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.GET("/articles", h.listArticles)
	api.GET("/articles/:slug", h.getArticle)
	api.GET("/articles/:slug/comments", h.listComments)
	api.GET("/photos/*key", h.downloadPhoto)

	auth := api.Group("")
	auth.Use(RequireAuth(d.Auth))

	auth.GET("/users/profile", h.profile)
	auth.PUT("/users/profile", h.updateProfile)
	auth.GET("/users/articles", h.userArticles)
	auth.GET("/users/likes", h.userLikes)
	auth.GET("/users/comments", h.userComments)
	auth.GET("/users/favorites", h.userFavorites)

	auth.POST("/articles", h.createArticle)
	auth.PUT("/articles/:slug", h.updateArticle)
	auth.DELETE("/articles/:slug", h.deleteArticle)
	auth.POST("/articles/:slug/comments", h.addComment)
	auth.POST("/articles/:slug/like", h.toggleLike)

	auth.POST("/uploads/photo", h.presignPhoto)

	auth.POST("/ai/generate-article", h.generateArticle)
	auth.POST("/ai/analytics", h.analytics)
	auth.GET("/ai/recommendations", h.recommendations)

	return r
}

func (h *handler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
