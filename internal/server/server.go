package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/news-api/backend/internal/config"
	"github.com/emilythestrangee/news-api/backend/internal/database"
	"github.com/emilythestrangee/news-api/backend/internal/handlers"
	"github.com/emilythestrangee/news-api/backend/internal/middleware"
	"github.com/emilythestrangee/news-api/backend/internal/store"
)

type Server struct {
	cfg     config.Config
	db      database.Service
	handler *handlers.Handler
}

// New wires the handlers to a store over db. The caller owns db and closes
// it after the server has shut down.
func New(cfg config.Config, db database.Service) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		handler: handlers.NewHandler(store.New(db.GetDB())),
	}
}

// HTTPServer creates and configures the net/http server
func (s *Server) HTTPServer() *http.Server {
	gin.SetMode(s.cfg.GinMode)

	server := &http.Server{
		Addr:         "0.0.0.0:" + s.cfg.Port,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", s.cfg.Port)
	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:  s.cfg.CORS,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.NoRoute(middleware.NotFound)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		stats := s.db.Health(c.Request.Context())
		status := http.StatusOK
		if stats["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, stats)
	})

	api := r.Group("/api")
	{
		api.GET("", s.handler.API.GetAPI)

		api.GET("/topics", s.handler.Topic.GetTopics)
		api.POST("/topics", s.handler.Topic.CreateTopic)

		api.GET("/articles", s.handler.Article.GetArticles)
		api.POST("/articles", s.handler.Article.CreateArticle)
		api.GET("/articles/:article_id", s.handler.Article.GetArticle)
		api.PATCH("/articles/:article_id", s.handler.Article.VoteArticle)
		api.DELETE("/articles/:article_id", s.handler.Article.DeleteArticle)

		api.GET("/articles/:article_id/comments", s.handler.Comment.GetComments)
		api.POST("/articles/:article_id/comments", s.handler.Comment.CreateComment)

		api.PATCH("/comments/:comment_id", s.handler.Comment.VoteComment)
		api.DELETE("/comments/:comment_id", s.handler.Comment.DeleteComment)

		api.GET("/users", s.handler.User.GetUsers)
		api.GET("/users/:username", s.handler.User.GetUser)
	}

	return r
}
