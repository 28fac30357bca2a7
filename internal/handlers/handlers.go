package handlers

import (
	"context"

	"github.com/emilythestrangee/news-api/backend/internal/models"
	"github.com/emilythestrangee/news-api/backend/internal/query"
)

type ArticleStore interface {
	ListArticles(ctx context.Context, q query.ArticleQuery) (models.ArticlePage, error)
	GetArticle(ctx context.Context, id int, withCount bool) (models.Article, error)
	CreateArticle(ctx context.Context, article *models.Article) error
	IncrementArticleVotes(ctx context.Context, id, delta int) (models.Article, error)
	DeleteArticle(ctx context.Context, id int) error
}

type CommentStore interface {
	ListComments(ctx context.Context, articleID int, page query.Page) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	IncrementCommentVotes(ctx context.Context, id, delta int) (models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

type TopicStore interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
	CreateTopic(ctx context.Context, topic *models.Topic) error
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (models.User, error)
}

// Store is everything the handlers need from storage.
type Store interface {
	ArticleStore
	CommentStore
	TopicStore
	UserStore
}

// Handler combines all handler types
type Handler struct {
	API     *APIHandler
	Article *ArticleHandler
	Comment *CommentHandler
	Topic   *TopicHandler
	User    *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(s Store) *Handler {
	return &Handler{
		API:     NewAPIHandler(),
		Article: NewArticleHandler(s),
		Comment: NewCommentHandler(s),
		Topic:   NewTopicHandler(s),
		User:    NewUserHandler(s),
	}
}
