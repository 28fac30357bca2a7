package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/news-api/backend/internal/models"
	"github.com/emilythestrangee/news-api/backend/internal/query"
)

type ArticleHandler struct {
	store ArticleStore
}

func NewArticleHandler(store ArticleStore) *ArticleHandler {
	return &ArticleHandler{store: store}
}

// GetArticles lists articles with sort_by, order, topic, limit and p.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	values, err := query.ParseValues(c.Request.URL.RawQuery)
	if err != nil {
		_ = c.Error(err)
		return
	}
	q, err := query.ParseArticleQuery(values)
	if err != nil {
		_ = c.Error(err)
		return
	}

	page, err := h.store.ListArticles(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetArticle returns a single article. The comment_count key, with any
// value, asks for the aggregated count.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := idParam(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	_, withCount := c.GetQuery("comment_count")

	article, err := h.store.GetArticle(c.Request.Context(), id, withCount)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var input models.CreateArticleRequest
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	imgURL := models.DefaultArticleImgURL
	if input.ArticleImgURL != nil {
		imgURL = *input.ArticleImgURL
	}

	article := models.Article{
		Author:        input.Author,
		Title:         input.Title,
		Body:          input.Body,
		Topic:         input.Topic,
		ArticleImgURL: imgURL,
	}
	if err := h.store.CreateArticle(c.Request.Context(), &article); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) VoteArticle(c *gin.Context) {
	id, err := idParam(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	delta, err := incVotes(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.store.IncrementArticleVotes(c.Request.Context(), id, delta)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle deletes the article together with its comments.
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := idParam(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.store.DeleteArticle(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
