package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/news-api/backend/internal/models"
	"github.com/emilythestrangee/news-api/backend/internal/query"
)

type CommentHandler struct {
	store CommentStore
}

func NewCommentHandler(store CommentStore) *CommentHandler {
	return &CommentHandler{store: store}
}

// GetComments returns a page of an article's comments, newest first
func (h *CommentHandler) GetComments(c *gin.Context) {
	articleID, err := idParam(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	values, err := query.ParseValues(c.Request.URL.RawQuery)
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := query.ParsePage(values)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.store.ListComments(c.Request.Context(), articleID, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment creates a new comment on an article
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := idParam(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var input models.CreateCommentRequest
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	comment := models.Comment{
		ArticleID: articleID,
		Author:    input.Username,
		Body:      input.Body,
	}
	if err := h.store.CreateComment(c.Request.Context(), &comment); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) VoteComment(c *gin.Context) {
	id, err := idParam(c, "comment_id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	delta, err := incVotes(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.store.IncrementCommentVotes(c.Request.Context(), id, delta)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := idParam(c, "comment_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.store.DeleteComment(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
