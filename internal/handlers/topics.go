package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/news-api/backend/internal/models"
)

type TopicHandler struct {
	store TopicStore
}

func NewTopicHandler(store TopicStore) *TopicHandler {
	return &TopicHandler{store: store}
}

func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.store.ListTopics(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// CreateTopic adds a topic without an image. The slug must be unused.
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var input models.CreateTopicRequest
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	topic := models.Topic{Slug: input.Slug, Description: input.Description}
	if err := h.store.CreateTopic(c.Request.Context(), &topic); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
