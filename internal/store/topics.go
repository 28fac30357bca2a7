package store

import (
	"context"

	"github.com/emilythestrangee/news-api/backend/internal/models"
)

func (s *Store) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	if err := s.db.WithContext(ctx).Order("slug").Find(&topics).Error; err != nil {
		return nil, classify(err)
	}
	return topics, nil
}

// CreateTopic inserts topic. A duplicate slug is a UniqueViolation.
func (s *Store) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return classify(s.db.WithContext(ctx).Create(topic).Error)
}

func (s *Store) topicExists(ctx context.Context, slug string) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Topic{}).Where("slug = ?", slug).Count(&n).Error; err != nil {
		return classify(err)
	}
	if n == 0 {
		return notFound("topics", "topic")
	}
	return nil
}
