package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/emilythestrangee/news-api/backend/internal/models"
)

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, classify(err)
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, notFound("users", "username")
	}
	if err != nil {
		return models.User{}, classify(err)
	}
	return user, nil
}
