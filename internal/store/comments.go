package store

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm/clause"

	"github.com/emilythestrangee/news-api/backend/internal/models"
	"github.com/emilythestrangee/news-api/backend/internal/query"
)

// ListComments returns one page of an article's comments, newest first. The
// article probe runs alongside the page query so that an unknown article is
// reported as missing rather than as an empty page.
func (s *Store) ListComments(ctx context.Context, articleID int, page query.Page) ([]models.Comment, error) {
	var comments []models.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.articleExists(gctx, articleID)
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("article_id = ?", articleID).
			Order("created_at DESC").
			Order("comment_id DESC").
			Limit(page.Limit).
			Offset(page.Offset()).
			Find(&comments).Error
		return classify(err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// CreateComment relies on the foreign keys to reject unknown articles and
// authors; the violation surfaces as a ForeignKeyViolation and no row is
// written.
func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	return classify(s.db.WithContext(ctx).Clauses(clause.Returning{}).Create(comment).Error)
}

func (s *Store) IncrementCommentVotes(ctx context.Context, id, delta int) (models.Comment, error) {
	var comment models.Comment

	res := s.db.WithContext(ctx).
		Raw("UPDATE comments SET votes = votes + ? WHERE comment_id = ? RETURNING *", delta, id).
		Scan(&comment)
	if res.Error != nil {
		return models.Comment{}, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Comment{}, notFound("comments", "comment_id")
	}
	return comment, nil
}

func (s *Store) DeleteComment(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Where("comment_id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("comments", "comment_id")
	}
	return nil
}
