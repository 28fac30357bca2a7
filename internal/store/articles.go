package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emilythestrangee/news-api/backend/internal/models"
	"github.com/emilythestrangee/news-api/backend/internal/query"
)

const selectArticleWithCount = `SELECT articles.*, COUNT(comments.comment_id)::INT AS comment_count
FROM articles LEFT JOIN comments ON articles.article_id = comments.article_id
WHERE articles.article_id = ? GROUP BY articles.article_id`

// ListArticles runs the page query, the count query and, when a topic filter
// is set, the topic probe concurrently. The first failure wins and no page is
// returned.
func (s *Store) ListArticles(ctx context.Context, q query.ArticleQuery) (models.ArticlePage, error) {
	listSQL, listArgs, err := q.ListSQL()
	if err != nil {
		return models.ArticlePage{}, err
	}
	countSQL, countArgs, err := q.CountSQL()
	if err != nil {
		return models.ArticlePage{}, err
	}

	var (
		rows  []models.ArticleSummary
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return classify(s.db.WithContext(gctx).Raw(listSQL, listArgs...).Scan(&rows).Error)
	})
	g.Go(func() error {
		return classify(s.db.WithContext(gctx).Raw(countSQL, countArgs...).Scan(&total).Error)
	})
	if q.Topic != "" {
		g.Go(func() error {
			return s.topicExists(gctx, q.Topic)
		})
	}
	if err := g.Wait(); err != nil {
		return models.ArticlePage{}, err
	}

	if rows == nil {
		rows = []models.ArticleSummary{}
	}
	return models.ArticlePage{Articles: rows, TotalCount: total}, nil
}

// GetArticle loads one article. comment_count is only computed, and only
// set, when withCount is true.
func (s *Store) GetArticle(ctx context.Context, id int, withCount bool) (models.Article, error) {
	var article models.Article

	var res *gorm.DB
	if withCount {
		res = s.db.WithContext(ctx).Raw(selectArticleWithCount, id).Scan(&article)
	} else {
		res = s.db.WithContext(ctx).Raw("SELECT * FROM articles WHERE article_id = ?", id).Scan(&article)
	}
	if res.Error != nil {
		return models.Article{}, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Article{}, notFound("articles", "article_id")
	}
	return article, nil
}

// CreateArticle inserts article and fills in the generated columns. A new
// article has no comments, so its count is set to zero without a query.
func (s *Store) CreateArticle(ctx context.Context, article *models.Article) error {
	if err := s.db.WithContext(ctx).Clauses(clause.Returning{}).Create(article).Error; err != nil {
		return classify(err)
	}
	zero := 0
	article.CommentCount = &zero
	return nil
}

// IncrementArticleVotes adds delta in a single statement so concurrent
// increments never overwrite each other.
func (s *Store) IncrementArticleVotes(ctx context.Context, id, delta int) (models.Article, error) {
	var article models.Article

	res := s.db.WithContext(ctx).
		Raw("UPDATE articles SET votes = votes + ? WHERE article_id = ? RETURNING *", delta, id).
		Scan(&article)
	if res.Error != nil {
		return models.Article{}, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Article{}, notFound("articles", "article_id")
	}
	return article, nil
}

// DeleteArticle removes the article's comments and then the article inside
// one transaction. Nothing is deleted when the article does not exist.
func (s *Store) DeleteArticle(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return classify(fmt.Errorf("deleting comments of article %d: %w", id, err))
		}

		res := tx.Where("article_id = ?", id).Delete(&models.Article{})
		if res.Error != nil {
			return classify(fmt.Errorf("deleting article %d: %w", id, res.Error))
		}
		if res.RowsAffected == 0 {
			return notFound("articles", "article_id")
		}
		return nil
	})
}

func (s *Store) articleExists(ctx context.Context, id int) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Article{}).Where("article_id = ?", id).Count(&n).Error; err != nil {
		return classify(err)
	}
	if n == 0 {
		return notFound("articles", "article_id")
	}
	return nil
}
