package query

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
)

var listColumns = []string{
	"articles.article_id",
	"articles.title",
	"articles.topic",
	"articles.author",
	"articles.created_at",
	"articles.votes",
	"articles.article_img_url",
	"COUNT(comments.comment_id)::INT AS comment_count",
}

// ListSQL builds the page query. Column and direction come from the
// allow-lists; topic, limit and offset are bound.
func (q ArticleQuery) ListSQL() (string, []any, error) {
	orderBy, err := q.orderBy()
	if err != nil {
		return "", nil, err
	}

	b := sq.Select(listColumns...).
		From("articles").
		LeftJoin("comments ON articles.article_id = comments.article_id")
	b = q.filter(b).
		GroupBy("articles.article_id").
		OrderBy(orderBy...).
		Suffix("LIMIT ? OFFSET ?", q.Page.Limit, q.Page.Offset())

	return b.ToSql()
}

// CountSQL builds the total_count query. It shares the topic filter with
// ListSQL and nothing else.
func (q ArticleQuery) CountSQL() (string, []any, error) {
	return q.filter(sq.Select("COUNT(*)").From("articles")).ToSql()
}

func (q ArticleQuery) filter(b sq.SelectBuilder) sq.SelectBuilder {
	if q.Topic == "" {
		return b
	}
	return b.Where(sq.Eq{"articles.topic": q.Topic})
}

func (q ArticleQuery) orderBy() ([]string, error) {
	table, ok := sortColumns[q.SortBy]
	if !ok {
		return nil, apperr.InvalidQuery()
	}
	dir, ok := directions[q.Order]
	if !ok {
		return nil, apperr.InvalidQuery()
	}

	col := pq.QuoteIdentifier(q.SortBy)
	if table != "" {
		col = pq.QuoteIdentifier(table) + "." + col
	}

	keys := []string{col + " " + dir}
	if q.SortBy != "article_id" {
		keys = append(keys, "articles.article_id ASC")
	}
	return keys, nil
}
