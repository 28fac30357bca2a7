package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
)

const selectList = "SELECT articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id)::INT AS comment_count " +
	"FROM articles LEFT JOIN comments ON articles.article_id = comments.article_id"

func TestListSQLWithTopic(t *testing.T) {
	q := ArticleQuery{SortBy: "votes", Order: "asc", Topic: "cats", Page: Page{Limit: 5, Number: 2}}

	sql, args, err := q.ListSQL()
	require.NoError(t, err)

	assert.Equal(t, selectList+
		" WHERE articles.topic = ? GROUP BY articles.article_id"+
		` ORDER BY "articles"."votes" ASC, articles.article_id ASC LIMIT ? OFFSET ?`, sql)
	assert.Equal(t, []any{"cats", 5, 5}, args)
}

func TestListSQLWithoutTopic(t *testing.T) {
	q := ArticleQuery{SortBy: "created_at", Order: "desc", Page: Page{Limit: 10, Number: 1}}

	sql, args, err := q.ListSQL()
	require.NoError(t, err)

	assert.Equal(t, selectList+
		" GROUP BY articles.article_id"+
		` ORDER BY "articles"."created_at" DESC, articles.article_id ASC LIMIT ? OFFSET ?`, sql)
	assert.Equal(t, []any{10, 0}, args)
}

func TestListSQLOrdersByAggregateAlias(t *testing.T) {
	q := ArticleQuery{SortBy: "comment_count", Order: "desc", Page: Page{Limit: 10, Number: 1}}

	sql, _, err := q.ListSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, `ORDER BY "comment_count" DESC, articles.article_id ASC`)
}

func TestListSQLNoTiebreakOnPrimaryKey(t *testing.T) {
	q := ArticleQuery{SortBy: "article_id", Order: "asc", Page: Page{Limit: 10, Number: 1}}

	sql, _, err := q.ListSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, `ORDER BY "articles"."article_id" ASC LIMIT`)
}

func TestListSQLTopicIsNeverInlined(t *testing.T) {
	q := ArticleQuery{SortBy: "votes", Order: "asc", Topic: "x' OR '1'='1", Page: Page{Limit: 10, Number: 1}}

	sql, args, err := q.ListSQL()
	require.NoError(t, err)
	assert.NotContains(t, sql, "OR '1'='1")
	assert.Equal(t, "x' OR '1'='1", args[0])
}

func TestListSQLRejectsUnvalidatedIdentifiers(t *testing.T) {
	for _, q := range []ArticleQuery{
		{SortBy: `votes" DESC; --`, Order: "asc", Page: Page{Limit: 1, Number: 1}},
		{SortBy: "votes", Order: "asc; DROP TABLE articles", Page: Page{Limit: 1, Number: 1}},
	} {
		_, _, err := q.ListSQL()
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidQuery, apperr.KindOf(err))
	}
}

func TestCountSQL(t *testing.T) {
	sql, args, err := ArticleQuery{Topic: "coding"}.CountSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM articles WHERE articles.topic = ?", sql)
	assert.Equal(t, []any{"coding"}, args)

	sql, args, err = ArticleQuery{}.CountSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM articles", sql)
	assert.Empty(t, args)
}
