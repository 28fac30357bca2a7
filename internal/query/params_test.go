package query

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
)

func values(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := ParseValues(raw)
	require.NoError(t, err)
	return v
}

func TestParseArticleQueryDefaults(t *testing.T) {
	q, err := ParseArticleQuery(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, "desc", q.Order)
	assert.Equal(t, "", q.Topic)
	assert.Equal(t, Page{Limit: 10, Number: 1}, q.Page)
	assert.Equal(t, 0, q.Page.Offset())
}

func TestParseArticleQueryAcceptsEveryAllowedCombination(t *testing.T) {
	for _, col := range SortColumns() {
		for _, order := range []string{"asc", "desc"} {
			q, err := ParseArticleQuery(url.Values{"sort_by": {col}, "order": {order}})
			require.NoError(t, err, "%s %s", col, order)
			assert.Equal(t, col, q.SortBy)
			assert.Equal(t, order, q.Order)
		}
	}
}

func TestParseArticleQueryRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind apperr.Kind
	}{
		{"unknown sort_by", "sort_by=banana", apperr.KindInvalidQuery},
		{"empty sort_by", "sort_by=", apperr.KindInvalidQuery},
		{"injection in sort_by", "sort_by=votes;DROP TABLE articles", apperr.KindInvalidQuery},
		{"semicolon in order", "order=asc;", apperr.KindInvalidQuery},
		{"unknown order", "order=sideways", apperr.KindInvalidQuery},
		{"empty order", "order=", apperr.KindInvalidQuery},
		{"order is case sensitive", "order=ASC", apperr.KindInvalidQuery},
		{"both invalid", "sort_by=x&order=y", apperr.KindInvalidQuery},
		{"non-numeric limit", "limit=ten", apperr.KindBadRequest},
		{"fractional limit", "limit=2.5", apperr.KindBadRequest},
		{"non-numeric page", "p=first", apperr.KindBadRequest},
		{"zero limit", "limit=0", apperr.KindInvalidPagination},
		{"negative page", "p=-1", apperr.KindInvalidPagination},
		{"zero page", "p=0", apperr.KindInvalidPagination},
		{"page overflows offset", "limit=100&p=9223372036854775807", apperr.KindBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArticleQuery(values(t, tt.raw))
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
}

func TestParseArticleQueryIgnoresUnknownKeys(t *testing.T) {
	_, err := ParseArticleQuery(values(t, "colour=blue"))
	assert.NoError(t, err)
}

func TestParsePageClampsLimit(t *testing.T) {
	page, err := ParsePage(values(t, "limit=500&p=3"))
	require.NoError(t, err)

	assert.Equal(t, MaxLimit, page.Limit)
	assert.Equal(t, 200, page.Offset())
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		limit, number, offset int
	}{
		{10, 1, 0},
		{5, 2, 5},
		{7, 4, 21},
		{100, 10, 900},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.offset, Page{Limit: tt.limit, Number: tt.number}.Offset())
	}
}

func TestParseArticleQueryKeepsEmptyTopic(t *testing.T) {
	q, err := ParseArticleQuery(values(t, "topic="))
	require.NoError(t, err)
	assert.Equal(t, "", q.Topic)
}

func TestParseValues(t *testing.T) {
	v, err := ParseValues("sort_by=votes;DROP%20TABLE&topic=cats")
	require.NoError(t, err)
	assert.Equal(t, "votes;DROP TABLE", v.Get("sort_by"))
	assert.Equal(t, "cats", v.Get("topic"))

	_, err = ParseValues("topic=%zz")
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestParsePageLargestOffset(t *testing.T) {
	page, err := ParsePage(url.Values{"limit": {"1"}, "p": {"9223372036854775807"}})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, page.Offset())
}
