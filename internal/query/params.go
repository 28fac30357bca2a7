// Package query validates listing parameters and composes the article
// listing statements from them.
package query

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
	MaxLimit      = 100
)

// sortColumns is the allow-list for sort_by. The value is the table the
// column is qualified with; comment_count is the aggregate's alias and has
// no table.
var sortColumns = map[string]string{
	"article_id":      "articles",
	"title":           "articles",
	"topic":           "articles",
	"author":          "articles",
	"created_at":      "articles",
	"votes":           "articles",
	"article_img_url": "articles",
	"comment_count":   "",
}

var directions = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

var errPageOutOfRange = errors.New("p is out of range")

// Page is a validated offset/limit window. Limit is already clamped.
type Page struct {
	Limit  int
	Number int
}

func (p Page) Offset() int {
	return p.Limit * (p.Number - 1)
}

// ArticleQuery is a validated article listing request.
type ArticleQuery struct {
	SortBy string
	Order  string
	Topic  string
	Page   Page
}

// SortColumns lists the accepted sort_by values.
func SortColumns() []string {
	cols := make([]string, 0, len(sortColumns))
	for c := range sortColumns {
		cols = append(cols, c)
	}
	return cols
}

// ParseValues decodes a raw query string. A semicolon is data, not a
// separator, so it reaches the allow-lists instead of silently dropping the
// pair it appears in.
func ParseValues(rawQuery string) (url.Values, error) {
	values, err := url.ParseQuery(strings.ReplaceAll(rawQuery, ";", "%3B"))
	if err != nil {
		return nil, apperr.BadRequest(err)
	}
	return values, nil
}

// ParseArticleQuery validates sort_by, order, topic, limit and p. Nothing in
// here touches storage.
func ParseArticleQuery(values url.Values) (ArticleQuery, error) {
	q := ArticleQuery{
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
		Topic:  values.Get("topic"),
	}

	if values.Has("sort_by") {
		q.SortBy = values.Get("sort_by")
	}
	if values.Has("order") {
		q.Order = values.Get("order")
	}
	if _, ok := sortColumns[q.SortBy]; !ok {
		return ArticleQuery{}, apperr.InvalidQuery()
	}
	if _, ok := directions[q.Order]; !ok {
		return ArticleQuery{}, apperr.InvalidQuery()
	}

	page, err := ParsePage(values)
	if err != nil {
		return ArticleQuery{}, err
	}
	q.Page = page

	return q, nil
}

// ParsePage validates limit and p, applying defaults and the MaxLimit clamp.
func ParsePage(values url.Values) (Page, error) {
	limit, err := intParam(values, "limit", DefaultLimit)
	if err != nil {
		return Page{}, err
	}
	number, err := intParam(values, "p", DefaultPage)
	if err != nil {
		return Page{}, err
	}

	if limit < 1 || number < 1 {
		return Page{}, apperr.InvalidPagination()
	}

	limit = min(limit, MaxLimit)
	// The offset limit*(p-1) must fit in an int.
	if number-1 > math.MaxInt/limit {
		return Page{}, apperr.BadRequest(errPageOutOfRange)
	}

	return Page{Limit: limit, Number: number}, nil
}

func intParam(values url.Values, key string, def int) (int, error) {
	if !values.Has(key) {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(values.Get(key)))
	if err != nil {
		return 0, apperr.BadRequest(err)
	}
	return n, nil
}
