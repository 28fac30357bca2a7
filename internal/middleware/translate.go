package middleware

import (
	"errors"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
	"github.com/emilythestrangee/news-api/backend/internal/store"
)

type reference struct {
	table  string
	column string
}

// referenceSubjects names a broken reference the way clients spell the field
// they sent. Comments are posted with "username", not "author".
var referenceSubjects = map[reference]string{
	{"comments", "author"}:     "username",
	{"comments", "article_id"}: "article_id",
	{"articles", "author"}:     "author",
	{"articles", "topic"}:      "topic",
}

// Translate classifies err. Already classified errors pass through and typed
// storage errors are mapped by table and column. Anything else becomes
// KindInternal wrapping the original error.
func Translate(err error) *apperr.Error {
	if err == nil {
		return nil
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var fk *store.ForeignKeyViolation
	if errors.As(err, &fk) {
		subject, ok := referenceSubjects[reference{fk.Table, fk.Column}]
		if !ok {
			subject = fk.Column
		}
		return &apperr.Error{Kind: apperr.KindNotFound, Subject: subject, Err: err}
	}

	var uv *store.UniqueViolation
	if errors.As(err, &uv) {
		return apperr.Conflict(uv.Column, err)
	}

	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		return &apperr.Error{Kind: apperr.KindNotFound, Subject: nf.Key, Err: err}
	}

	var invalid *store.InvalidInputError
	if errors.As(err, &invalid) {
		return apperr.BadRequest(err)
	}

	return apperr.Internal(err)
}
