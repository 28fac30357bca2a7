package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, classify(nil))
	})

	t.Run("foreign key by constraint name", func(t *testing.T) {
		err := classify(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "comments_article_id_fkey"}))

		var fk *ForeignKeyViolation
		require.ErrorAs(t, err, &fk)
		assert.Equal(t, "comments", fk.Table)
		assert.Equal(t, "article_id", fk.Column)
		assert.Equal(t, "comments_article_id_fkey", fk.Constraint)
	})

	t.Run("unknown constraint falls back to pg fields", func(t *testing.T) {
		err := classify(&pgconn.PgError{Code: "23505", ConstraintName: "other_key", TableName: "widgets", ColumnName: "sku"})

		var uv *UniqueViolation
		require.ErrorAs(t, err, &uv)
		assert.Equal(t, "widgets", uv.Table)
		assert.Equal(t, "sku", uv.Column)
	})

	t.Run("invalid text representation", func(t *testing.T) {
		err := classify(&pgconn.PgError{Code: "22P02"})

		var invalid *InvalidInputError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("numeric out of range", func(t *testing.T) {
		var invalid *InvalidInputError
		assert.ErrorAs(t, classify(&pgconn.PgError{Code: "22003"}), &invalid)
	})

	t.Run("unclassified pg error passes through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01"}
		assert.Same(t, pgErr, classify(pgErr))
	})

	t.Run("non pg error passes through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, classify(plain))
	})
}
