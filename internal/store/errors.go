package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the store classifies.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeInvalidText         = "22P02"
	codeNumericOutOfRange   = "22003"
)

// ForeignKeyViolation is raised when a write references a row that does not
// exist. Table and Column name the referencing side.
type ForeignKeyViolation struct {
	Table      string
	Column     string
	Constraint string
	Err        error
}

func (e *ForeignKeyViolation) Error() string {
	return fmt.Sprintf("foreign key violation on %s.%s (%s)", e.Table, e.Column, e.Constraint)
}

func (e *ForeignKeyViolation) Unwrap() error { return e.Err }

// UniqueViolation is raised when a write duplicates a unique key.
type UniqueViolation struct {
	Table      string
	Column     string
	Constraint string
	Err        error
}

func (e *UniqueViolation) Error() string {
	return fmt.Sprintf("unique violation on %s.%s (%s)", e.Table, e.Column, e.Constraint)
}

func (e *UniqueViolation) Unwrap() error { return e.Err }

// InvalidInputError means the database rejected a value's representation,
// e.g. a non-numeric string where an integer was expected.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string { return "invalid input: " + e.Err.Error() }

func (e *InvalidInputError) Unwrap() error { return e.Err }

// NotFoundError means a keyed lookup, update or delete matched no row. Key
// is the identifier as callers spell it ("article_id", "topic").
type NotFoundError struct {
	Table string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no row matches %s", e.Table, e.Key)
}

type constraintRef struct {
	table  string
	column string
}

// constraints mirrors the named constraints in database.Schema.
var constraints = map[string]constraintRef{
	"topics_pkey":              {"topics", "slug"},
	"users_pkey":               {"users", "username"},
	"articles_pkey":            {"articles", "article_id"},
	"articles_topic_fkey":      {"articles", "topic"},
	"articles_author_fkey":     {"articles", "author"},
	"comments_pkey":            {"comments", "comment_id"},
	"comments_article_id_fkey": {"comments", "article_id"},
	"comments_author_fkey":     {"comments", "author"},
}

// classify turns driver errors into the store's typed errors. Errors it
// does not recognise are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	ref, ok := constraints[pgErr.ConstraintName]
	if !ok {
		ref = constraintRef{table: pgErr.TableName, column: pgErr.ColumnName}
	}

	switch pgErr.Code {
	case codeForeignKeyViolation:
		return &ForeignKeyViolation{Table: ref.table, Column: ref.column, Constraint: pgErr.ConstraintName, Err: err}
	case codeUniqueViolation:
		return &UniqueViolation{Table: ref.table, Column: ref.column, Constraint: pgErr.ConstraintName, Err: err}
	case codeInvalidText, codeNumericOutOfRange:
		return &InvalidInputError{Err: err}
	}
	return err
}

func notFound(table, key string) error {
	return &NotFoundError{Table: table, Key: key}
}
