// Package store is the storage access layer. Every method takes the request
// context and returns the typed errors declared in errors.go.
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
