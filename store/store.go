// Package store is the document store adapter. Records cross this boundary
// as bson.M so the same normalization applies to every collection.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names a group of records of one entity type.
type Collection string

var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("database not available")
)

// Error is a connection, query or identifier failure.
type Error struct {
	Op         string
	Collection Collection
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostics is a connectivity snapshot for the /test endpoint.
type Diagnostics struct {
	Configured   bool
	DatabaseName string
	Collections  []string
	Err          error
}

// Store must be safe for concurrent use.
type Store interface {
	// Insert writes record and returns the hex form of its assigned id.
	Insert(ctx context.Context, coll Collection, record any) (string, error)
	// Find returns up to limit records whose fields equal every filter
	// entry, in store order. A limit of 0 means no limit.
	Find(ctx context.Context, coll Collection, filter bson.M, limit int64) ([]bson.M, error)
	// FindOne returns ErrNotFound when no record has the given id.
	FindOne(ctx context.Context, coll Collection, id string) (bson.M, error)
	Diagnose(ctx context.Context) Diagnostics
	Close(ctx context.Context) error
}
