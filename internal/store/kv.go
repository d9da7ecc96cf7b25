// Package store persists whole values under string keys.
//
// The medium mirrors browser local storage: there is no partial update,
// a value is read in full and replaced in full.
package store

import (
	"context"
	"errors"
)

// Driver identifies a KV backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "pgx"
	DriverRedis    Driver = "redis"
	DriverS3       Driver = "s3"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrCorruptState = errors.New("stored state is corrupt")
	ErrInvalidKey   = errors.New("invalid key")
)

// KV is a key-value medium holding complete values.
type KV interface {
	// Get returns the stored value or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	Driver() Driver
	Close() error
}
