package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("not found")

// Store is a string-keyed byte store, the NextStep equivalent of the
// browser's local storage: no transactions across keys, last writer wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	// GamificationKey is the legacy unscoped progress record key.
	GamificationKey = "nextstep-gamification"
	// ResumeKey is the legacy unscoped resume snapshot key.
	ResumeKey = "nextstep-resume"
)

// GamificationKeyFor returns the progress record key for a user
// identifier. An empty user maps to the legacy unscoped key.
func GamificationKeyFor(user string) string {
	if user == "" {
		return GamificationKey
	}
	return GamificationKey + "-" + user
}

// ResumeKeyFor returns the resume snapshot key for a user identifier.
func ResumeKeyFor(user string) string {
	if user == "" {
		return ResumeKey
	}
	return ResumeKey + "-" + user
}
