// Package store defines the durable key/value capability the domain
// repository writes through to. Values are opaque JSON documents; the
// repository owns encoding and decoding. Keeping the interface this
// narrow lets tests run against an in-memory map while production uses
// Redis or MySQL.
package store

import (
	"context"
	"errors"
)

// Keys under which the application collections are persisted.
const (
	KeyUser     = "skillswap_user"
	KeySkills   = "skillswap_skills"
	KeySessions = "skillswap_sessions"
	KeyRequests = "skillswap_requests"
)

// ErrKeyNotFound is returned by Get when no value has been stored
// under the requested key. Callers treat it as "fall back to the
// default", not as a failure.
var ErrKeyNotFound = errors.New("store: key not found")

// Store reads and writes JSON documents by key. Set replaces the whole
// value; there is no partial-record merge, so the last writer of a key
// wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
