package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/store"
)

// DefaultCatalog returns the skill names seeded when nothing has been
// persisted under the skills key yet.
func DefaultCatalog() []string {
	return []string{
		"JavaScript", "Python", "React", "Node.js",
		"CSS", "HTML", "Photography", "Design",
		"Spanish", "French", "Guitar", "Piano",
		"Cooking", "Writing", "Marketing", "Business",
	}
}

// Repository is the single in-memory authority over the current user,
// the skill catalog, requests and sessions. The store is a durability
// mirror, never a second source of truth: every mutation updates the
// in-memory collection first and writes the full collection through to
// the store before returning. Loading falls back to defaults when a
// key is absent or its document fails to decode.
type Repository struct {
	store store.Store
	now   func() time.Time

	idMu   sync.Mutex
	lastID int64

	CurrentUser *model.User
	Catalog     []string
	Requests    []model.Request
	Sessions    []model.Session
}

// New returns a repository backed by the given store. Collections are
// empty until Load is called.
func New(s store.Store) *Repository {
	return &Repository{store: s, now: time.Now}
}

// WithClock overrides the time source used for id allocation. Tests
// use it to pin ids to known values.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Now exposes the repository clock so callers stamping entities stay
// consistent with id allocation.
func (r *Repository) Now() time.Time { return r.now() }

// NextID allocates a timestamp-derived identifier. Ids are the current
// Unix millisecond, bumped by one whenever two allocations land on the
// same tick, so they increase monotonically within a process.
func (r *Repository) NextID() int64 {
	r.idMu.Lock()
	defer r.idMu.Unlock()
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// Load hydrates all collections from the store. A missing or malformed
// document is replaced by its default, and the default is persisted
// immediately so the next load sees it. Only infrastructure failures
// (store unreachable) are returned as errors.
func (r *Repository) Load(ctx context.Context) error {
	var u model.User
	if ok, err := r.read(ctx, store.KeyUser, &u); err != nil {
		return err
	} else if ok {
		r.CurrentUser = &u
	} else {
		r.CurrentUser = nil
	}

	if ok, err := r.read(ctx, store.KeySkills, &r.Catalog); err != nil {
		return err
	} else if !ok {
		r.Catalog = DefaultCatalog()
		if err := r.write(ctx, store.KeySkills, r.Catalog); err != nil {
			return err
		}
	}

	if ok, err := r.read(ctx, store.KeyRequests, &r.Requests); err != nil {
		return err
	} else if !ok {
		r.Requests = []model.Request{}
		if err := r.write(ctx, store.KeyRequests, r.Requests); err != nil {
			return err
		}
	}

	if ok, err := r.read(ctx, store.KeySessions, &r.Sessions); err != nil {
		return err
	} else if !ok {
		r.Sessions = []model.Session{}
		if err := r.write(ctx, store.KeySessions, r.Sessions); err != nil {
			return err
		}
	}
	return nil
}

// read decodes the document stored under key into v. It reports false
// when the key is absent or the document is malformed; the corrupt
// value stays in place until the next write overwrites it.
func (r *Repository) read(ctx context.Context, key string, v interface{}) (bool, error) {
	raw, err := r.store.Get(ctx, key)
	if err == store.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *Repository) write(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, raw)
}

// SetCurrentUser replaces the current user record and persists it.
func (r *Repository) SetCurrentUser(ctx context.Context, u *model.User) error {
	r.CurrentUser = u
	return r.write(ctx, store.KeyUser, u)
}

// SaveUser persists the current user after an in-place mutation.
func (r *Repository) SaveUser(ctx context.Context) error {
	return r.write(ctx, store.KeyUser, r.CurrentUser)
}

// MutateUser applies fn to the current user and writes the record
// through. It fails with ErrNoCurrentUser when nobody is registered.
func (r *Repository) MutateUser(ctx context.Context, fn func(*model.User)) error {
	if r.CurrentUser == nil {
		return ErrNoCurrentUser
	}
	fn(r.CurrentUser)
	return r.SaveUser(ctx)
}

// MutateRequests applies fn to the request collection and persists the
// full collection before returning. Every request mutation elsewhere
// is defined in terms of this primitive so memory and store cannot
// diverge within a single process.
func (r *Repository) MutateRequests(ctx context.Context, fn func([]model.Request) []model.Request) error {
	r.Requests = fn(r.Requests)
	return r.write(ctx, store.KeyRequests, r.Requests)
}

// MutateSessions applies fn to the session collection and persists the
// full collection before returning.
func (r *Repository) MutateSessions(ctx context.Context, fn func([]model.Session) []model.Session) error {
	r.Sessions = fn(r.Sessions)
	return r.write(ctx, store.KeySessions, r.Sessions)
}

// RequestByID returns a pointer into the request collection, or nil
// when the id is unknown. Mutations through the pointer must be
// followed by MutateRequests (or SaveRequests) to persist.
func (r *Repository) RequestByID(id int64) *model.Request {
	for i := range r.Requests {
		if r.Requests[i].ID == id {
			return &r.Requests[i]
		}
	}
	return nil
}

// SessionByID returns a pointer into the session collection, or nil
// when the id is unknown.
func (r *Repository) SessionByID(id int64) *model.Session {
	for i := range r.Sessions {
		if r.Sessions[i].ID == id {
			return &r.Sessions[i]
		}
	}
	return nil
}

// SessionByRequestID returns the session originating from the given
// request, or nil when none exists. At most one session can match.
func (r *Repository) SessionByRequestID(requestID int64) *model.Session {
	for i := range r.Sessions {
		if r.Sessions[i].RequestID == requestID {
			return &r.Sessions[i]
		}
	}
	return nil
}
