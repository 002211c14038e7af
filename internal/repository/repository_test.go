package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/store"
)

func newLoaded(t *testing.T) (*Repository, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	repo := New(mem)
	require.NoError(t, repo.Load(context.Background()))
	return repo, mem
}

func TestLoadSeedsDefaults(t *testing.T) {
	repo, mem := newLoaded(t)

	assert.Nil(t, repo.CurrentUser)
	assert.Equal(t, DefaultCatalog(), repo.Catalog)
	assert.Len(t, repo.Catalog, 16)
	assert.Empty(t, repo.Requests)
	assert.Empty(t, repo.Sessions)

	// The defaults are persisted immediately, so a second load reads
	// them back instead of re-seeding.
	raw, err := mem.Get(context.Background(), store.KeySkills)
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal(raw, &names))
	assert.Equal(t, DefaultCatalog(), names)
}

func TestLoadFallsBackOnMalformedData(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, store.KeyRequests, []byte(`{"not":"a list"`)))
	require.NoError(t, mem.Set(ctx, store.KeySessions, []byte(`[{"id":1,"status":"teleported"}]`)))

	repo := New(mem)
	require.NoError(t, repo.Load(ctx))

	assert.Empty(t, repo.Requests, "malformed requests treated as absent")
	assert.Empty(t, repo.Sessions, "unknown status makes the document malformed")
}

func TestNextIDMonotonicWithinTick(t *testing.T) {
	repo, _ := newLoaded(t)
	fixed := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return fixed })

	a := repo.NextID()
	b := repo.NextID()
	c := repo.NextID()
	assert.Equal(t, fixed.UnixMilli(), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)
}

func TestPersistenceFidelity(t *testing.T) {
	repo, mem := newLoaded(t)
	ctx := context.Background()

	require.NoError(t, repo.SetCurrentUser(ctx, &model.User{
		ID:             1,
		Name:           "ada",
		Email:          "ada@example.com",
		TeachingSkills: []model.Skill{},
		LearningSkills: []model.Skill{},
	}))
	_, err := repo.AddSkill(ctx, "Guitar", model.SkillTeaching)
	require.NoError(t, err)
	require.NoError(t, repo.MutateRequests(ctx, func(reqs []model.Request) []model.Request {
		return append(reqs, model.Request{
			ID: 2, StudentID: 1, TeacherID: 3, SkillID: 4,
			Status: model.RequestPending, RequestedDate: time.Now(),
		})
	}))

	// Reloading from the same store reproduces the collections held in
	// memory, compared by serialized value to ignore clock metadata.
	reloaded := New(mem)
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, asJSON(t, repo.CurrentUser), asJSON(t, reloaded.CurrentUser))
	assert.Equal(t, asJSON(t, repo.Requests), asJSON(t, reloaded.Requests))
	assert.Equal(t, asJSON(t, repo.Sessions), asJSON(t, reloaded.Sessions))
	assert.Equal(t, repo.Catalog, reloaded.Catalog)
}

func asJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
