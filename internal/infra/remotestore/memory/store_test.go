package memory

import (
	"context"
	"testing"

	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "users/u1/reports/r1", doc{Name: "Home", Score: 82}))

	var got doc
	require.NoError(t, s.Get(ctx, "users/u1/reports/r1", &got))
	assert.Equal(t, doc{Name: "Home", Score: 82}, got)

	err := s.Get(ctx, "users/u1/reports/missing", &got)
	assert.True(t, errors.Is(err, repository.ErrPathNotFound))
}

func TestStore_SetSameIDOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "users/u1/reports/r1", doc{Name: "first"}))
	require.NoError(t, s.Set(ctx, "users/u1/reports/r1", doc{Name: "second"}))

	children, err := s.List(ctx, "users/u1/reports")
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.JSONEq(t, `{"name":"second","score":0}`, string(children["r1"]))
}

func TestStore_UpdateKeepsSiblings(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "users/u1/reports/r1", doc{Name: "Home"}))
	require.NoError(t, s.Update(ctx, "users/u1", map[string]any{
		"displayName":         "Asha",
		"onboardingCompleted": true,
	}))

	var report doc
	require.NoError(t, s.Get(ctx, "users/u1/reports/r1", &report))
	assert.Equal(t, "Home", report.Name)

	var user map[string]any
	require.NoError(t, s.Get(ctx, "users/u1", &user))
	assert.Equal(t, "Asha", user["displayName"])
	assert.Contains(t, user, "reports")
}

func TestStore_DeletePrunesEmptyParents(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "users/u1/reports/r1", doc{Name: "Home"}))
	require.NoError(t, s.Delete(ctx, "users/u1/reports/r1"))

	var user map[string]any
	assert.True(t, errors.Is(s.Get(ctx, "users/u1", &user), repository.ErrPathNotFound))

	children, err := s.List(ctx, "users/u1/reports")
	require.NoError(t, err)
	assert.Empty(t, children)

	require.NoError(t, s.Delete(ctx, "users/u1/reports/never"))
}

func TestStore_SetNilDeletes(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "users/u1/graminProfile", doc{Name: "farm"}))
	require.NoError(t, s.Set(ctx, "users/u1/graminProfile", nil))

	var got doc
	assert.True(t, errors.Is(s.Get(ctx, "users/u1/graminProfile", &got), repository.ErrPathNotFound))
}

func TestStore_Writes(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "users/u1/reports/r1", doc{}))
	require.NoError(t, s.Update(ctx, "users/u1", map[string]any{"displayName": "A"}))
	require.NoError(t, s.Delete(ctx, "users/u1/reports/r1"))

	assert.Equal(t, []Write{
		{Op: OpSet, Path: "users/u1/reports/r1"},
		{Op: OpUpdate, Path: "users/u1"},
		{Op: OpDelete, Path: "users/u1/reports/r1"},
	}, s.Writes())
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStore()

	assert.ErrorIs(t, s.Set(ctx, "users/u1", doc{}), context.Canceled)
	assert.Empty(t, s.Writes())
}
