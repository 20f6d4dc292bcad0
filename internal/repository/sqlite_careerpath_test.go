package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pathsense/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerPathRepo_CreateAndGetActive(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	rec := testutil.NewTestCareerPath("ada", "Data Scientist")
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetActive(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "ada", got.User)
	assert.Equal(t, "Data Scientist", got.ChosenRole)
	assert.Equal(t, rec.Goal, got.Goal)
	assert.True(t, got.Active)
	assert.True(t, rec.Roadmap.Equal(got.Roadmap))
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestCareerPathRepo_GetActive(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	_, err := repo.GetActive(ctx, "ada")
	assert.ErrorIs(t, err, ErrNotFound)

	old := testutil.NewTestCareerPath("ada", "Analyst", testutil.WithInactive())
	cur := testutil.NewTestCareerPath("ada", "Data Scientist")
	other := testutil.NewTestCareerPath("grace", "Compiler Engineer")
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, cur))
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.GetActive(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, cur.ID, got.ID)
}

func TestCareerPathRepo_SecondActivePathRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	require.NoError(t, repo.Create(ctx, testutil.NewTestCareerPath("ada", "Analyst")))
	err := repo.Create(ctx, testutil.NewTestCareerPath("ada", "Data Scientist"))
	assert.Error(t, err, "only one active path per user")
}

func TestCareerPathRepo_ListByUser_OldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	second := testutil.NewTestCareerPath("ada", "Data Scientist", testutil.WithCreatedAt(base.Add(time.Hour)))
	first := testutil.NewTestCareerPath("ada", "Analyst", testutil.WithInactive(), testutil.WithCreatedAt(base))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCareerPath("grace", "SRE")))

	list, err := repo.ListByUser(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.False(t, list[0].Active)
	assert.True(t, list[1].Active)
}

func TestCareerPathRepo_ListByUser_Empty(t *testing.T) {
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	list, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCareerPathRepo_UpdateRoadmap(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	rec := testutil.NewTestCareerPath("ada", "Data Scientist")
	require.NoError(t, repo.Create(ctx, rec))

	updated := rec.Roadmap.Clone()
	updated.Modules[0].Topics[1].Completed = true
	require.NoError(t, repo.UpdateRoadmap(ctx, rec.ID, updated))

	got, err := repo.GetActive(ctx, "ada")
	require.NoError(t, err)
	assert.False(t, got.Roadmap.Modules[0].Topics[0].Completed)
	assert.True(t, got.Roadmap.Modules[0].Topics[1].Completed)
}

func TestCareerPathRepo_UpdateRoadmap_NotFound(t *testing.T) {
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	err := repo.UpdateRoadmap(context.Background(), "missing", testutil.NewTestRoadmap("Analyst"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCareerPathRepo_DeactivateAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteCareerPathRepo(testutil.NewTestDB(t))

	ada := testutil.NewTestCareerPath("ada", "Analyst")
	grace := testutil.NewTestCareerPath("grace", "SRE")
	require.NoError(t, repo.Create(ctx, ada))
	require.NoError(t, repo.Create(ctx, grace))

	require.NoError(t, repo.DeactivateAll(ctx, "ada"))

	_, err := repo.GetActive(ctx, "ada")
	assert.ErrorIs(t, err, ErrNotFound)
	list, err := repo.ListByUser(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ada.ID, list[0].ID)
	assert.False(t, list[0].Active)

	stillActive, err := repo.GetActive(ctx, "grace")
	require.NoError(t, err)
	assert.Equal(t, grace.ID, stillActive.ID)
}

func TestCareerPathRepo_CorruptRoadmapRejected(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCareerPathRepo(database)

	_, err := database.ExecContext(ctx,
		`INSERT INTO career_paths (id, user, goal, chosen_role, roadmap, active, created_at, updated_at)
		 VALUES ('bad', 'ada', 'g', 'r', '{"format":"other"}', 1, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = repo.GetActive(ctx, "ada")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = repo.ListByUser(ctx, "ada")
	assert.Error(t, err)
}
