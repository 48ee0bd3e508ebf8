package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathfinderhq/pathfinder/internal/testutil"
)

func TestSQLiteConsultationRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)
	ctx := context.Background()

	want := testutil.NewTestConsultation("c1")
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
	assert.True(t, want.CompletedAt.Equal(got.CompletedAt))
	assert.Equal(t, want.AnsweredCount, got.AnsweredCount)
	assert.Equal(t, want.Facts, got.Facts)
	assert.Equal(t, want.Suggested, got.Suggested)
	assert.Empty(t, got.Fallback)
}

func TestSQLiteConsultationRepo_FallbackRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)
	ctx := context.Background()

	want := testutil.NewTestConsultation("c1",
		testutil.WithFallback("Mixed", "Painter"),
		testutil.WithFacts("d"))
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got.Suggested)
	assert.Equal(t, []string{"Mixed", "Painter"}, got.Fallback, "fallback order must survive storage")
	assert.Equal(t, []string{"d"}, got.Facts)
}

func TestSQLiteConsultationRepo_GetByIDNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)

	_, err := repo.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteConsultationRepo_ListRecentOrdersByCompletion(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		c := testutil.NewTestConsultation(id,
			testutil.WithCompletedAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Create(ctx, c))
	}

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "old", got[2].ID)
	assert.Equal(t, []string{"a", "b"}, got[0].Facts, "children load for listed rows too")
}

func TestSQLiteConsultationRepo_ListRecentHonorsLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		c := testutil.NewTestConsultation(string(rune('a'+i)),
			testutil.WithCompletedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, c))
	}

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "e", got[0].ID)
}

func TestSQLiteConsultationRepo_ListRecentEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)

	got, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteConsultationRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestConsultation("c1")))
	require.NoError(t, repo.Delete(ctx, "c1"))

	_, err := repo.GetByID(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Child rows go with the parent.
	var n int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM consultation_facts WHERE consultation_id = 'c1'`).Scan(&n))
	assert.Zero(t, n)
}

func TestSQLiteConsultationRepo_DeleteNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)

	err := repo.Delete(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteConsultationRepo_DuplicateIDRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConsultationRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestConsultation("c1")))

	err := repo.Create(ctx, testutil.NewTestConsultation("c1"))
	assert.Error(t, err)
}
