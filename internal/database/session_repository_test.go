package database

import (
	"context"
	"testing"
	"time"

	"github.com/example/quizbot/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB points the global connection at an in-memory SQLite database
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		DB = nil
	})

	DB = db
	require.NoError(t, initializeSchema())
}

func testSession(userID int64) *models.Session {
	return &models.Session{
		UserID:        userID,
		Difficulty:    models.Intermediate,
		CurrentPrompt: "кот",
		Score:         models.Score{Correct: 2, Total: 3},
		UpdatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	setupTestDB(t)
	repo := NewSessionRepository()
	ctx := context.Background()

	saved := testSession(7)
	require.NoError(t, repo.Save(ctx, 7, saved))

	loaded, err := repo.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, loaded.UserID)
	assert.Equal(t, saved.Difficulty, loaded.Difficulty)
	assert.Equal(t, saved.CurrentPrompt, loaded.CurrentPrompt)
	assert.Equal(t, saved.Score, loaded.Score)
	assert.True(t, saved.UpdatedAt.Equal(loaded.UpdatedAt))
}

func TestSessionRepositoryLoadMissing(t *testing.T) {
	setupTestDB(t)
	repo := NewSessionRepository()

	_, err := repo.Load(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSessionRepositoryUpsert(t *testing.T) {
	setupTestDB(t)
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 7, testSession(7)))

	updated := testSession(7)
	updated.Score = models.Score{Correct: 5, Total: 8}
	updated.CurrentPrompt = "собака"
	require.NoError(t, repo.Save(ctx, 7, updated))

	loaded, err := repo.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, updated.Score, loaded.Score)
	assert.Equal(t, "собака", loaded.CurrentPrompt)

	// Upsert must not have produced a second row
	users, err := repo.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, users)
}

func TestSessionRepositoryUsers(t *testing.T) {
	setupTestDB(t)
	repo := NewSessionRepository()
	ctx := context.Background()

	users, err := repo.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, repo.Save(ctx, 2, testSession(2)))
	require.NoError(t, repo.Save(ctx, 1, testSession(1)))

	users, err = repo.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, users)
}
