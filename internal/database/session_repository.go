package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/quizbot/pkg/models"
)

// schemaVersion is stored with every row; bump it when the layout changes
const schemaVersion = 1

// SessionRepository handles database operations for quiz sessions. It
// implements storage.Store.
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Save overwrites the user's session in a single upsert, so a racing
// duplicate write can not leave a torn record
func (r *SessionRepository) Save(ctx context.Context, userID int64, session *models.Session) error {
	query := DB.Rebind(`
		INSERT INTO quiz_sessions (user_id, difficulty, current_prompt, correct, total, version, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			difficulty = excluded.difficulty,
			current_prompt = excluded.current_prompt,
			correct = excluded.correct,
			total = excluded.total,
			version = excluded.version,
			updated_at = excluded.updated_at
	`)

	_, err := DB.ExecContext(ctx, query,
		userID,
		session.Difficulty,
		session.CurrentPrompt,
		session.Score.Correct,
		session.Score.Total,
		schemaVersion,
		session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %v", err)
	}
	return nil
}

// Load returns the last saved session for the user
func (r *SessionRepository) Load(ctx context.Context, userID int64) (*models.Session, error) {
	query := DB.Rebind(`
		SELECT user_id, difficulty, current_prompt, correct, total, updated_at
		FROM quiz_sessions
		WHERE user_id = ?
	`)

	session := &models.Session{}
	err := DB.QueryRowxContext(ctx, query, userID).Scan(
		&session.UserID,
		&session.Difficulty,
		&session.CurrentPrompt,
		&session.Score.Correct,
		&session.Score.Total,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %v", err)
	}
	return session, nil
}

// Users lists every user with a saved session
func (r *SessionRepository) Users(ctx context.Context) ([]int64, error) {
	var users []int64
	err := DB.SelectContext(ctx, &users, "SELECT user_id FROM quiz_sessions ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	return users, nil
}
