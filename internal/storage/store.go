package storage

import (
	"context"

	"github.com/example/quizbot/pkg/models"
)

// Store persists one quiz session per user. Save overwrites any earlier
// record; Load returns models.ErrSessionNotFound when the user has never
// saved one. Implementations must survive a racing duplicate write without
// corrupting a previously valid record.
type Store interface {
	Save(ctx context.Context, userID int64, session *models.Session) error
	Load(ctx context.Context, userID int64) (*models.Session, error)
	// Users lists every user with a saved session. Used by the reminder
	// scheduler, not by the quiz core itself.
	Users(ctx context.Context) ([]int64, error)
}
