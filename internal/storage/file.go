package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/quizbot/pkg/models"
)

// schemaVersion is written into every record so a future layout change can
// tell old files apart
const schemaVersion = 1

// record is the on-disk layout: one human-readable JSON file per user
type record struct {
	Version int             `json:"version"`
	Session *models.Session `json:"session"`
}

// FileStore keeps one JSON file per user under a data directory
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("user_%d.json", userID))
}

// Save durably replaces the user's record. The write goes to a temporary
// file first and is moved into place with os.Rename, so a crash or a
// racing retry can never leave a half-written record behind.
func (s *FileStore) Save(ctx context.Context, userID int64, session *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(record{Version: schemaVersion, Session: session}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %v", err)
	}

	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf("user_%d_*.tmp", userID))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %v", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write session: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %v", err)
	}

	if err := os.Rename(tmp.Name(), s.path(userID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace session file: %v", err)
	}
	return nil
}

// Load reads the last saved record for the user
func (s *FileStore) Load(ctx context.Context, userID int64) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %v", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %v", err)
	}
	if rec.Session == nil {
		return nil, fmt.Errorf("session file for user %d has no session", userID)
	}
	return rec.Session, nil
}

// Users lists every user that has a saved session file
func (s *FileStore) Users(ctx context.Context) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := filepath.Glob(filepath.Join(s.dir, "user_*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list session files: %v", err)
	}

	var users []int64
	for _, name := range names {
		base := strings.TrimSuffix(filepath.Base(name), ".json")
		id, err := strconv.ParseInt(strings.TrimPrefix(base, "user_"), 10, 64)
		if err != nil {
			continue // чужой файл в каталоге данных, пропускаем
		}
		users = append(users, id)
	}
	return users, nil
}
