package models

import "errors"

// Application errors shared between the quiz core and its callers
var (
	// ErrWordNotFound means a prompt word is missing from the lexicon.
	// Unreachable while prompts are drawn from lexicon keys; if it shows
	// up anyway the lexicon and sessions have diverged.
	ErrWordNotFound = errors.New("word not found in lexicon")

	// ErrEmptyTier means a difficulty tier has no words, which is only
	// possible when the lexicon itself is empty.
	ErrEmptyTier = errors.New("difficulty tier is empty")

	// ErrSessionNotStarted means the user submitted an answer without an
	// active or persisted session. Recoverable: ask the user to /start.
	ErrSessionNotStarted = errors.New("session not started")

	// ErrSessionNotFound means the progress store has no record for the
	// user. Consumed by session rehydration.
	ErrSessionNotFound = errors.New("session not found")

	// ErrPersistence means a progress store write kept failing after the
	// bounded retries. The in-memory session stays unchanged.
	ErrPersistence = errors.New("failed to persist session")
)
