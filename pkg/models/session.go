package models

import "time"

// Difficulty selects which slice of the word list a quiz draws from
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the known difficulty tiers
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Score is a running count of answered questions
type Score struct {
	Correct int `json:"correct" db:"correct"`
	Total   int `json:"total" db:"total"`
}

// Session represents one user's in-progress quiz state
type Session struct {
	UserID        int64      `json:"user_id" db:"user_id"` // Telegram User ID
	Difficulty    Difficulty `json:"difficulty" db:"difficulty"`
	CurrentPrompt string     `json:"current_prompt" db:"current_prompt"` // word the user has been asked to translate
	Score         Score      `json:"score"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
