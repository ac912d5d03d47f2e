package models

// Grade is the knowledge estimate derived from the score percentage
type Grade string

const (
	GradeUnsatisfactory Grade = "unsatisfactory"
	GradeSatisfactory   Grade = "satisfactory"
	GradeGood           Grade = "good"
	GradeExcellent      Grade = "excellent"
)

// MatchResult is the outcome of checking one answer against a lexicon entry
type MatchResult struct {
	Correct bool `json:"correct"`
	// Canonical is the accepted translation the answer matched, or the
	// first translation of the entry when the answer was wrong
	Canonical string `json:"canonical"`
	// MatchedSynonym holds the user's literal input when the match was a
	// synonym rather than the canonical translation; empty otherwise
	MatchedSynonym string `json:"matched_synonym,omitempty"`
}

// AnswerResult is what the transport renders after a submitted answer
type AnswerResult struct {
	Match      MatchResult `json:"match"`
	Score      Score       `json:"score"`
	Percentage float64     `json:"percentage"`
	Grade      Grade       `json:"grade"`
	NextPrompt string      `json:"next_prompt"`
}
