package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/example/quizbot/internal/lexicon"
	"github.com/example/quizbot/pkg/models"
)

// Tier sizes: each difficulty draws from a prefix of the word list, so the
// beginner set is always contained in the intermediate set and so on.
const (
	beginnerWords     = 200
	intermediateWords = 500
)

// Selector draws random prompt words from a difficulty tier
type Selector struct {
	lex *lexicon.Lexicon

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewSelector creates a selector over the given lexicon
func NewSelector(lex *lexicon.Lexicon) *Selector {
	return &Selector{
		lex: lex,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// TierWords returns the source words belonging to a difficulty tier, in
// word-list order. A lexicon shorter than the tier size simply yields the
// whole list. Callers must not modify the returned slice.
func (s *Selector) TierWords(tier models.Difficulty) []string {
	keys := s.lex.Keys()

	limit := len(keys)
	switch tier {
	case models.Beginner:
		if limit > beginnerWords {
			limit = beginnerWords
		}
	case models.Intermediate:
		if limit > intermediateWords {
			limit = intermediateWords
		}
	}

	return keys[:limit]
}

// Pick draws a word uniformly at random from the tier
func (s *Selector) Pick(tier models.Difficulty) (string, error) {
	words := s.TierWords(tier)
	if len(words) == 0 {
		return "", models.ErrEmptyTier
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(words))
	s.mu.Unlock()

	return words[idx], nil
}
