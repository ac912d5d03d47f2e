package quiz

import (
	"fmt"
	"testing"

	"github.com/example/quizbot/internal/lexicon"
	"github.com/example/quizbot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLexicon generates n numbered entries
func buildLexicon(t *testing.T, n int) *lexicon.Lexicon {
	t.Helper()

	entries := make([]lexicon.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, lexicon.Entry{
			Word:         fmt.Sprintf("слово%04d", i),
			Translations: []lexicon.Translation{{Canonical: fmt.Sprintf("word%04d", i)}},
		})
	}

	lex, err := lexicon.New(entries)
	require.NoError(t, err)
	return lex
}

func TestTierWordsSizes(t *testing.T) {
	s := NewSelector(buildLexicon(t, 700))

	assert.Len(t, s.TierWords(models.Beginner), 200)
	assert.Len(t, s.TierWords(models.Intermediate), 500)
	assert.Len(t, s.TierWords(models.Advanced), 700)
}

func TestTierWordsShortLexicon(t *testing.T) {
	// Fewer words than the beginner tier size: every tier is the full set
	s := NewSelector(buildLexicon(t, 50))

	assert.Len(t, s.TierWords(models.Beginner), 50)
	assert.Len(t, s.TierWords(models.Intermediate), 50)
	assert.Len(t, s.TierWords(models.Advanced), 50)
}

func TestTierMonotonicity(t *testing.T) {
	s := NewSelector(buildLexicon(t, 700))

	beginner := s.TierWords(models.Beginner)
	intermediate := s.TierWords(models.Intermediate)
	advanced := s.TierWords(models.Advanced)

	// beginner ⊆ intermediate ⊆ advanced, as prefixes of the same list
	assert.Equal(t, beginner, intermediate[:len(beginner)])
	assert.Equal(t, intermediate, advanced[:len(intermediate)])
}

func TestPickStaysInsideTier(t *testing.T) {
	s := NewSelector(buildLexicon(t, 700))

	beginner := make(map[string]bool)
	for _, w := range s.TierWords(models.Beginner) {
		beginner[w] = true
	}

	for i := 0; i < 100; i++ {
		word, err := s.Pick(models.Beginner)
		require.NoError(t, err)
		assert.True(t, beginner[word], "picked %q outside the beginner tier", word)
	}
}
