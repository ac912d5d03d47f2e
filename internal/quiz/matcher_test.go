package quiz

import (
	"testing"

	"github.com/example/quizbot/internal/lexicon"
	"github.com/stretchr/testify/assert"
)

func catEntry() lexicon.Entry {
	return lexicon.Entry{
		Word: "кот",
		Translations: []lexicon.Translation{
			{Canonical: "cat", Synonyms: []string{"kitty", "pussycat"}},
			{Canonical: "tomcat"},
		},
	}
}

func TestEvaluateCanonical(t *testing.T) {
	result := Evaluate(catEntry(), "cat")

	assert.True(t, result.Correct)
	assert.Equal(t, "cat", result.Canonical)
	assert.Empty(t, result.MatchedSynonym)
}

func TestEvaluateSynonym(t *testing.T) {
	result := Evaluate(catEntry(), "KITTY")

	assert.True(t, result.Correct)
	assert.Equal(t, "cat", result.Canonical)
	// The user's literal input comes back, not the dictionary spelling
	assert.Equal(t, "KITTY", result.MatchedSynonym)
}

func TestEvaluateSecondTranslation(t *testing.T) {
	result := Evaluate(catEntry(), "Tomcat")

	assert.True(t, result.Correct)
	assert.Equal(t, "tomcat", result.Canonical)
	assert.Empty(t, result.MatchedSynonym)
}

func TestEvaluateCaseInsensitive(t *testing.T) {
	entry := catEntry()

	for _, answer := range []string{"cat", "Cat", "CAT", "cAt"} {
		result := Evaluate(entry, answer)
		assert.True(t, result.Correct, "answer %q", answer)
		assert.Equal(t, "cat", result.Canonical, "answer %q", answer)
	}
}

func TestEvaluateTrimsWhitespace(t *testing.T) {
	result := Evaluate(catEntry(), "  cat \n")
	assert.True(t, result.Correct)
	assert.Empty(t, result.MatchedSynonym)
}

func TestEvaluateWrongAnswer(t *testing.T) {
	result := Evaluate(catEntry(), "dog")

	assert.False(t, result.Correct)
	// Первый перевод словарной статьи выдается как «правильный ответ»
	assert.Equal(t, "cat", result.Canonical)
	assert.Empty(t, result.MatchedSynonym)
}

func TestEvaluateNoFuzzyMatching(t *testing.T) {
	for _, answer := range []string{"cats", "ca", "kit ty", "c a t"} {
		result := Evaluate(catEntry(), answer)
		assert.False(t, result.Correct, "answer %q must not match", answer)
	}
}

func TestEvaluateFirstPairWins(t *testing.T) {
	// "feline" is both a synonym of the first translation and the
	// canonical form of the second; the first pair must win
	entry := lexicon.Entry{
		Word: "кот",
		Translations: []lexicon.Translation{
			{Canonical: "cat", Synonyms: []string{"feline"}},
			{Canonical: "feline"},
		},
	}

	result := Evaluate(entry, "feline")
	assert.True(t, result.Correct)
	assert.Equal(t, "cat", result.Canonical)
	assert.Equal(t, "feline", result.MatchedSynonym)
}
