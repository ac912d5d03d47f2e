package quiz

import (
	"strings"

	"github.com/example/quizbot/internal/lexicon"
	"github.com/example/quizbot/pkg/models"
)

// Evaluate checks a free-text answer against a lexicon entry. Matching is
// exact, case-insensitive string equality — no fuzzy matching. Translations
// are walked in entry order and the first match wins, so an answer that is
// a synonym of one translation and the canonical form of another resolves
// to whichever pair comes first.
func Evaluate(entry lexicon.Entry, rawAnswer string) models.MatchResult {
	answer := strings.ToLower(strings.TrimSpace(rawAnswer))

	for _, tr := range entry.Translations {
		if answer == strings.ToLower(tr.Canonical) {
			return models.MatchResult{
				Correct:   true,
				Canonical: tr.Canonical,
			}
		}
		for _, syn := range tr.Synonyms {
			if answer == strings.ToLower(syn) {
				// Сохраняем ввод пользователя как есть, а не словарный синоним
				return models.MatchResult{
					Correct:        true,
					Canonical:      tr.Canonical,
					MatchedSynonym: rawAnswer,
				}
			}
		}
	}

	// Wrong answer: report the first translation as "the" expected one.
	// That is a policy choice, not a claim that it is the best translation.
	return models.MatchResult{
		Correct:   false,
		Canonical: entry.Translations[0].Canonical,
	}
}
