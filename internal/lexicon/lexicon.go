package lexicon

import (
	"fmt"
	"strings"

	"github.com/example/quizbot/pkg/models"
)

// Translation is one accepted answer for a source word: a canonical form
// plus the synonyms that are also counted as correct
type Translation struct {
	Canonical string
	Synonyms  []string
}

// Entry maps a source word to its translations. The order of Translations
// matters: the first one is reported as "the" correct answer when the user
// is wrong, and matching walks them in order.
type Entry struct {
	Word         string
	Translations []Translation
}

// Lexicon is the immutable source-word dictionary. It is built once at
// startup and shared by all goroutines without locking.
type Lexicon struct {
	keys    []string
	entries map[string]Entry
}

// New builds a Lexicon from entries and validates them. The entry order is
// preserved: difficulty tiers are prefixes of the key list.
func New(entries []Entry) (*Lexicon, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}

	lex := &Lexicon{
		keys:    make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}

	for _, entry := range entries {
		if entry.Word == "" {
			return nil, fmt.Errorf("word list contains an entry with an empty source word")
		}
		if _, exists := lex.entries[entry.Word]; exists {
			return nil, fmt.Errorf("duplicate source word %q", entry.Word)
		}
		if err := validateEntry(entry); err != nil {
			return nil, fmt.Errorf("invalid entry %q: %v", entry.Word, err)
		}
		lex.keys = append(lex.keys, entry.Word)
		lex.entries[entry.Word] = entry
	}

	return lex, nil
}

// validateEntry rejects duplicate acceptance paths: within one entry no two
// canonical forms may collide case-insensitively, and no synonym may equal
// its own or another translation's canonical form
func validateEntry(entry Entry) error {
	if len(entry.Translations) == 0 {
		return fmt.Errorf("no translations")
	}

	canonicals := make(map[string]bool, len(entry.Translations))
	for _, tr := range entry.Translations {
		if tr.Canonical == "" {
			return fmt.Errorf("empty translation")
		}
		folded := strings.ToLower(tr.Canonical)
		if canonicals[folded] {
			return fmt.Errorf("duplicate translation %q", tr.Canonical)
		}
		canonicals[folded] = true
	}

	for _, tr := range entry.Translations {
		seen := make(map[string]bool, len(tr.Synonyms))
		for _, syn := range tr.Synonyms {
			folded := strings.ToLower(syn)
			if canonicals[folded] {
				return fmt.Errorf("synonym %q duplicates a translation", syn)
			}
			if seen[folded] {
				return fmt.Errorf("duplicate synonym %q for translation %q", syn, tr.Canonical)
			}
			seen[folded] = true
		}
	}

	return nil
}

// Lookup returns the entry for a source word
func (l *Lexicon) Lookup(word string) (Entry, error) {
	entry, ok := l.entries[word]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", models.ErrWordNotFound, word)
	}
	return entry, nil
}

// Keys returns all source words in word-list order. Callers must not
// modify the returned slice.
func (l *Lexicon) Keys() []string {
	return l.keys
}

// Len returns the number of source words
func (l *Lexicon) Len() int {
	return len(l.keys)
}
