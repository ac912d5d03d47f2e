package lexicon

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadFile reads a JSON word list and builds a Lexicon from it.
// The expected format is the one the bot has always used:
//
//	{ "кот": { "cat": ["kitty"] }, ... }
//
// an object of source word -> translation -> list of synonyms.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %v", err)
	}
	defer f.Close()

	lex, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %v", path, err)
	}
	return lex, nil
}

// Load builds a Lexicon from JSON word-list data
func Load(r io.Reader) (*Lexicon, error) {
	entries, err := parseWordList(r)
	if err != nil {
		return nil, err
	}
	return New(entries)
}

// parseWordList decodes the word list token by token instead of into a
// map[string]... because the object order is significant: it defines the
// difficulty tiers and the "first translation" reported on a wrong answer.
func parseWordList(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("word list must be a JSON object: %v", err)
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		word, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v, want source word", tok)
		}

		translations, err := parseTranslations(dec)
		if err != nil {
			return nil, fmt.Errorf("word %q: %v", word, err)
		}

		entries = append(entries, Entry{Word: word, Translations: translations})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseTranslations reads one translation -> synonyms object in order
func parseTranslations(dec *json.Decoder) ([]Translation, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("translations must be a JSON object: %v", err)
	}

	var translations []Translation
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		canonical, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v, want translation", tok)
		}

		var synonyms []string
		if err := dec.Decode(&synonyms); err != nil {
			return nil, fmt.Errorf("translation %q: synonyms must be a list of strings: %v", canonical, err)
		}

		translations = append(translations, Translation{Canonical: canonical, Synonyms: synonyms})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return translations, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("unexpected token %v, want %q", tok, want)
	}
	return nil
}
