package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/quizbot/internal/lexicon"
	"github.com/xuri/excelize/v2"
)

// LoadConfig defines how a tabular word list is read
type LoadConfig struct {
	FilePath          string // Path to the Excel or CSV file
	WordColumn        string // Column with the source word
	TranslationColumn string // Column with the canonical translation
	SynonymsColumn    string // Column with synonyms, separated by ";"
	SheetName         string // Name of the sheet to read
	StartRow          int    // The row to start reading from (1-based index)
}

// DefaultLoadConfig returns the default word-list layout
func DefaultLoadConfig(path string) LoadConfig {
	return LoadConfig{
		FilePath:          path,
		WordColumn:        "A",
		TranslationColumn: "B",
		SynonymsColumn:    "C",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// LoadLexicon reads a tabular word list (Excel or CSV) and builds a
// Lexicon from it. Rows that repeat a source word add further accepted
// translations to the same entry, in row order.
func LoadLexicon(config LoadConfig) (*lexicon.Lexicon, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	var rows [][]string
	var err error
	if ext == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config)
	}
	if err != nil {
		return nil, err
	}

	entries, err := rowsToEntries(rows, config)
	if err != nil {
		return nil, err
	}
	return lexicon.New(entries)
}

// readExcel reads all rows from the configured sheet
func readExcel(config LoadConfig) ([][]string, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	return rows, nil
}

// readCSV reads all rows from a CSV file
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowsToEntries turns raw rows into ordered lexicon entries
func rowsToEntries(rows [][]string, config LoadConfig) ([]lexicon.Entry, error) {
	wordCol := columnToIndex(config.WordColumn)
	translationCol := columnToIndex(config.TranslationColumn)
	synonymsCol := columnToIndex(config.SynonymsColumn)

	var entries []lexicon.Entry
	index := make(map[string]int) // source word -> position in entries

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		var word, translation, synonymsCell string
		if wordCol < len(row) {
			word = strings.TrimSpace(row[wordCol])
		}
		if translationCol < len(row) {
			translation = strings.TrimSpace(row[translationCol])
		}
		if synonymsCol < len(row) {
			synonymsCell = row[synonymsCol]
		}

		// Пустые строки-разделители просто пропускаем
		if word == "" && translation == "" {
			continue
		}
		if word == "" || translation == "" {
			return nil, fmt.Errorf("row %d: word and translation are both required", i+1)
		}

		tr := lexicon.Translation{
			Canonical: translation,
			Synonyms:  splitSynonyms(synonymsCell),
		}

		if pos, exists := index[word]; exists {
			entries[pos].Translations = append(entries[pos].Translations, tr)
		} else {
			index[word] = len(entries)
			entries = append(entries, lexicon.Entry{
				Word:         word,
				Translations: []lexicon.Translation{tr},
			})
		}
	}

	return entries, nil
}

// splitSynonyms parses a ";"-separated synonyms cell
func splitSynonyms(cell string) []string {
	var synonyms []string
	for _, part := range strings.Split(cell, ";") {
		if s := strings.TrimSpace(part); s != "" {
			synonyms = append(synonyms, s)
		}
	}
	return synonyms
}

// columnToIndex converts a column letter ("A", "B", ..., "AA") to a
// zero-based index
func columnToIndex(column string) int {
	index := 0
	for _, ch := range strings.ToUpper(column) {
		if ch < 'A' || ch > 'Z' {
			return 0
		}
		index = index*26 + int(ch-'A'+1)
	}
	return index - 1
}
