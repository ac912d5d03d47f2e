package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadLexiconFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	data := "слово,перевод,синонимы\n" +
		"кот,cat,kitty; pussycat\n" +
		"собака,dog,\n" +
		"кот,tomcat,\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	lex, err := LoadLexicon(DefaultLoadConfig(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"кот", "собака"}, lex.Keys())

	entry, err := lex.Lookup("кот")
	require.NoError(t, err)
	require.Len(t, entry.Translations, 2)
	assert.Equal(t, "cat", entry.Translations[0].Canonical)
	assert.Equal(t, []string{"kitty", "pussycat"}, entry.Translations[0].Synonyms)
	// Повторная строка с тем же словом добавляет перевод в ту же статью
	assert.Equal(t, "tomcat", entry.Translations[1].Canonical)
}

func TestLoadLexiconFromExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"слово", "перевод", "синонимы"},
		{"кот", "cat", "kitty"},
		{"собака", "dog", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	lex, err := LoadLexicon(DefaultLoadConfig(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"кот", "собака"}, lex.Keys())

	entry, err := lex.Lookup("кот")
	require.NoError(t, err)
	assert.Equal(t, "cat", entry.Translations[0].Canonical)
	assert.Equal(t, []string{"kitty"}, entry.Translations[0].Synonyms)
}

func TestLoadLexiconRejectsPartialRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	data := "слово,перевод,синонимы\nкот,,kitty\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadLexicon(DefaultLoadConfig(path))
	assert.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 1, columnToIndex("B"))
	assert.Equal(t, 25, columnToIndex("Z"))
	assert.Equal(t, 26, columnToIndex("AA"))
}
