// Package excel parses bulk vocabulary uploads. Teachers hand out word lists
// as spreadsheets, so the import path accepts xlsx directly.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"wonbyte/internal/models"
)

// Expected columns, in order: word, meaning, difficulty (1-5, optional),
// example (optional), synonyms (optional, ;-separated), antonyms (optional,
// ;-separated). The first row is treated as a header and skipped.
const (
	colWord = iota
	colMeaning
	colDifficulty
	colExample
	colSynonyms
	colAntonyms
)

const defaultDifficulty = 3

// ImportResult summarizes one upload for the API response.
type ImportResult struct {
	TotalRows int      `json:"totalRows"`
	Parsed    int      `json:"parsed"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

// ParseVocabulary reads vocabulary entries from an xlsx stream. Rows missing
// a word or meaning are skipped with a per-row error rather than failing the
// whole upload.
func ParseVocabulary(r io.Reader) ([]models.VocabularyEntry, *ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	result := &ImportResult{Errors: []string{}}
	entries := []models.VocabularyEntry{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		result.TotalRows++

		entry, err := parseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		entries = append(entries, entry)
		result.Parsed++
	}
	return entries, result, nil
}

func parseRow(row []string) (models.VocabularyEntry, error) {
	word := strings.TrimSpace(cell(row, colWord))
	meaning := strings.TrimSpace(cell(row, colMeaning))
	if word == "" {
		return models.VocabularyEntry{}, fmt.Errorf("word is empty")
	}
	if meaning == "" {
		return models.VocabularyEntry{}, fmt.Errorf("meaning is empty")
	}

	return models.VocabularyEntry{
		Word:       word,
		Meaning:    meaning,
		Difficulty: parseDifficulty(cell(row, colDifficulty)),
		Example:    strings.TrimSpace(cell(row, colExample)),
		Synonyms:   splitList(cell(row, colSynonyms)),
		Antonyms:   splitList(cell(row, colAntonyms)),
	}, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func parseDifficulty(s string) int {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || val < 1 || val > 5 {
		return defaultDifficulty
	}
	return val
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ";") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
