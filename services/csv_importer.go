package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"quizbank/models"
)

var (
	ErrMissingColumns = errors.New("csv file is missing required columns")
	ErrMalformedCSV   = errors.New("csv file is malformed")
)

var requiredColumns = []string{
	"question",
	"option_1",
	"option_2",
	"option_3",
	"option_4",
	"correct_option",
}

// ImportCSV parses an uploaded CSV with a header row and inserts every data
// row as a question in one batch. The import is all-or-nothing: the first bad
// row rejects the whole file and nothing is persisted.
func (s *QuestionService) ImportCSV(r io.Reader) ([]models.Question, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Tolerate a UTF-8 BOM and replace malformed byte sequences instead of
	// failing the whole upload on them.
	text := strings.TrimPrefix(string(raw), "\ufeff")
	text = strings.ToValidUTF8(text, string(utf8.RuneError))

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, ErrMissingColumns
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	maxIndex := 0
	for _, name := range requiredColumns {
		index, ok := columns[name]
		if !ok {
			return nil, ErrMissingColumns
		}
		if index > maxIndex {
			maxIndex = index
		}
	}

	questions := make([]models.Question, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrMalformedCSV
		}
		if len(record) <= maxIndex {
			return nil, ErrMalformedCSV
		}

		correctOption, err := strconv.Atoi(strings.TrimSpace(record[columns["correct_option"]]))
		if err != nil {
			return nil, ErrMalformedCSV
		}
		if !models.ValidCorrectOption(correctOption) {
			return nil, models.ErrInvalidCorrectOption
		}

		questions = append(questions, models.Question{
			Question:      record[columns["question"]],
			Option1:       record[columns["option_1"]],
			Option2:       record[columns["option_2"]],
			Option3:       record[columns["option_3"]],
			Option4:       record[columns["option_4"]],
			CorrectOption: correctOption,
		})
	}

	if len(questions) > 0 {
		// Batch create runs in a single transaction and backfills the
		// assigned ids in input order.
		if err := s.db.Create(&questions).Error; err != nil {
			return nil, err
		}
	}
	return questions, nil
}
