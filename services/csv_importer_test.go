package services

import (
	"strings"
	"testing"

	"quizbank/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCSV = `question,option_1,option_2,option_3,option_4,correct_option
2+2?,3,4,5,6,2
Capital of Poland?,Warsaw,Krakow,Gdansk,Poznan,1
Largest planet?,Earth,Mars,Jupiter,Venus,3
`

func TestImportCSV(t *testing.T) {
	s := newTestService(t)

	questions, err := s.ImportCSV(strings.NewReader(validCSV))
	require.NoError(t, err)
	require.Len(t, questions, 3)

	// Rows come back in input order with distinct assigned ids.
	assert.Equal(t, "2+2?", questions[0].Question)
	assert.Equal(t, "Capital of Poland?", questions[1].Question)
	assert.Equal(t, "Largest planet?", questions[2].Question)
	seen := make(map[uint]bool)
	for _, q := range questions {
		assert.NotZero(t, q.ID)
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
	assert.EqualValues(t, 3, countQuestions(t, s))
}

func TestImportCSVStripsBOM(t *testing.T) {
	s := newTestService(t)

	questions, err := s.ImportCSV(strings.NewReader("\ufeff" + validCSV))
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestImportCSVReplacesInvalidUTF8(t *testing.T) {
	s := newTestService(t)

	csv := "question,option_1,option_2,option_3,option_4,correct_option\n" +
		"what is \xff\xfe?,a,b,c,d,1\n"
	questions, err := s.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Contains(t, questions[0].Question, "�")
}

func TestImportCSVColumnOrderDoesNotMatter(t *testing.T) {
	s := newTestService(t)

	csv := "correct_option,question,option_4,option_3,option_2,option_1\n" +
		"2,2+2?,6,5,4,3\n"
	questions, err := s.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "2+2?", questions[0].Question)
	assert.Equal(t, "3", questions[0].Option1)
	assert.Equal(t, "6", questions[0].Option4)
	assert.Equal(t, 2, questions[0].CorrectOption)
}

func TestImportCSVMissingColumn(t *testing.T) {
	s := newTestService(t)

	csv := "question,option_1,option_2,option_3,correct_option\n" +
		"2+2?,3,4,5,2\n"
	_, err := s.ImportCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Zero(t, countQuestions(t, s))
}

func TestImportCSVEmptyFile(t *testing.T) {
	s := newTestService(t)

	_, err := s.ImportCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestImportCSVHeaderOnly(t *testing.T) {
	s := newTestService(t)

	questions, err := s.ImportCSV(strings.NewReader("question,option_1,option_2,option_3,option_4,correct_option\n"))
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestImportCSVMalformedCorrectOption(t *testing.T) {
	s := newTestService(t)

	csv := "question,option_1,option_2,option_3,option_4,correct_option\n" +
		"2+2?,3,4,5,6,2\n" +
		"3+3?,5,6,7,8,two\n"
	_, err := s.ImportCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMalformedCSV)

	// All-or-nothing: the good first row must not survive the bad second one.
	assert.Zero(t, countQuestions(t, s))
}

func TestImportCSVShortRow(t *testing.T) {
	s := newTestService(t)

	csv := "question,option_1,option_2,option_3,option_4,correct_option\n" +
		"2+2?,3,4\n"
	_, err := s.ImportCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMalformedCSV)
	assert.Zero(t, countQuestions(t, s))
}

func TestImportCSVInvalidCorrectOption(t *testing.T) {
	s := newTestService(t)

	csv := "question,option_1,option_2,option_3,option_4,correct_option\n" +
		"2+2?,3,4,5,6,2\n" +
		"3+3?,5,6,7,8,9\n"
	_, err := s.ImportCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, models.ErrInvalidCorrectOption)
	assert.Zero(t, countQuestions(t, s))
}
