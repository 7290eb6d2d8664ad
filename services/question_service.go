package services

import (
	"errors"
	"math/rand"

	"quizbank/models"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoQuestions      = errors.New("no questions available")
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) Create(question *models.Question) error {
	if !models.ValidCorrectOption(question.CorrectOption) {
		return models.ErrInvalidCorrectOption
	}
	return s.db.Create(question).Error
}

func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Update replaces every field of an existing question with the incoming
// payload. There are no partial updates: the stored row is overwritten as a
// whole, correct option included.
func (s *QuestionService) Update(id uint, in *models.Question) (*models.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !models.ValidCorrectOption(in.CorrectOption) {
		return nil, models.ErrInvalidCorrectOption
	}

	question.Question = in.Question
	question.Option1 = in.Option1
	question.Option2 = in.Option2
	question.Option3 = in.Option3
	question.Option4 = in.Option4
	question.CorrectOption = in.CorrectOption

	if err := s.db.Save(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// Delete removes a question and returns the row as it was before removal.
func (s *QuestionService) Delete(id uint) (*models.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) List(skip, limit int) ([]models.Question, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	questions := make([]models.Question, 0, limit)
	err := s.db.Offset(skip).Limit(limit).Find(&questions).Error
	return questions, err
}

// Random picks uniformly among all stored questions, skipping the last shown
// one when the caller still remembers it. If the exclusion leaves nothing to
// pick from (a single stored question the client has already seen), the
// filter is dropped and that question is served again.
func (s *QuestionService) Random(excludeID *uint) (*models.Question, error) {
	var questions []models.Question
	if err := s.db.Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	candidates := questions
	if excludeID != nil {
		var filtered []models.Question
		if err := s.db.Where("id <> ?", *excludeID).Find(&filtered).Error; err != nil {
			return nil, err
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	question := candidates[rand.Intn(len(candidates))]
	return &question, nil
}

// CheckAnswer compares the selected option against the stored correct one.
// The selection is not validated against {1,2,3,4}; any integer is accepted
// and simply compared.
func (s *QuestionService) CheckAnswer(questionID uint, selectedOption int) (bool, error) {
	question, err := s.GetByID(questionID)
	if err != nil {
		return false, err
	}
	return selectedOption == question.CorrectOption, nil
}
