package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"quizbank/models"
	"quizbank/services"

	"github.com/gin-gonic/gin"
)

// Cookie carrying the id of the question served by the previous
// /random_question/ call, so the next call can avoid an immediate repeat.
const lastQuestionCookie = "last_question_id"

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The store owns identity assignment; ignore any id in the payload.
	question.ID = 0

	if err := h.questionService.Create(&question); err != nil {
		if errors.Is(err, models.ErrInvalidCorrectOption) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Correct option must be between 1 and 4"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	question, err := h.questionService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, question)
}

// UpdateQuestion is exposed as PATCH but replaces the whole row; every field
// of the stored question is overwritten from the incoming payload.
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var payload models.Question
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.Update(uint(id), &payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		case errors.Is(err, models.ErrInvalidCorrectOption):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Correct option must be between 1 and 4"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	question, err := h.questionService.Delete(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	questions, err := h.questionService.List(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing csv_file upload"})
		return
	}

	mediaType, _, err := mime.ParseMediaType(fileHeader.Header.Get("Content-Type"))
	if err != nil || mediaType != "text/csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Please upload a CSV file."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	questions, err := h.questionService.ImportCSV(file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingColumns):
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is missing required columns."})
		case errors.Is(err, services.ErrMalformedCSV):
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file contains a malformed row."})
		case errors.Is(err, models.ErrInvalidCorrectOption):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Correct option must be between 1 and 4"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) RandomQuestion(c *gin.Context) {
	var excludeID *uint
	if value, err := c.Cookie(lastQuestionCookie); err == nil {
		if id, err := strconv.ParseUint(value, 10, 32); err == nil {
			last := uint(id)
			excludeID = &last
		}
	}

	question, err := h.questionService.Random(excludeID)
	if err != nil {
		if errors.Is(err, services.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No questions available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Session cookie, readable by the browser frontend.
	c.SetCookie(lastQuestionCookie, strconv.FormatUint(uint64(question.ID), 10), 0, "/", "", false, false)
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) CheckAnswer(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Query("question_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}
	selectedOption, err := strconv.Atoi(c.Query("selected_option"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selected option"})
		return
	}

	correct, err := h.questionService.CheckAnswer(uint(questionID), selectedOption)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if correct {
		c.JSON(http.StatusOK, gin.H{"correct": true, "message": "Poprawna odpowiedź !"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"correct": false, "message": "Zła odpowiedź :( "})
}
