package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adopta-match/internal/domain"
	"adopta-match/internal/email"
	"adopta-match/internal/service"
)

// QuizHandler mantiene dependencias para los endpoints del cuestionario y
// de resultados.
type QuizHandler struct {
	logger  *zap.Logger
	quiz    *service.QuizService
	matcher *service.MatchService
	mailer  email.Sender
}

func NewQuizHandler(logger *zap.Logger, quiz *service.QuizService, matcher *service.MatchService, mailer email.Sender) *QuizHandler {
	return &QuizHandler{
		logger:  logger,
		quiz:    quiz,
		matcher: matcher,
		mailer:  mailer,
	}
}

// ListQuestions maneja GET /quiz/questions.
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.matcher.Questions()})
}

// ListArchetypes maneja GET /quiz/archetypes.
func (h *QuizHandler) ListArchetypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"archetypes": h.matcher.Archetypes()})
}

// CreateSession maneja POST /quiz/sessions. Si llega un access token
// válido, la sesión queda asociada a la cuenta.
func (h *QuizHandler) CreateSession(c *gin.Context) {
	var userID string
	if claims, ok := GetAuthClaims(c); ok {
		userID = claims.UserID
	}

	session, err := h.quiz.CreateSession(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// RecordAnswer maneja PUT /quiz/sessions/:id/answers.
func (h *QuizHandler) RecordAnswer(c *gin.Context) {
	var req struct {
		QuestionID string   `json:"question_id" binding:"required"`
		Option     string   `json:"option"`
		Options    []string `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answer := domain.Answer{Option: req.Option, Options: req.Options}
	err := h.quiz.RecordAnswer(c.Request.Context(), c.Param("id"), req.QuestionID, answer)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "recorded"})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
	case errors.Is(err, service.ErrAnswerShape):
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer shape does not match question type"})
	default:
		h.logger.Error("record answer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record answer"})
	}
}

// GetProfile maneja GET /quiz/sessions/:id/profile.
func (h *QuizHandler) GetProfile(c *gin.Context) {
	answers, err := h.quiz.Answers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondAnswersError(c, err)
		return
	}

	profile := h.matcher.BuildProfile(answers)
	answered, total, _ := h.quiz.Progress(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"traits":   profile.Traits,
		"flags":    profile.Flags.List(),
		"answered": answered,
		"total":    total,
	})
}

// GetResults maneja GET /quiz/sessions/:id/results. El core devuelve las
// listas completas; el recorte top-N se aplica acá.
func (h *QuizHandler) GetResults(c *gin.Context) {
	answers, err := h.quiz.Answers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondAnswersError(c, err)
		return
	}

	result := h.matcher.Rank(answers)
	top := result.Top
	avoid := result.Avoid
	if n, err := strconv.Atoi(c.Query("top")); err == nil && n >= 0 {
		if n < len(top) {
			top = top[:n]
		}
		if n < len(avoid) {
			avoid = avoid[:n]
		}
	}
	c.JSON(http.StatusOK, gin.H{"top": top, "avoid": avoid})
}

// GetArchetypeDetail maneja GET /quiz/sessions/:id/results/:archetype.
func (h *QuizHandler) GetArchetypeDetail(c *gin.Context) {
	answers, err := h.quiz.Answers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondAnswersError(c, err)
		return
	}

	detail, err := h.matcher.ScoreOne(answers, c.Param("archetype"))
	if err != nil {
		if errors.Is(err, service.ErrArchetypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "archetype not found"})
			return
		}
		h.logger.Error("score one failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score archetype"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// EmailResults maneja POST /quiz/sessions/:id/results/email.
func (h *QuizHandler) EmailResults(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Top   int    `json:"top"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid email request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answers, err := h.quiz.Answers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondAnswersError(c, err)
		return
	}

	result := h.matcher.Rank(answers)
	top := result.Top
	limit := req.Top
	if limit <= 0 {
		limit = 3
	}
	if limit < len(top) {
		top = top[:limit]
	}

	if err := h.mailer.SendMatchSummary(c.Request.Context(), req.Email, top); err != nil {
		h.logger.Error("send summary failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email delivery unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (h *QuizHandler) respondAnswersError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	h.logger.Error("load answers failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load answers"})
}
