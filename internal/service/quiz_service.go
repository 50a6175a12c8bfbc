package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adopta-match/internal/domain"
	"adopta-match/internal/repository"
)

var (
	ErrSessionNotFound  = errors.New("quiz session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerShape      = errors.New("answer shape does not match question type")
)

// QuizService maneja el ciclo de vida de una sesión de cuestionario: alta,
// registro de respuestas y progreso. La forma de la respuesta se valida
// contra el tipo de la pregunta al grabar; el core igual tolera datos
// viejos al leer.
type QuizService struct {
	sessions  repository.SessionRepository
	answers   repository.AnswerRepository
	questions []domain.Question
	logger    *zap.Logger
}

func NewQuizService(
	sessions repository.SessionRepository,
	answers repository.AnswerRepository,
	questions []domain.Question,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		sessions:  sessions,
		answers:   answers,
		questions: questions,
		logger:    logger,
	}
}

// CreateSession abre una sesión nueva; userID vacío para anónimos.
func (s *QuizService) CreateSession(ctx context.Context, userID string) (domain.QuizSession, error) {
	now := time.Now().UTC()
	session := domain.QuizSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.QuizSession{}, fmt.Errorf("create quiz session: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("quiz session created", zap.String("session_id", session.ID))
	}
	return session, nil
}

// GetSession busca una sesión por id.
func (s *QuizService) GetSession(ctx context.Context, id string) (domain.QuizSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return domain.QuizSession{}, ErrSessionNotFound
	}
	return session, nil
}

// RecordAnswer graba (o sobrescribe) la respuesta de una pregunta.
func (s *QuizService) RecordAnswer(ctx context.Context, sessionID, questionID string, answer domain.Answer) error {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return ErrSessionNotFound
	}

	question, ok := s.findQuestion(questionID)
	if !ok {
		return ErrQuestionNotFound
	}
	if question.IsMulti() {
		if len(answer.Options) == 0 {
			return ErrAnswerShape
		}
	} else if answer.Option == "" || len(answer.Options) > 0 {
		return ErrAnswerShape
	}

	if err := s.answers.Upsert(ctx, sessionID, questionID, dedupe(answer)); err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	if err := s.sessions.Touch(ctx, sessionID); err != nil && s.logger != nil {
		s.logger.Warn("touch session failed", zap.Error(err))
	}
	return nil
}

// Answers devuelve el snapshot actual de respuestas de la sesión.
func (s *QuizService) Answers(ctx context.Context, sessionID string) (domain.AnswerSet, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, ErrSessionNotFound
	}
	answers, err := s.answers.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session answers: %w", err)
	}
	return answers, nil
}

// Progress informa respondidas sobre total del catálogo.
func (s *QuizService) Progress(ctx context.Context, sessionID string) (answered, total int, err error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return 0, 0, ErrSessionNotFound
	}
	answered, err = s.answers.CountBySession(ctx, sessionID)
	if err != nil {
		return 0, 0, fmt.Errorf("count session answers: %w", err)
	}
	return answered, len(s.questions), nil
}

func (s *QuizService) findQuestion(id string) (domain.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Question{}, false
}

// dedupe deja las opciones multi sin repetidos, en orden de selección.
func dedupe(answer domain.Answer) domain.Answer {
	if len(answer.Options) == 0 {
		return answer
	}
	seen := make(map[string]bool, len(answer.Options))
	out := answer.Options[:0:0]
	for _, opt := range answer.Options {
		if seen[opt] {
			continue
		}
		seen[opt] = true
		out = append(out, opt)
	}
	answer.Options = out
	return answer
}
