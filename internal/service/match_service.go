package service

import (
	"errors"

	"go.uber.org/zap"

	"adopta-match/internal/domain"
	"adopta-match/internal/match"
)

var ErrArchetypeNotFound = errors.New("archetype not found")

// MatchService expone las tres operaciones públicas del core sobre los
// catálogos cargados: construir perfil, rankear y puntuar un arquetipo.
// No guarda estado entre llamadas; cada pedido recomputa desde el snapshot
// de respuestas que recibe.
type MatchService struct {
	questions  []domain.Question
	archetypes []domain.Archetype
	weights    map[string]int
	logger     *zap.Logger
}

func NewMatchService(questions []domain.Question, archetypes []domain.Archetype, logger *zap.Logger) *MatchService {
	return &MatchService{
		questions:  questions,
		archetypes: archetypes,
		weights:    match.DefaultWeights(),
		logger:     logger,
	}
}

// Questions devuelve la vista solo-lectura del catálogo de preguntas.
func (s *MatchService) Questions() []domain.Question {
	return s.questions
}

// Archetypes devuelve la vista solo-lectura del catálogo de arquetipos.
func (s *MatchService) Archetypes() []domain.Archetype {
	return s.archetypes
}

// BuildProfile deriva el perfil estructurado desde respuestas crudas.
func (s *MatchService) BuildProfile(answers domain.AnswerSet) domain.UserProfile {
	return match.BuildProfile(answers, s.questions)
}

// Rank corre filtro + score + merge sobre el catálogo completo.
func (s *MatchService) Rank(answers domain.AnswerSet) domain.RankResult {
	profile := s.BuildProfile(answers)
	result := match.Rank(s.archetypes, profile, s.weights)
	if s.logger != nil {
		s.logger.Debug("ranked catalog",
			zap.Int("allowed", len(result.Top)),
			zap.Int("blocked", len(result.Avoid)),
		)
	}
	return result
}

// MatchDetail es la vista de detalle de un arquetipo: veredicto de reglas
// más score (en cero si quedó bloqueado).
type MatchDetail struct {
	Archetype domain.Archetype   `json:"archetype"`
	Outcome   domain.RuleOutcome `json:"outcome"`
	Result    domain.ScoreResult `json:"result"`
}

// ScoreOne re-puntúa un solo arquetipo contra las respuestas actuales.
func (s *MatchService) ScoreOne(answers domain.AnswerSet, archetypeID string) (MatchDetail, error) {
	var found *domain.Archetype
	for i := range s.archetypes {
		if s.archetypes[i].ID == archetypeID {
			found = &s.archetypes[i]
			break
		}
	}
	if found == nil {
		return MatchDetail{}, ErrArchetypeNotFound
	}

	profile := s.BuildProfile(answers)
	outcome, result := match.ScoreOne(*found, profile, s.weights)
	return MatchDetail{Archetype: *found, Outcome: outcome, Result: result}, nil
}
