package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"adopta-match/internal/domain"
)

func matchTestQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:   domain.QuestionAloneTime,
			Type: domain.QuestionTypeSingle,
			Options: []domain.Option{
				{ID: "few_hours"},
				{ID: domain.OptionAloneVeryLong},
			},
		},
	}
}

func matchTestArchetypes() []domain.Archetype {
	athletic := domain.NewNeutralTraits()
	athletic.Set(domain.TraitEnergy, 4)
	return []domain.Archetype{
		{
			ID:     "pegajoso",
			Name:   "Pegajoso",
			Traits: domain.NewNeutralTraits(),
			Risks:  []string{domain.RiskSeparationSensitivity},
		},
		{
			ID:     "equilibrado",
			Name:   "Equilibrado",
			Traits: domain.NewNeutralTraits(),
		},
		{
			ID:     "atleta",
			Name:   "Atleta",
			Traits: athletic,
		},
	}
}

func newMatchServiceForTest() *MatchService {
	return NewMatchService(matchTestQuestions(), matchTestArchetypes(), zap.NewNop())
}

func TestMatchServiceRank_EmptyAnswers(t *testing.T) {
	svc := newMatchServiceForTest()

	result := svc.Rank(domain.AnswerSet{})
	if len(result.Avoid) != 0 {
		t.Fatalf("expected no blocked archetypes, got %d", len(result.Avoid))
	}
	if len(result.Top) != 3 {
		t.Fatalf("expected 3 ranked archetypes, got %d", len(result.Top))
	}
	for i := 1; i < len(result.Top); i++ {
		if result.Top[i].Score > result.Top[i-1].Score {
			t.Fatalf("ranking not descending at %d: %v", i, result.Top)
		}
	}
	if result.Top[len(result.Top)-1].Archetype.ID != "atleta" {
		t.Fatalf("expected the high-energy archetype last, got %q", result.Top[len(result.Top)-1].Archetype.ID)
	}
}

func TestMatchServiceRank_AloneTimeBlocksSensitive(t *testing.T) {
	svc := newMatchServiceForTest()
	answers := domain.AnswerSet{
		domain.QuestionAloneTime: {Option: domain.OptionAloneVeryLong},
	}

	result := svc.Rank(answers)
	if len(result.Avoid) != 1 || result.Avoid[0].Archetype.ID != "pegajoso" {
		t.Fatalf("expected pegajoso blocked, got %+v", result.Avoid)
	}
	if len(result.Avoid[0].Reasons) != 1 {
		t.Fatalf("expected exactly one reason, got %v", result.Avoid[0].Reasons)
	}

	for _, m := range result.Top {
		if m.Archetype.ID != "equilibrado" {
			continue
		}
		if len(m.AppliedPenalties) != 1 || m.AppliedPenalties[0].Key != "separation" {
			t.Fatalf("expected separation penalty, got %+v", m.AppliedPenalties)
		}
		if m.Score != 94.0 {
			t.Fatalf("expected 94.0 after penalty, got %v", m.Score)
		}
		return
	}
	t.Fatalf("equilibrado missing from ranking: %+v", result.Top)
}

func TestMatchServiceScoreOne(t *testing.T) {
	svc := newMatchServiceForTest()
	answers := domain.AnswerSet{
		domain.QuestionAloneTime: {Option: domain.OptionAloneVeryLong},
	}

	detail, err := svc.ScoreOne(answers, "pegajoso")
	if err != nil {
		t.Fatalf("score one: %v", err)
	}
	if detail.Outcome.Allowed {
		t.Fatalf("expected pegajoso blocked")
	}
	if detail.Result.Score != 0 {
		t.Fatalf("blocked archetype should not carry a score, got %v", detail.Result.Score)
	}

	if _, err := svc.ScoreOne(answers, "fantasma"); !errors.Is(err, ErrArchetypeNotFound) {
		t.Fatalf("expected ErrArchetypeNotFound, got %v", err)
	}
}

func TestMatchServiceBuildProfile_DerivesAloneFlag(t *testing.T) {
	svc := newMatchServiceForTest()
	answers := domain.AnswerSet{
		domain.QuestionAloneTime: {Option: domain.OptionAloneVeryLong},
	}

	profile := svc.BuildProfile(answers)
	if !profile.Flags.Has(domain.FlagHighAloneTime) {
		t.Fatalf("expected high alone time flag, got %v", profile.Flags.List())
	}
}
