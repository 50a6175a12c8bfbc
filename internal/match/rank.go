package match

import (
	"sort"

	"adopta-match/internal/domain"
)

// Rank corre el pipeline completo sobre el catálogo: filtra, puntúa a los
// permitidos, aplica sus penalizaciones blandas (aditivas, con clamp a
// [0,100] y redondeo a un decimal) y ordena descendente por score final.
// Empates conservan el orden del catálogo. Los bloqueados no se puntúan.
// Las listas vuelven completas; el recorte top-N es del consumidor.
func Rank(archetypes []domain.Archetype, p domain.UserProfile, weights map[string]int) domain.RankResult {
	filtered := FilterAll(archetypes, p)

	top := make([]domain.MergedResult, 0, len(filtered.Allowed))
	for _, allowed := range filtered.Allowed {
		base := Score(p.Traits, allowed.Archetype.Traits, weights)
		final := base.BaseScore
		for _, pen := range allowed.Penalties {
			final += pen.Delta
		}
		top = append(top, domain.MergedResult{
			Archetype:        allowed.Archetype,
			Score:            round1(clampScore(final)),
			BaseScore:        base.BaseScore,
			Diffs:            base.Diffs,
			AppliedPenalties: allowed.Penalties,
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})

	return domain.RankResult{Top: top, Avoid: filtered.Blocked}
}

// ScoreOne evalúa reglas y score para un solo arquetipo (vista de detalle).
// Si las reglas lo bloquean, el ScoreResult queda en cero y las razones
// viajan en el outcome.
func ScoreOne(a domain.Archetype, p domain.UserProfile, weights map[string]int) (domain.RuleOutcome, domain.ScoreResult) {
	outcome := Evaluate(a, p)
	if !outcome.Allowed {
		return outcome, domain.ScoreResult{}
	}

	result := Score(p.Traits, a.Traits, weights)
	final := result.BaseScore
	for _, pen := range outcome.Penalties {
		final += pen.Delta
	}
	result.Score = round1(clampScore(final))
	result.AppliedPenalties = outcome.Penalties
	return outcome, result
}
