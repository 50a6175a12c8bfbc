package match

import (
	"math"

	"adopta-match/internal/domain"
)

// Score calcula el fit 0-100 entre usuario y arquetipo como distancia L1
// ponderada y normalizada. Claves faltantes valen neutral 2; pesos <= 0 no
// participan. Si todos los pesos son <= 0 el score es 0.
func Score(user, archetype domain.TraitVector, weights map[string]int) domain.ScoreResult {
	var penalty, maxPenalty float64
	diffs := make(map[string]int, len(weights))

	for key, weight := range weights {
		if weight <= 0 {
			continue
		}
		diff := user.Get(key) - archetype.Get(key)
		if diff < 0 {
			diff = -diff
		}
		diffs[key] = diff
		penalty += float64(weight) * float64(diff)
		// 4 es la distancia máxima posible por clave en la escala 0-4.
		maxPenalty += float64(weight) * float64(domain.TraitMax)
	}

	if maxPenalty == 0 {
		return domain.ScoreResult{Diffs: diffs}
	}

	score := round1(clampScore(100 * (1 - penalty/maxPenalty)))
	return domain.ScoreResult{
		Score:     score,
		BaseScore: score,
		Diffs:     diffs,
	}
}

// clampScore acota al rango [0,100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// round1 redondea a un decimal; toda salida numérica del core pasa por acá.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
