package match

import "adopta-match/internal/domain"

// DefaultWeights devuelve la ponderación fija por rasgo. Peso más alto =
// más influencia en el score; energía, experiencia y tolerancia a la
// soledad dominan porque son los desajustes que más devoluciones causan.
func DefaultWeights() map[string]int {
	return map[string]int{
		domain.TraitEnergy:       4,
		domain.TraitExperience:   4,
		domain.TraitSociability:  2,
		domain.TraitAffection:    2,
		domain.TraitIndependence: 4,
		domain.TraitVocality:     2,
		domain.TraitGrooming:     1,
		domain.TraitPlayfulness:  1,
		domain.TraitSpace:        3,
		domain.TraitDedication:   3,
	}
}
