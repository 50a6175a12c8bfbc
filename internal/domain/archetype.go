package domain

// Riesgos de arquetipo con significado fijo para las reglas.
const (
	RiskSeparationSensitivity = "separation_sensitivity"
	RiskHighPreyDrive         = "high_prey_drive"
	RiskNoise                 = "noise"
	RiskVocal                 = "vocal"
	RiskBarking               = "barking"
	RiskHighShedding          = "high_shedding"
)

// TagHighEnergy marca arquetipos que no toleran hogares ausentes.
const TagHighEnergy = "high_energy"

// Categorías de tamaño del catálogo.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// SeniorArchetypeID es el perfil senior fijo: recibe la penalización de
// escaleras aunque su tamaño no sea grande.
const SeniorArchetypeID = "senior_calmo"

// Archetype es un candidato del catálogo de adopción. El loader garantiza
// que Traits trae las 10 claves en [0,4]; el core no lo re-verifica.
type Archetype struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Traits TraitVector `json:"traits"`
	Tags   []string    `json:"tags,omitempty"`
	Risks  []string    `json:"risks,omitempty"`
	Sizes  []string    `json:"sizes,omitempty"`

	// Campos narrativos; irrelevantes para el score.
	Why    string   `json:"why,omitempty"`
	Ask    string   `json:"ask,omitempty"`
	Breeds []string `json:"breeds,omitempty"`
}

// HasTag indica si el arquetipo lleva el tag dado.
func (a Archetype) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasRisk indica si el arquetipo lleva el riesgo dado.
func (a Archetype) HasRisk(risk string) bool {
	for _, r := range a.Risks {
		if r == risk {
			return true
		}
	}
	return false
}

// HasAnyRisk indica si el arquetipo lleva alguno de los riesgos dados.
func (a Archetype) HasAnyRisk(risks ...string) bool {
	for _, r := range risks {
		if a.HasRisk(r) {
			return true
		}
	}
	return false
}

// IsOnlySize indica si el arquetipo viene en exactamente esa categoría.
func (a Archetype) IsOnlySize(size string) bool {
	return len(a.Sizes) == 1 && a.Sizes[0] == size
}
