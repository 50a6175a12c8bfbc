package domain

// UserProfile es el perfil estructurado derivado de las respuestas crudas.
// Se reconstruye completo en cada pedido de resultados; nunca se muta
// incrementalmente. Invariante: Traits trae las 10 claves en [0,4].
type UserProfile struct {
	Traits  TraitVector `json:"traits"`
	Flags   FlagSet     `json:"-"`
	Answers AnswerSet   `json:"answers"`
}

// Penalty es un ajuste blando sobre el score base de un candidato permitido.
type Penalty struct {
	Key   string  `json:"key"`
	Delta float64 `json:"delta"`
}

// RuleOutcome es el veredicto de las reglas para un arquetipo. Si Allowed es
// false hay al menos una razón y las penalizaciones no aplican.
type RuleOutcome struct {
	Allowed   bool      `json:"allowed"`
	Reasons   []string  `json:"reasons,omitempty"`
	Penalties []Penalty `json:"penalties,omitempty"`
}

// ScoreResult es la salida del scorer para un par usuario/arquetipo.
// Valores redondeados a un decimal.
type ScoreResult struct {
	Score            float64        `json:"score"`
	BaseScore        float64        `json:"base_score"`
	Diffs            map[string]int `json:"diffs"`
	AppliedPenalties []Penalty      `json:"applied_penalties,omitempty"`
}

// AllowedMatch es un candidato que pasó los filtros duros, con las
// penalizaciones blandas acumuladas.
type AllowedMatch struct {
	Archetype Archetype `json:"archetype"`
	Reasons   []string  `json:"reasons,omitempty"`
	Penalties []Penalty `json:"penalties,omitempty"`
}

// BlockedMatch es un candidato excluido, con sus razones.
type BlockedMatch struct {
	Archetype Archetype `json:"archetype"`
	Reasons   []string  `json:"reasons"`
}

// FilterResult separa el catálogo en permitidos y bloqueados.
type FilterResult struct {
	Allowed []AllowedMatch `json:"allowed"`
	Blocked []BlockedMatch `json:"blocked"`
}

// MergedResult combina score base y penalizaciones en el score final.
type MergedResult struct {
	Archetype        Archetype      `json:"archetype"`
	Score            float64        `json:"score"`
	BaseScore        float64        `json:"base_score"`
	Diffs            map[string]int `json:"diffs"`
	AppliedPenalties []Penalty      `json:"applied_penalties,omitempty"`
}

// RankResult es la salida completa del ranker: listas ordenadas sin
// truncar. El recorte top-N es una decisión de presentación.
type RankResult struct {
	Top   []MergedResult `json:"top"`
	Avoid []BlockedMatch `json:"avoid"`
}
