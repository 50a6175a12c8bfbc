package match

import "adopta-match/internal/domain"

// Penalizaciones blandas por regla.
const (
	penaltySeparation = -6.0
	penaltyNoise      = -8.0
	penaltyStairs     = -5.0
)

// ruleResult es el veredicto de una regla individual. exclude corta la
// evaluación; penalty se acumula si ninguna regla excluye.
type ruleResult struct {
	exclude bool
	reason  string
	penalty *domain.Penalty
}

// rule es un bloque de compatibilidad con nombre. El motor recorre la lista
// en orden y la primera exclusión dura gana; eso hace del orden y del corte
// un contrato explícito y testeable, no control de flujo implícito.
type rule struct {
	name  string
	apply func(domain.Archetype, domain.UserProfile) ruleResult
}

var orderedRules = []rule{
	{"separation", separationRule},
	{"prey_drive", preyDriveRule},
	{"noise", noiseRule},
	{"shedding", sheddingRule},
	{"busy_home", busyHomeRule},
	{"stairs", stairsRule},
}

// separationRule: hogar con muchas horas de soledad y sin red de apoyo.
// Excluye perfiles con sensibilidad a la separación o alta energía; al
// resto le descuenta por el riesgo residual.
func separationRule(a domain.Archetype, p domain.UserProfile) ruleResult {
	longAlone := p.Flags.Has(domain.FlagHighAloneTime) ||
		p.Traits.Get(domain.TraitIndependence) == 0
	if !longAlone || p.Answers.SupportRecorded() {
		return ruleResult{}
	}
	if a.HasRisk(domain.RiskSeparationSensitivity) || a.HasTag(domain.TagHighEnergy) {
		return ruleResult{
			exclude: true,
			reason:  "Sufre al quedarse solo y tu rutina implica muchas horas de soledad sin red de apoyo.",
		}
	}
	return ruleResult{penalty: &domain.Penalty{Key: "separation", Delta: penaltySeparation}}
}

// preyDriveRule: gato en casa con poca experiencia o poco compromiso de
// entrenamiento. Solo excluye; no aplica penalización blanda porque la
// experiencia ya pesa 4 en el score.
func preyDriveRule(a domain.Archetype, p domain.UserProfile) ruleResult {
	lowExperience := p.Traits.Get(domain.TraitExperience) <= 1 ||
		p.Flags.Has(domain.FlagLowTrainingCommitment)
	if !p.Flags.Has(domain.FlagCatHome) || !lowExperience {
		return ruleResult{}
	}
	if a.HasRisk(domain.RiskHighPreyDrive) {
		return ruleResult{
			exclude: true,
			reason:  "Su instinto de presa es alto para convivir con un gato sin manejo experimentado.",
		}
	}
	return ruleResult{}
}

// noiseRule: hogar sensible al ruido. Excluye perfiles con riesgo vocal;
// a los demás les descuenta si su vocalidad es alta.
func noiseRule(a domain.Archetype, p domain.UserProfile) ruleResult {
	if !p.Flags.Has(domain.FlagNoiseSensitive) && p.Traits.Get(domain.TraitVocality) != 0 {
		return ruleResult{}
	}
	if a.HasAnyRisk(domain.RiskNoise, domain.RiskVocal, domain.RiskBarking) {
		return ruleResult{
			exclude: true,
			reason:  "Es un perro vocal y tu hogar necesita silencio.",
		}
	}
	if a.Traits.Get(domain.TraitVocality) >= 3 {
		return ruleResult{penalty: &domain.Penalty{Key: "noise", Delta: penaltyNoise}}
	}
	return ruleResult{}
}

// sheddingRule: sensibilidad a la muda. Solo excluye.
func sheddingRule(a domain.Archetype, p domain.UserProfile) ruleResult {
	if !p.Flags.Has(domain.FlagSheddingSensitive) && p.Traits.Get(domain.TraitGrooming) != 0 {
		return ruleResult{}
	}
	if a.HasRisk(domain.RiskHighShedding) || a.Traits.Get(domain.TraitGrooming) >= 3 {
		return ruleResult{
			exclude: true,
			reason:  "Suelta mucho pelo o exige un mantenimiento de pelaje que tu hogar no tolera.",
		}
	}
	return ruleResult{}
}

// busyHomeRule: niños + visitas frecuentes + adoptante primerizo. Excluye
// perfiles que piden a la vez manejo alto y energía alta.
func busyHomeRule(a domain.Archetype, p domain.UserProfile) ruleResult {
	firstTimer := p.Answers[domain.QuestionExperience].Is(domain.OptionFirstTime) ||
		p.Traits.Get(domain.TraitExperience) == 0
	if !p.Flags.Has(domain.FlagKidsHome) || !p.Flags.Has(domain.FlagFrequentGuests) || !firstTimer {
		return ruleResult{}
	}
	if a.Traits.Get(domain.TraitExperience) >= 3 && a.Traits.Get(domain.TraitEnergy) >= 3 {
		return ruleResult{
			exclude: true,
			reason:  "Exige manejo y energía altos para un hogar primerizo con niños y visitas frecuentes.",
		}
	}
	return ruleResult{}
}

// stairsRule: escaleras sin ascensor. Nunca excluye; descuenta a perros
// exclusivamente grandes y al perfil senior fijo.
func stairsRule(a domain.Archetype, p domain.UserProfile) ruleResult {
	if !p.Flags.Has(domain.FlagStairsHigh) &&
		!p.Answers[domain.QuestionStairs].Is(domain.OptionStairsHigh) {
		return ruleResult{}
	}
	if a.IsOnlySize(domain.SizeLarge) || a.ID == domain.SeniorArchetypeID {
		return ruleResult{penalty: &domain.Penalty{Key: "stairs", Delta: penaltyStairs}}
	}
	return ruleResult{}
}

// Evaluate corre las reglas en orden fijo contra un arquetipo. La primera
// exclusión dura devuelve allowed=false con exactamente una razón y sin
// penalizaciones; si ninguna excluye, devuelve allowed=true con las
// penalizaciones blandas acumuladas. Pura: sin efectos fuera del resultado.
func Evaluate(a domain.Archetype, p domain.UserProfile) domain.RuleOutcome {
	var penalties []domain.Penalty
	for _, r := range orderedRules {
		res := r.apply(a, p)
		if res.exclude {
			return domain.RuleOutcome{Allowed: false, Reasons: []string{res.reason}}
		}
		if res.penalty != nil {
			penalties = append(penalties, *res.penalty)
		}
	}
	return domain.RuleOutcome{Allowed: true, Penalties: penalties}
}

// FilterAll separa el catálogo en permitidos (con penalizaciones) y
// bloqueados (con razones), preservando el orden del catálogo.
func FilterAll(archetypes []domain.Archetype, p domain.UserProfile) domain.FilterResult {
	var out domain.FilterResult
	for _, a := range archetypes {
		outcome := Evaluate(a, p)
		if outcome.Allowed {
			out.Allowed = append(out.Allowed, domain.AllowedMatch{
				Archetype: a,
				Reasons:   outcome.Reasons,
				Penalties: outcome.Penalties,
			})
			continue
		}
		out.Blocked = append(out.Blocked, domain.BlockedMatch{
			Archetype: a,
			Reasons:   outcome.Reasons,
		})
	}
	return out
}
