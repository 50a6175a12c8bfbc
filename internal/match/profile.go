package match

import "adopta-match/internal/domain"

// flagRule deriva una bandera mirando la respuesta cruda de una pregunta.
// Se evalúan todas en una pasada fija; agregar una bandera nueva es agregar
// una fila, no tocar el builder.
type flagRule struct {
	question string
	matches  func(domain.Answer) bool
	flag     string
}

var derivedFlagRules = []flagRule{
	{domain.QuestionTolerances, contains(domain.OptionBarking), domain.FlagNoiseSensitive},
	{domain.QuestionTolerances, contains(domain.OptionShedding), domain.FlagSheddingSensitive},
	{domain.QuestionTolerances, contains(domain.OptionGrooming), domain.FlagGroomingSensitive},
	{domain.QuestionStairs, is(domain.OptionStairsHigh), domain.FlagStairsHigh},
	{domain.QuestionChildren, is(domain.OptionKidsHome), domain.FlagKidsHome},
	{domain.QuestionHosting, is(domain.OptionGuestsOften), domain.FlagFrequentGuests},
	{domain.QuestionOtherPets, contains(domain.OptionCat), domain.FlagCatHome},
	{domain.QuestionAloneTime, is(domain.OptionAloneVeryLong), domain.FlagHighAloneTime},
	{domain.QuestionTraining, is(domain.OptionLowCommitment), domain.FlagLowTrainingCommitment},
}

func is(value string) func(domain.Answer) bool {
	return func(a domain.Answer) bool { return a.Is(value) }
}

func contains(value string) func(domain.Answer) bool {
	return func(a domain.Answer) bool { return a.Contains(value) }
}

// BuildProfile convierte respuestas crudas + catálogo de preguntas en un
// perfil estructurado. Es total: dato malformado o parcial degrada a
// defaults neutrales, nunca falla. IDs de pregunta u opción desconocidos se
// ignoran en silencio (defensa contra respuestas viejas o parciales).
func BuildProfile(answers domain.AnswerSet, questions []domain.Question) domain.UserProfile {
	traits := domain.NewNeutralTraits()
	flags := make(domain.FlagSet)

	for _, q := range questions {
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		// Single resuelve una opción; multi resuelve cada selección de
		// forma independiente, en orden de selección.
		for _, optID := range ans.Values() {
			opt, ok := q.Option(optID)
			if !ok {
				continue
			}
			for key, target := range opt.Traits {
				// Sobrescribe, no promedia.
				traits.Set(key, target)
			}
			if opt.Risk != "" {
				flags.Add(opt.Risk)
			}
			if opt.MobilityPenalty {
				flags.Add(domain.FlagStairsHigh)
			}
		}
	}

	for _, rule := range derivedFlagRules {
		ans, ok := answers[rule.question]
		if !ok {
			continue
		}
		if rule.matches(ans) {
			flags.Add(rule.flag)
		}
	}

	// Pasada final de clamp; los valores ya deberían estar en rango.
	for key, v := range traits {
		traits[key] = domain.ClampTrait(v)
	}

	return domain.UserProfile{
		Traits:  traits,
		Flags:   flags,
		Answers: answers.Clone(),
	}
}
