package match

import (
	"strings"
	"testing"

	"adopta-match/internal/domain"
)

func neutralProfile() domain.UserProfile {
	return domain.UserProfile{
		Traits:  domain.NewNeutralTraits(),
		Flags:   make(domain.FlagSet),
		Answers: domain.AnswerSet{},
	}
}

func neutralArchetype(id string) domain.Archetype {
	return domain.Archetype{ID: id, Name: id, Traits: domain.NewNeutralTraits()}
}

func TestSeparationRule_ExcludesSensitiveArchetype(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagHighAloneTime)

	a := neutralArchetype("velcro")
	a.Risks = []string{domain.RiskSeparationSensitivity}

	outcome := Evaluate(a, p)
	if outcome.Allowed {
		t.Fatalf("expected exclusion")
	}
	if len(outcome.Reasons) != 1 {
		t.Fatalf("expected exactly one reason, got %v", outcome.Reasons)
	}
	if !strings.Contains(outcome.Reasons[0], "soledad") {
		t.Fatalf("expected alone-time reason, got %q", outcome.Reasons[0])
	}
	if len(outcome.Penalties) != 0 {
		t.Fatalf("excluded outcome must carry no penalties")
	}
}

func TestSeparationRule_ExcludesHighEnergyTag(t *testing.T) {
	p := neutralProfile()
	p.Traits.Set(domain.TraitIndependence, 0)

	a := neutralArchetype("atleta")
	a.Tags = []string{domain.TagHighEnergy}

	if outcome := Evaluate(a, p); outcome.Allowed {
		t.Fatalf("expected high_energy tag exclusion on zero independence")
	}
}

func TestSeparationRule_SoftPenaltyWhenAllowed(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagHighAloneTime)

	outcome := Evaluate(neutralArchetype("tranquilo"), p)
	if !outcome.Allowed {
		t.Fatalf("expected allowed, got %v", outcome.Reasons)
	}
	if len(outcome.Penalties) != 1 || outcome.Penalties[0].Delta != -6 {
		t.Fatalf("expected single -6 penalty, got %v", outcome.Penalties)
	}
}

func TestSeparationRule_SupportSystemDisarms(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagHighAloneTime)
	p.Answers[domain.QuestionSupport] = domain.Answer{Option: "family_nearby"}

	a := neutralArchetype("velcro")
	a.Risks = []string{domain.RiskSeparationSensitivity}

	outcome := Evaluate(a, p)
	if !outcome.Allowed {
		t.Fatalf("support system should disarm the rule, got %v", outcome.Reasons)
	}
	if len(outcome.Penalties) != 0 {
		t.Fatalf("expected no penalty with support recorded, got %v", outcome.Penalties)
	}
}

func TestSeparationRule_NoneSentinelIsNoSupport(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagHighAloneTime)
	p.Answers[domain.QuestionSupport] = domain.Answer{Options: []string{domain.OptionNone}}

	a := neutralArchetype("velcro")
	a.Risks = []string{domain.RiskSeparationSensitivity}

	if outcome := Evaluate(a, p); outcome.Allowed {
		t.Fatalf("exclusive none must count as no support")
	}
}

func TestSeparationRule_NonePlusOthersCountsAsSupport(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagHighAloneTime)
	p.Answers[domain.QuestionSupport] = domain.Answer{Options: []string{domain.OptionNone, "neighbor"}}

	a := neutralArchetype("velcro")
	a.Risks = []string{domain.RiskSeparationSensitivity}

	if outcome := Evaluate(a, p); !outcome.Allowed {
		t.Fatalf("none alongside other options should count as support, got %v", outcome.Reasons)
	}
}

func TestPreyDriveRule(t *testing.T) {
	a := neutralArchetype("cazador")
	a.Risks = []string{domain.RiskHighPreyDrive}

	p := neutralProfile()
	p.Flags.Add(domain.FlagCatHome)
	p.Flags.Add(domain.FlagLowTrainingCommitment)

	if outcome := Evaluate(a, p); outcome.Allowed {
		t.Fatalf("expected prey drive exclusion with cat at home")
	}

	// Con experiencia y compromiso, la regla no se arma.
	experienced := neutralProfile()
	experienced.Flags.Add(domain.FlagCatHome)
	experienced.Traits.Set(domain.TraitExperience, 3)
	if outcome := Evaluate(a, experienced); !outcome.Allowed {
		t.Fatalf("experienced cat home should pass, got %v", outcome.Reasons)
	}

	// Permitido: la regla no agrega penalización blanda.
	calm := neutralArchetype("tranquilo")
	low := neutralProfile()
	low.Flags.Add(domain.FlagCatHome)
	low.Traits.Set(domain.TraitExperience, 1)
	outcome := Evaluate(calm, low)
	if !outcome.Allowed || len(outcome.Penalties) != 0 {
		t.Fatalf("prey drive rule must not add soft penalties, got %+v", outcome)
	}
}

func TestNoiseRule(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagNoiseSensitive)

	for _, risk := range []string{domain.RiskNoise, domain.RiskVocal, domain.RiskBarking} {
		a := neutralArchetype("vocal")
		a.Risks = []string{risk}
		if outcome := Evaluate(a, p); outcome.Allowed {
			t.Fatalf("expected exclusion for risk %s", risk)
		}
	}

	// Sin riesgo pero con vocalidad alta: penalización -8.
	loud := neutralArchetype("charlatan")
	loud.Traits.Set(domain.TraitVocality, 3)
	outcome := Evaluate(loud, p)
	if !outcome.Allowed {
		t.Fatalf("expected allowed, got %v", outcome.Reasons)
	}
	if len(outcome.Penalties) != 1 || outcome.Penalties[0].Delta != -8 {
		t.Fatalf("expected -8 noise penalty, got %v", outcome.Penalties)
	}

	// Vocalidad moderada: sin penalización.
	quiet := neutralArchetype("callado")
	if outcome := Evaluate(quiet, p); len(outcome.Penalties) != 0 {
		t.Fatalf("expected no penalty for quiet archetype, got %v", outcome.Penalties)
	}

	// T6 en cero también arma la regla, sin bandera.
	zeroTolerance := neutralProfile()
	zeroTolerance.Traits.Set(domain.TraitVocality, 0)
	barker := neutralArchetype("ladrador")
	barker.Risks = []string{domain.RiskBarking}
	if outcome := Evaluate(barker, zeroTolerance); outcome.Allowed {
		t.Fatalf("zero vocality tolerance should trigger the rule")
	}
}

func TestSheddingRule(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagSheddingSensitive)

	shedder := neutralArchetype("nordico")
	shedder.Risks = []string{domain.RiskHighShedding}
	if outcome := Evaluate(shedder, p); outcome.Allowed {
		t.Fatalf("expected high_shedding exclusion")
	}

	// También excluye por rasgo de mantenimiento alto, sin riesgo.
	fluffy := neutralArchetype("peludo")
	fluffy.Traits.Set(domain.TraitGrooming, 3)
	if outcome := Evaluate(fluffy, p); outcome.Allowed {
		t.Fatalf("expected grooming>=3 exclusion")
	}

	// Pelaje fácil pasa sin penalización.
	short := neutralArchetype("pelo_corto")
	short.Traits.Set(domain.TraitGrooming, 1)
	outcome := Evaluate(short, p)
	if !outcome.Allowed || len(outcome.Penalties) != 0 {
		t.Fatalf("shedding rule must not add soft penalties, got %+v", outcome)
	}
}

func TestBusyHomeRule(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagKidsHome)
	p.Flags.Add(domain.FlagFrequentGuests)
	p.Answers[domain.QuestionExperience] = domain.Answer{Option: domain.OptionFirstTime}

	demanding := neutralArchetype("working_line")
	demanding.Traits.Set(domain.TraitExperience, 3)
	demanding.Traits.Set(domain.TraitEnergy, 4)
	if outcome := Evaluate(demanding, p); outcome.Allowed {
		t.Fatalf("expected exclusion for demanding archetype in busy first-timer home")
	}

	// Solo una de las dos exigencias altas: pasa.
	handful := neutralArchetype("energico")
	handful.Traits.Set(domain.TraitEnergy, 4)
	if outcome := Evaluate(handful, p); !outcome.Allowed {
		t.Fatalf("energy alone should not exclude, got %v", outcome.Reasons)
	}

	// Sin visitas frecuentes la regla no se arma.
	calmHome := neutralProfile()
	calmHome.Flags.Add(domain.FlagKidsHome)
	calmHome.Answers[domain.QuestionExperience] = domain.Answer{Option: domain.OptionFirstTime}
	if outcome := Evaluate(demanding, calmHome); !outcome.Allowed {
		t.Fatalf("rule needs kids AND guests, got %v", outcome.Reasons)
	}
}

func TestStairsRule(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagStairsHigh)

	large := neutralArchetype("gigante")
	large.Sizes = []string{domain.SizeLarge}
	outcome := Evaluate(large, p)
	if !outcome.Allowed {
		t.Fatalf("stairs rule must never exclude, got %v", outcome.Reasons)
	}
	if len(outcome.Penalties) != 1 || outcome.Penalties[0].Delta != -5 {
		t.Fatalf("expected -5 stairs penalty, got %v", outcome.Penalties)
	}

	senior := neutralArchetype(domain.SeniorArchetypeID)
	outcome = Evaluate(senior, p)
	if len(outcome.Penalties) != 1 || outcome.Penalties[0].Key != "stairs" {
		t.Fatalf("expected stairs penalty for senior profile, got %v", outcome.Penalties)
	}

	// Tamaño mixto no penaliza.
	mixed := neutralArchetype("mediano_grande")
	mixed.Sizes = []string{domain.SizeMedium, domain.SizeLarge}
	if outcome := Evaluate(mixed, p); len(outcome.Penalties) != 0 {
		t.Fatalf("mixed sizes should not be penalized, got %v", outcome.Penalties)
	}

	// La respuesta cruda arma la regla aunque la bandera falte.
	raw := neutralProfile()
	raw.Answers[domain.QuestionStairs] = domain.Answer{Option: domain.OptionStairsHigh}
	if outcome := Evaluate(large, raw); len(outcome.Penalties) != 1 {
		t.Fatalf("raw stairs answer should trigger penalty, got %v", outcome.Penalties)
	}
}

func TestEvaluate_ShortCircuitOnFirstExclusion(t *testing.T) {
	// El perfil arma separación (R1), ruido (R3) y muda (R4) a la vez; el
	// arquetipo es excluible por las tres. Solo debe aparecer la razón de R1.
	p := neutralProfile()
	p.Flags.Add(domain.FlagHighAloneTime)
	p.Flags.Add(domain.FlagNoiseSensitive)
	p.Flags.Add(domain.FlagSheddingSensitive)
	p.Flags.Add(domain.FlagStairsHigh)

	a := neutralArchetype("pesadilla")
	a.Risks = []string{domain.RiskSeparationSensitivity, domain.RiskBarking, domain.RiskHighShedding}
	a.Sizes = []string{domain.SizeLarge}

	outcome := Evaluate(a, p)
	if outcome.Allowed {
		t.Fatalf("expected exclusion")
	}
	if len(outcome.Reasons) != 1 {
		t.Fatalf("short-circuit broken: got reasons %v", outcome.Reasons)
	}
	if !strings.Contains(outcome.Reasons[0], "soledad") {
		t.Fatalf("expected first rule's reason, got %q", outcome.Reasons[0])
	}
	if len(outcome.Penalties) != 0 {
		t.Fatalf("excluded outcome must not accumulate penalties, got %v", outcome.Penalties)
	}
}

func TestEvaluate_AccumulatesPenaltiesAcrossRules(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagHighAloneTime)
	p.Flags.Add(domain.FlagNoiseSensitive)
	p.Flags.Add(domain.FlagStairsHigh)

	a := neutralArchetype("grandote_charlatan")
	a.Traits.Set(domain.TraitVocality, 3)
	a.Sizes = []string{domain.SizeLarge}

	outcome := Evaluate(a, p)
	if !outcome.Allowed {
		t.Fatalf("expected allowed, got %v", outcome.Reasons)
	}
	if len(outcome.Penalties) != 3 {
		t.Fatalf("expected separation+noise+stairs penalties, got %v", outcome.Penalties)
	}
	var total float64
	for _, pen := range outcome.Penalties {
		total += pen.Delta
	}
	if total != -19 {
		t.Fatalf("expected total -19, got %v", total)
	}
}

func TestFilterAll_PreservesCatalogOrder(t *testing.T) {
	p := neutralProfile()
	p.Flags.Add(domain.FlagNoiseSensitive)

	vocal := neutralArchetype("vocal")
	vocal.Risks = []string{domain.RiskVocal}
	quiet1 := neutralArchetype("callado_1")
	quiet2 := neutralArchetype("callado_2")

	result := FilterAll([]domain.Archetype{quiet1, vocal, quiet2}, p)
	if len(result.Allowed) != 2 || len(result.Blocked) != 1 {
		t.Fatalf("expected 2 allowed / 1 blocked, got %d/%d", len(result.Allowed), len(result.Blocked))
	}
	if result.Allowed[0].Archetype.ID != "callado_1" || result.Allowed[1].Archetype.ID != "callado_2" {
		t.Fatalf("catalog order not preserved: %v", result.Allowed)
	}
	if result.Blocked[0].Archetype.ID != "vocal" || len(result.Blocked[0].Reasons) == 0 {
		t.Fatalf("blocked entry missing reason: %+v", result.Blocked[0])
	}
}
