package domain

// Tipos de pregunta soportados por el catálogo.
const (
	QuestionTypeSingle = "single"
	QuestionTypeMulti  = "multi"
)

// IDs de preguntas que participan en derivaciones de banderas. El resto del
// catálogo solo aporta targets de rasgos y puede crecer sin tocar código.
const (
	QuestionTolerances = "tolerances"
	QuestionStairs     = "stairs_elevator"
	QuestionChildren   = "children"
	QuestionHosting    = "hosting"
	QuestionOtherPets  = "other_pets"
	QuestionAloneTime  = "alone_time"
	QuestionTraining   = "training_commitment"
	QuestionSupport    = "support_system"
	QuestionExperience = "experience"
)

// Valores de opción con significado fijo para las reglas.
const (
	OptionBarking       = "barking"
	OptionShedding      = "shedding"
	OptionGrooming      = "grooming"
	OptionStairsHigh    = "stairs_high"
	OptionKidsHome      = "kids_home"
	OptionGuestsOften   = "guests_often"
	OptionCat           = "cat"
	OptionAloneVeryLong = "alone_very_long"
	OptionLowCommitment = "low"
	OptionFirstTime     = "first_time"
	// OptionNone es el centinela "sin red de apoyo" / "ninguna".
	OptionNone = "none"
)

// Question es una entrada del catálogo de preguntas. El core la recibe ya
// validada por el loader y la trata como solo-lectura.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []Option `json:"options"`
}

// Option es una respuesta posible. Traits define targets que la opción
// escribe sobre el perfil; Risk agrega una bandera verbatim; MobilityPenalty
// marca opciones que implican escaleras sin ascensor.
type Option struct {
	ID              string         `json:"id"`
	Label           string         `json:"label"`
	Traits          map[string]int `json:"traits,omitempty"`
	Risk            string         `json:"risk,omitempty"`
	MobilityPenalty bool           `json:"mobility_penalty,omitempty"`
}

// Option busca una opción por id; ok=false si no existe.
func (q Question) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// IsMulti indica si la pregunta admite selección múltiple.
func (q Question) IsMulti() bool {
	return q.Type == QuestionTypeMulti
}
