package domain

// Answer es la respuesta cruda a una pregunta: una opción para preguntas
// single, una lista deduplicada (en orden de selección) para multi.
type Answer struct {
	Option  string   `json:"option,omitempty"`
	Options []string `json:"options,omitempty"`
}

// Values devuelve las opciones elegidas en orden de selección. Para single
// es a lo sumo un elemento.
func (a Answer) Values() []string {
	if len(a.Options) > 0 {
		return a.Options
	}
	if a.Option != "" {
		return []string{a.Option}
	}
	return nil
}

// Empty indica que no hay ninguna opción registrada.
func (a Answer) Empty() bool {
	return a.Option == "" && len(a.Options) == 0
}

// Is indica si la respuesta es exactamente el valor dado: igual en single,
// o lo contiene en exclusiva en multi.
func (a Answer) Is(value string) bool {
	vals := a.Values()
	if len(vals) != 1 {
		return false
	}
	return vals[0] == value
}

// Contains indica si el valor aparece entre las opciones elegidas.
func (a Answer) Contains(value string) bool {
	for _, v := range a.Values() {
		if v == value {
			return true
		}
	}
	return false
}

// AnswerSet mapea id de pregunta a respuesta cruda. Es el snapshot que el
// dueño del estado (persistencia) entrega al core; el core nunca lo muta.
type AnswerSet map[string]Answer

// Clone copia el mapa de respuestas.
func (as AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(as))
	for q, a := range as {
		if len(a.Options) > 0 {
			opts := make([]string, len(a.Options))
			copy(opts, a.Options)
			a.Options = opts
		}
		out[q] = a
	}
	return out
}

// SupportRecorded indica si hay red de apoyo registrada: respuesta presente
// y distinta del centinela "none" (o que no lo contenga en exclusiva).
func (as AnswerSet) SupportRecorded() bool {
	ans, ok := as[QuestionSupport]
	if !ok || ans.Empty() {
		return false
	}
	return !ans.Is(OptionNone)
}
