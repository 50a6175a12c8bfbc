package domain

import "sort"

// Claves de rasgo compartidas entre perfiles de usuario y arquetipos.
// Usuario y arquetipo hablan el mismo sistema de coordenadas (escala 0-4),
// que es lo que hace significativo el score por distancia.
const (
	TraitEnergy       = "energy"       // demanda/oferta de ejercicio
	TraitExperience   = "experience"   // experiencia y mano para entrenar
	TraitSociability  = "sociability"  // apertura social del hogar
	TraitAffection    = "affection"    // necesidad de contacto y compañía
	TraitIndependence = "independence" // tolerancia a quedarse solo
	TraitVocality     = "vocality"     // tolerancia/tendencia a ladrar
	TraitGrooming     = "grooming"     // mantenimiento de pelaje y muda
	TraitPlayfulness  = "playfulness"  // nivel de juego esperado
	TraitSpace        = "space"        // espacio disponible/necesario
	TraitDedication   = "dedication"   // tiempo diario que el hogar puede dedicar
)

const (
	// TraitMin y TraitMax delimitan la escala compartida.
	TraitMin = 0
	TraitMax = 4
	// TraitNeutral es el punto medio: "sin señal" en las respuestas.
	TraitNeutral = 2
)

// TraitKeys lista las 10 claves en orden fijo.
var TraitKeys = []string{
	TraitEnergy,
	TraitExperience,
	TraitSociability,
	TraitAffection,
	TraitIndependence,
	TraitVocality,
	TraitGrooming,
	TraitPlayfulness,
	TraitSpace,
	TraitDedication,
}

// TraitVector mapea clave de rasgo a valor en [0,4].
type TraitVector map[string]int

// NewNeutralTraits devuelve un vector con las 10 claves en valor neutral.
func NewNeutralTraits() TraitVector {
	tv := make(TraitVector, len(TraitKeys))
	for _, key := range TraitKeys {
		tv[key] = TraitNeutral
	}
	return tv
}

// Get devuelve el valor de una clave, con neutral como default explícito.
// Todas las reglas leen rasgos por acá para que dato faltante nunca cambie
// la semántica de una condición.
func (tv TraitVector) Get(key string) int {
	if tv == nil {
		return TraitNeutral
	}
	v, ok := tv[key]
	if !ok {
		return TraitNeutral
	}
	return v
}

// Set escribe un valor ya acotado a la escala.
func (tv TraitVector) Set(key string, value int) {
	tv[key] = ClampTrait(value)
}

// Clone copia el vector; el llamador es dueño del resultado.
func (tv TraitVector) Clone() TraitVector {
	out := make(TraitVector, len(tv))
	for k, v := range tv {
		out[k] = v
	}
	return out
}

// ClampTrait acota un valor a la escala [0,4].
func ClampTrait(v int) int {
	if v < TraitMin {
		return TraitMin
	}
	if v > TraitMax {
		return TraitMax
	}
	return v
}

// FlagSet es un conjunto deduplicado de banderas derivadas de respuestas.
type FlagSet map[string]bool

// Flags derivadas. Las que salen de opciones con tag de riesgo se agregan
// verbatim; estas constantes cubren las derivaciones cruzadas fijas.
const (
	FlagStairsHigh            = "stairs_high"
	FlagNoiseSensitive        = "noise_sensitive"
	FlagSheddingSensitive     = "shedding_sensitive"
	FlagGroomingSensitive     = "grooming_sensitive"
	FlagKidsHome              = "kids_home"
	FlagFrequentGuests        = "frequent_guests"
	FlagCatHome               = "cat_home"
	FlagHighAloneTime         = "high_alone_time"
	FlagLowTrainingCommitment = "low_training_commitment"
)

func (fs FlagSet) Add(flag string) {
	if flag == "" {
		return
	}
	fs[flag] = true
}

func (fs FlagSet) Has(flag string) bool {
	return fs[flag]
}

// List devuelve las banderas en orden estable para serializar.
func (fs FlagSet) List() []string {
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
