// Package catalog carga y valida los catálogos JSON antes de que lleguen al
// core de matching. Es la única frontera con errores alrededor del core: una
// violación de forma acá corta el arranque, nunca un cálculo de resultados.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"adopta-match/internal/domain"
)

//go:embed questions.schema.json
var questionsSchema []byte

//go:embed archetypes.schema.json
var archetypesSchema []byte

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Catalog agrupa los dos catálogos ya validados. Tras la carga es
// solo-lectura; el core recibe vistas prestadas.
type Catalog struct {
	Questions  []domain.Question
	Archetypes []domain.Archetype
}

// Load lee y valida ambos catálogos desde disco.
func Load(questionsPath, archetypesPath string) (*Catalog, error) {
	questions, err := LoadQuestions(questionsPath)
	if err != nil {
		return nil, err
	}
	archetypes, err := LoadArchetypes(archetypesPath)
	if err != nil {
		return nil, err
	}
	return &Catalog{Questions: questions, Archetypes: archetypes}, nil
}

// LoadQuestions lee el catálogo de preguntas y lo valida contra el schema
// embebido más los chequeos estructurales que el schema no puede expresar.
func LoadQuestions(path string) ([]domain.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions catalog: %w", err)
	}
	return ParseQuestions(raw)
}

// ParseQuestions valida y decodifica el catálogo de preguntas.
func ParseQuestions(raw []byte) ([]domain.Question, error) {
	if err := validateSchema(questionsSchema, raw, "questions"); err != nil {
		return nil, err
	}

	var questions []domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions catalog: %w", err)
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: duplicate question id %q", ErrInvalidCatalog, q.ID)
		}
		seen[q.ID] = true

		seenOpts := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if seenOpts[opt.ID] {
				return nil, fmt.Errorf("%w: duplicate option id %q in question %q", ErrInvalidCatalog, opt.ID, q.ID)
			}
			seenOpts[opt.ID] = true
			for key := range opt.Traits {
				if !isTraitKey(key) {
					return nil, fmt.Errorf("%w: unknown trait key %q in question %q option %q", ErrInvalidCatalog, key, q.ID, opt.ID)
				}
			}
		}
	}
	return questions, nil
}

// LoadArchetypes lee el catálogo de arquetipos y lo valida. Garantiza la
// invariante de carga del core: las 10 claves presentes y en rango.
func LoadArchetypes(path string) ([]domain.Archetype, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archetypes catalog: %w", err)
	}
	return ParseArchetypes(raw)
}

// ParseArchetypes valida y decodifica el catálogo de arquetipos.
func ParseArchetypes(raw []byte) ([]domain.Archetype, error) {
	if err := validateSchema(archetypesSchema, raw, "archetypes"); err != nil {
		return nil, err
	}

	var archetypes []domain.Archetype
	if err := json.Unmarshal(raw, &archetypes); err != nil {
		return nil, fmt.Errorf("decode archetypes catalog: %w", err)
	}

	seen := make(map[string]bool, len(archetypes))
	for _, a := range archetypes {
		if seen[a.ID] {
			return nil, fmt.Errorf("%w: duplicate archetype id %q", ErrInvalidCatalog, a.ID)
		}
		seen[a.ID] = true

		for _, key := range domain.TraitKeys {
			v, ok := a.Traits[key]
			if !ok {
				return nil, fmt.Errorf("%w: archetype %q missing trait %q", ErrInvalidCatalog, a.ID, key)
			}
			if v < domain.TraitMin || v > domain.TraitMax {
				return nil, fmt.Errorf("%w: archetype %q trait %q out of range: %d", ErrInvalidCatalog, a.ID, key, v)
			}
		}
	}
	return archetypes, nil
}

func validateSchema(schema, document []byte, name string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("validate %s catalog: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(desc.String())
	}
	return fmt.Errorf("%w: %s catalog: %s", ErrInvalidCatalog, name, sb.String())
}

func isTraitKey(key string) bool {
	for _, k := range domain.TraitKeys {
		if k == key {
			return true
		}
	}
	return false
}
