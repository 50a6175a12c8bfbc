package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"adopta-match/internal/catalog"
	"adopta-match/internal/domain"
	"adopta-match/internal/service"
)

// Cuestionario offline por terminal: carga los catálogos, pregunta una por
// una y muestra el ranking. No toca base de datos ni red.
func main() {
	questionsPath := flag.String("questions", "data/questions.json", "ruta al catálogo de preguntas")
	archetypesPath := flag.String("archetypes", "data/archetypes.json", "ruta al catálogo de arquetipos")
	top := flag.Int("top", 3, "cuántos matches mostrar")
	flag.Parse()

	logger := zap.NewExample()
	defer logger.Sync()

	cat, err := catalog.Load(*questionsPath, *archetypesPath)
	if err != nil {
		log.Fatal(err)
	}

	matchSvc := service.NewMatchService(cat.Questions, cat.Archetypes, logger)
	reader := bufio.NewReader(os.Stdin)
	answers := make(domain.AnswerSet, len(cat.Questions))

	fmt.Println("===== Cuestionario de adopción =====")
	fmt.Println("Respondé con el número de la opción. Enter en blanco saltea la pregunta.")
	fmt.Println()

	for i, q := range cat.Questions {
		fmt.Printf("%d/%d — %s\n", i+1, len(cat.Questions), q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt.Label)
		}
		if q.IsMulti() {
			fmt.Println("  (podés elegir varias, separadas por coma)")
		}

		answer, ok := readAnswer(reader, q)
		if ok {
			answers[q.ID] = answer
		}
		fmt.Println()
	}

	result := matchSvc.Rank(answers)
	profile := matchSvc.BuildProfile(answers)

	fmt.Println("===== Tu perfil =====")
	for _, key := range domain.TraitKeys {
		fmt.Printf("  %-13s %d\n", key, profile.Traits.Get(key))
	}
	if flags := profile.Flags.List(); len(flags) > 0 {
		fmt.Printf("  señales: %s\n", strings.Join(flags, ", "))
	}
	fmt.Println()

	fmt.Println("===== Mejores matches =====")
	shown := result.Top
	if *top > 0 && *top < len(shown) {
		shown = shown[:*top]
	}
	if len(shown) == 0 {
		fmt.Println("Ningún arquetipo pasó los filtros con estas respuestas.")
	}
	for i, m := range shown {
		fmt.Printf("%d. %s — %.1f/100\n", i+1, m.Archetype.Name, m.Score)
		if m.Archetype.Why != "" {
			fmt.Printf("   %s\n", m.Archetype.Why)
		}
		for _, p := range m.AppliedPenalties {
			fmt.Printf("   ajuste %s: %.0f\n", p.Key, p.Delta)
		}
	}

	if len(result.Avoid) > 0 {
		fmt.Println()
		fmt.Println("===== Mejor evitar =====")
		for _, b := range result.Avoid {
			fmt.Printf("- %s: %s\n", b.Archetype.Name, strings.Join(b.Reasons, "; "))
		}
	}
}

// readAnswer lee la selección del usuario para una pregunta. Devuelve false
// si se saltea o si la entrada no es interpretable.
func readAnswer(reader *bufio.Reader, q domain.Question) (domain.Answer, bool) {
	fmt.Print("> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return domain.Answer{}, false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Answer{}, false
	}

	var picked []string
	for _, part := range strings.Split(line, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(q.Options) {
			fmt.Println("  (entrada inválida, pregunta salteada)")
			return domain.Answer{}, false
		}
		picked = append(picked, q.Options[idx-1].ID)
	}

	if q.IsMulti() {
		return domain.Answer{Options: picked}, true
	}
	return domain.Answer{Option: picked[0]}, true
}
