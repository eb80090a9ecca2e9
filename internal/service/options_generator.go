package service

import (
	"fmt"
	"math/rand"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// maxOptionDraws bounds the random draws made while looking for distractors.
const maxOptionDraws = 64

// OptionGenerator generates multiple choice options for quiz questions.
type OptionGenerator struct {
	rng      *rand.Rand
	maxDraws int
}

// NewOptionGenerator creates a new option generator.
func NewOptionGenerator(rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{
		rng:      rng,
		maxDraws: maxOptionDraws,
	}
}

// GenerateOptions creates 4 distinct options for questions[index]: the correct
// country name plus three distractors drawn from the same question set,
// in random display order.
func (g *OptionGenerator) GenerateOptions(questions []entities.FlagRecord, index int) ([]string, error) {
	if index < 0 || index >= len(questions) {
		return nil, fmt.Errorf("question index %d out of range [0, %d)", index, len(questions))
	}

	if n := entities.DistinctNames(questions); n < entities.OptionsPerQuestion {
		return nil, fmt.Errorf("%w: got %d, need %d",
			entities.ErrInsufficientDistinctOptions, n, entities.OptionsPerQuestion)
	}

	correct := questions[index].CountryName
	options := make([]string, 0, entities.OptionsPerQuestion)
	options = append(options, correct)
	used := map[string]bool{correct: true}

	for draws := 0; len(options) < entities.OptionsPerQuestion && draws < g.maxDraws; draws++ {
		name := questions[g.rng.Intn(len(questions))].CountryName
		if used[name] {
			continue
		}
		used[name] = true
		options = append(options, name)
	}

	// Out of draws: fill the rest from the names not picked yet.
	if len(options) < entities.OptionsPerQuestion {
		options = g.fillFromUnused(options, questions, used)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}

func (g *OptionGenerator) fillFromUnused(
	options []string,
	questions []entities.FlagRecord,
	used map[string]bool,
) []string {
	unused := make([]string, 0, len(questions))
	for _, q := range questions {
		if used[q.CountryName] {
			continue
		}
		used[q.CountryName] = true
		unused = append(unused, q.CountryName)
	}

	g.rng.Shuffle(len(unused), func(i, j int) {
		unused[i], unused[j] = unused[j], unused[i]
	})

	for _, name := range unused {
		if len(options) >= entities.OptionsPerQuestion {
			break
		}
		options = append(options, name)
	}

	return options
}
