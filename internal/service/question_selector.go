package service

import (
	"fmt"
	"math/rand"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// DefaultQuizLength is the number of questions in a quiz unless configured otherwise.
const DefaultQuizLength = 10

// QuestionSelector picks the question set for a quiz from everything a provider returned.
type QuestionSelector struct {
	length int
	rng    *rand.Rand
}

// NewQuestionSelector creates a new QuestionSelector taking at most length questions.
func NewQuestionSelector(length int, rng *rand.Rand) *QuestionSelector {
	if length <= 0 {
		length = DefaultQuizLength
	}
	return &QuestionSelector{
		length: length,
		rng:    rng,
	}
}

// Select drops unusable records and repeated country names, draws a uniform
// random permutation of the rest and returns the first min(length, available) of them.
// At least OptionsPerQuestion distinct country names are required.
func (s *QuestionSelector) Select(records []entities.FlagRecord) ([]entities.FlagRecord, error) {
	usable := filterUsable(records)

	if n := len(usable); n < entities.OptionsPerQuestion {
		return nil, fmt.Errorf("%w: got %d distinct names, need %d",
			entities.ErrInsufficientData, n, entities.OptionsPerQuestion)
	}

	s.rng.Shuffle(len(usable), func(i, j int) {
		usable[i], usable[j] = usable[j], usable[i]
	})

	return takeFirst(usable, s.length), nil
}

// filterUsable returns a copy of records without the ones missing a name or an image.
// Only the first usable record of each country name is kept.
func filterUsable(records []entities.FlagRecord) []entities.FlagRecord {
	out := make([]entities.FlagRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if !r.Usable() {
			continue
		}
		if _, dup := seen[r.CountryName]; dup {
			continue
		}
		seen[r.CountryName] = struct{}{}
		out = append(out, r)
	}
	return out
}

// takeFirst returns the first n elements of records, or the whole slice if it is shorter.
func takeFirst(records []entities.FlagRecord, n int) []entities.FlagRecord {
	if len(records) <= n {
		return records
	}
	return records[:n]
}
