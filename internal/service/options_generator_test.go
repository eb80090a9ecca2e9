package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

func assertValidOptions(t *testing.T, options []string, correct string) {
	t.Helper()

	require.Len(t, options, entities.OptionsPerQuestion)
	assert.Contains(t, options, correct)

	seen := make(map[string]bool, len(options))
	for _, o := range options {
		assert.False(t, seen[o], "duplicate option %q", o)
		seen[o] = true
	}
}

func TestOptionGenerator_GenerateOptions(t *testing.T) {
	questions := fakeFlags(10)
	g := NewOptionGenerator(newTestRand())

	for i := range questions {
		options, err := g.GenerateOptions(questions, i)
		require.NoError(t, err)
		assertValidOptions(t, options, questions[i].CountryName)

		for _, o := range options {
			assert.Contains(t, namesOf(questions), o)
		}
	}
}

func TestOptionGenerator_ExactlyFourNames(t *testing.T) {
	questions := fakeFlags(4)

	for seed := int64(0); seed < 50; seed++ {
		g := NewOptionGenerator(randWithSeed(seed))
		options, err := g.GenerateOptions(questions, int(seed)%4)
		require.NoError(t, err)
		assert.ElementsMatch(t, namesOf(questions), options)
	}
}

func TestOptionGenerator_DuplicatesInQuestionSet(t *testing.T) {
	questions := []entities.FlagRecord{
		{CountryName: "Chad", FlagImageRef: "a"},
		{CountryName: "Chad", FlagImageRef: "b"},
		{CountryName: "Chad", FlagImageRef: "c"},
		{CountryName: "Peru", FlagImageRef: "d"},
		{CountryName: "Fiji", FlagImageRef: "e"},
		{CountryName: "Oman", FlagImageRef: "f"},
	}

	options, err := NewOptionGenerator(newTestRand()).GenerateOptions(questions, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Chad", "Peru", "Fiji", "Oman"}, options)
}

func TestOptionGenerator_InsufficientDistinctNames(t *testing.T) {
	questions := []entities.FlagRecord{
		{CountryName: "Chad", FlagImageRef: "a"},
		{CountryName: "Chad", FlagImageRef: "b"},
		{CountryName: "Peru", FlagImageRef: "c"},
		{CountryName: "Fiji", FlagImageRef: "d"},
	}

	_, err := NewOptionGenerator(newTestRand()).GenerateOptions(questions, 0)
	require.ErrorIs(t, err, entities.ErrInsufficientDistinctOptions)
}

func TestOptionGenerator_DrawBudgetExhausted(t *testing.T) {
	questions := fakeFlags(10)
	g := NewOptionGenerator(newTestRand())
	g.maxDraws = 0

	options, err := g.GenerateOptions(questions, 3)
	require.NoError(t, err)
	assertValidOptions(t, options, questions[3].CountryName)
}

func TestOptionGenerator_IndexOutOfRange(t *testing.T) {
	g := NewOptionGenerator(newTestRand())

	_, err := g.GenerateOptions(fakeFlags(5), 5)
	require.Error(t, err)

	_, err = g.GenerateOptions(fakeFlags(5), -1)
	require.Error(t, err)
}

func TestOptionGenerator_CorrectAnswerPosition(t *testing.T) {
	questions := fakeFlags(10)
	g := NewOptionGenerator(newTestRand())
	positions := make(map[int]int)

	for i := 0; i < 400; i++ {
		options, err := g.GenerateOptions(questions, 0)
		require.NoError(t, err)
		for pos, o := range options {
			if o == questions[0].CountryName {
				positions[pos]++
			}
		}
	}

	// The correct answer must not be pinned to one slot.
	assert.Len(t, positions, entities.OptionsPerQuestion)
}

func namesOf(records []entities.FlagRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.CountryName)
	}
	return out
}
