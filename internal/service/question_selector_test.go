package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

func TestQuestionSelector_TakesQuizLength(t *testing.T) {
	records := fakeFlags(250)
	s := NewQuestionSelector(10, newTestRand())

	questions, err := s.Select(records)
	require.NoError(t, err)
	require.Len(t, questions, 10)
	assert.Equal(t, 10, entities.DistinctNames(questions))

	for _, q := range questions {
		assert.Contains(t, records, q)
	}
}

func TestQuestionSelector_FewerThanLength(t *testing.T) {
	records := fakeFlags(6)
	s := NewQuestionSelector(10, newTestRand())

	questions, err := s.Select(records)
	require.NoError(t, err)
	assert.Len(t, questions, 6)
	assert.ElementsMatch(t, records, questions)
}

func TestQuestionSelector_DoesNotMutateInput(t *testing.T) {
	records := fakeFlags(20)
	orig := append([]entities.FlagRecord(nil), records...)

	_, err := NewQuestionSelector(10, newTestRand()).Select(records)
	require.NoError(t, err)
	assert.Equal(t, orig, records)
}

func TestQuestionSelector_InsufficientData(t *testing.T) {
	tests := []struct {
		name    string
		records []entities.FlagRecord
	}{
		{name: "empty", records: nil},
		{name: "three records", records: fakeFlags(3)},
		{
			name: "duplicated names",
			records: []entities.FlagRecord{
				{CountryName: "France", FlagImageRef: "a"},
				{CountryName: "France", FlagImageRef: "b"},
				{CountryName: "Peru", FlagImageRef: "c"},
				{CountryName: "Chad", FlagImageRef: "d"},
			},
		},
		{
			name: "unusable records dropped",
			records: []entities.FlagRecord{
				{CountryName: "France", FlagImageRef: "a"},
				{CountryName: "Peru", FlagImageRef: "b"},
				{CountryName: "Chad", FlagImageRef: "c"},
				{CountryName: "", FlagImageRef: "d"},
				{CountryName: "Japan", FlagImageRef: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuestionSelector(10, newTestRand()).Select(tt.records)
			require.ErrorIs(t, err, entities.ErrInsufficientData)
		})
	}
}

func TestQuestionSelector_DropsRepeatedNames(t *testing.T) {
	records := []entities.FlagRecord{
		{CountryName: "Chad", FlagImageRef: "first"},
		{CountryName: "Chad", FlagImageRef: "second"},
		{CountryName: "Peru", FlagImageRef: "p"},
		{CountryName: "Fiji", FlagImageRef: "f"},
		{CountryName: "Chad", FlagImageRef: "third"},
		{CountryName: "Oman", FlagImageRef: "o"},
	}

	questions, err := NewQuestionSelector(10, newTestRand()).Select(records)
	require.NoError(t, err)
	require.Len(t, questions, 4)
	assert.Equal(t, 4, entities.DistinctNames(questions))
	assert.Contains(t, questions, entities.FlagRecord{CountryName: "Chad", FlagImageRef: "first"})
}

func TestQuestionSelector_DefaultLength(t *testing.T) {
	questions, err := NewQuestionSelector(0, newTestRand()).Select(fakeFlags(30))
	require.NoError(t, err)
	assert.Len(t, questions, DefaultQuizLength)
}

func TestQuestionSelector_IsPermutation(t *testing.T) {
	records := fakeFlags(10)
	first := make(map[string]int)

	for seed := int64(0); seed < 200; seed++ {
		s := NewQuestionSelector(10, randWithSeed(seed))
		questions, err := s.Select(records)
		require.NoError(t, err)
		require.ElementsMatch(t, records, questions)
		first[questions[0].CountryName]++
	}

	// Every record should lead at least once over 200 shuffles.
	assert.Len(t, first, len(records))
}
