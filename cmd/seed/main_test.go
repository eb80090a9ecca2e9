package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

type failingSource struct {
	calls int
}

func (s *failingSource) LoadFlags(context.Context) ([]entities.FlagRecord, error) {
	s.calls++
	return nil, &entities.FetchError{StatusCode: 502}
}

func TestRun_RequiresDSN(t *testing.T) {
	src := &failingSource{}

	err := run(context.Background(), zap.NewNop(), "", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Zero(t, src.calls)
}

func TestRun_ReturnsLoadError(t *testing.T) {
	src := &failingSource{}

	err := run(context.Background(), zap.NewNop(), "postgres://localhost:1/unused", src)
	require.ErrorIs(t, err, entities.ErrFetch)
	assert.Equal(t, 1, src.calls)
}
