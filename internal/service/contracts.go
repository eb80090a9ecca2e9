package service

import (
	"context"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// FlagProvider loads the full list of flags a quiz is built from.
type FlagProvider interface {
	LoadFlags(ctx context.Context) ([]entities.FlagRecord, error)
}

// Notifier delivers session events to the user.
type Notifier interface {
	Notify(ctx context.Context, n entities.Notification)
}
