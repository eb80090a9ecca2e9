package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/config"
)

const appName = "flag-quiz-bot"

// New builds the application logger. Production uses JSON output at info level,
// every other environment the human-readable development config.
func New(cfg *config.Config) (*zap.Logger, error) {
	opts := []zap.Option{
		zap.Fields(
			zap.String("app", appName),
			zap.String("env", cfg.Env),
			zap.String("flags_source", cfg.Flags.Source),
		),
	}

	if cfg.Env == "production" {
		return zap.NewProduction(opts...)
	}

	return zap.NewDevelopment(opts...)
}

// ForSession returns lg annotated with the chat and quiz session it is logging for.
func ForSession(lg *zap.Logger, chatID int64, sessionID string) *zap.Logger {
	return lg.With(
		zap.Int64("chat_id", chatID),
		zap.String("session_id", sessionID),
	)
}
