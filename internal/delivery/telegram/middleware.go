package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed handler and tells the chat what happened.
// Session errors caused by an outdated message get a hint instead of a failure.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrLoadInProgress):
			h.send(newMessage(chatID, md(msgStillLoading)))
		case errors.Is(err, service.ErrInvalidPhase):
			h.logger.Debug("action in wrong quiz phase",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.send(newMessage(chatID, md(msgQuizOver)))
		default:
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.send(newMessage(chatID, md(msgInternalError)))
		}
		return nil
	}
}
