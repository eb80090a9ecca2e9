package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// chatNotifier delivers session notifications as chat messages.
type chatNotifier struct {
	h      *Handler
	chatID int64
}

func (n *chatNotifier) Notify(_ context.Context, ev entities.Notification) {
	n.h.logger.Debug("notification",
		zap.Int64("chat_id", n.chatID),
		zap.String("kind", string(ev.Kind)),
		zap.String("level", string(ev.Level)),
	)
	n.h.send(newMessage(n.chatID, formatNotification(ev)))
}
