package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/logger"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

type Handler struct {
	bot      BotAPI
	logger   *zap.Logger
	factory  SessionFactory
	sessions SessionStore
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	factory SessionFactory,
	sessions SessionStore,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		factory:  factory,
		sessions: sessions,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.Bool("command", update.Message.IsCommand()),
	)

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart())(ctx, chatID)
		case "help":
			h.send(newMessage(chatID, msgHelp()))
		default:
			h.send(newMessage(chatID, msgUnknownCommand()))
		}
		return
	}

	_ = h.withErrorHandling(h.handleText(update.Message.Text))(ctx, chatID)
}

// session returns the chat's session, creating a NotStarted one on first contact.
func (h *Handler) session(chatID int64) *service.QuizSession {
	return h.sessions.GetOrCreate(chatID, func() *service.QuizSession {
		return h.newSession(chatID)
	})
}

// resetSession replaces the chat's session with a fresh one.
func (h *Handler) resetSession(chatID int64) *service.QuizSession {
	s := h.newSession(chatID)
	h.sessions.Store(chatID, s)
	return s
}

func (h *Handler) newSession(chatID int64) *service.QuizSession {
	s := h.factory.New(&chatNotifier{h: h, chatID: chatID})
	h.sessionLogger(chatID, s).Debug("quiz session created")
	return s
}

func (h *Handler) sessionLogger(chatID int64, s *service.QuizSession) *zap.Logger {
	return logger.ForSession(h.logger, chatID, s.ID())
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

func (h *Handler) request(c tgbotapi.Chattable) {
	if _, err := h.bot.Request(c); err != nil {
		h.logger.Error("failed to make telegram request",
			zap.Error(err),
		)
	}
}
