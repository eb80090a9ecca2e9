package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type SessionFactory interface {
	New(notifier service.Notifier) *service.QuizSession
}

type SessionStore interface {
	Store(chatID int64, session *service.QuizSession)
	Get(chatID int64) (*service.QuizSession, bool)
	GetOrCreate(chatID int64, create func() *service.QuizSession) *service.QuizSession
}
