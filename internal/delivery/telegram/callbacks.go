package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.request(newCallbackAnswer(cb.ID, ""))
		return
	}

	data := decodeCallback(cb.Data)
	toast := ""

	if data.Action == actionQuiz && len(data.Params) > 0 {
		switch data.Params[0] {
		case quizSelect:
			toast = h.handleSelectCallback(cb, data)
		case quizConfirm:
			toast = h.handleConfirmCallback(ctx, cb, data)
		case quizRestart:
			h.request(removeKeyboard(cb.Message.Chat.ID, cb.Message.MessageID))
			_ = h.withErrorHandling(h.handleStart())(ctx, cb.Message.Chat.ID)
		default:
			h.logger.Warn("unknown quiz callback", zap.String("data", cb.Data))
		}
	} else {
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}

	// Remove the user's "clock".
	h.request(newCallbackAnswer(cb.ID, toast))
}

// activeSession returns the chat's session if callback question index q is the one on screen.
func (h *Handler) activeSession(chatID int64, q int) (*service.QuizSession, bool) {
	s, ok := h.sessions.Get(chatID)
	if !ok {
		return nil, false
	}
	v := s.Snapshot()
	if v.Phase != entities.PhaseReady || v.Index != q {
		return nil, false
	}
	return s, true
}

func (h *Handler) handleSelectCallback(cb *tgbotapi.CallbackQuery, data callbackData) string {
	chatID := cb.Message.Chat.ID
	q, ok1 := data.intParam(1)
	option, ok2 := data.intParam(2)
	if !ok1 || !ok2 {
		h.logger.Warn("invalid select callback", zap.String("data", cb.Data))
		return ""
	}

	s, ok := h.activeSession(chatID, q)
	if !ok {
		return msgStaleQuestion
	}

	if err := s.SelectOption(option); err != nil {
		h.sessionLogger(chatID, s).Warn("failed to select option", zap.Error(err))
		return msgStaleQuestion
	}

	v := s.Snapshot()
	h.request(tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID, buildQuestionKeyboard(v)))
	return ""
}

func (h *Handler) handleConfirmCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) string {
	chatID := cb.Message.Chat.ID
	q, ok := data.intParam(1)
	if !ok {
		h.logger.Warn("invalid confirm callback", zap.String("data", cb.Data))
		return ""
	}

	s, ok := h.activeSession(chatID, q)
	if !ok {
		return msgStaleQuestion
	}

	err := s.ConfirmAnswer(ctx)
	if err != nil && !errors.Is(err, service.ErrInvalidPhase) {
		h.sessionLogger(chatID, s).Error("failed to confirm answer", zap.Error(err))
	}

	v := s.Snapshot()
	if v.Phase == entities.PhaseReady && v.Index == q {
		// Nothing was selected; the question stays on screen.
		return ""
	}

	h.request(removeKeyboard(chatID, cb.Message.MessageID))
	h.renderView(chatID, v)
	return ""
}
