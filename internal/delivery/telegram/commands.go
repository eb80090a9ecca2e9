package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// handleStart throws away the chat's session and asks for the access code.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.resetSession(chatID)
		h.send(newMessage(chatID, msgEnterCode()))
		return nil
	}
}

// handleText treats plain text as the access code while the quiz has not started.
func (h *Handler) handleText(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		s := h.session(chatID)

		switch s.Phase() {
		case entities.PhaseNotStarted:
			if !s.SubmitCode(ctx, text) {
				return nil
			}
			h.send(newMessage(chatID, md(msgLoading)))
			go h.loadQuiz(ctx, chatID, s)

		case entities.PhaseLoading:
			return service.ErrLoadInProgress

		case entities.PhaseReady:
			h.send(newMessage(chatID, md(msgUseButtons)))

		default:
			return fmt.Errorf("text in phase %s: %w", s.Phase(), service.ErrInvalidPhase)
		}

		return nil
	}
}

// loadQuiz fetches the flags for s and shows the first question or the error screen.
func (h *Handler) loadQuiz(ctx context.Context, chatID int64, s *service.QuizSession) {
	err := s.Load(ctx)
	if errors.Is(err, service.ErrLoadInProgress) || errors.Is(err, service.ErrInvalidPhase) {
		return
	}

	lg := h.sessionLogger(chatID, s)
	if err != nil {
		lg.Error("failed to load quiz", zap.Error(err))
	} else {
		lg.Debug("quiz loaded", zap.Int("questions", s.Snapshot().Total))
	}

	if current, ok := h.sessions.Get(chatID); !ok || current != s {
		// The chat restarted while flags were loading.
		return
	}

	h.renderView(chatID, s.Snapshot())
}
