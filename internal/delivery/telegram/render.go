package telegram

import (
	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// renderView sends whatever the session currently shows: a question,
// the final score or the failure screen.
func (h *Handler) renderView(chatID int64, v entities.QuizView) {
	switch v.Phase {
	case entities.PhaseReady:
		photo := newPhoto(chatID, v.Flag.FlagImageRef, formatQuestionCaption(v))
		photo.ReplyMarkup = buildQuestionKeyboard(v)
		h.send(photo)

	case entities.PhaseFinished:
		msg := newMessage(chatID, formatResult(v))
		msg.ReplyMarkup = buildRestartKeyboard()
		h.send(msg)

	case entities.PhaseFailed:
		msg := newMessage(chatID, formatFailure(v))
		msg.ReplyMarkup = buildRestartKeyboard()
		h.send(msg)

	case entities.PhaseLoading:
		h.send(newMessage(chatID, md(msgStillLoading)))

	case entities.PhaseNotStarted:
		h.send(newMessage(chatID, msgEnterCode()))
	}
}
