package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// buildQuestionKeyboard builds the option buttons and the Next/Finish button for a question.
func buildQuestionKeyboard(v entities.QuizView) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Options)+1)
	for i, option := range v.Options {
		label := option
		if option == v.Selected {
			label = "✅ " + option
		}
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildQuizSelectCallback(v.Index, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	next := "Next ▶️"
	if v.IsLast() {
		next = "Finish 🏁"
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(next, buildQuizConfirmCallback(v.Index)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildRestartKeyboard builds keyboard shown after a quiz ends or fails.
func buildRestartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildQuizRestartCallback()),
		),
	)
}
