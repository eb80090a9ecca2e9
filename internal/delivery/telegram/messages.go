// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgLoading        = "Loading flags..."
	msgStillLoading   = "Flags are still loading, please wait."
	msgUseButtons     = "Use the buttons under the flag to answer."
	msgQuizOver       = "This quiz is over. Send /start to play again."
	msgStaleQuestion  = "This question is no longer active."
	msgQuestionPrompt = "Which country does this flag belong to?"
)

// Notification texts.
const (
	msgCodeAccepted    = "Code accepted! Starting game..."
	msgCodeRejected    = "Incorrect code. Please try again."
	msgLoadFailed      = "Failed to load flags. Please try again."
	msgMustSelect      = "Please select an answer."
	msgAnswerCorrect   = "Correct!"
	msgAnswerIncorrect = "Incorrect. The correct answer was %s."
	msgQuizCompleted   = "Quiz completed!"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func msgEnterCode() string {
	return bold("🔐 Enter the code") + "\n\n" + md("Send the access code to start the flag quiz.")
}

func msgHelp() string {
	var sb strings.Builder

	sb.WriteString(bold("🏳️ Flag Quiz"))
	sb.WriteString("\n\n")
	sb.WriteString(md("1. Send /start and enter the access code."))
	sb.WriteString("\n")
	sb.WriteString(md("2. For every flag pick a country, then press Next."))
	sb.WriteString("\n")
	sb.WriteString(md("3. After the last flag press Finish to see your score."))

	return sb.String()
}

func msgUnknownCommand() string {
	return md("Unknown command. Available commands:\n\n/start — start a new quiz\n/help — how to play")
}

var levelIcons = map[entities.Level]string{
	entities.LevelSuccess: "✅",
	entities.LevelError:   "❌",
	entities.LevelInfo:    "ℹ️",
}

// formatNotification returns the MarkdownV2 text for a session notification.
func formatNotification(n entities.Notification) string {
	var text string
	switch n.Kind {
	case entities.NotifyCodeAccepted:
		text = msgCodeAccepted
	case entities.NotifyCodeRejected:
		text = msgCodeRejected
	case entities.NotifyLoadFailed:
		text = msgLoadFailed
	case entities.NotifyMustSelect:
		text = msgMustSelect
	case entities.NotifyAnswerCorrect:
		text = msgAnswerCorrect
	case entities.NotifyAnswerIncorrect:
		text = fmt.Sprintf(msgAnswerIncorrect, n.CorrectAnswer)
	case entities.NotifyQuizCompleted:
		text = msgQuizCompleted
	default:
		text = string(n.Kind)
	}

	if icon, ok := levelIcons[n.Level]; ok {
		text = icon + " " + text
	}
	return md(text)
}

// formatQuestionCaption builds the caption under a flag photo.
func formatQuestionCaption(v entities.QuizView) string {
	return fmt.Sprintf(
		"%s\n%s\n\n%s",
		bold(fmt.Sprintf("Question %d of %d", v.Index+1, v.Total)),
		md(msgQuestionPrompt),
		md(fmt.Sprintf("Score: %d", v.Score)),
	)
}

// formatResult builds the message shown after the last question.
func formatResult(v entities.QuizView) string {
	return fmt.Sprintf(
		"%s\n\n%s",
		bold("🏁 Final score"),
		md(fmt.Sprintf("You answered %d of %d correctly.", v.Score, v.Total)),
	)
}

// formatFailure builds the static error display that replaces the quiz.
func formatFailure(v entities.QuizView) string {
	reason := msgInternalError
	if v.Err != nil {
		reason = v.Err.Error()
	}
	return md("Error: " + reason)
}
