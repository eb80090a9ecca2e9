package telegram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

func TestFormatNotification(t *testing.T) {
	tests := []struct {
		name string
		n    entities.Notification
		want string
	}{
		{
			name: "code accepted",
			n:    entities.Notification{Kind: entities.NotifyCodeAccepted, Level: entities.LevelSuccess},
			want: md("✅ Code accepted! Starting game..."),
		},
		{
			name: "code rejected",
			n:    entities.Notification{Kind: entities.NotifyCodeRejected, Level: entities.LevelError},
			want: md("❌ Incorrect code. Please try again."),
		},
		{
			name: "incorrect reveals answer",
			n: entities.Notification{
				Kind:          entities.NotifyAnswerIncorrect,
				Level:         entities.LevelError,
				CorrectAnswer: "Côte d'Ivoire",
			},
			want: md("❌ Incorrect. The correct answer was Côte d'Ivoire."),
		},
		{
			name: "must select",
			n:    entities.Notification{Kind: entities.NotifyMustSelect, Level: entities.LevelError},
			want: md("❌ Please select an answer."),
		},
		{
			name: "info level",
			n:    entities.Notification{Kind: entities.NotifyQuizCompleted, Level: entities.LevelInfo},
			want: md("ℹ️ Quiz completed!"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNotification(tt.n))
		})
	}
}

func TestFormatQuestionCaption(t *testing.T) {
	v := entities.QuizView{Index: 2, Total: 10, Score: 1}

	assert.Equal(t,
		"*Question 3 of 10*\nWhich country does this flag belong to?\n\nScore: 1",
		formatQuestionCaption(v),
	)
}

func TestFormatFailure(t *testing.T) {
	err := &entities.FetchError{StatusCode: 502}

	assert.Equal(t, md("Error: "+err.Error()), formatFailure(entities.QuizView{Err: err}))
	assert.Equal(t, md("Error: "+msgInternalError), formatFailure(entities.QuizView{}))
	assert.NotEqual(t, formatFailure(entities.QuizView{Err: errors.New("a")}), formatFailure(entities.QuizView{}))
}
