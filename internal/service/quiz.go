package service

import "github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"

// Transition is the result of applying a user action to a QuizState.
type Transition struct {
	State         entities.QuizState
	Notifications []entities.Notification
	Advanced      bool // the quiz moved to the next question
	Finished      bool // the last question was answered
}

// SelectAnswer returns state with option selected. A previous selection for
// the same question is overwritten.
func SelectAnswer(state entities.QuizState, option string) entities.QuizState {
	state.Selected = option
	return state
}

// ConfirmAnswer scores the selected answer for questions[state.Index] and moves on.
// Without a selection the state is returned unchanged with a must-select notification.
func ConfirmAnswer(state entities.QuizState, questions []entities.FlagRecord) Transition {
	if state.Index >= len(questions) {
		return Transition{State: state}
	}

	if !state.HasSelection() {
		return Transition{
			State: state,
			Notifications: []entities.Notification{
				{Kind: entities.NotifyMustSelect, Level: entities.LevelError},
			},
		}
	}

	correct := questions[state.Index].CountryName
	next := entities.QuizState{
		Index: state.Index + 1,
		Score: state.Score,
	}

	var notifications []entities.Notification
	if state.Selected == correct {
		next.Score++
		notifications = append(notifications, entities.Notification{
			Kind:  entities.NotifyAnswerCorrect,
			Level: entities.LevelSuccess,
		})
	} else {
		notifications = append(notifications, entities.Notification{
			Kind:          entities.NotifyAnswerIncorrect,
			Level:         entities.LevelError,
			CorrectAnswer: correct,
		})
	}

	t := Transition{State: next, Notifications: notifications}
	if next.Index == len(questions) {
		t.Finished = true
		t.Notifications = append(t.Notifications, entities.Notification{
			Kind:  entities.NotifyQuizCompleted,
			Level: entities.LevelSuccess,
			Score: next.Score,
			Total: len(questions),
		})
		return t
	}

	t.Advanced = true
	return t
}
