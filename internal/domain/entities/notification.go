package entities

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// NotificationKind identifies a user-facing event emitted by a quiz session.
type NotificationKind string

const (
	NotifyCodeAccepted    NotificationKind = "code-accepted"
	NotifyCodeRejected    NotificationKind = "code-rejected"
	NotifyLoadFailed      NotificationKind = "load-failed"
	NotifyAnswerCorrect   NotificationKind = "answer-correct"
	NotifyAnswerIncorrect NotificationKind = "answer-incorrect"
	NotifyMustSelect      NotificationKind = "must-select"
	NotifyQuizCompleted   NotificationKind = "quiz-completed"
)

// Notification is an event for the user. Wording is left to the delivery layer;
// the fields below carry the data it needs.
type Notification struct {
	Kind          NotificationKind
	Level         Level
	CorrectAnswer string // set for NotifyAnswerIncorrect
	Score         int    // set for NotifyQuizCompleted
	Total         int    // set for NotifyQuizCompleted
	Err           error  // set for NotifyLoadFailed
}
