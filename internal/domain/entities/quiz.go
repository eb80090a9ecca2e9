package entities

// Phase is the stage of a quiz session.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseLoading    Phase = "loading"
	PhaseReady      Phase = "ready"
	PhaseFinished   Phase = "finished"
	PhaseFailed     Phase = "failed"
)

// OptionsPerQuestion is the size of every option set: one correct answer and three distractors.
const OptionsPerQuestion = 4

// QuizState is the mutable part of a quiz, replaced as a whole on every transition.
// An empty Selected means no answer is selected.
type QuizState struct {
	Index    int    // index of the current question, len(questions) once finished
	Selected string // currently selected option
	Score    int    // number of correctly answered questions
}

// HasSelection reports whether an answer is selected for the current question.
func (s QuizState) HasSelection() bool {
	return s.Selected != ""
}

// QuizView is a read-only snapshot of a session used for rendering.
type QuizView struct {
	SessionID string
	Phase     Phase
	Index     int
	Total     int
	Flag      FlagRecord
	Options   []string
	Selected  string
	Score     int
	Err       error
}

// IsLast reports whether the current question is the last one.
func (v QuizView) IsLast() bool {
	return v.Index == v.Total-1
}
