package service

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

var (
	ErrInvalidPhase   = errors.New("action not allowed in the current quiz phase")
	ErrLoadInProgress = errors.New("flags are already being loaded")
	ErrUnknownOption  = errors.New("option is not offered for the current question")
)

// QuizSession is one run of the quiz from code entry to completion or failure.
// It is safe for concurrent use: the load runs apart from the update loop.
type QuizSession struct {
	id       string
	gate     *AccessGate
	provider FlagProvider
	notifier Notifier
	selector *QuestionSelector
	options  *OptionGenerator

	mu        sync.Mutex
	phase     entities.Phase
	loading   bool
	questions []entities.FlagRecord
	state     entities.QuizState
	current   []string // options for questions[state.Index]
	err       error
}

// NewQuizSession creates a session in the NotStarted phase.
// A nil rng is replaced with a time-seeded one.
func NewQuizSession(
	gate *AccessGate,
	provider FlagProvider,
	notifier Notifier,
	quizLength int,
	rng *rand.Rand,
) *QuizSession {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &QuizSession{
		id:       uuid.NewString(),
		gate:     gate,
		provider: provider,
		notifier: notifier,
		selector: NewQuestionSelector(quizLength, rng),
		options:  NewOptionGenerator(rng),
		phase:    entities.PhaseNotStarted,
	}
}

// ID returns the session identifier used for log correlation.
func (s *QuizSession) ID() string {
	return s.id
}

// Phase returns the current phase.
func (s *QuizSession) Phase() entities.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// SubmitCode checks the access code. On match the session moves to Loading and
// the caller is expected to run Load. Codes are only accepted before the quiz starts.
func (s *QuizSession) SubmitCode(ctx context.Context, input string) bool {
	s.mu.Lock()
	if s.phase != entities.PhaseNotStarted {
		s.mu.Unlock()
		return false
	}

	ok := s.gate.SubmitCode(input)
	n := entities.Notification{Kind: entities.NotifyCodeRejected, Level: entities.LevelError}
	if ok {
		s.phase = entities.PhaseLoading
		n = entities.Notification{Kind: entities.NotifyCodeAccepted, Level: entities.LevelSuccess}
	}
	s.mu.Unlock()

	s.notify(ctx, n)
	return ok
}

// Load fetches flags, picks the question set and prepares the first question.
// Only one load may be in flight; any failure moves the session to Failed.
func (s *QuizSession) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrLoadInProgress
	}
	if s.phase != entities.PhaseLoading {
		s.mu.Unlock()
		return ErrInvalidPhase
	}
	s.loading = true
	s.mu.Unlock()

	records, err := s.provider.LoadFlags(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		err = s.startLocked(records)
	}
	if err != nil {
		s.phase = entities.PhaseFailed
		s.err = err
	}
	s.mu.Unlock()

	if err != nil {
		s.notify(ctx, entities.Notification{
			Kind:  entities.NotifyLoadFailed,
			Level: entities.LevelError,
			Err:   err,
		})
		return err
	}

	return nil
}

func (s *QuizSession) startLocked(records []entities.FlagRecord) error {
	questions, err := s.selector.Select(records)
	if err != nil {
		return err
	}

	options, err := s.options.GenerateOptions(questions, 0)
	if err != nil {
		return err
	}

	s.questions = questions
	s.state = entities.QuizState{}
	s.current = options
	s.phase = entities.PhaseReady
	return nil
}

// SelectAnswer selects one of the offered options. The last selection wins.
func (s *QuizSession) SelectAnswer(option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != entities.PhaseReady {
		return ErrInvalidPhase
	}
	if !slices.Contains(s.current, option) {
		return ErrUnknownOption
	}

	s.state = SelectAnswer(s.state, option)
	return nil
}

// SelectOption selects the option at index i in display order.
func (s *QuizSession) SelectOption(i int) error {
	s.mu.Lock()
	if s.phase != entities.PhaseReady {
		s.mu.Unlock()
		return ErrInvalidPhase
	}
	if i < 0 || i >= len(s.current) {
		s.mu.Unlock()
		return ErrUnknownOption
	}
	option := s.current[i]
	s.mu.Unlock()

	return s.SelectAnswer(option)
}

// ConfirmAnswer scores the selected answer and advances to the next question
// or finishes the quiz. Without a selection nothing changes and the user is
// asked to pick an answer.
func (s *QuizSession) ConfirmAnswer(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != entities.PhaseReady {
		s.mu.Unlock()
		return ErrInvalidPhase
	}

	t := ConfirmAnswer(s.state, s.questions)
	var err error
	switch {
	case t.Finished:
		s.state = t.State
		s.current = nil
		s.phase = entities.PhaseFinished
	case t.Advanced:
		var options []string
		options, err = s.options.GenerateOptions(s.questions, t.State.Index)
		if err != nil {
			s.phase = entities.PhaseFailed
			s.err = err
			break
		}
		s.state = t.State
		s.current = options
	}
	s.mu.Unlock()

	for _, n := range t.Notifications {
		s.notify(ctx, n)
	}
	return err
}

// Snapshot returns a copy of the session state for rendering.
func (s *QuizSession) Snapshot() entities.QuizView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := entities.QuizView{
		SessionID: s.id,
		Phase:     s.phase,
		Index:     s.state.Index,
		Total:     len(s.questions),
		Options:   slices.Clone(s.current),
		Selected:  s.state.Selected,
		Score:     s.state.Score,
		Err:       s.err,
	}
	if s.state.Index < len(s.questions) {
		v.Flag = s.questions[s.state.Index]
	}
	return v
}

func (s *QuizSession) notify(ctx context.Context, n entities.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

// SessionFactory creates sessions sharing the same gate, provider and quiz length.
type SessionFactory struct {
	gate       *AccessGate
	provider   FlagProvider
	quizLength int
}

// NewSessionFactory creates a new SessionFactory.
func NewSessionFactory(gate *AccessGate, provider FlagProvider, quizLength int) *SessionFactory {
	return &SessionFactory{
		gate:       gate,
		provider:   provider,
		quizLength: quizLength,
	}
}

// New creates a fresh NotStarted session reporting to notifier.
func (f *SessionFactory) New(notifier Notifier) *QuizSession {
	return NewQuizSession(f.gate, f.provider, notifier, f.quizLength, nil)
}
