// Package session manages one interview walkthrough: an ordered question
// list, a cursor marking the next unanswered question, and the answers
// accumulated so far. The flow is strictly forward-only; there is no way to
// revisit or retract an answer.
package session

import (
	"errors"
	"fmt"
)

// ErrStateViolation marks calls made outside the state that permits them.
// The walkthrough UI never issues such calls, so hitting this is a bug in
// the caller, not a user-facing condition.
var ErrStateViolation = errors.New("session state violation")

// State describes where the walkthrough currently is.
type State int

const (
	// Uninitialized means no questions have been loaded yet.
	Uninitialized State = iota
	// InProgress means at least one question is still unanswered.
	InProgress
	// Completed means every loaded question has an answer. A session loaded
	// with zero questions is Completed immediately.
	Completed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// AnswerRecord is one submitted (question, answer) pair. Records are
// appended in question order and never edited or removed.
type AnswerRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Session holds the questions, answers, and cursor of one walkthrough.
// Invariant: len(answers) == cursor at all times. Not safe for concurrent
// use; the model is one user driving one session sequentially.
type Session struct {
	questions []string
	answers   []AnswerRecord
	loaded    bool
	cursor    int
}

// New returns an empty, uninitialized session.
func New() *Session {
	return &Session{}
}

// Load replaces the entire session with a fresh one holding qs: questions,
// answers, and cursor reset together. The slice is copied so later mutation
// by the caller cannot reorder the interview.
func (s *Session) Load(qs []string) {
	s.questions = append([]string(nil), qs...)
	s.answers = s.answers[:0]
	s.cursor = 0
	s.loaded = true
}

// State reports the current walkthrough state.
func (s *Session) State() State {
	switch {
	case !s.loaded:
		return Uninitialized
	case s.cursor < len(s.questions):
		return InProgress
	default:
		return Completed
	}
}

// Current returns the question at the cursor. It fails outside InProgress
// rather than returning a default.
func (s *Session) Current() (string, error) {
	if st := s.State(); st != InProgress {
		return "", fmt.Errorf("current question in %s session: %w", st, ErrStateViolation)
	}
	return s.questions[s.cursor], nil
}

// Submit records answer for the current question and advances the cursor by
// exactly one. Empty answers are accepted; answer content is not validated.
func (s *Session) Submit(answer string) error {
	q, err := s.Current()
	if err != nil {
		return fmt.Errorf("submit answer: %w", err)
	}
	s.answers = append(s.answers, AnswerRecord{Question: q, Answer: answer})
	s.cursor++
	return nil
}

// Cursor is the zero-based index of the next unanswered question.
func (s *Session) Cursor() int {
	return s.cursor
}

// Total is the number of loaded questions.
func (s *Session) Total() int {
	return len(s.questions)
}

// Answers returns a copy of the records submitted so far, in order.
func (s *Session) Answers() []AnswerRecord {
	return append([]AnswerRecord(nil), s.answers...)
}
