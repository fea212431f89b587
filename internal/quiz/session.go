package quiz

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmptySession indicates a session cannot start without questions.
	ErrEmptySession = errors.New("cannot start a session without questions")

	// ErrSessionFinished indicates the session has no current question.
	ErrSessionFinished = errors.New("session is finished")

	// ErrAlreadyAnswered indicates the current question was answered
	// before; the answer is kept and the duplicate rejected.
	ErrAlreadyAnswered = errors.New("current question already answered")

	// ErrInvalidAnswer indicates an answer letter outside A-D.
	ErrInvalidAnswer = errors.New("invalid answer letter")
)

// Outcome describes the result of answering the current question.
type Outcome struct {
	Correct       bool
	Given         AnswerLetter
	CorrectAnswer AnswerLetter
}

// Session walks a question list one question at a time, tracking score.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	id        string
	questions []Question
	index     int
	score     int
	answered  int
	current   bool // current question already answered
	finished  bool
}

// NewSession creates a session over the given questions. The slice is
// used as-is; callers pass an already filtered copy.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}

	return &Session{
		id:        uuid.NewString(),
		questions: questions,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (Question, error) {
	if s.finished {
		return Question{}, ErrSessionFinished
	}
	return s.questions[s.index], nil
}

// Position reports the 1-based index of the current question and the
// total question count.
func (s *Session) Position() (current, total int) {
	position := s.index + 1
	if s.finished {
		position = len(s.questions)
	}
	return position, len(s.questions)
}

// Answer submits an answer letter for the current question. The second
// submission for the same question is rejected with ErrAlreadyAnswered.
func (s *Session) Answer(letter AnswerLetter) (Outcome, error) {
	if s.finished {
		return Outcome{}, ErrSessionFinished
	}
	if s.current {
		return Outcome{}, ErrAlreadyAnswered
	}
	if letter.Index() < 0 {
		return Outcome{}, ErrInvalidAnswer
	}

	question := s.questions[s.index]
	outcome := Outcome{
		Correct:       letter == question.Answer,
		Given:         letter,
		CorrectAnswer: question.Answer,
	}

	s.current = true
	s.answered++
	if outcome.Correct {
		s.score++
	}

	return outcome, nil
}

// Advance moves to the next question. It returns false once the last
// question has been passed, which marks the session finished.
func (s *Session) Advance() bool {
	if s.finished {
		return false
	}

	s.current = false
	s.index++
	if s.index >= len(s.questions) {
		s.index = len(s.questions) - 1
		s.finished = true
		return false
	}
	return true
}

// Score returns the number of correctly answered questions.
func (s *Session) Score() int {
	return s.score
}

// AnsweredCount returns how many questions received an answer.
func (s *Session) AnsweredCount() int {
	return s.answered
}

// Finished reports whether the session has passed its last question.
func (s *Session) Finished() bool {
	return s.finished
}
