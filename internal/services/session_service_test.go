package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/quiz"
)

type sessionEvents struct {
	questions chan quiz.Question
	outcomes  chan quiz.Outcome
	ticks     chan time.Duration
	finished  chan SessionSummary
}

func newSessionEvents() *sessionEvents {
	return &sessionEvents{
		questions: make(chan quiz.Question, 16),
		outcomes:  make(chan quiz.Outcome, 16),
		ticks:     make(chan time.Duration, 64),
		finished:  make(chan SessionSummary, 1),
	}
}

func (e *sessionEvents) callbacks() SessionCallbacks {
	return SessionCallbacks{
		OnQuestion: func(question quiz.Question, position, total int) {
			e.questions <- question
		},
		OnOutcome: func(outcome quiz.Outcome) {
			e.outcomes <- outcome
		},
		OnTick: func(elapsed, remaining time.Duration) {
			select {
			case e.ticks <- elapsed:
			default:
			}
		},
		OnFinished: func(summary SessionSummary) {
			e.finished <- summary
		},
	}
}

func waitQuestion(t *testing.T, e *sessionEvents) quiz.Question {
	t.Helper()
	select {
	case q := <-e.questions:
		return q
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for question")
		return quiz.Question{}
	}
}

func waitOutcome(t *testing.T, e *sessionEvents) quiz.Outcome {
	t.Helper()
	select {
	case o := <-e.outcomes:
		return o
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for outcome")
		return quiz.Outcome{}
	}
}

func waitFinished(t *testing.T, e *sessionEvents) SessionSummary {
	t.Helper()
	select {
	case s := <-e.finished:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for summary")
		return SessionSummary{}
	}
}

func newTestService(t *testing.T, questions []quiz.Question, opts SessionOptions) (*SessionService, *sessionEvents, *models.SessionStateRepository) {
	t.Helper()

	questionRepo := models.NewQuestionRepository()
	if len(questions) > 0 {
		questionRepo.SetQuestions("test.csv", questions, quiz.ImportReport{Parsed: len(questions)})
	}
	stateRepo := models.NewSessionStateRepository()

	service := NewSessionService(logger.NewNop(), questionRepo, stateRepo, opts)
	service.tickInterval = 10 * time.Millisecond

	events := newSessionEvents()
	service.SetCallbacks(events.callbacks())

	t.Cleanup(service.Shutdown)
	return service, events, stateRepo
}

func twoQuestions() []quiz.Question {
	return []quiz.Question{
		{Prompt: "q1", Options: [4]string{"a", "b", "c", "d"}, Answer: quiz.AnswerA, Group: "1-50"},
		{Prompt: "q2", Options: [4]string{"a", "b", "c", "d"}, Answer: quiz.AnswerB, Group: "51-100"},
	}
}

func TestSessionServiceFullRun(t *testing.T) {
	service, events, stateRepo := newTestService(t, twoQuestions(), SessionOptions{
		FeedbackDelay: 20 * time.Millisecond,
	})

	require.NoError(t, service.Start(""))
	require.True(t, service.IsRunning())

	first := waitQuestion(t, events)
	assert.Equal(t, "q1", first.Prompt)

	require.NoError(t, service.SubmitAnswer(quiz.AnswerA))
	outcome := waitOutcome(t, events)
	assert.True(t, outcome.Correct)

	second := waitQuestion(t, events)
	assert.Equal(t, "q2", second.Prompt)

	require.NoError(t, service.SubmitAnswer(quiz.AnswerD))
	outcome = waitOutcome(t, events)
	assert.False(t, outcome.Correct)
	assert.Equal(t, quiz.AnswerB, outcome.CorrectAnswer)

	summary := waitFinished(t, events)
	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, 2, summary.Answered)
	assert.Equal(t, 2, summary.Total)
	assert.False(t, summary.Expired)
	assert.NotEmpty(t, summary.SessionID)

	assert.False(t, service.IsRunning())
	assert.False(t, stateRepo.IsActive())

	state := stateRepo.State()
	assert.Equal(t, 1, state.Score)
	assert.Equal(t, 2, state.Answered)

	stats := service.GetRunStats()
	assert.Equal(t, 1, stats.TotalRuns)
	assert.Equal(t, 2, stats.TotalAnswered)
	assert.Equal(t, 1, stats.TotalCorrect)
}

func TestSessionServiceGroupFilter(t *testing.T) {
	service, events, _ := newTestService(t, twoQuestions(), SessionOptions{
		FeedbackDelay: 20 * time.Millisecond,
	})

	require.NoError(t, service.Start("51-100"))

	question := waitQuestion(t, events)
	assert.Equal(t, "q2", question.Prompt)

	require.NoError(t, service.SubmitAnswer(quiz.AnswerB))
	waitOutcome(t, events)

	summary := waitFinished(t, events)
	assert.Equal(t, "51-100", summary.Group)
	assert.Equal(t, 1, summary.Total)
}

func TestSessionServiceRejectsDoubleStart(t *testing.T) {
	service, _, _ := newTestService(t, twoQuestions(), SessionOptions{})

	require.NoError(t, service.Start(""))
	assert.ErrorIs(t, service.Start(""), ErrSessionRunning)
}

func TestSessionServiceStartWithoutQuestions(t *testing.T) {
	service, _, _ := newTestService(t, nil, SessionOptions{})

	err := service.Start("")
	require.Error(t, err)
	assert.ErrorIs(t, err, quiz.ErrEmptySession)

	err = service.Start("101-150")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "101-150")
}

func TestSessionServiceAnswerWithoutSession(t *testing.T) {
	service, _, _ := newTestService(t, twoQuestions(), SessionOptions{})

	assert.ErrorIs(t, service.SubmitAnswer(quiz.AnswerA), ErrNoSession)
}

func TestSessionServiceRejectsDoubleAnswer(t *testing.T) {
	service, events, _ := newTestService(t, twoQuestions(), SessionOptions{
		FeedbackDelay: time.Minute, // keep the session on the first question
	})

	require.NoError(t, service.Start(""))
	waitQuestion(t, events)

	require.NoError(t, service.SubmitAnswer(quiz.AnswerA))
	waitOutcome(t, events)

	assert.ErrorIs(t, service.SubmitAnswer(quiz.AnswerB), quiz.ErrAlreadyAnswered)
}

func TestSessionServiceCountdownExpiry(t *testing.T) {
	service, events, stateRepo := newTestService(t, twoQuestions(), SessionOptions{
		TimerMode:      models.TimerCountDown,
		CountdownLimit: 30 * time.Millisecond,
	})

	require.NoError(t, service.Start(""))
	waitQuestion(t, events)

	summary := waitFinished(t, events)
	assert.True(t, summary.Expired)
	assert.Equal(t, 0, summary.Answered)

	assert.False(t, service.IsRunning())
	assert.False(t, stateRepo.IsActive())
}

func TestSessionServiceTicksPublishElapsed(t *testing.T) {
	service, events, _ := newTestService(t, twoQuestions(), SessionOptions{})

	require.NoError(t, service.Start(""))
	waitQuestion(t, events)

	select {
	case elapsed := <-events.ticks:
		assert.Greater(t, elapsed, time.Duration(0))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
	}
}

func TestSessionServiceStopAborts(t *testing.T) {
	service, events, stateRepo := newTestService(t, twoQuestions(), SessionOptions{})

	require.NoError(t, service.Start(""))
	waitQuestion(t, events)

	service.Stop()
	assert.False(t, service.IsRunning())
	assert.False(t, stateRepo.IsActive())

	select {
	case <-events.finished:
		t.Fatal("aborted session must not publish a summary")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Zero(t, service.GetRunStats().TotalRuns)
}
