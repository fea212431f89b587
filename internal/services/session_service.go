package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/quiz"
)

var (
	// ErrSessionRunning indicates a session is already in progress.
	ErrSessionRunning = errors.New("a quiz session is already running")

	// ErrNoSession indicates no session is in progress.
	ErrNoSession = errors.New("no quiz session is running")
)

// SessionOptions configure quiz runs.
type SessionOptions struct {
	// FeedbackDelay is how long an outcome stays visible before the
	// quiz advances. Zero means the 2 second default.
	FeedbackDelay time.Duration

	// TimerMode selects the clock direction.
	TimerMode models.TimerMode

	// CountdownLimit is the total time allowed in countdown mode.
	CountdownLimit time.Duration
}

// SessionCallbacks receive quiz progress events. Callbacks are invoked
// from service and timer goroutines; UI code wraps them in fyne.Do.
type SessionCallbacks struct {
	OnQuestion func(question quiz.Question, position, total int)
	OnOutcome  func(outcome quiz.Outcome)
	OnTick     func(elapsed, remaining time.Duration)
	OnFinished func(summary SessionSummary)
}

// SessionSummary reports a finished quiz run.
type SessionSummary struct {
	SessionID string
	Group     string
	Score     int
	Answered  int
	Total     int
	Elapsed   time.Duration
	Expired   bool
}

// RunStats aggregates the completed runs of this process.
type RunStats struct {
	TotalRuns       int
	TotalAnswered   int
	TotalCorrect    int
	AverageDuration time.Duration
}

// DefaultFeedbackDelay is how long answer feedback stays on screen.
const DefaultFeedbackDelay = 2 * time.Second

// SessionService drives quiz sessions: question progression, the quiz
// clock, and the feedback delay between answer and advance.
type SessionService struct {
	logger       logger.Logger
	questionRepo *models.QuestionRepository
	stateRepo    *models.SessionStateRepository
	opts         SessionOptions

	// tickInterval is one second in production; tests shorten it.
	tickInterval time.Duration

	mu           sync.Mutex
	session      *quiz.Session
	group        string
	callbacks    SessionCallbacks
	startTime    time.Time
	stopClock    chan struct{}
	advanceTimer *time.Timer

	stats        RunStats
	totalRunTime time.Duration
}

// NewSessionService creates a session service.
func NewSessionService(
	log logger.Logger,
	questionRepo *models.QuestionRepository,
	stateRepo *models.SessionStateRepository,
	opts SessionOptions,
) *SessionService {
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = DefaultFeedbackDelay
	}
	if opts.TimerMode == "" {
		opts.TimerMode = models.TimerCountUp
	}

	return &SessionService{
		logger:       log,
		questionRepo: questionRepo,
		stateRepo:    stateRepo,
		opts:         opts,
		tickInterval: time.Second,
	}
}

// SetCallbacks installs the event callbacks. Call before Start.
func (s *SessionService) SetCallbacks(callbacks SessionCallbacks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = callbacks
}

// Start begins a quiz run over the group-filtered question set. An empty
// group label selects every loaded question.
func (s *SessionService) Start(group string) error {
	questions := s.questionRepo.QuestionsInGroup(group)

	s.mu.Lock()
	if s.session != nil {
		s.mu.Unlock()
		return ErrSessionRunning
	}

	session, err := quiz.NewSession(questions)
	if err != nil {
		s.mu.Unlock()
		if group == "" {
			return fmt.Errorf("no questions loaded: %w", err)
		}
		return fmt.Errorf("no questions in group %q: %w", group, err)
	}

	s.session = session
	s.group = group
	s.startTime = time.Now()
	stop := make(chan struct{})
	s.stopClock = stop

	position, total := session.Position()
	question, _ := session.Current()
	callbacks := s.callbacks
	s.mu.Unlock()

	s.stateRepo.StartSession(session.ID(), group, total, s.opts.TimerMode, s.opts.CountdownLimit)

	s.logger.Info("SessionService", "quiz session started", map[string]interface{}{
		"session_id": session.ID(),
		"group":      group,
		"questions":  total,
		"timer_mode": string(s.opts.TimerMode),
	})

	go s.runClock(s.startTime, stop)

	if callbacks.OnQuestion != nil {
		callbacks.OnQuestion(question, position, total)
	}

	return nil
}

// SubmitAnswer records an answer for the current question, publishes the
// outcome, and schedules the advance after the feedback delay.
func (s *SessionService) SubmitAnswer(letter quiz.AnswerLetter) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return ErrNoSession
	}

	outcome, err := s.session.Answer(letter)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	position, _ := s.session.Position()
	score := s.session.Score()
	answered := s.session.AnsweredCount()
	sessionID := s.session.ID()
	callbacks := s.callbacks
	s.advanceTimer = time.AfterFunc(s.opts.FeedbackDelay, s.advance)
	s.mu.Unlock()

	s.stateRepo.UpdateProgress(position, score, answered)

	s.logger.Debug("SessionService", "answer submitted", map[string]interface{}{
		"session_id": sessionID,
		"position":   position,
		"given":      string(outcome.Given),
		"correct":    outcome.Correct,
	})

	if callbacks.OnOutcome != nil {
		callbacks.OnOutcome(outcome)
	}

	return nil
}

// advance moves to the next question once the feedback delay elapses.
func (s *SessionService) advance() {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return
	}

	if s.session.Advance() {
		question, _ := s.session.Current()
		position, total := s.session.Position()
		score := s.session.Score()
		answered := s.session.AnsweredCount()
		callbacks := s.callbacks
		s.mu.Unlock()

		s.stateRepo.UpdateProgress(position, score, answered)

		if callbacks.OnQuestion != nil {
			callbacks.OnQuestion(question, position, total)
		}
		return
	}

	summary, callbacks := s.finishLocked(false)
	s.mu.Unlock()

	s.publishFinished(summary, callbacks)
}

// Stop aborts the running session without publishing a summary.
func (s *SessionService) Stop() {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return
	}

	sessionID := s.session.ID()
	s.teardownLocked()
	s.mu.Unlock()

	s.stateRepo.CompleteSession()

	s.logger.Info("SessionService", "quiz session aborted", map[string]interface{}{
		"session_id": sessionID,
	})
}

// IsRunning reports whether a session is in progress.
func (s *SessionService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// GetRunStats returns aggregate stats over completed runs.
func (s *SessionService) GetRunStats() RunStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.stats
	if stats.TotalRuns > 0 {
		stats.AverageDuration = s.totalRunTime / time.Duration(stats.TotalRuns)
	}
	return stats
}

// Shutdown stops the clock goroutine and any pending advance.
func (s *SessionService) Shutdown() {
	s.Stop()
	s.logger.Info("SessionService", "session service stopped", nil)
}

// runClock publishes timer ticks until the session ends. In countdown
// mode it finishes the session when the limit runs out.
func (s *SessionService) runClock(start time.Time, stop chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	countdown := s.opts.TimerMode == models.TimerCountDown

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			var remaining time.Duration
			if countdown {
				remaining = s.opts.CountdownLimit - elapsed
				if remaining < 0 {
					remaining = 0
				}
			}

			s.stateRepo.UpdateClock(elapsed, remaining)

			s.mu.Lock()
			callbacks := s.callbacks
			s.mu.Unlock()

			if callbacks.OnTick != nil {
				callbacks.OnTick(elapsed, remaining)
			}

			if countdown && remaining == 0 {
				s.expire()
				return
			}
		}
	}
}

// expire ends the session because the countdown ran out.
func (s *SessionService) expire() {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return
	}

	summary, callbacks := s.finishLocked(true)
	s.mu.Unlock()

	s.publishFinished(summary, callbacks)
}

// finishLocked builds the run summary and tears the session down. The
// caller holds s.mu and invokes the callbacks after unlocking.
func (s *SessionService) finishLocked(expired bool) (SessionSummary, SessionCallbacks) {
	session := s.session
	_, total := session.Position()

	summary := SessionSummary{
		SessionID: session.ID(),
		Group:     s.group,
		Score:     session.Score(),
		Answered:  session.AnsweredCount(),
		Total:     total,
		Elapsed:   time.Since(s.startTime).Truncate(time.Millisecond),
		Expired:   expired,
	}

	s.stats.TotalRuns++
	s.stats.TotalAnswered += summary.Answered
	s.stats.TotalCorrect += summary.Score
	s.totalRunTime += summary.Elapsed

	callbacks := s.callbacks
	s.teardownLocked()

	return summary, callbacks
}

// teardownLocked stops the clock and clears the session. Caller holds s.mu.
func (s *SessionService) teardownLocked() {
	if s.stopClock != nil {
		close(s.stopClock)
		s.stopClock = nil
	}
	if s.advanceTimer != nil {
		s.advanceTimer.Stop()
		s.advanceTimer = nil
	}
	s.session = nil
	s.group = ""
}

// publishFinished records completion and notifies the controller.
func (s *SessionService) publishFinished(summary SessionSummary, callbacks SessionCallbacks) {
	s.stateRepo.UpdateProgress(summary.Total, summary.Score, summary.Answered)
	s.stateRepo.CompleteSession()

	s.logger.Info("SessionService", "quiz session finished", map[string]interface{}{
		"session_id": summary.SessionID,
		"score":      summary.Score,
		"answered":   summary.Answered,
		"total":      summary.Total,
		"elapsed":    summary.Elapsed.String(),
		"expired":    summary.Expired,
	})

	if callbacks.OnFinished != nil {
		callbacks.OnFinished(summary)
	}
}
