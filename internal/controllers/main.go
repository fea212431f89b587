package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"

	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/quiz"
	"quizdeck/internal/services"
	"quizdeck/internal/views"
)

// MainController connects the services, repositories, and the main view.
type MainController struct {
	logger          logger.Logger
	questionService *services.QuestionService
	sessionService  *services.SessionService
	questionRepo    *models.QuestionRepository
	stateRepo       *models.SessionStateRepository

	mainView  *views.MainView
	countdown bool
}

// NewMainController creates the main controller.
func NewMainController(
	log logger.Logger,
	questionService *services.QuestionService,
	sessionService *services.SessionService,
	questionRepo *models.QuestionRepository,
	stateRepo *models.SessionStateRepository,
	countdown bool,
) *MainController {
	return &MainController{
		logger:          log,
		questionService: questionService,
		sessionService:  sessionService,
		questionRepo:    questionRepo,
		stateRepo:       stateRepo,
		countdown:       countdown,
	}
}

// SetMainView associates the view and wires both directions: view events
// into controller methods, session events into view updates.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view

	view.SetOpenFileHandler(mc.OpenQuestionFile)
	view.SetStartQuizHandler(mc.StartQuiz)
	view.SetStopQuizHandler(mc.StopQuiz)
	view.SetGroupChangeHandler(mc.ChangeGroup)
	view.SetAnswerHandler(mc.SubmitAnswer)

	mc.sessionService.SetCallbacks(services.SessionCallbacks{
		OnQuestion: mc.handleQuestion,
		OnOutcome:  mc.handleOutcome,
		OnTick:     mc.handleTick,
		OnFinished: mc.handleFinished,
	})
}

// OpenQuestionFile shows the file picker and imports the chosen file.
func (mc *MainController) OpenQuestionFile() {
	if mc.sessionService.IsRunning() {
		return
	}

	mc.mainView.ShowFileDialog(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError("file dialog failed", err)
			return
		}
		if reader == nil {
			return // dialog cancelled
		}

		go mc.importQuestions(func(ctx context.Context) (services.ImportSummary, error) {
			return mc.questionService.LoadFromURI(ctx, reader)
		})
	})
}

// LoadQuestionFile imports a question file given on the command line.
func (mc *MainController) LoadQuestionFile(path string) {
	go mc.importQuestions(func(ctx context.Context) (services.ImportSummary, error) {
		file, err := os.Open(path)
		if err != nil {
			return services.ImportSummary{}, fmt.Errorf("failed to open question file: %w", err)
		}
		defer file.Close()

		return mc.questionService.Load(ctx, filepath.Base(path), file)
	})
}

// importQuestions runs an import and reflects the result into the view.
func (mc *MainController) importQuestions(load func(context.Context) (services.ImportSummary, error)) {
	mc.mainView.UpdateStatus("Importing questions...")

	summary, err := load(context.Background())
	if err != nil {
		mc.mainView.UpdateStatus("Import failed")
		mc.handleError("question import failed", err)
		return
	}

	mc.mainView.SetGroups(summary.Groups)
	mc.mainView.SetFileInfo(summary.Source, summary.Loaded, len(summary.Skipped))
	mc.mainView.EnableQuizControls(true)
	mc.mainView.ShowIdle(fmt.Sprintf("Loaded %d questions in %d groups. Pick a group and start.",
		summary.Loaded, len(summary.Groups)))

	if len(summary.Skipped) > 0 {
		mc.mainView.UpdateStatus(fmt.Sprintf("Imported %s, skipped %d malformed rows", summary.Source, len(summary.Skipped)))
	} else {
		mc.mainView.UpdateStatus(fmt.Sprintf("Imported %s", summary.Source))
	}
}

// StartQuiz starts a session over the selected group.
func (mc *MainController) StartQuiz() {
	group := mc.mainView.CurrentGroup()

	if err := mc.sessionService.Start(group); err != nil {
		mc.handleError("failed to start quiz", err)
		return
	}

	mc.mainView.SetQuizActive(true)
	mc.mainView.UpdateStatus("Quiz running")
}

// StopQuiz aborts the running session after confirmation.
func (mc *MainController) StopQuiz() {
	if !mc.sessionService.IsRunning() {
		return
	}

	mc.mainView.ShowConfirm("Stop Quiz", "Abort the running quiz?", func(confirmed bool) {
		if !confirmed {
			return
		}

		mc.sessionService.Stop()
		mc.mainView.SetQuizActive(false)
		mc.mainView.ShowIdle("Quiz stopped. Pick a group and start again.")
		mc.mainView.UpdateStatus("Quiz stopped")
	})
}

// SubmitAnswer forwards an answer button press to the session.
func (mc *MainController) SubmitAnswer(letter quiz.AnswerLetter) {
	err := mc.sessionService.SubmitAnswer(letter)
	if err == nil {
		return
	}

	// Button presses during the feedback delay or after the session
	// ended are expected; anything else is worth logging.
	if errors.Is(err, quiz.ErrAlreadyAnswered) || errors.Is(err, services.ErrNoSession) {
		return
	}

	mc.logger.Error("MainController", err, map[string]interface{}{
		"letter": string(letter),
	})
}

// ChangeGroup reflects a new group selection in the status bar.
func (mc *MainController) ChangeGroup(label string) {
	if !mc.questionRepo.HasQuestions() || mc.sessionService.IsRunning() {
		return
	}

	group := mc.mainView.CurrentGroup()
	count := len(mc.questionRepo.QuestionsInGroup(group))
	mc.mainView.UpdateStatus(fmt.Sprintf("%s: %d questions", label, count))
}

// Shutdown stops the running session, if any.
func (mc *MainController) Shutdown() {
	mc.sessionService.Stop()
}

// Session event handlers

func (mc *MainController) handleQuestion(question quiz.Question, position, total int) {
	mc.mainView.ShowQuestion(question, position, total)

	state := mc.stateRepo.State()
	mc.mainView.SetScore(state.Score, state.Answered, total)
}

func (mc *MainController) handleOutcome(outcome quiz.Outcome) {
	mc.mainView.ShowOutcome(outcome)

	state := mc.stateRepo.State()
	mc.mainView.SetScore(state.Score, state.Answered, state.Total)
}

func (mc *MainController) handleTick(elapsed, remaining time.Duration) {
	mc.mainView.SetClock(elapsed, remaining, mc.countdown)
}

func (mc *MainController) handleFinished(summary services.SessionSummary) {
	mc.mainView.SetQuizActive(false)
	mc.mainView.SetScore(summary.Score, summary.Answered, summary.Total)
	mc.mainView.ShowIdle("Quiz finished. Pick a group and start again.")
	mc.mainView.UpdateStatus(fmt.Sprintf("Finished with %d of %d", summary.Score, summary.Total))
	mc.mainView.ShowResults(summary)
}

// handleError logs an error and surfaces it in a dialog.
func (mc *MainController) handleError(message string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"context": message,
	})

	if mc.mainView != nil {
		mc.mainView.ShowError(err)
	}
}
