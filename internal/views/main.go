package views

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"quizdeck/internal/quiz"
	"quizdeck/internal/services"
	"quizdeck/internal/views/components"
)

// MainView composes the quiz window from its components.
type MainView struct {
	// UI components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	questionCard  *components.QuestionCard
	statusBar     *components.StatusBar
	progress      *components.SessionProgress

	// Event handlers, connected to the controller
	openFileHandler    func()
	startQuizHandler   func()
	stopQuizHandler    func()
	groupChangeHandler func(string)
	answerHandler      func(quiz.AnswerLetter)
}

// NewMainView creates the main view.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components.
func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.questionCard = components.NewQuestionCard()
	mv.statusBar = components.NewStatusBar()
	mv.progress = components.NewSessionProgress()
}

// buildLayout constructs the main layout.
func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		mv.progress.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewPadded(mv.questionCard.GetContainer()),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects component events to the view handlers.
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetOpenHandler(func() {
		if mv.openFileHandler != nil {
			mv.openFileHandler()
		}
	})

	mv.toolbar.SetStartHandler(func() {
		if mv.startQuizHandler != nil {
			mv.startQuizHandler()
		}
	})

	mv.toolbar.SetStopHandler(func() {
		if mv.stopQuizHandler != nil {
			mv.stopQuizHandler()
		}
	})

	mv.toolbar.SetGroupChangeHandler(func(group string) {
		if mv.groupChangeHandler != nil {
			mv.groupChangeHandler(group)
		}
	})

	mv.questionCard.SetAnswerHandler(func(letter quiz.AnswerLetter) {
		if mv.answerHandler != nil {
			mv.answerHandler(letter)
		}
	})
}

// Event handler setters, called by the controller

// SetOpenFileHandler sets the open-file handler.
func (mv *MainView) SetOpenFileHandler(handler func()) {
	mv.openFileHandler = handler
}

// SetStartQuizHandler sets the start-quiz handler.
func (mv *MainView) SetStartQuizHandler(handler func()) {
	mv.startQuizHandler = handler
}

// SetStopQuizHandler sets the stop-quiz handler.
func (mv *MainView) SetStopQuizHandler(handler func()) {
	mv.stopQuizHandler = handler
}

// SetGroupChangeHandler sets the group selection handler.
func (mv *MainView) SetGroupChangeHandler(handler func(string)) {
	mv.groupChangeHandler = handler
}

// SetAnswerHandler sets the answer selection handler.
func (mv *MainView) SetAnswerHandler(handler func(quiz.AnswerLetter)) {
	mv.answerHandler = handler
}

// UI update methods, called by the controller

// ShowQuestion displays a question.
func (mv *MainView) ShowQuestion(question quiz.Question, position, total int) {
	mv.questionCard.ShowQuestion(question, position, total)
	mv.progress.SetPosition(position, total)
}

// ShowOutcome displays answer feedback.
func (mv *MainView) ShowOutcome(outcome quiz.Outcome) {
	mv.questionCard.ShowOutcome(outcome)
}

// ShowIdle puts the question area back in its waiting state.
func (mv *MainView) ShowIdle(message string) {
	mv.questionCard.ShowIdle(message)
}

// SetGroups updates the selectable group labels.
func (mv *MainView) SetGroups(labels []string) {
	mv.toolbar.SetGroups(labels)
}

// CurrentGroup returns the selected group label; empty means all.
func (mv *MainView) CurrentGroup() string {
	return mv.toolbar.CurrentGroup()
}

// SetQuizActive toggles controls between idle and running states.
func (mv *MainView) SetQuizActive(active bool) {
	mv.toolbar.SetQuizActive(active)
	mv.progress.SetVisible(active)
}

// EnableQuizControls enables the start button once questions exist.
func (mv *MainView) EnableQuizControls(enabled bool) {
	mv.toolbar.EnableQuizControls(enabled)
}

// UpdateStatus updates the status bar message.
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetFileInfo shows the loaded file name and row counts.
func (mv *MainView) SetFileInfo(name string, loaded, skipped int) {
	mv.statusBar.SetFileInfo(name, loaded, skipped)
}

// SetScore updates the score display.
func (mv *MainView) SetScore(score, answered, total int) {
	mv.statusBar.SetScore(score, answered, total)
}

// SetClock updates the timer display.
func (mv *MainView) SetClock(elapsed, remaining time.Duration, countdown bool) {
	mv.statusBar.SetClock(elapsed, remaining, countdown)
}

// ShowError displays an error dialog.
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog.
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowConfirm displays a confirmation dialog.
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// ShowFileDialog displays the question file picker, filtered to
// delimited text files.
func (mv *MainView) ShowFileDialog(callback func(fyne.URIReadCloser, error)) {
	fyne.Do(func() {
		fileDialog := dialog.NewFileOpen(callback, mv.window)
		fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".txt"}))
		fileDialog.Show()
	})
}

// ShowResults displays the end-of-session summary dialog.
func (mv *MainView) ShowResults(summary services.SessionSummary) {
	fyne.Do(func() {
		headline := "Quiz finished"
		if summary.Expired {
			headline = "Time is up"
		}

		group := summary.Group
		if group == "" {
			group = components.AllGroupsLabel
		}

		content := container.NewVBox(
			widget.NewLabel(headline),
			widget.NewSeparator(),
			widget.NewLabel(fmt.Sprintf("Group: %s", group)),
			widget.NewLabel(fmt.Sprintf("Score: %d of %d (%d answered)", summary.Score, summary.Total, summary.Answered)),
			widget.NewLabel(fmt.Sprintf("Time: %s", components.FormatClock(summary.Elapsed))),
			widget.NewLabel(fmt.Sprintf("Session: %s", summary.SessionID)),
		)

		dialog.ShowCustom("Results", "Close", content, mv.window)
	})
}

// ResetView restores the initial window state.
func (mv *MainView) ResetView() {
	mv.questionCard.Reset()
	mv.statusBar.Reset()
	mv.progress.Reset()
	mv.toolbar.Reset()
}

// Show displays the window.
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// GetWindow returns the main window.
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
