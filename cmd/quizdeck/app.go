package main

import (
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"quizdeck/internal/config"
	"quizdeck/internal/controllers"
	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/services"
	"quizdeck/internal/shutdown"
	"quizdeck/internal/views"
)

const (
	AppName    = "QuizDeck"
	AppID      = "com.quizdeck.app"
	AppVersion = "1.0.0"
)

// Application holds the wired-up components of the GUI.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	questionService *services.QuestionService
	sessionService  *services.SessionService

	questionRepo *models.QuestionRepository
	stateRepo    *models.SessionStateRepository

	shutdownManager *shutdown.Manager
}

// NewApplication builds the application from its components.
func NewApplication(cfg *config.Config) (*Application, error) {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(900, 620))
	window.CenterOnScreen()

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"timer_mode": cfg.TimerMode,
		"delimiter":  cfg.Delimiter,
		"log_level":  cfg.LogLevel,
	})

	questionRepo := models.NewQuestionRepository()
	stateRepo := models.NewSessionStateRepository()

	questionService := services.NewQuestionService(appLogger, questionRepo, cfg.DelimiterRune())
	sessionService := services.NewSessionService(appLogger, questionRepo, stateRepo, services.SessionOptions{
		FeedbackDelay:  cfg.FeedbackDelay,
		TimerMode:      models.TimerMode(cfg.TimerMode),
		CountdownLimit: cfg.CountdownLimit(),
	})

	countdown := cfg.TimerMode == config.TimerModeCountDown
	controller := controllers.NewMainController(
		appLogger, questionService, sessionService,
		questionRepo, stateRepo, countdown,
	)

	view := views.NewMainView(window)
	controller.SetMainView(view)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("main controller", controller)
	shutdownManager.Register("session service", sessionService)
	shutdownManager.Listen()

	application := &Application{
		fyneApp:         fyneApp,
		window:          window,
		logger:          appLogger,
		controller:      controller,
		view:            view,
		questionService: questionService,
		sessionService:  sessionService,
		questionRepo:    questionRepo,
		stateRepo:       stateRepo,
		shutdownManager: shutdownManager,
	}

	application.setupWindowEvents()

	return application, nil
}

// setupWindowEvents configures the window lifecycle.
func (app *Application) setupWindowEvents() {
	app.window.SetCloseIntercept(func() {
		if !app.sessionService.IsRunning() {
			app.window.Close()
			return
		}

		app.view.ShowConfirm(
			"Exit QuizDeck",
			"A quiz is running. Exit anyway?",
			func(confirmed bool) {
				if confirmed {
					fyne.Do(func() {
						app.window.Close()
					})
				}
			},
		)
	})

	app.window.SetOnClosed(func() {
		app.shutdownManager.Shutdown()
	})
}

// Run shows the window and blocks until the application exits.
func (app *Application) Run(startupFile string) error {
	// Quit the event loop when a shutdown signal arrives.
	go func() {
		<-app.shutdownManager.Done()
		fyne.Do(func() {
			app.fyneApp.Quit()
		})
	}()

	app.window.Show()

	if startupFile != "" {
		app.logger.Info("Application", "loading startup file", map[string]interface{}{
			"path": startupFile,
		})
		app.controller.LoadQuestionFile(startupFile)
	}

	app.fyneApp.Run()

	app.shutdownManager.Shutdown()
	app.logger.Info("Application", "terminated", nil)

	return nil
}
