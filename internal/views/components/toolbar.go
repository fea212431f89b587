package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AllGroupsLabel is the pseudo-group selecting every loaded question.
const AllGroupsLabel = "All groups"

// Toolbar holds the file, group, and session controls.
type Toolbar struct {
	container   *fyne.Container
	openButton  *widget.Button
	groupSelect *widget.Select
	startButton *widget.Button
	stopButton  *widget.Button

	// Event handlers
	openHandler        func()
	startHandler       func()
	stopHandler        func()
	groupChangeHandler func(string)

	// State
	currentGroup string
	quizActive   bool
}

// NewToolbar creates the toolbar component.
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar widgets.
func (t *Toolbar) createComponents() {
	t.openButton = widget.NewButton("Open Questions", nil)
	t.openButton.Importance = widget.HighImportance

	t.groupSelect = widget.NewSelect([]string{AllGroupsLabel}, nil)
	t.groupSelect.SetSelected(AllGroupsLabel)
	t.groupSelect.Disable()
	t.currentGroup = AllGroupsLabel

	t.startButton = widget.NewButton("Start Quiz", nil)
	t.startButton.Importance = widget.HighImportance
	t.startButton.Disable()

	t.stopButton = widget.NewButton("Stop", nil)
	t.stopButton.Importance = widget.MediumImportance
	t.stopButton.Disable()
}

// buildLayout constructs the toolbar layout.
func (t *Toolbar) buildLayout() {
	fileSection := container.NewHBox(t.openButton)

	groupSection := container.NewVBox(
		widget.NewLabel("Group"),
		t.groupSelect,
	)

	sessionSection := container.NewVBox(
		widget.NewLabel("Session"),
		container.NewHBox(t.startButton, t.stopButton),
	)

	t.container = container.NewHBox(
		fileSection,
		widget.NewSeparator(),
		groupSection,
		widget.NewSeparator(),
		sessionSection,
	)
}

// setupEventHandlers connects widget events.
func (t *Toolbar) setupEventHandlers() {
	t.openButton.OnTapped = func() {
		if t.openHandler != nil {
			t.openHandler()
		}
	}

	t.startButton.OnTapped = func() {
		if t.startHandler != nil {
			t.startHandler()
		}
	}

	t.stopButton.OnTapped = func() {
		if t.stopHandler != nil {
			t.stopHandler()
		}
	}

	t.groupSelect.OnChanged = func(group string) {
		t.currentGroup = group
		if t.groupChangeHandler != nil {
			t.groupChangeHandler(group)
		}
	}
}

// Event handler setters

// SetOpenHandler sets the open-file handler.
func (t *Toolbar) SetOpenHandler(handler func()) {
	t.openHandler = handler
}

// SetStartHandler sets the start-quiz handler.
func (t *Toolbar) SetStartHandler(handler func()) {
	t.startHandler = handler
}

// SetStopHandler sets the stop-quiz handler.
func (t *Toolbar) SetStopHandler(handler func()) {
	t.stopHandler = handler
}

// SetGroupChangeHandler sets the group selection handler.
func (t *Toolbar) SetGroupChangeHandler(handler func(string)) {
	t.groupChangeHandler = handler
}

// State management

// SetGroups replaces the selectable group labels, keeping the
// all-groups entry first.
func (t *Toolbar) SetGroups(labels []string) {
	fyne.Do(func() {
		options := make([]string, 0, len(labels)+1)
		options = append(options, AllGroupsLabel)
		options = append(options, labels...)

		t.groupSelect.Options = options
		t.groupSelect.SetSelected(AllGroupsLabel)
		t.groupSelect.Enable()
	})
}

// CurrentGroup returns the selected group label; empty means all groups.
func (t *Toolbar) CurrentGroup() string {
	if t.currentGroup == AllGroupsLabel {
		return ""
	}
	return t.currentGroup
}

// SetQuizActive toggles the controls between idle and running states.
func (t *Toolbar) SetQuizActive(active bool) {
	fyne.Do(func() {
		t.quizActive = active

		if active {
			t.openButton.Disable()
			t.groupSelect.Disable()
			t.startButton.Disable()
			t.stopButton.Enable()
		} else {
			t.openButton.Enable()
			t.groupSelect.Enable()
			t.startButton.Enable()
			t.stopButton.Disable()
		}
	})
}

// EnableQuizControls enables the start button once questions are loaded.
func (t *Toolbar) EnableQuizControls(enabled bool) {
	fyne.Do(func() {
		if enabled && !t.quizActive {
			t.startButton.Enable()
		} else {
			t.startButton.Disable()
		}
	})
}

// Reset restores the initial toolbar state.
func (t *Toolbar) Reset() {
	fyne.Do(func() {
		t.groupSelect.Options = []string{AllGroupsLabel}
		t.groupSelect.SetSelected(AllGroupsLabel)
		t.groupSelect.Disable()
		t.startButton.Disable()
		t.stopButton.Disable()
		t.openButton.Enable()
		t.currentGroup = AllGroupsLabel
		t.quizActive = false
	})
}

// GetContainer returns the toolbar container.
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
