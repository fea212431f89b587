package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SessionProgress shows how far through the question set the session is.
type SessionProgress struct {
	container *fyne.Container
	bar       *widget.ProgressBar
}

// NewSessionProgress creates the progress component.
func NewSessionProgress() *SessionProgress {
	progress := &SessionProgress{
		bar: widget.NewProgressBar(),
	}
	progress.container = container.NewVBox(progress.bar)
	progress.container.Hide()
	return progress
}

// SetPosition updates the bar for the current question position.
func (sp *SessionProgress) SetPosition(position, total int) {
	fyne.Do(func() {
		if total <= 0 {
			sp.bar.SetValue(0)
			return
		}
		sp.bar.SetValue(float64(position-1) / float64(total))
	})
}

// SetVisible shows or hides the progress bar.
func (sp *SessionProgress) SetVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			sp.container.Show()
		} else {
			sp.container.Hide()
		}
	})
}

// Reset restores the initial progress state.
func (sp *SessionProgress) Reset() {
	fyne.Do(func() {
		sp.bar.SetValue(0)
		sp.container.Hide()
	})
}

// GetContainer returns the progress container.
func (sp *SessionProgress) GetContainer() *fyne.Container {
	return sp.container
}
