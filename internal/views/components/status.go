package components

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the status message, loaded file info, score, and the
// quiz clock.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	fileLabel   *widget.Label
	scoreLabel  *widget.Label
	timerLabel  *widget.Label
}

// NewStatusBar creates the status bar component.
func NewStatusBar() *StatusBar {
	bar := &StatusBar{}
	bar.createComponents()
	bar.buildLayout()
	return bar
}

// createComponents initializes the status widgets.
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.fileLabel = widget.NewLabel("No file loaded")
	sb.scoreLabel = widget.NewLabel("Score: --")
	sb.timerLabel = widget.NewLabel("00:00")
}

// buildLayout constructs the status bar layout.
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.fileLabel,
		widget.NewSeparator(),
		sb.scoreLabel,
		widget.NewSeparator(),
		sb.timerLabel,
	)
}

// SetStatus updates the status message.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// SetFileInfo shows the loaded file name with its row counts.
func (sb *StatusBar) SetFileInfo(name string, loaded, skipped int) {
	fyne.Do(func() {
		if skipped > 0 {
			sb.fileLabel.SetText(fmt.Sprintf("%s (%d questions, %d rows skipped)", name, loaded, skipped))
		} else {
			sb.fileLabel.SetText(fmt.Sprintf("%s (%d questions)", name, loaded))
		}
	})
}

// SetScore updates the running score display.
func (sb *StatusBar) SetScore(score, answered, total int) {
	fyne.Do(func() {
		sb.scoreLabel.SetText(fmt.Sprintf("Score: %d/%d of %d", score, answered, total))
	})
}

// SetClock updates the timer display. Countdown mode shows the time
// remaining, count-up mode the time elapsed.
func (sb *StatusBar) SetClock(elapsed, remaining time.Duration, countdown bool) {
	value := elapsed
	if countdown {
		value = remaining
	}

	fyne.Do(func() {
		sb.timerLabel.SetText(FormatClock(value))
	})
}

// Reset restores the initial status bar state.
func (sb *StatusBar) Reset() {
	fyne.Do(func() {
		sb.statusLabel.SetText("Ready")
		sb.fileLabel.SetText("No file loaded")
		sb.scoreLabel.SetText("Score: --")
		sb.timerLabel.SetText("00:00")
	})
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// FormatClock renders a duration as mm:ss, rolling into hours past 60
// minutes.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
