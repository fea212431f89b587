package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"quizdeck/internal/quiz"
)

// QuestionCard shows one question with its four answer buttons and the
// correct/incorrect feedback line.
type QuestionCard struct {
	container     *fyne.Container
	positionLabel *widget.Label
	promptLabel   *widget.Label
	answerButtons map[quiz.AnswerLetter]*widget.Button
	feedbackLabel *widget.Label

	answerHandler func(quiz.AnswerLetter)
}

// NewQuestionCard creates the question card component.
func NewQuestionCard() *QuestionCard {
	card := &QuestionCard{}
	card.createComponents()
	card.buildLayout()
	card.setupEventHandlers()
	return card
}

// createComponents initializes the card widgets.
func (qc *QuestionCard) createComponents() {
	qc.positionLabel = widget.NewLabel("")

	qc.promptLabel = widget.NewLabel("Open a question file to begin.")
	qc.promptLabel.Wrapping = fyne.TextWrapWord
	qc.promptLabel.TextStyle = fyne.TextStyle{Bold: true}

	qc.answerButtons = make(map[quiz.AnswerLetter]*widget.Button, len(quiz.AnswerLetters))
	for _, letter := range quiz.AnswerLetters {
		button := widget.NewButton(string(letter), nil)
		button.Disable()
		qc.answerButtons[letter] = button
	}

	qc.feedbackLabel = widget.NewLabel("")
	qc.feedbackLabel.Wrapping = fyne.TextWrapWord
}

// buildLayout constructs the card layout.
func (qc *QuestionCard) buildLayout() {
	answerRows := make([]fyne.CanvasObject, 0, len(quiz.AnswerLetters))
	for _, letter := range quiz.AnswerLetters {
		answerRows = append(answerRows, qc.answerButtons[letter])
	}

	qc.container = container.NewVBox(
		qc.positionLabel,
		qc.promptLabel,
		widget.NewSeparator(),
		container.NewVBox(answerRows...),
		qc.feedbackLabel,
	)
}

// setupEventHandlers connects the answer buttons.
func (qc *QuestionCard) setupEventHandlers() {
	for _, letter := range quiz.AnswerLetters {
		letter := letter
		qc.answerButtons[letter].OnTapped = func() {
			if qc.answerHandler != nil {
				qc.answerHandler(letter)
			}
		}
	}
}

// SetAnswerHandler sets the answer selection handler.
func (qc *QuestionCard) SetAnswerHandler(handler func(quiz.AnswerLetter)) {
	qc.answerHandler = handler
}

// ShowQuestion displays a question and re-enables the answer buttons.
func (qc *QuestionCard) ShowQuestion(question quiz.Question, position, total int) {
	fyne.Do(func() {
		qc.positionLabel.SetText(fmt.Sprintf("Question %d of %d", position, total))
		qc.promptLabel.SetText(question.Prompt)
		qc.feedbackLabel.SetText("")

		for _, letter := range quiz.AnswerLetters {
			button := qc.answerButtons[letter]
			button.SetText(fmt.Sprintf("%s. %s", letter, question.Option(letter)))
			button.Importance = widget.MediumImportance
			button.Enable()
			button.Refresh()
		}
	})
}

// ShowOutcome displays answer feedback and locks the buttons until the
// next question arrives.
func (qc *QuestionCard) ShowOutcome(outcome quiz.Outcome) {
	fyne.Do(func() {
		for letter, button := range qc.answerButtons {
			button.Disable()

			switch letter {
			case outcome.CorrectAnswer:
				button.Importance = widget.SuccessImportance
			case outcome.Given:
				if !outcome.Correct {
					button.Importance = widget.DangerImportance
				}
			}
			button.Refresh()
		}

		if outcome.Correct {
			qc.feedbackLabel.SetText("Correct!")
		} else {
			qc.feedbackLabel.SetText(fmt.Sprintf("Wrong. The correct answer is %s.", outcome.CorrectAnswer))
		}
	})
}

// ShowIdle clears the card back to its waiting state.
func (qc *QuestionCard) ShowIdle(message string) {
	fyne.Do(func() {
		qc.positionLabel.SetText("")
		qc.promptLabel.SetText(message)
		qc.feedbackLabel.SetText("")

		for _, letter := range quiz.AnswerLetters {
			button := qc.answerButtons[letter]
			button.SetText(string(letter))
			button.Importance = widget.MediumImportance
			button.Disable()
			button.Refresh()
		}
	})
}

// Reset restores the initial card state.
func (qc *QuestionCard) Reset() {
	qc.ShowIdle("Open a question file to begin.")
}

// GetContainer returns the card container.
func (qc *QuestionCard) GetContainer() *fyne.Container {
	return qc.container
}
