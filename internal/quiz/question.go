package quiz

import "strings"

// AnswerLetter identifies one of the four answer options of a question.
type AnswerLetter string

const (
	AnswerA AnswerLetter = "A"
	AnswerB AnswerLetter = "B"
	AnswerC AnswerLetter = "C"
	AnswerD AnswerLetter = "D"
)

// AnswerLetters lists the valid answer letters in display order.
var AnswerLetters = []AnswerLetter{AnswerA, AnswerB, AnswerC, AnswerD}

// ParseAnswerLetter normalizes raw input to an answer letter.
// Surrounding whitespace is ignored and case is folded.
func ParseAnswerLetter(raw string) (AnswerLetter, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	switch AnswerLetter(normalized) {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return AnswerLetter(normalized), true
	default:
		return "", false
	}
}

// Index returns the option slot for the letter (A=0 .. D=3), or -1.
func (a AnswerLetter) Index() int {
	switch a {
	case AnswerA:
		return 0
	case AnswerB:
		return 1
	case AnswerC:
		return 2
	case AnswerD:
		return 3
	default:
		return -1
	}
}

// Question is a single multiple-choice quiz question.
type Question struct {
	Prompt  string
	Options [4]string
	Answer  AnswerLetter
	Group   string
}

// Option returns the option text for the given letter, or the empty
// string when the letter is not valid.
func (q Question) Option(letter AnswerLetter) string {
	idx := letter.Index()
	if idx < 0 {
		return ""
	}
	return q.Options[idx]
}

// CorrectOption returns the text of the correct answer.
func (q Question) CorrectOption() string {
	return q.Option(q.Answer)
}
