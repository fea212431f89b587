package models

import (
	"sync"
	"time"

	"quizdeck/internal/quiz"
)

// QuestionSetInfo describes the currently loaded question file.
type QuestionSetInfo struct {
	SourceName  string
	LoadedAt    time.Time
	Total       int
	SkippedRows int
	GroupCount  int
}

// QuestionRepository stores the loaded question set and its import
// report. It is safe for concurrent use.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions []quiz.Question
	report    quiz.ImportReport
	info      QuestionSetInfo
	groups    []string
}

// NewQuestionRepository creates an empty question repository.
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{}
}

// SetQuestions replaces the stored question set with a freshly imported
// one. Group labels are recomputed and kept in natural order.
func (r *QuestionRepository) SetQuestions(source string, questions []quiz.Question, report quiz.ImportReport) {
	groups := quiz.GroupLabels(questions)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = questions
	r.report = report
	r.groups = groups
	r.info = QuestionSetInfo{
		SourceName:  source,
		LoadedAt:    time.Now(),
		Total:       len(questions),
		SkippedRows: report.SkippedCount(),
		GroupCount:  len(groups),
	}
}

// Questions returns a copy of the full question set.
func (r *QuestionRepository) Questions() []quiz.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions := make([]quiz.Question, len(r.questions))
	copy(questions, r.questions)
	return questions
}

// QuestionsInGroup returns the questions matching the group label. An
// empty label selects the whole set.
func (r *QuestionRepository) QuestionsInGroup(label string) []quiz.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return quiz.FilterByGroup(r.questions, label)
}

// GroupLabels returns the distinct group labels in natural order.
func (r *QuestionRepository) GroupLabels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]string, len(r.groups))
	copy(labels, r.groups)
	return labels
}

// Info returns metadata about the loaded question set.
func (r *QuestionRepository) Info() QuestionSetInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.info
}

// Report returns the import report of the last load.
func (r *QuestionRepository) Report() quiz.ImportReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report
}

// HasQuestions reports whether a question set is loaded.
func (r *QuestionRepository) HasQuestions() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions) > 0
}

// Clear drops the stored question set.
func (r *QuestionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = nil
	r.report = quiz.ImportReport{}
	r.groups = nil
	r.info = QuestionSetInfo{}
}
