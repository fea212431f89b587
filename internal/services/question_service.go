package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"fyne.io/fyne/v2"

	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/quiz"
)

// ImportSummary reports the result of loading a question file.
type ImportSummary struct {
	Source   string
	Loaded   int
	Skipped  []quiz.SkippedRow
	Groups   []string
	Duration time.Duration
}

// QuestionService loads question files and keeps the repository current.
type QuestionService struct {
	logger     logger.Logger
	repository *models.QuestionRepository
	delimiter  rune
}

// NewQuestionService creates a question service. The delimiter applies to
// every file it parses.
func NewQuestionService(log logger.Logger, repository *models.QuestionRepository, delimiter rune) *QuestionService {
	if delimiter == 0 {
		delimiter = quiz.DefaultDelimiter
	}

	return &QuestionService{
		logger:     log,
		repository: repository,
		delimiter:  delimiter,
	}
}

// LoadFromURI loads a question file picked in the file-open dialog.
func (qs *QuestionService) LoadFromURI(ctx context.Context, reader fyne.URIReadCloser) (ImportSummary, error) {
	defer reader.Close()
	return qs.Load(ctx, reader.URI().Name(), reader)
}

// Load parses a question file from any reader and stores the result in
// the repository. The previous set stays in place when the import fails.
func (qs *QuestionService) Load(ctx context.Context, source string, reader io.Reader) (ImportSummary, error) {
	select {
	case <-ctx.Done():
		return ImportSummary{}, ctx.Err()
	default:
	}

	startTime := time.Now()

	questions, report, err := quiz.ParseQuestions(reader, quiz.ParseOptions{Delimiter: qs.delimiter})
	if err != nil {
		qs.logger.Error("QuestionService", err, map[string]interface{}{
			"source":  source,
			"skipped": report.SkippedCount(),
		})
		return ImportSummary{Source: source, Skipped: report.Skipped}, fmt.Errorf("failed to import %s: %w", source, err)
	}

	qs.repository.SetQuestions(source, questions, report)

	summary := ImportSummary{
		Source:   source,
		Loaded:   len(questions),
		Skipped:  report.Skipped,
		Groups:   quiz.GroupLabels(questions),
		Duration: time.Since(startTime),
	}

	qs.logger.Info("QuestionService", "question file imported", map[string]interface{}{
		"source":  source,
		"loaded":  summary.Loaded,
		"skipped": len(summary.Skipped),
		"groups":  len(summary.Groups),
	})

	return summary, nil
}
