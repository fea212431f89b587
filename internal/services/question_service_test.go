package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/quiz"
)

const questionFile = `question;option_a;option_b;option_c;option_d;answer;group
First question?;a1;b1;c1;d1;A;1-50
Second question?;a2;b2;c2;d2;C;2-100
`

func TestQuestionServiceLoad(t *testing.T) {
	repo := models.NewQuestionRepository()
	service := NewQuestionService(logger.NewNop(), repo, ';')

	summary, err := service.Load(context.Background(), "history.csv", strings.NewReader(questionFile))
	require.NoError(t, err)

	assert.Equal(t, "history.csv", summary.Source)
	assert.Equal(t, 2, summary.Loaded)
	assert.Empty(t, summary.Skipped)
	assert.Equal(t, []string{"1-50", "2-100"}, summary.Groups)

	assert.True(t, repo.HasQuestions())
	assert.Len(t, repo.Questions(), 2)
	assert.Equal(t, "history.csv", repo.Info().SourceName)
}

func TestQuestionServiceLoadFailureKeepsPreviousSet(t *testing.T) {
	repo := models.NewQuestionRepository()
	service := NewQuestionService(logger.NewNop(), repo, ';')

	_, err := service.Load(context.Background(), "history.csv", strings.NewReader(questionFile))
	require.NoError(t, err)

	// Valid header, but every data row is malformed.
	broken := "question;option_a;option_b;option_c;option_d;answer;group\n" +
		";a;b;c;d;A;1-50\n" +
		"Which letter?;a;b;c;d;Z;1-50\n"

	summary, err := service.Load(context.Background(), "broken.csv", strings.NewReader(broken))
	require.ErrorIs(t, err, quiz.ErrNoQuestions)

	// The summary still carries the skip report for the error dialog.
	assert.Equal(t, "broken.csv", summary.Source)
	require.Len(t, summary.Skipped, 2)
	assert.Equal(t, 2, summary.Skipped[0].Line)
	assert.Equal(t, "empty question text", summary.Skipped[0].Reason)

	// The previously loaded set stays in place.
	assert.Len(t, repo.Questions(), 2)
	assert.Equal(t, "history.csv", repo.Info().SourceName)
}

func TestQuestionServiceLoadCancelledContext(t *testing.T) {
	repo := models.NewQuestionRepository()
	service := NewQuestionService(logger.NewNop(), repo, ';')

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Load(ctx, "history.csv", strings.NewReader(questionFile))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, repo.HasQuestions())
}
