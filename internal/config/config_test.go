package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizdeck/internal/models"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "quizdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, 2*time.Second, cfg.FeedbackDelay)
	assert.Equal(t, TimerModeCountUp, cfg.TimerMode)
	assert.Equal(t, 300, cfg.CountdownSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.CountdownLimit())
}

func TestLoadFromFile(t *testing.T) {
	dir := writeConfigFile(t, `
delimiter: ","
feedbackDelay: 1500ms
timerMode: countdown
countdownSeconds: 120
logLevel: debug
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, 1500*time.Millisecond, cfg.FeedbackDelay)
	assert.Equal(t, TimerModeCountDown, cfg.TimerMode)
	assert.Equal(t, 2*time.Minute, cfg.CountdownLimit())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsMultiCharDelimiter(t *testing.T) {
	dir := writeConfigFile(t, `delimiter: ";;"`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delimiter")
}

func TestLoadReturnsTypedValidationError(t *testing.T) {
	dir := writeConfigFile(t, `delimiter: ";;"`)

	_, err := Load(dir)
	require.Error(t, err)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "delimiter", validationErr.Setting)
	assert.Equal(t, ";;", validationErr.Value)
	assert.Equal(t, "must be exactly one character", validationErr.Reason)
}

func TestLoadRejectsUnknownTimerMode(t *testing.T) {
	dir := writeConfigFile(t, `timerMode: stopwatch`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timerMode")
}

func TestLoadRejectsNonPositiveCountdown(t *testing.T) {
	dir := writeConfigFile(t, `
timerMode: countdown
countdownSeconds: 0
`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "countdownSeconds")
}

func TestLoadRejectsNonPositiveFeedbackDelay(t *testing.T) {
	dir := writeConfigFile(t, `feedbackDelay: 0s`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feedbackDelay")
}
