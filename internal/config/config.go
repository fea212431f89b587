package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/viper"

	"quizdeck/internal/models"
)

// Timer modes supported by the quiz clock.
const (
	TimerModeCountUp   = "countup"
	TimerModeCountDown = "countdown"
)

// Config holds the runtime settings of the application. Every field has a
// default, so running without a config file works.
type Config struct {
	// Delimiter separates fields in question files. Must be one rune.
	Delimiter string `mapstructure:"delimiter"`

	// FeedbackDelay is how long an answer outcome stays on screen
	// before the quiz advances to the next question.
	FeedbackDelay time.Duration `mapstructure:"feedbackDelay"`

	// TimerMode selects the quiz clock: countup or countdown.
	TimerMode string `mapstructure:"timerMode"`

	// CountdownSeconds is the time limit when TimerMode is countdown.
	CountdownSeconds int `mapstructure:"countdownSeconds"`

	// LogLevel is the console log level (debug, info, warn, error).
	LogLevel string `mapstructure:"logLevel"`
}

// Load reads quizdeck.yaml, falling back to built-in defaults when no
// config file exists. An explicit configPath is searched first, then the
// working directory and ./config.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("delimiter", ";")
	v.SetDefault("feedbackDelay", "2s")
	v.SetDefault("timerMode", TimerModeCountUp)
	v.SetDefault("countdownSeconds", 300)
	v.SetDefault("logLevel", "info")

	v.SetConfigName("quizdeck")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is fine; defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects settings the rest of the application cannot honor.
func validate(cfg *Config) error {
	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return models.NewValidationError("delimiter", cfg.Delimiter, "must be exactly one character")
	}

	if cfg.FeedbackDelay <= 0 {
		return models.NewValidationError("feedbackDelay", cfg.FeedbackDelay, "must be positive")
	}

	switch cfg.TimerMode {
	case TimerModeCountUp, TimerModeCountDown:
	default:
		return models.NewValidationError("timerMode", cfg.TimerMode,
			fmt.Sprintf("must be %q or %q", TimerModeCountUp, TimerModeCountDown))
	}

	if cfg.TimerMode == TimerModeCountDown && cfg.CountdownSeconds <= 0 {
		return models.NewValidationError("countdownSeconds", cfg.CountdownSeconds,
			"must be positive in countdown mode")
	}

	return nil
}

// DelimiterRune returns the delimiter as a rune for the CSV reader.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// CountdownLimit returns the countdown duration, zero in count-up mode.
func (c *Config) CountdownLimit() time.Duration {
	if c.TimerMode != TimerModeCountDown {
		return 0
	}
	return time.Duration(c.CountdownSeconds) * time.Second
}
