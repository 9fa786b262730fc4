package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/VENUCODE/paint-ai/internal/domain"
)

type Logger struct {
	SlogLogger *slog.Logger
}

// NewLogger logs JSON to loggingFilePath, or to stderr when the path is empty.
func NewLogger(loggingFilePath string, level slog.Level) (*Logger, error) {
	if loggingFilePath == "" {
		return New(os.Stderr, level), nil
	}

	file, err := os.OpenFile(loggingFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, level), nil
}

func New(w io.Writer, level slog.Level) *Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return &Logger{SlogLogger: logger}
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

func (l Logger) Debug(msg string, args ...interface{}) {
	l.SlogLogger.Debug(msg, args...)
}

func (l Logger) Info(msg string, args ...interface{}) {
	l.SlogLogger.Info(msg, args...)

}

func (l Logger) Warn(msg string, args ...interface{}) {
	l.SlogLogger.Warn(msg, args...)
}

func (l Logger) Error(msg string, args ...interface{}) {
	l.SlogLogger.Error(msg, args...)

}

func (l Logger) With(args ...any) domain.LoggingRepository {
	return &Logger{
		SlogLogger: l.SlogLogger.With(args...),
	}
}
