package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()
var logFile *os.File

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return fmt.Sprintf("[%s]", i)
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	return output
}

func setLevel() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if _, exists := os.LookupEnv("DEBUG"); exists {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// Init writes human readable logs to stderr so stdout stays clean for command output
func Init() {
	log = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger()
	setLevel()
}

// InitFileOnly initializes the logger to write only to a file while the dashboard owns the terminal
func InitFileOnly(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(dir, fmt.Sprintf("networth_%s.log", timestamp))

	f, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	logFile = f

	// JSON lines are easier to grep than console output
	log = zerolog.New(logFile).With().Timestamp().Logger()
	setLevel()

	Info("Logger initialized in file-only mode: %s", logPath)
	return logPath, nil
}

// Close closes the log file if it's open
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// SetOutput sets the output destination for the logger
func SetOutput(w io.Writer) {
	log = zerolog.New(consoleWriter(w)).With().Timestamp().Logger()
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	log.Debug().Msgf(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	log.Info().Msgf(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	log.Warn().Msgf(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	log.Error().Msgf(msg, args...)
}

// Fatal logs a fatal message and exits the program
func Fatal(msg string, args ...interface{}) {
	log.Fatal().Msgf(msg, args...)
}
