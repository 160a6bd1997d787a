package smoketest

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/legends/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0o600
)

// SetupLogging sends log output to stdout and to logFile. An empty logFile
// gets a timestamped name. The returned closer releases the file.
func SetupLogging(logFile string) (io.Closer, error) {
	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "legends_check_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	if err := logger.Init(logger.WithWriter(io.MultiWriter(os.Stdout, file))); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return file, nil
}

// ShowHelp prints usage information for the smoke checker.
func ShowHelp() {
	os.Stdout.WriteString(`Legends Smoke Checker
=====================

Exercises a running legends server concurrently and verifies every
version, unit and team-resolution property of the roster.

Usage:
  go run ./cmd/legends-check [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -rounds int
        Times every check is repeated (default 10)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -log string
        Log file for run output (default: legends_check_TIMESTAMP.log)
  -verbose
        Log every passing check
  -help
        Show this help message

Examples:
  go run ./cmd/legends-check -url http://localhost:8080 -rounds 100 -workers 16
`)
}
