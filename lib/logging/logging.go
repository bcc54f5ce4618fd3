// Package logging builds the lecho logger shared by the HTTP server, the
// service layer and the seed tool.
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger writes structured logs to stdout, or to a run-stamped file when
// logFilePath is set. On file errors it falls back to stdout so a bad
// LOG_FILE_PATH never takes the service down.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout,
		lecho.WithLevel(log.DEBUG),
		lecho.WithTimestamp(),
	)
	if logFilePath == "" {
		return logger
	}

	file, err := openLogFile(logFilePath)
	if err != nil {
		logger.Errorf("failed to create log file: %v", err)
		return logger
	}
	logger.SetOutput(file)
	return logger
}

// openLogFile stamps the configured path with the start time so a restart
// never clobbers the previous run's log.
func openLogFile(path string) (*os.File, error) {
	stamp := time.Now().Format("2006-01-02 15:04:05")
	if ext := filepath.Ext(path); ext != "" {
		path = strings.TrimSuffix(path, ext) + stamp + ext
	} else {
		path = path + stamp
	}
	return os.Create(path)
}
