// internal/logger/logger.go
// Package logger builds the leveled logger used by the gostats commands.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

const (
	// DefaultLevel is used when no level, or an unknown one, is configured.
	DefaultLevel = "warning"

	defaultLogFormat = "%{time:2006/01/02 15:04:05} %{color}%{level:-8s} %{shortpkg}/%{shortfunc}%{color:reset}: %{message}"
)

// Levels lists the accepted level names, most severe first.
var Levels = []string{"critical", "error", "warning", "notice", "info", "debug"}

// New returns a logger for module writing to stderr at the given level.
func New(level string, module string) *logging.Logger {
	return NewWithWriter(os.Stderr, level, module)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string, module string) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)

	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvl, err := logging.LogLevel(strings.TrimSpace(level))
	if err != nil {
		lvl, _ = logging.LogLevel(DefaultLevel)
	}
	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	logging.SetBackend(lvlBackend)
	return logging.MustGetLogger(module)
}
