package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Options configures the shared root logger
type Options struct {
	// Level is the minimum level ("debug", "info", "warn", "error").
	// ADMINSEARCH_LOG_LEVEL overrides it.
	Level string
	// File is the log file path. The TUI owns the terminal, so this is the
	// main sink in interactive use.
	File string
	// JSON switches to the logrus JSON formatter
	JSON bool
	// Stderr is "auto" (default), "always" or "never". In auto mode logs go
	// to stderr only when stderr is not an interactive terminal.
	Stderr string
}

var (
	root      = newRoot()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	logFile   *os.File
)

func newRoot() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l
}

// NewLogger returns the logger for a component. Entries share one root
// logger, so Configure applies to loggers created before it was called.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	entry := root.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Configure applies level, formatter and sinks to the root logger.
// The returned function closes the log file.
func Configure(opts Options) (func(), error) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelStr := "info"
	if env := os.Getenv("ADMINSEARCH_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if opts.Level != "" {
		levelStr = opts.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	root.SetLevel(level)

	if opts.JSON {
		root.SetFormatter(&logrus.JSONFormatter{})
	} else {
		root.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	var writers []io.Writer

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return func() {}, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return func() {}, fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		writers = append(writers, f)
	}

	switch opts.Stderr {
	case "always":
		writers = append(writers, os.Stderr)
	case "never":
	default:
		isDebug := level == logrus.DebugLevel || level == logrus.TraceLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		if !isInteractive || (isDebug && opts.File == "") {
			writers = append(writers, os.Stderr)
		}
	}

	switch len(writers) {
	case 0:
		root.SetOutput(io.Discard)
	case 1:
		root.SetOutput(writers[0])
	default:
		root.SetOutput(io.MultiWriter(writers...))
	}

	return closeFile, nil
}

// SetOutput redirects the root logger, mostly for tests
func SetOutput(w io.Writer) {
	root.SetOutput(w)
}

// SetLevel changes the root level
func SetLevel(level logrus.Level) {
	root.SetLevel(level)
}

func closeFile() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	root.SetOutput(io.Discard)
}
