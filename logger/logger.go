// Package logger - Leveled loggers shared by the loader, the codecs and the CLI.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// LogLevel is the verbosity of the package loggers.
type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

// The loggers are created once; Initialize only swaps their writers, so it may
// run while other goroutines are logging.
var (
	Error = log.New(io.Discard, "ERROR: ", flags)
	Warn  = log.New(io.Discard, "WARN:  ", flags)
	Info  = log.New(io.Discard, "INFO:  ", flags)
	Debug = log.New(io.Discard, "DEBUG: ", flags)
	Trace = log.New(io.Discard, "TRACE: ", flags)

	current atomic.Int32
)

// StringToLogLevel parses a level name. Unknown names fall back to INFO.
func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR
	case "warn", "warning":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

// Initialize routes errors to stderr and everything else up to logLevel to stdout.
func Initialize(logLevel LogLevel) {
	set(logLevel, os.Stderr, os.Stdout)
}

// InitializeWithWriter sends every enabled level to w.
//
// Arguments:
// - logLevel: The most verbose level that is written.
// - w: Destination for all enabled levels.
//
// @example
//
//	var buf bytes.Buffer
//	logger.InitializeWithWriter(logger.DEBUG, &buf)
func InitializeWithWriter(logLevel LogLevel, w io.Writer) {
	set(logLevel, w, w)
}

// IsLogLevel reports whether messages at level are currently written.
func IsLogLevel(level LogLevel) bool {
	return LogLevel(current.Load()) >= level
}

func set(logLevel LogLevel, errWriter io.Writer, outWriter io.Writer) {
	writerFor := func(level LogLevel, w io.Writer) io.Writer {
		if logLevel >= level {
			return w
		}
		return io.Discard
	}

	current.Store(int32(logLevel))
	Error.SetOutput(writerFor(ERROR, errWriter))
	Warn.SetOutput(writerFor(WARN, outWriter))
	Info.SetOutput(writerFor(INFO, outWriter))
	Debug.SetOutput(writerFor(DEBUG, outWriter))
	Trace.SetOutput(writerFor(TRACE, outWriter))
}
