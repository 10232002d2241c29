// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "weekgrid-debug.log"

// Options controls where log entries go.
type Options struct {
	Debug bool   // Log everything as JSON lines to Path
	Path  string // Debug log file, defaults to DebugLogPath
	Quiet bool   // Discard non-debug output (the TUI owns the terminal)
	Level string // Level used when Debug is off, e.g. "warn"
}

// Setup configures logrus and returns a function that flushes and closes
// any log file it opened.
func Setup(opts Options) (func(), error) {
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: "15:04:05.000"})

	if !opts.Debug {
		level := log.WarnLevel
		if opts.Level != "" {
			parsed, err := log.ParseLevel(opts.Level)
			if err != nil {
				return func() {}, fmt.Errorf("parsing log level: %w", err)
			}
			level = parsed
		}
		log.SetLevel(level)
		if opts.Quiet {
			log.SetOutput(io.Discard)
		} else {
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			log.SetOutput(os.Stderr)
		}
		return func() {}, nil
	}

	path := opts.Path
	if path == "" {
		path = DebugLogPath
	}
	f, err := os.Create(path)
	if err != nil {
		return func() {}, fmt.Errorf("creating debug log: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.WithFields(log.Fields{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	}).Debug("debug start")

	return func() {
		log.WithField("time", time.Now().Format(time.RFC3339)).Debug("debug end")
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
