// Package logging provides structured JSON logging for soli-go components.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// levelRank orders levels for threshold filtering.
var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Event represents a structured log event
type Event struct {
	Timestamp string                 `json:"ts"`
	Level     Level                  `json:"level"`
	Component string                 `json:"component"`
	Event     string                 `json:"event"`
	Source    string                 `json:"source,omitempty"`
	Duration  int64                  `json:"duration_ms,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

var (
	outMu     sync.Mutex
	out       io.Writer = os.Stderr
	threshold           = defaultThreshold()
)

func defaultThreshold() Level {
	if lvl := os.Getenv("SOLI_LOG_LEVEL"); lvl != "" {
		if _, ok := levelRank[Level(lvl)]; ok {
			return Level(lvl)
		}
	}
	return LevelWarn
}

// SetOutput redirects log output. Tests use this to capture events.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

// SetLevel changes the minimum level that will be emitted.
func SetLevel(level Level) {
	outMu.Lock()
	defer outMu.Unlock()
	if _, ok := levelRank[level]; ok {
		threshold = level
	}
}

// Logger provides structured logging
type Logger struct {
	component string
	source    string
}

// New creates a new logger for a component
func New(component string) *Logger {
	return &Logger{component: component}
}

// WithSource sets the ontology source context (e.g. "github/alea-institute/soli/1.0.0")
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		component: l.component,
		source:    source,
	}
}

// log emits a structured log event
func (l *Logger) log(level Level, event string, extra map[string]interface{}, err error) {
	outMu.Lock()
	defer outMu.Unlock()

	if levelRank[level] < levelRank[threshold] {
		return
	}

	e := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: l.component,
		Event:     event,
		Source:    l.source,
		Extra:     extra,
	}

	if err != nil {
		e.Error = err.Error()
	}

	data, _ := json.Marshal(e)
	fmt.Fprintln(out, string(data))
}

// Debug logs a debug event
func (l *Logger) Debug(event string, extra map[string]interface{}) {
	l.log(LevelDebug, event, extra, nil)
}

// Info logs an info event
func (l *Logger) Info(event string, extra map[string]interface{}) {
	l.log(LevelInfo, event, extra, nil)
}

// Warn logs a warning event
func (l *Logger) Warn(event string, extra map[string]interface{}, err error) {
	l.log(LevelWarn, event, extra, err)
}

// Error logs an error event
func (l *Logger) Error(event string, extra map[string]interface{}, err error) {
	l.log(LevelError, event, extra, err)
}

// TimedEvent logs an event with duration
func (l *Logger) TimedEvent(event string, start time.Time, extra map[string]interface{}) {
	outMu.Lock()
	defer outMu.Unlock()

	if levelRank[LevelInfo] < levelRank[threshold] {
		return
	}

	e := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     LevelInfo,
		Component: l.component,
		Event:     event,
		Source:    l.source,
		Duration:  time.Since(start).Milliseconds(),
		Extra:     extra,
	}

	data, _ := json.Marshal(e)
	fmt.Fprintln(out, string(data))
}
