// Package log provides leveled, categorized diagnostic logging to a
// side file. It is the sink for background-task failures that must not
// unwind the editing loop; the editor mirrors the important ones into
// the status bar. Disabled entirely unless switched on via the --debug
// flag or the HED_DEBUG environment variable.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Category groups related log messages.
type Category string

const (
	CatDoc       Category = "doc"       // document mutations and file I/O
	CatSave      Category = "save"      // background save worker
	CatHighlight Category = "highlight" // highlight refresh task
	CatSearch    Category = "search"    // search/replace workflows
	CatUI        Category = "ui"        // screen and event loop
)

var (
	mu      sync.Mutex
	sink    io.WriteCloser
	enabled bool
)

// Init opens the debug sink. Calling with debug false leaves logging
// off; HED_DEBUG=1 forces it on.
func Init(path string, debug bool) error {
	if !debug && os.Getenv("HED_DEBUG") == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	sink = f
	enabled = true
	return nil
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
		sink = nil
	}
	enabled = false
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

func logf(level Level, cat Category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || sink == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(sink, "%s %-5s [%s] %s\n", ts, level, cat, fmt.Sprintf(format, args...))
}

func Debug(cat Category, format string, args ...any) {
	logf(LevelDebug, cat, format, args...)
}

func Info(cat Category, format string, args ...any) {
	logf(LevelInfo, cat, format, args...)
}

func Warn(cat Category, format string, args ...any) {
	logf(LevelWarn, cat, format, args...)
}

func Error(cat Category, format string, args ...any) {
	logf(LevelError, cat, format, args...)
}
