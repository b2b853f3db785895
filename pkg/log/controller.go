package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// OutputStderr keeps stderr as a second sink while logs are saved to a file.
var OutputStderr atomic.Bool

func init() { OutputStderr.Store(true) }

type Logcat struct {
	Level slog.Level
	Save  bool
}

type Controller struct {
	writer *FileWriter
	path   string
	wmu    sync.RWMutex
}

func NewController() *Controller {
	return &Controller{}
}

// Set applies config. With Save the default logger writes to path; the file
// is kept until Close or a later Set without Save.
func (l *Controller) Set(config Logcat, path string) {
	SetLevel(config.Level)

	if !config.Save {
		_ = l.Close()
		return
	}

	l.wmu.Lock()
	defer l.wmu.Unlock()

	if l.writer != nil && l.path == path {
		return
	}

	if l.writer != nil {
		_ = l.writer.Close()
	}

	l.path = path
	l.writer = NewLogWriter(path)
	var w io.Writer = l.writer
	if OutputStderr.Load() {
		w = io.MultiWriter(w, os.Stderr)
	}

	SetDefault(NewSLogger(w))
}

func (l *Controller) Path() string {
	l.wmu.RLock()
	defer l.wmu.RUnlock()
	return l.path
}

func (l *Controller) Close() error {
	SetDefault(NewSLogger(os.Stderr))

	l.wmu.Lock()
	w := l.writer
	l.writer = nil
	l.path = ""
	l.wmu.Unlock()

	if w != nil {
		return w.Close()
	}

	return nil
}
