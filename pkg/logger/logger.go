// Package logger provides structured JSON logging for the events of the sequence engine.
package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/lazyseq/pkg/zerokit"
	"go.llib.dev/testcase/clock"
)

// Logger writes one JSON object per line.
type Logger struct {
	// Out is where the entries are written. When nil, os.Stdout is used.
	Out io.Writer
	// Level is the minimum level that gets written to Out.
	// When empty, LevelInfo is used.
	Level Level

	outLock sync.Mutex
}

const (
	levelKey     = "level"
	messageKey   = "message"
	timestampKey = "timestamp"
)

func (l *Logger) Debug(msg string, ds ...LoggingDetail) {
	l.log(LevelDebug, msg, ds)
}

func (l *Logger) Error(msg string, ds ...LoggingDetail) {
	l.log(LevelError, msg, ds)
}

func (l *Logger) log(level Level, msg string, ds []LoggingDetail) {
	if !isLevelEnabled(l.Level, level) {
		return
	}
	entry := make(logEntry)
	for _, ld := range ds {
		ld.addTo(entry)
	}
	entry[levelKey] = level
	entry[messageKey] = msg
	entry[timestampKey] = clock.Now().Format(time.RFC3339)
	bs, err := json.Marshal(entry)
	if err != nil {
		return
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, _ = zerokit.Coalesce[io.Writer](l.Out, os.Stdout).Write(append(bs, '\n'))
}
