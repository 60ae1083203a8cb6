package logger

import (
	"bytes"
	"sync"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *Buffer {
	tb.Helper()
	var (
		ogOut   = Default.Out
		ogLevel = Default.Level
	)
	tb.Cleanup(func() {
		Default.Out = ogOut
		Default.Level = ogLevel
	})
	buf := &Buffer{}
	Default.Out = buf
	Default.Level = LevelDebug
	return buf
}

// Buffer is a concurrency safe bytes.Buffer for recording log output.
type Buffer struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

func (b *Buffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}
