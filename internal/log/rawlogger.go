package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw report bytes. in is true for data received from a
// device, false for data sent to it.
type RawLogger interface {
	Log(in bool, data []byte)
}

type rawLogger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewRaw returns a RawLogger writing to w. A nil w discards everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

func (r *rawLogger) Log(in bool, data []byte) {
	if r.w == nil || len(data) == 0 {
		return
	}
	dir := "->dev"
	if in {
		dir = "<-dev"
	}
	line := fmt.Sprintf("%s %s %3d bytes: % x\n", r.now().Format("15:04:05.000"), dir, len(data), data)
	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}

