package battlesearch

import (
	"io"
	"sync"
)

// lineWriter writes whole lines with a single Write call under a lock, so
// reports from different workers never interleave mid-line.
type lineWriter struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{w: w}
}

// WriteLine writes s followed by a newline.
func (lw *lineWriter) WriteLine(s string) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.buf = append(lw.buf[:0], s...)
	lw.buf = append(lw.buf, '\n')
	_, err := lw.w.Write(lw.buf)
	return err
}
