// Package utils holds small helpers shared by the CLI entrypoint.
package utils

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers log output while a full-screen UI owns the
// terminal. Flush replays it one line per Write so that line-oriented
// writers such as zerolog.ConsoleWriter see whole events.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the buffer.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Flush writes buffered lines to w and empties the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	scanner := bufio.NewScanner(&d.buf)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := append(scanner.Bytes(), '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}

	d.buf.Reset()
	return scanner.Err()
}
