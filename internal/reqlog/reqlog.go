// Package reqlog keeps the append-only request log served by the logs
// endpoint.
package reqlog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Sink serializes writers; lines are kept in write order.
type Sink struct {
	mu     sync.Mutex
	lines  []string
	mirror io.Writer
}

// NewSink returns an empty sink. When mirror is non-nil every appended line
// is also written to it.
func NewSink(mirror io.Writer) *Sink {
	return &Sink{mirror: mirror}
}

// FormatLine renders one request as METHOD\t\tPATH\t\tSTATUS\t\tNNms.
func FormatLine(method, path string, status int, elapsed time.Duration) string {
	return fmt.Sprintf("%s\t\t%s\t\t%d\t\t%02dms", method, path, status, elapsed.Milliseconds())
}

// Record formats and appends one request line.
func (s *Sink) Record(method, path string, status int, elapsed time.Duration) error {
	return s.Append(FormatLine(method, path, status, elapsed))
}

func (s *Sink) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	if s.mirror == nil {
		return nil
	}
	if _, err := io.WriteString(s.mirror, line+"\n"); err != nil {
		return fmt.Errorf("mirroring request log: %w", err)
	}
	return nil
}

func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// WriteTo writes every line followed by a newline.
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range s.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
