package logsink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Options controls where log lines go.
type Options struct {
	Stderr  io.Writer // echo target when Verbose; nil means os.Stderr
	Verbose bool
	File    string // append log lines here when set
	Buffer  int    // capacity of the Lines channel; 0 disables it
	Name    string // written in the file banner
}

// Sink fans log lines out to stderr, a log file and a channel. Its Logf
// method has the signature the store and the CLI take as a logger.
type Sink struct {
	mu      sync.Mutex
	out     io.Writer
	file    *os.File
	ch      chan string
	dropped int
	name    string
	now     func() time.Time
}

func New(opts Options) (*Sink, error) {
	if opts.Name == "" {
		opts.Name = "tabgroups"
	}
	s := &Sink{name: opts.Name, now: time.Now}
	if opts.Verbose {
		s.out = opts.Stderr
		if s.out == nil {
			s.out = os.Stderr
		}
	}
	if opts.Buffer > 0 {
		s.ch = make(chan string, opts.Buffer)
	}
	if opts.File != "" {
		f, err := openLogFile(opts.File, opts.Name)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.file = f
	}
	return s, nil
}

func openLogFile(path, name string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== %s started at %s ===\n", name, time.Now().Format(time.RFC3339))
	return f, nil
}

// Logf formats one line and hands it to every target. The channel never
// blocks the caller: lines are dropped when nobody is reading.
func (s *Sink) Logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	stamped := s.now().Format("15:04:05") + " " + line

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.out != nil {
		_, _ = fmt.Fprintln(s.out, stamped)
	}
	if s.file != nil {
		_, _ = fmt.Fprintln(s.file, stamped)
	}
	if s.ch != nil {
		select {
		case s.ch <- stamped:
		default:
			s.dropped++
		}
	}
}

// Lines streams log lines for the shell's action log. Nil if Buffer was 0.
func (s *Sink) Lines() <-chan string {
	if s.ch == nil {
		return nil
	}
	return s.ch
}

// Dropped reports how many lines did not fit in the channel.
func (s *Sink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ch != nil {
		close(s.ch)
		s.ch = nil
	}
	if s.file == nil {
		return nil
	}
	_, _ = fmt.Fprintf(s.file, "=== %s stopped at %s ===\n", s.name, s.now().Format(time.RFC3339))
	err := s.file.Close()
	s.file = nil
	return err
}
