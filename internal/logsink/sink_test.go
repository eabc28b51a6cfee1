package logsink

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixed(s *Sink) {
	s.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
}

func TestVerboseEchoesToStderr(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(Options{Stderr: &buf, Verbose: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	fixed(s)
	s.Logf("%s %s", "OPEN", "a")
	if got := buf.String(); got != "03:04:05 OPEN a\n" {
		t.Fatalf("got %q", got)
	}
}

func TestQuietDoesNotEcho(t *testing.T) {
	var buf bytes.Buffer
	s, _ := New(Options{Stderr: &buf})
	s.Logf("hello")
	if buf.Len() != 0 { t.Fatalf("quiet sink wrote %q", buf.String()) }
}

func TestFileAndChannel(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "tg.log")
	s, err := New(Options{File: p, Buffer: 1, Name: "tabgroups test"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	fixed(s)
	s.Logf("first")
	s.Logf("second") // channel full: dropped there, still written to the file

	if line := <-s.Lines(); line != "03:04:05 first" { t.Fatalf("channel got %q", line) }
	if s.Dropped() != 1 { t.Fatalf("dropped = %d", s.Dropped()) }
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "=== tabgroups test started at ") { t.Fatalf("missing banner: %q", out) }
	if !strings.Contains(out, "03:04:05 first\n03:04:05 second\n") { t.Fatalf("missing lines: %q", out) }
	if !strings.HasSuffix(out, "=== tabgroups test stopped at 2024-01-02T03:04:05Z ===\n") { t.Fatalf("missing close banner: %q", out) }
}
