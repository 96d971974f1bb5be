// Package eventlog implements the append-only event log behind a summary
// Logger: one JSONL file per logger directory, one entry per line, written
// through a buffered appender and scanned back linearly. A single writer
// owns a path for its lifetime; concurrent writers to the same path produce
// undefined interleaving and are not supported.
package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/summarylog/summarylog/summary"
)

// LogFileName is the event file created inside each logger directory.
const LogFileName = "events.log"

// Entry is one persisted line of the event log.
type Entry struct {
	Step     int64          `json:"step"`
	WallTime float64        `json:"wall_time"` // seconds since the Unix epoch
	Summary  summary.Record `json:"summary"`
}

// Writer appends entries to a single event log file. Appends are flushed
// immediately; durability beyond that (fsync policy, retries) is the
// caller's concern.
type Writer struct {
	dir   string
	file  *os.File
	buf   *bufio.Writer
	clock clockwork.Clock
}

// NewWriter creates dir if needed and opens its event log for appending.
// A nil clock defaults to the real wall clock.
func NewWriter(dir string, clock clockwork.Clock) (*Writer, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, LogFileName)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening event log %s: %w", path, err)
	}
	return &Writer{
		dir:   dir,
		file:  file,
		buf:   bufio.NewWriter(file),
		clock: clock,
	}, nil
}

// Append stamps rec with the current wall-clock time and writes it as one
// line. The record is either fully written and flushed or the error is
// returned with nothing durable added after the previous append.
func (w *Writer) Append(rec summary.Record, step int64) error {
	entry := Entry{
		Step:     step,
		WallTime: float64(w.clock.Now().UnixNano()) / 1e9,
		Summary:  rec,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding entry for tag %q: %w", rec.Tag, err)
	}
	if _, err := w.buf.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("appending entry for tag %q: %w", rec.Tag, err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flushing event log %s: %w", w.dir, err)
	}
	logrus.Debugf("appended %s entry for tag %q at step %d", recordShape(rec), rec.Tag, step)
	return nil
}

// Dir returns the directory this writer appends into.
func (w *Writer) Dir() string {
	return w.dir
}

// Close flushes buffered output and releases the file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("flushing event log %s: %w", w.dir, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing event log %s: %w", w.dir, err)
	}
	return nil
}

func recordShape(rec summary.Record) string {
	if rec.IsScalar() {
		return "scalar"
	}
	return "histogram"
}
