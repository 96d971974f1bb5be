package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/summarylog/summarylog/summary"
)

// A scan line can hold a histogram touching every bucket, which is larger
// than bufio.Scanner's default 64KiB token limit.
const maxLineBytes = 1 << 20

// HistogramPoint is one decoded histogram entry of a series.
type HistogramPoint struct {
	Step      int64
	Histogram summary.Histogram
	WallTime  float64
}

// ScanScalars reads the event log under dir from the beginning and returns
// the scalar entries matching tag in append order. Histogram-shaped entries
// for the same tag are skipped. Repeated scans of the same path are
// independent.
func ScanScalars(dir string, tag string) ([]summary.ScalarPoint, error) {
	var points []summary.ScalarPoint
	err := scan(dir, func(e Entry) {
		if e.Summary.Tag != tag {
			return
		}
		value, ok := e.Summary.ScalarValue()
		if !ok {
			logrus.Debugf("skipping non-scalar entry for tag %q at step %d", tag, e.Step)
			return
		}
		points = append(points, summary.ScalarPoint{
			Step:     e.Step,
			Value:    value,
			WallTime: e.WallTime,
		})
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// ScanHistograms reads the event log under dir and returns the histogram
// entries matching tag in append order, skipping scalar-shaped entries.
func ScanHistograms(dir string, tag string) ([]HistogramPoint, error) {
	var points []HistogramPoint
	err := scan(dir, func(e Entry) {
		if e.Summary.Tag != tag || e.Summary.Histogram == nil {
			return
		}
		points = append(points, HistogramPoint{
			Step:      e.Step,
			Histogram: *e.Summary.Histogram,
			WallTime:  e.WallTime,
		})
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// scan streams every entry of dir's event log through fn in file order.
func scan(dir string, fn func(Entry)) error {
	path := filepath.Join(dir, LogFileName)
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening event log %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return fmt.Errorf("decoding event log %s line %d: %w", path, line, err)
		}
		fn(entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading event log %s: %w", path, err)
	}
	return nil
}
