package summary

import (
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// LogWriter is the append side of the persisted event log. Implementations
// stamp wall-clock time and serialize; see summary/eventlog.
type LogWriter interface {
	Append(rec Record, step int64) error
	Dir() string
	Close() error
}

// ScalarPoint is one decoded scalar entry of a series.
type ScalarPoint struct {
	Step     int64
	Value    float32
	WallTime float64 // seconds since the Unix epoch
}

// Factory hooks set by summary/eventlog's init. The indirection keeps this
// package free of a dependency on its own sub-package.
var (
	NewLogWriterFunc func(dir string, clock clockwork.Clock) (LogWriter, error)
	ScanScalarsFunc  func(dir string, tag string) ([]ScalarPoint, error)
)

// Logger records scalar and histogram metrics for one computation into an
// append-only event log. Two variants exist: the training logger carries the
// tag-restricted default policy, the validation logger an unrestricted empty
// one. A logger owns exclusive append access to its directory; calls are
// expected from a single step loop and are not internally serialized.
type Logger struct {
	kind   string
	dir    string
	policy *RecordingPolicy
	writer LogWriter
}

// LoggerOption configures a Logger at construction.
type LoggerOption func(*loggerConfig)

type loggerConfig struct {
	clock clockwork.Clock
}

// WithClock substitutes the wall clock used to stamp entries. Tests pass a
// fake clock for deterministic timestamps.
func WithClock(clock clockwork.Clock) LoggerOption {
	return func(c *loggerConfig) { c.clock = clock }
}

// NewTrainingLogger opens a training logger writing under dir/train with the
// default training policy.
func NewTrainingLogger(dir string, opts ...LoggerOption) (*Logger, error) {
	return newLogger("train", dir, NewTrainingPolicy(), opts)
}

// NewValidationLogger opens a validation logger writing under dir/validation
// with an unrestricted empty policy.
func NewValidationLogger(dir string, opts ...LoggerOption) (*Logger, error) {
	return newLogger("validation", dir, NewValidationPolicy(), opts)
}

func newLogger(kind string, dir string, policy *RecordingPolicy, opts []LoggerOption) (*Logger, error) {
	if NewLogWriterFunc == nil {
		return nil, fmt.Errorf("no event log implementation linked; import summary/eventlog")
	}
	cfg := loggerConfig{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&cfg)
	}
	logDir := filepath.Join(dir, kind)
	writer, err := NewLogWriterFunc(logDir, cfg.clock)
	if err != nil {
		return nil, fmt.Errorf("opening %s logger: %w", kind, err)
	}
	logrus.Debugf("opened %s logger at %s", kind, logDir)
	return &Logger{kind: kind, dir: logDir, policy: policy, writer: writer}, nil
}

// Policy returns the logger's recording policy. The step loop consults
// Policy().ActiveTriggers() to decide which auto-tracked metrics to sample;
// the Add calls themselves never suppress.
func (l *Logger) Policy() *RecordingPolicy {
	return l.policy
}

// Dir returns the directory holding this logger's event log.
func (l *Logger) Dir() string {
	return l.dir
}

// AddScalar builds a scalar record for (tag, value) and appends it at step.
// Writer failures propagate unchanged.
func (l *Logger) AddScalar(tag string, value float32, step int64) error {
	return l.writer.Append(NewScalarRecord(tag, value), step)
}

// AddHistogram bins values into the shared bucket scheme and appends the
// histogram record at step. An empty tensor fails with ErrEmptySampleSet.
func (l *Logger) AddHistogram(tag string, values Tensor, step int64) error {
	rec, err := NewHistogramRecord(tag, values)
	if err != nil {
		return err
	}
	return l.writer.Append(rec, step)
}

// ReadScalars scans the persisted log and returns the scalar series for tag
// in append order. Histogram entries under the same tag are skipped. The
// result order trusts the log; no re-sort by step happens here.
func (l *Logger) ReadScalars(tag string) ([]ScalarPoint, error) {
	if ScanScalarsFunc == nil {
		return nil, fmt.Errorf("no event log implementation linked; import summary/eventlog")
	}
	return ScanScalarsFunc(l.dir, tag)
}

// Close releases the underlying writer. The logger has no flush semantics of
// its own.
func (l *Logger) Close() error {
	return l.writer.Close()
}
