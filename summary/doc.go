// Package summary provides the metric-recording engine for summarylog.
//
// # Reading Guide
//
// Start with these three files to understand the recording pipeline:
//   - record.go: the Record union (scalar or histogram) persisted per log entry
//   - histogram.go: log-scale bucketing of a sample set into one Record
//   - logger.go: the Logger orchestration (add → build → append, read-back)
//
// # Architecture
//
// The summary package defines interfaces and the builders; implementations of
// the collaborators live in sub-packages:
//   - summary/eventlog/: append-only JSONL event log writer and reader
//   - summary/trigger/: step-cadence Trigger implementations
//
// A Logger owns a RecordingPolicy (per-tag triggers) and an eventlog.Writer.
// Scalar and histogram adds always append; the policy answers the step loop's
// question of which auto-tracked metrics to sample on a given step.
//
// # Key Interfaces
//
// The extension points are single-method or small interfaces:
//   - Tensor: read-only numeric sample set (min, max, sum, element traversal)
//   - Trigger: should a given step be recorded for a tag
package summary
