package summary

import (
	"errors"
	"fmt"

	"github.com/summarylog/summarylog/summary/trigger"
)

// Trigger decides whether a given step should be recorded for a tag.
// Implementations may keep history (e.g. the last step they fired on); see
// the summary/trigger sub-package.
type Trigger interface {
	ShouldFire(step int64) bool
}

// Well-known tags tracked by the training policy.
const (
	TagLearningRate = "learningRate"
	TagLoss         = "loss"
	TagThroughput   = "throughput"
	TagParameters   = "parameters"
)

// ErrInvalidTag is returned by SetTrigger for a tag outside the allowed set
// of a tag-restricted policy.
var ErrInvalidTag = errors.New("invalid tag")

// RecordingPolicy maps metric tags to triggers. It answers, independently per
// tag, whether the current step should be persisted; recording full parameter
// tensors every step is prohibitively expensive, so the "parameters" tag has
// no default trigger and must be enabled explicitly.
//
// A policy belongs to one Logger and is not safe for concurrent mutation;
// callers drive it from the step loop like the logger itself.
type RecordingPolicy struct {
	allowed  map[string]struct{} // nil means unrestricted
	triggers map[string]Trigger
}

// NewTrainingPolicy returns the tag-restricted policy used by training
// loggers: only the well-known tags are accepted, and learningRate, loss and
// throughput default to firing on every step.
func NewTrainingPolicy() *RecordingPolicy {
	return &RecordingPolicy{
		allowed: map[string]struct{}{
			TagLearningRate: {},
			TagLoss:         {},
			TagThroughput:   {},
			TagParameters:   {},
		},
		triggers: map[string]Trigger{
			TagLearningRate: trigger.Always(),
			TagLoss:         trigger.Always(),
			TagThroughput:   trigger.Always(),
		},
	}
}

// NewValidationPolicy returns an unrestricted policy with no default
// triggers; validation tags are determined by whichever validation metrics
// are configured.
func NewValidationPolicy() *RecordingPolicy {
	return &RecordingPolicy{triggers: map[string]Trigger{}}
}

// SetTrigger upserts the trigger for tag. On a tag-restricted policy a tag
// outside the allowed set fails with ErrInvalidTag.
func (p *RecordingPolicy) SetTrigger(tag string, t Trigger) error {
	if p.allowed != nil {
		if _, ok := p.allowed[tag]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
	}
	p.triggers[tag] = t
	return nil
}

// GetTrigger returns the trigger for tag, or false if none was ever set.
func (p *RecordingPolicy) GetTrigger(tag string) (Trigger, bool) {
	t, ok := p.triggers[tag]
	return t, ok
}

// ActiveTriggers returns a copy of the tag→trigger mapping with "parameters"
// excluded. The step loop iterates this to decide which auto-tracked metrics
// to sample; parameter recording stays explicit so a heavy weight/gradient
// capture never happens by accident.
func (p *RecordingPolicy) ActiveTriggers() map[string]Trigger {
	active := make(map[string]Trigger, len(p.triggers))
	for tag, t := range p.triggers {
		if tag == TagParameters {
			continue
		}
		active[tag] = t
	}
	return active
}
