// Logger tests live in an external test package so they can link the
// summary/eventlog implementation without an import cycle.
package summary_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summarylog/summarylog/summary"
	_ "github.com/summarylog/summarylog/summary/eventlog"
	"github.com/summarylog/summarylog/summary/trigger"
)

// TestLogger_ScalarRoundTrip verifies the write-then-read contract.
//
// Given: a training logger with a fixed fake clock
// When: a loss scalar is added at step 10
// Then: reading the loss series yields exactly (10, 2.5, clock time) and an
// unrelated tag yields nothing
func TestLogger_ScalarRoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1700000000, 0))
	logger, err := summary.NewTrainingLogger(t.TempDir(), summary.WithClock(clock))
	require.NoError(t, err)
	defer logger.Close()

	require.NoError(t, logger.AddScalar("loss", 2.5, 10))

	points, err := logger.ReadScalars("loss")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, int64(10), points[0].Step)
	assert.Equal(t, float32(2.5), points[0].Value)
	assert.Equal(t, 1.7e9, points[0].WallTime)

	other, err := logger.ReadScalars("throughput")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestLogger_ReadScalarsSkipsHistograms(t *testing.T) {
	logger, err := summary.NewTrainingLogger(t.TempDir())
	require.NoError(t, err)
	defer logger.Close()

	require.NoError(t, logger.AddScalar("loss", 1.0, 1))
	require.NoError(t, logger.AddHistogram("loss", summary.NewDense([]float64{1, 2, 3}), 2))
	require.NoError(t, logger.AddScalar("loss", 0.5, 3))

	points, err := logger.ReadScalars("loss")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, int64(1), points[0].Step)
	assert.Equal(t, int64(3), points[1].Step)
}

func TestLogger_AppendOrderPreserved(t *testing.T) {
	logger, err := summary.NewValidationLogger(t.TempDir())
	require.NoError(t, err)
	defer logger.Close()

	for step := int64(1); step <= 20; step++ {
		require.NoError(t, logger.AddScalar("perplexity", float32(step), step))
	}
	points, err := logger.ReadScalars("perplexity")
	require.NoError(t, err)
	require.Len(t, points, 20)
	for i, p := range points {
		assert.Equal(t, int64(i+1), p.Step)
	}
}

func TestLogger_VariantDirectories(t *testing.T) {
	dir := t.TempDir()

	train, err := summary.NewTrainingLogger(dir)
	require.NoError(t, err)
	defer train.Close()
	assert.True(t, strings.HasSuffix(train.Dir(), "train"))

	val, err := summary.NewValidationLogger(dir)
	require.NoError(t, err)
	defer val.Close()
	assert.True(t, strings.HasSuffix(val.Dir(), "validation"))
}

func TestLogger_VariantPolicies(t *testing.T) {
	dir := t.TempDir()

	train, err := summary.NewTrainingLogger(dir)
	require.NoError(t, err)
	defer train.Close()
	assert.Error(t, train.Policy().SetTrigger("anythingGoes", trigger.Always()))

	val, err := summary.NewValidationLogger(dir)
	require.NoError(t, err)
	defer val.Close()
	assert.NoError(t, val.Policy().SetTrigger("anythingGoes", trigger.Always()))
}

func TestLogger_EmptyHistogramRejected(t *testing.T) {
	logger, err := summary.NewTrainingLogger(t.TempDir())
	require.NoError(t, err)
	defer logger.Close()

	err = logger.AddHistogram("parameters", summary.NewDense(nil), 1)
	require.ErrorIs(t, err, summary.ErrEmptySampleSet)

	// nothing was appended
	points, err := logger.ReadScalars("parameters")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestLogger_WriteAfterCloseFails(t *testing.T) {
	logger, err := summary.NewTrainingLogger(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	assert.Error(t, logger.AddScalar("loss", 1.0, 1))
}

// TestLogger_StepLoop exercises the intended orchestration: the step loop
// consults ActiveTriggers each step and adds what fires, with parameter
// histograms recorded explicitly on their own cadence.
func TestLogger_StepLoop(t *testing.T) {
	logger, err := summary.NewTrainingLogger(t.TempDir())
	require.NoError(t, err)
	defer logger.Close()

	policy := logger.Policy()
	require.NoError(t, policy.SetTrigger(summary.TagLoss, trigger.Every(2)))
	require.NoError(t, policy.SetTrigger(summary.TagParameters, trigger.Every(5)))

	weights := summary.NewDense([]float64{-0.1, 0.0, 0.1, 0.2})
	for step := int64(1); step <= 10; step++ {
		for tag, trig := range policy.ActiveTriggers() {
			if !trig.ShouldFire(step) {
				continue
			}
			require.NoError(t, logger.AddScalar(tag, float32(step), step))
		}
		if trig, ok := policy.GetTrigger(summary.TagParameters); ok && trig.ShouldFire(step) {
			require.NoError(t, logger.AddHistogram(summary.TagParameters, weights, step))
		}
	}

	// loss fired on steps 1,3,5,7,9
	losses, err := logger.ReadScalars(summary.TagLoss)
	require.NoError(t, err)
	require.Len(t, losses, 5)
	assert.Equal(t, int64(1), losses[0].Step)
	assert.Equal(t, int64(9), losses[4].Step)

	// learningRate kept its default every-step trigger
	lrs, err := logger.ReadScalars(summary.TagLearningRate)
	require.NoError(t, err)
	assert.Len(t, lrs, 10)

	// parameter histograms are invisible to the scalar read path
	params, err := logger.ReadScalars(summary.TagParameters)
	require.NoError(t, err)
	assert.Empty(t, params)
}
