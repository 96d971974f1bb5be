package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlways(t *testing.T) {
	trig := Always()
	assert.True(t, trig.ShouldFire(0))
	assert.True(t, trig.ShouldFire(1))
	assert.True(t, trig.ShouldFire(1))
	assert.True(t, trig.ShouldFire(1000000))
}

func TestNever(t *testing.T) {
	trig := Never()
	assert.False(t, trig.ShouldFire(0))
	assert.False(t, trig.ShouldFire(42))
}

func TestEvery_FiresOnFirstCall(t *testing.T) {
	trig := Every(10)
	assert.True(t, trig.ShouldFire(7))
}

func TestEvery_Cadence(t *testing.T) {
	trig := Every(3)
	assert.True(t, trig.ShouldFire(1))
	assert.False(t, trig.ShouldFire(2))
	assert.False(t, trig.ShouldFire(3))
	assert.True(t, trig.ShouldFire(4))
	assert.False(t, trig.ShouldFire(5))
	assert.True(t, trig.ShouldFire(7))
}

func TestEvery_SkippedStepsStillHonorInterval(t *testing.T) {
	// Steps need not be consecutive; the interval is measured from the last
	// step that fired.
	trig := Every(5)
	assert.True(t, trig.ShouldFire(10))
	assert.False(t, trig.ShouldFire(14))
	assert.True(t, trig.ShouldFire(20))
}

func TestEvery_NonPositiveTreatedAsEveryStep(t *testing.T) {
	trig := Every(0)
	assert.True(t, trig.ShouldFire(1))
	assert.True(t, trig.ShouldFire(2))
}
