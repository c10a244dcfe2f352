package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatchElapsed(t *testing.T) {
	sw := New().Start()
	time.Sleep(time.Millisecond)
	d := sw.Stop()
	assert.Greater(t, d, time.Duration(0))
	assert.Equal(t, d, sw.Elapsed())
}

func TestStopwatchStringUnits(t *testing.T) {
	sw := &Stopwatch{elapsed: 500 * time.Nanosecond}
	assert.Equal(t, "500ns", sw.String())

	sw = &Stopwatch{elapsed: 2500 * time.Microsecond}
	assert.Equal(t, "2.50ms", sw.String())

	sw = &Stopwatch{elapsed: 3 * time.Second}
	assert.Equal(t, "3.000s", sw.String())
}

func TestTimeRunsFunction(t *testing.T) {
	ran := false
	d := Time(func() { ran = true })
	assert.True(t, ran)
	assert.GreaterOrEqual(t, d, time.Duration(0))
}
