package host

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/motion"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: wait
    frames: 3
  - action: timeScale
    value: 0.5
    label: slow-mo
  - action: pause
  - action: quit
`)
	runner, err := LoadScript(data)
	require.NoError(t, err)
	require.Len(t, runner.steps, 4)
	assert.Equal(t, 3, runner.steps[0].Frames)
	assert.Equal(t, 0.5, runner.steps[1].Value)
	assert.Equal(t, "slow-mo", runner.steps[1].Label)
}

func TestLoadScriptInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"yaml":       "steps: [",
		"empty":      "steps: []",
		"unknown":    "steps: [{action: explode}]",
		"time scale": "steps: [{action: timeScale, value: -1}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScript([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestScriptDrivesGame(t *testing.T) {
	d := newDriver()
	var got float64
	motion.NewCustom(d, 10, nil, func(v float64) { got = v * 10 }).Play(nil, nil)

	runner, err := LoadScript([]byte(`
steps:
  - action: wait
    frames: 2
  - action: pause
  - action: wait
    frames: 2
  - action: resume
  - action: timeScale
    value: 2
  - action: quit
`))
	require.NoError(t, err)
	g := NewGame(d, Config{TPS: 1}, Options{Script: runner})

	// wait 2: two ticks of 1s.
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.InDelta(t, 2, got, 1e-9)

	// pause, then wait 2 while paused.
	require.NoError(t, g.Update())
	assert.True(t, g.Paused())
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.InDelta(t, 2, got, 1e-9)

	// resume ticks at 1s, timeScale ticks at 2s.
	require.NoError(t, g.Update())
	assert.InDelta(t, 3, got, 1e-9)
	require.NoError(t, g.Update())
	assert.InDelta(t, 5, got, 1e-9)
	assert.False(t, runner.Done())

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.True(t, runner.Done())
}
