package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	On     bool    `yaml:"on,omitempty"`
}

// script is the top-level YAML structure for a playback script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences host actions across frames so a demo can be played
// back unattended (for recordings or smoke runs). Attach it to a Game with
// SetScript.
//
// Actions:
//
//	wait       frames: N   hold for N updates
//	pause                  stop ticking the driver
//	resume                 tick the driver again
//	timeScale  value: S    change the simulated seconds per real second
//	debug      on: bool    toggle driver debug mode
//	screenshot label: L    save the next drawn frame as a PNG
//	quit                   end the game loop
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML playback script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("host: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("host: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "wait", "pause", "resume", "debug", "screenshot", "quit":
		case "timeScale":
			if st.Value < 0 {
				return nil, fmt.Errorf("host: parse script: step %d: negative time scale", i)
			}
		default:
			return nil, fmt.Errorf("host: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches a runner to the game. Its step runs at the start of each
// Update, before the driver ticks.
func (g *Game) SetScript(r *ScriptRunner) {
	g.script = r
}

// Done reports whether every step has executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. It returns ebiten.Termination when
// a quit step runs.
func (r *ScriptRunner) step(g *Game) error {
	if r.done {
		return nil
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++
	if st.Label != "" {
		g.driver.Logger().Info("script step", "label", st.Label, "action", st.Action)
	}

	var err error
	switch st.Action {
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "pause":
		g.paused = true
	case "resume":
		g.paused = false
	case "timeScale":
		g.cfg.TimeScale = st.Value
	case "debug":
		g.driver.SetDebugMode(st.On)
	case "screenshot":
		g.Screenshot(st.Label)
	case "quit":
		err = ebiten.Termination
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return err
}
