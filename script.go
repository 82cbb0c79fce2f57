package flick

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Offset float64 `json:"offset,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input events across frames for automated
// runs and demos. Attach to a Widget via SetScriptRunner.
//
// Supported actions: "press", "move", "release" (x, y), "drag" (fromX, fromY,
// toX, toY, frames), "scroll" (offset), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script and returns a ScriptRunner ready to
// be attached to a Widget.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the widget. The runner's step
// method runs at the start of every Update.
func (w *Widget) SetScriptRunner(runner *ScriptRunner) {
	w.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Widget.Update.
func (r *ScriptRunner) step(w *Widget) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		w.InjectPress(st.X, st.Y)
	case "move":
		w.InjectMove(st.X, st.Y)
	case "release":
		w.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		w.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "scroll":
		w.InjectScroll(st.Offset)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}
