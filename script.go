package willowui

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true,
	"click": true, "drag": true, "escape": true, "wait": true,
}

// ScriptRunner feeds scripted input to a UI frame by frame. Attach it with
// UI.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [
//		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 40, "frames": 8},
//		{"action": "wait", "frames": 2},
//		{"action": "click", "x": 50, "y": 50}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse input script: %w: %w", ErrInvalidScript, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: %w: no steps", ErrInvalidScript)
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: %w: step %d: unknown action %q", ErrInvalidScript, i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a script runner. It advances once per update,
// before input is polled.
func (ui *UI) SetScriptRunner(r *ScriptRunner) {
	ui.runner = r
}

// Done reports whether every step has run and its input was consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func (r *ScriptRunner) step(ui *UI) {
	if r.done {
		return
	}
	// Injected frames drain before the next step.
	if len(ui.injectQ) > 0 {
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
		ui.InjectPress(st.X, st.Y)
	case "move":
		ui.InjectMove(st.X, st.Y)
	case "hover":
		ui.InjectHover(st.X, st.Y)
	case "release":
		ui.InjectRelease(st.X, st.Y)
	case "click":
		ui.InjectClick(st.X, st.Y)
	case "drag":
		ui.InjectDrag(Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "escape":
		ui.InjectEscape()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(ui.injectQ) == 0 {
		r.done = true
	}
}
