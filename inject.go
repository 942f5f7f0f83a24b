package willowui

// Injected input replaces the input source for one frame per queued snapshot.
// The pointer is reported as a mouse cursor.

func (ui *UI) queueSnapshot(s InputSnapshot) {
	ui.injectQ = append(ui.injectQ, s)
	ui.lastInject = s
}

// InjectPress queues a frame with the left button pressed at (x, y).
func (ui *UI) InjectPress(x, y float64) {
	ui.queueSnapshot(InputSnapshot{Cursor: Vec2{x, y}, HasCursor: true, MousePressed: true})
}

// InjectMove queues a frame with the button held at (x, y). Use this between
// InjectPress and InjectRelease to drag.
func (ui *UI) InjectMove(x, y float64) {
	ui.queueSnapshot(InputSnapshot{Cursor: Vec2{x, y}, HasCursor: true, MousePressed: true})
}

// InjectHover queues a frame with the pointer at (x, y) and no button held.
func (ui *UI) InjectHover(x, y float64) {
	ui.queueSnapshot(InputSnapshot{Cursor: Vec2{x, y}, HasCursor: true})
}

// InjectRelease queues a frame with the button released at (x, y).
func (ui *UI) InjectRelease(x, y float64) {
	ui.queueSnapshot(InputSnapshot{Cursor: Vec2{x, y}, HasCursor: true})
}

// InjectClick queues a press followed by a release at (x, y). Consumes two
// frames.
func (ui *UI) InjectClick(x, y float64) {
	ui.InjectPress(x, y)
	ui.InjectRelease(x, y)
}

// InjectEscape queues a frame that repeats the last injected pointer state
// with Escape pressed.
func (ui *UI) InjectEscape() {
	s := ui.lastInject
	s.EscapePressed = true
	ui.queueSnapshot(s)
	ui.lastInject.EscapePressed = false
}

// InjectDrag queues a full drag: a press at from, moves linearly interpolated
// over frames-2 frames, and a release at to. The sequence consumes frames
// frames; the minimum is 2.
func (ui *UI) InjectDrag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	ui.InjectPress(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		ui.InjectMove(lerpFloat(from.X, to.X, t), lerpFloat(from.Y, to.Y, t))
	}
	ui.InjectRelease(to.X, to.Y)
}

// PendingInput returns the number of queued injected frames.
func (ui *UI) PendingInput() int {
	return len(ui.injectQ)
}
