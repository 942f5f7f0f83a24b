package willowui

import "testing"

const testDT = 0.25

// fakeCursor records cursor requests.
type fakeCursor struct {
	grabs, releases int
	shapes          []CursorShape
}

func (c *fakeCursor) Grab()                      { c.grabs++ }
func (c *fakeCursor) Release()                   { c.releases++ }
func (c *fakeCursor) SetShape(shape CursorShape) { c.shapes = append(c.shapes, shape) }

// queuedInput returns one snapshot per Poll, then empty snapshots.
type queuedInput struct {
	frames []InputSnapshot
}

func (q *queuedInput) Poll() InputSnapshot {
	if len(q.frames) == 0 {
		return InputSnapshot{}
	}
	s := q.frames[0]
	q.frames = q.frames[1:]
	return s
}

// eventLog collects emitted events.
type eventLog struct {
	events []Event
}

func (l *eventLog) EmitEvent(ev Event) { l.events = append(l.events, ev) }

func (l *eventLog) count(t EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) last(t EventType) (Event, bool) {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Type == t {
			return l.events[i], true
		}
	}
	return Event{}, false
}

// newTestUI returns a UI with no input source and a recording cursor.
func newTestUI(t *testing.T) (*UI, *fakeCursor) {
	t.Helper()
	ui := NewUI(DefaultConfig())
	ui.SetInputSource(nil)
	cur := &fakeCursor{}
	ui.SetCursorControl(cur)
	return ui, cur
}

// place writes a measured geometry, as the layout engine would.
func place(e *Element, x, y, w, h float64, stack uint32) {
	e.SetGeometry(Geometry{Position: Vec2{x, y}, Size: Vec2{w, h}, StackIndex: stack})
}

// newBox creates an interaction-tracking element under parent at the given
// rectangle.
func newBox(ui *UI, parent *Element, name string, x, y, w, h float64, stack uint32) *Element {
	e := ui.NewElement(name)
	e.TrackInteraction()
	parent.AddChild(e)
	place(e, x, y, w, h, stack)
	return e
}

func hoverStep(ui *UI, x, y float64) {
	ui.InjectHover(x, y)
	ui.Step(testDT)
}

func pressStep(ui *UI, x, y float64) {
	ui.InjectPress(x, y)
	ui.Step(testDT)
}

func moveStep(ui *UI, x, y float64) {
	ui.InjectMove(x, y)
	ui.Step(testDT)
}

func releaseStep(ui *UI, x, y float64) {
	ui.InjectRelease(x, y)
	ui.Step(testDT)
}

// runQueued steps until the injected input is drained.
func runQueued(ui *UI) {
	for ui.PendingInput() > 0 {
		ui.Step(testDT)
	}
}
