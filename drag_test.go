package willowui

import "testing"

func newDraggableBox(ui *UI) *Element {
	e := newBox(ui, ui.Root(), "draggable", 0, 0, 100, 100, 1)
	e.MakeDraggable()
	return e
}

func TestDragLifecycle(t *testing.T) {
	ui, cur := newTestUI(t)
	log := &eventLog{}
	ui.SetEventSink(log)
	e := newDraggableBox(ui)
	d := e.Drag

	pressStep(ui, 10, 10)
	if d.State != DragMaybeDragged {
		t.Fatalf("after press: State = %v, want maybe-dragged", d.State)
	}
	if !d.Origin.Valid || d.Origin.Value != (Vec2{10, 10}) {
		t.Errorf("Origin = %+v, want (10, 10)", d.Origin)
	}

	moveStep(ui, 20, 10)
	if d.State != DragStart {
		t.Fatalf("after first move: State = %v, want drag-start", d.State)
	}
	if d.Diff != (Vec2{10, 0}) {
		t.Errorf("Diff = %v, want (10, 0)", d.Diff)
	}
	if cur.grabs != 1 {
		t.Errorf("grabs = %d, want 1", cur.grabs)
	}

	moveStep(ui, 25, 15)
	if d.State != Dragging {
		t.Fatalf("after second move: State = %v, want dragging", d.State)
	}
	if d.Diff != (Vec2{5, 5}) {
		t.Errorf("Diff = %v, want (5, 5)", d.Diff)
	}

	moveStep(ui, 25, 15)
	if d.State != Dragging || !d.Diff.IsZero() {
		t.Errorf("still pointer: State = %v, Diff = %v; want dragging, zero", d.State, d.Diff)
	}
	if d.Position.Value != (Vec2{25, 15}) {
		t.Errorf("Position = %v, want (25, 15)", d.Position.Value)
	}

	releaseStep(ui, 25, 15)
	if d.State != DragEnd {
		t.Fatalf("after release: State = %v, want drag-end", d.State)
	}
	if cur.releases != 1 {
		t.Errorf("releases = %d, want 1", cur.releases)
	}

	hoverStep(ui, 25, 15)
	if d.State != DragInactive {
		t.Errorf("frame after end: State = %v, want inactive", d.State)
	}
	if d.Origin.Valid || d.Position.Valid {
		t.Error("Origin and Position not cleared after reset")
	}

	if n := log.count(EventDragStarted); n != 1 {
		t.Errorf("drag-started events = %d, want 1", n)
	}
	if n := log.count(EventDragEnded); n != 1 {
		t.Errorf("drag-ended events = %d, want 1", n)
	}
}

func TestDragStartLastsOneFrame(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newDraggableBox(ui)

	ui.InjectDrag(Vec2{10, 10}, Vec2{90, 90}, 10)
	starts := 0
	var states []DragState
	for ui.PendingInput() > 0 {
		ui.Step(testDT)
		states = append(states, e.Drag.State)
		if e.Drag.State == DragStart {
			starts++
		}
	}
	if starts != 1 {
		t.Fatalf("drag-start seen in %d frames, want 1: %v", starts, states)
	}
	for i, s := range states {
		if s == DragStart && (i+1 >= len(states) || states[i+1] != Dragging) {
			t.Errorf("drag-start at frame %d not followed by dragging: %v", i, states)
		}
	}
}

func TestDragClickWithoutMove(t *testing.T) {
	ui, cur := newTestUI(t)
	e := newDraggableBox(ui)

	ui.InjectClick(10, 10)
	runQueued(ui)
	if e.Drag.State != DragInactive {
		t.Errorf("State = %v, want inactive", e.Drag.State)
	}
	if cur.grabs != 0 {
		t.Errorf("grabs = %d, want 0", cur.grabs)
	}
}

func TestDragEscapeCancels(t *testing.T) {
	ui, _ := newTestUI(t)
	log := &eventLog{}
	ui.SetEventSink(log)
	e := newDraggableBox(ui)
	d := e.Drag

	pressStep(ui, 10, 10)
	moveStep(ui, 20, 10)
	moveStep(ui, 30, 10)
	ui.InjectEscape()
	ui.Step(testDT)
	if d.State != DragCanceled {
		t.Fatalf("State = %v, want drag-canceled", d.State)
	}
	if d.Position.Valid {
		t.Error("Position still set after cancel")
	}

	moveStep(ui, 40, 10)
	if d.State != DragInactive {
		t.Fatalf("frame after cancel: State = %v, want inactive", d.State)
	}
	releaseStep(ui, 40, 10)
	if d.State != DragInactive {
		t.Errorf("after release: State = %v, want inactive", d.State)
	}
	if n := log.count(EventDragCanceled); n != 1 {
		t.Errorf("drag-canceled events = %d, want 1", n)
	}
	if n := log.count(EventDragEnded); n != 0 {
		t.Errorf("drag-ended events = %d, want 0", n)
	}
}

func TestDragEscapeBeforeMoveIgnored(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newDraggableBox(ui)

	pressStep(ui, 10, 10)
	ui.InjectEscape()
	ui.Step(testDT)
	if e.Drag.State != DragMaybeDragged {
		t.Errorf("State = %v, want maybe-dragged", e.Drag.State)
	}
}

func TestDragFollowsTouch(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newDraggableBox(ui)
	ui.SetInputSource(&queuedInput{frames: []InputSnapshot{
		{Touches: []Touch{{ID: 5, Position: Vec2{10, 10}}}},
		{Touches: []Touch{{ID: 5, Position: Vec2{30, 10}}}},
		{},
	}})

	ui.Step(testDT)
	if e.Drag.Source != (DragSource{Kind: SourceTouch, TouchID: 5}) {
		t.Fatalf("Source = %+v, want touch 5", e.Drag.Source)
	}
	ui.Step(testDT)
	if e.Drag.State != DragStart || e.Drag.Diff != (Vec2{20, 0}) {
		t.Errorf("State = %v, Diff = %v; want drag-start, (20, 0)", e.Drag.State, e.Drag.Diff)
	}
	ui.Step(testDT)
	if e.Drag.State != DragEnd {
		t.Errorf("after lift: State = %v, want drag-end", e.Drag.State)
	}
}
