package willowui

import "testing"

func TestInjectDragQueuesFrames(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.InjectDrag(Vec2{0, 0}, Vec2{100, 40}, 6)
	if ui.PendingInput() != 6 {
		t.Fatalf("PendingInput = %d, want 6", ui.PendingInput())
	}

	q := ui.injectQ
	if !q[0].MousePressed || q[0].Cursor != (Vec2{0, 0}) {
		t.Errorf("first frame = %+v, want press at origin", q[0])
	}
	if q[2].Cursor != (Vec2{40, 16}) || !q[2].MousePressed {
		t.Errorf("frame 2 = %+v, want held at (40, 16)", q[2])
	}
	if q[5].MousePressed || q[5].Cursor != (Vec2{100, 40}) {
		t.Errorf("last frame = %+v, want release at (100, 40)", q[5])
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.InjectDrag(Vec2{0, 0}, Vec2{10, 10}, 0)
	if ui.PendingInput() != 2 {
		t.Errorf("PendingInput = %d, want 2", ui.PendingInput())
	}
}

func TestInjectEscapeRepeatsLastState(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.InjectMove(5, 7)
	ui.InjectEscape()

	esc := ui.injectQ[1]
	if !esc.EscapePressed || !esc.MousePressed || esc.Cursor != (Vec2{5, 7}) {
		t.Errorf("escape frame = %+v", esc)
	}
	ui.InjectHover(1, 1)
	if ui.injectQ[2].EscapePressed {
		t.Error("escape leaked into the following frame")
	}
}

func TestInjectedFramesDrainInOrder(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.InjectHover(1, 1)
	ui.InjectHover(2, 2)

	ui.Step(testDT)
	if ui.snapshot.Cursor != (Vec2{1, 1}) {
		t.Errorf("first snapshot cursor = %v, want (1, 1)", ui.snapshot.Cursor)
	}
	ui.Step(testDT)
	if ui.snapshot.Cursor != (Vec2{2, 2}) {
		t.Errorf("second snapshot cursor = %v, want (2, 2)", ui.snapshot.Cursor)
	}
	ui.Step(testDT)
	if ui.snapshot.HasCursor {
		t.Error("snapshot still has a cursor after the queue drained")
	}
}
