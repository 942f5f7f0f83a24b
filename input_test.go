package willowui

import "testing"

// --- Focus pass ---

func TestFocusPassHoversEverythingBelow(t *testing.T) {
	ui, _ := newTestUI(t)
	below := newBox(ui, ui.Root(), "below", 0, 0, 100, 100, 1)
	above := newBox(ui, ui.Root(), "above", 0, 0, 100, 100, 2)

	hoverStep(ui, 50, 50)
	if below.Interaction() != RawHovered || above.Interaction() != RawHovered {
		t.Errorf("below = %v, above = %v; want both hovered", below.Interaction(), above.Interaction())
	}
}

func TestFocusBlockStopsAtBlocker(t *testing.T) {
	ui, _ := newTestUI(t)
	below := newBox(ui, ui.Root(), "below", 0, 0, 100, 100, 1)
	above := newBox(ui, ui.Root(), "above", 0, 0, 100, 100, 2)
	above.FocusPolicy = FocusBlock

	hoverStep(ui, 50, 50)
	if above.Interaction() != RawHovered {
		t.Errorf("above = %v, want hovered", above.Interaction())
	}
	if below.Interaction() != RawNone {
		t.Errorf("below = %v, want none", below.Interaction())
	}
}

func TestFocusBlockByNonInteractable(t *testing.T) {
	ui, _ := newTestUI(t)
	below := newBox(ui, ui.Root(), "below", 0, 0, 100, 100, 1)
	cover := ui.NewElement("cover")
	cover.FocusPolicy = FocusBlock
	ui.Root().AddChild(cover)
	place(cover, 0, 0, 100, 100, 5)

	hoverStep(ui, 50, 50)
	if below.Interaction() != RawNone {
		t.Errorf("below = %v, want none under a blocking cover", below.Interaction())
	}
}

func TestFocusStackIndexOverCreationOrder(t *testing.T) {
	ui, _ := newTestUI(t)
	top := newBox(ui, ui.Root(), "top", 0, 0, 100, 100, 9)
	top.FocusPolicy = FocusBlock
	bottom := newBox(ui, ui.Root(), "bottom", 0, 0, 100, 100, 1)

	hoverStep(ui, 50, 50)
	if top.Interaction() != RawHovered || bottom.Interaction() != RawNone {
		t.Errorf("top = %v, bottom = %v; want hovered, none", top.Interaction(), bottom.Interaction())
	}
}

func TestFocusTieGoesToLastCreated(t *testing.T) {
	ui, _ := newTestUI(t)
	first := newBox(ui, ui.Root(), "first", 0, 0, 100, 100, 3)
	first.FocusPolicy = FocusBlock
	second := newBox(ui, ui.Root(), "second", 0, 0, 100, 100, 3)
	second.FocusPolicy = FocusBlock

	hoverStep(ui, 50, 50)
	if second.Interaction() != RawHovered || first.Interaction() != RawNone {
		t.Errorf("first = %v, second = %v; want none, hovered", first.Interaction(), second.Interaction())
	}
}

func TestFocusSkipsUnrendered(t *testing.T) {
	ui, _ := newTestUI(t)
	group := ui.NewElement("group")
	ui.Root().AddChild(group)
	e := newBox(ui, group, "child", 0, 0, 100, 100, 1)

	group.SetRender(false)
	hoverStep(ui, 50, 50)
	if e.Interaction() != RawNone {
		t.Errorf("child of unrendered group = %v, want none", e.Interaction())
	}

	group.SetRender(true)
	group.SetVisibility(VisibilityHidden)
	hoverStep(ui, 50, 50)
	if e.Interaction() != RawNone {
		t.Errorf("child of hidden group = %v, want none", e.Interaction())
	}
}

func TestFocusSkipsUnlaid(t *testing.T) {
	ui, _ := newTestUI(t)
	e := ui.NewElement("unlaid")
	e.TrackInteraction()
	ui.Root().AddChild(e)

	hoverStep(ui, 0, 0)
	if e.Interaction() != RawNone {
		t.Errorf("unlaid element = %v, want none", e.Interaction())
	}
}

func TestFocusPressNeedsFreshPress(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newBox(ui, ui.Root(), "button", 100, 100, 50, 50, 1)

	// Pressed elsewhere, then dragged over the element.
	pressStep(ui, 10, 10)
	moveStep(ui, 120, 120)
	if got := e.Interaction(); got != RawHovered {
		t.Errorf("Interaction = %v, want hovered", got)
	}
}

// --- Touch ---

func TestTouchDrivesHover(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newBox(ui, ui.Root(), "button", 0, 0, 100, 100, 1)
	ui.SetInputSource(&queuedInput{frames: []InputSnapshot{
		{Touches: []Touch{{ID: 1, Position: Vec2{10, 10}}}},
		{},
	}})

	ui.Step(testDT)
	if e.Flux() != FluxPressed {
		t.Fatalf("Flux after touch = %v, want pressed", e.Flux())
	}
	ui.Step(testDT)
	if e.Flux() != FluxPressCanceled {
		t.Errorf("Flux after lift = %v, want press-canceled", e.Flux())
	}
}

// On mobile the cursor reads (0, 0) while fingers are down; the touch must
// still win.
func TestTouchWinsOverIdleCursor(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newBox(ui, ui.Root(), "draggable", 100, 100, 50, 50, 1)
	e.MakeDraggable()
	ui.SetInputSource(&queuedInput{frames: []InputSnapshot{
		{HasCursor: true, Touches: []Touch{{ID: 7, Position: Vec2{120, 120}}}},
		{HasCursor: true, Touches: []Touch{{ID: 7, Position: Vec2{130, 125}}}},
	}})

	ui.Step(testDT)
	if e.Interaction() != RawPressed || e.Flux() != FluxPressed {
		t.Fatalf("Interaction, Flux = %v, %v; want pressed", e.Interaction(), e.Flux())
	}
	if e.Drag.State != DragMaybeDragged {
		t.Fatalf("State = %v, want maybe-dragged", e.Drag.State)
	}
	if e.Drag.Source != (DragSource{Kind: SourceTouch, TouchID: 7}) {
		t.Errorf("Source = %+v, want touch 7", e.Drag.Source)
	}

	ui.Step(testDT)
	if e.Drag.State != DragStart {
		t.Errorf("State = %v, want drag-start", e.Drag.State)
	}
	if e.Drag.Diff != (Vec2{10, 5}) {
		t.Errorf("Diff = %v, want (10, 5)", e.Drag.Diff)
	}
}

func TestHeldMouseWinsOverTouch(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newBox(ui, ui.Root(), "draggable", 0, 0, 50, 50, 1)
	e.MakeDraggable()
	ui.SetInputSource(&queuedInput{frames: []InputSnapshot{
		{Cursor: Vec2{10, 10}, HasCursor: true, MousePressed: true,
			Touches: []Touch{{ID: 3, Position: Vec2{400, 400}}}},
	}})

	ui.Step(testDT)
	if e.Drag.State != DragMaybeDragged || e.Drag.Source.Kind != SourceMouse {
		t.Errorf("State, Source = %v, %+v; want maybe-dragged by mouse", e.Drag.State, e.Drag.Source)
	}
}

func TestInjectedInputOverridesSource(t *testing.T) {
	ui, _ := newTestUI(t)
	e := newBox(ui, ui.Root(), "button", 0, 0, 100, 100, 1)
	ui.SetInputSource(&queuedInput{frames: []InputSnapshot{
		{Cursor: Vec2{500, 500}, HasCursor: true},
	}})

	hoverStep(ui, 10, 10)
	if e.Interaction() != RawHovered {
		t.Errorf("Interaction = %v, want hovered from injected input", e.Interaction())
	}
}
