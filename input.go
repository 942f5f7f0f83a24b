package willowui

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Touch is an active touch point.
type Touch struct {
	ID       uint64
	Position Vec2
}

// InputSnapshot is the pointer state for one frame.
type InputSnapshot struct {
	Cursor    Vec2
	HasCursor bool
	// MousePressed is the state of the left mouse button.
	MousePressed  bool
	Touches       []Touch
	EscapePressed bool
}

func (s InputSnapshot) touch(id uint64) (Vec2, bool) {
	for _, t := range s.Touches {
		if t.ID == id {
			return t.Position, true
		}
	}
	return Vec2{}, false
}

// primary returns the pointer that drives hovering and drags: the mouse while
// its button is held or no touch is active, else the first touch.
func (s InputSnapshot) primary() (DragSource, Vec2, bool) {
	if s.HasCursor && (s.MousePressed || len(s.Touches) == 0) {
		return DragSource{Kind: SourceMouse}, s.Cursor, true
	}
	if len(s.Touches) > 0 {
		t := s.Touches[0]
		return DragSource{Kind: SourceTouch, TouchID: t.ID}, t.Position, true
	}
	return DragSource{Kind: SourceMouse}, Vec2{}, false
}

func (s InputSnapshot) pointer() (Vec2, bool) {
	_, pos, ok := s.primary()
	return pos, ok
}

func (s InputSnapshot) pressed() bool {
	return s.MousePressed || len(s.Touches) > 0
}

// InputSource provides the pointer state once per frame.
type InputSource interface {
	Poll() InputSnapshot
}

// EbitenInput reads the mouse, touches and the Escape key from Ebitengine.
type EbitenInput struct {
	touchIDs []ebiten.TouchID
}

// Poll implements InputSource.
func (in *EbitenInput) Poll() InputSnapshot {
	s := InputSnapshot{
		MousePressed:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		EscapePressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, Touch{ID: uint64(id), Position: Vec2{float64(tx), float64(ty)}})
	}
	// CursorPosition is always (0, 0) on mobile, so the cursor only counts
	// while no finger is down or the mouse button is held.
	if len(s.Touches) == 0 || s.MousePressed {
		x, y := ebiten.CursorPosition()
		s.Cursor = Vec2{float64(x), float64(y)}
		s.HasCursor = true
	}
	return s
}

// pollInput takes the next injected snapshot, or polls the input source.
func (ui *UI) pollInput() {
	if len(ui.injectQ) > 0 {
		ui.snapshot = ui.injectQ[0]
		copy(ui.injectQ, ui.injectQ[1:])
		ui.injectQ = ui.injectQ[:len(ui.injectQ)-1]
		return
	}
	if ui.input != nil {
		ui.snapshot = ui.input.Poll()
		return
	}
	ui.snapshot = InputSnapshot{}
}

// hoveredElements returns the interactable elements under the pointer from
// the top of the stack down, stopping at the first element that blocks.
func (ui *UI) hoveredElements(pos Vec2) map[*Element]bool {
	var under []*Element
	for i := len(ui.order) - 1; i >= 0; i-- {
		e := ui.order[i]
		if !e.geometry.Laid() || !e.geometry.Rect().Contains(pos.X, pos.Y) || !ui.isRendered(e) {
			continue
		}
		under = append(under, e)
	}
	// Ties go to the element created last.
	sort.SliceStable(under, func(i, j int) bool {
		return under[i].geometry.StackIndex > under[j].geometry.StackIndex
	})

	hovered := make(map[*Element]bool)
	for _, e := range under {
		if e.Interactable && e.interaction != nil {
			hovered[e] = true
		}
		if e.FocusPolicy == FocusBlock {
			break
		}
	}
	return hovered
}

// updateFocus derives raw interactions from the snapshot. A press is held by
// the element it started on until release.
func (ui *UI) updateFocus() {
	s := ui.snapshot
	pressed := s.pressed()
	justPressed := pressed && !ui.wasPressed
	released := !pressed && ui.wasPressed
	ui.wasPressed = pressed

	var hovered map[*Element]bool
	if pos, ok := s.pointer(); ok {
		hovered = ui.hoveredElements(pos)
	}

	for _, e := range ui.order {
		t := e.interaction
		if t == nil {
			continue
		}
		over := hovered[e]
		switch {
		case t.raw == RawPressed && !released:
		case over && justPressed:
			t.setRaw(RawPressed)
		case over:
			t.setRaw(RawHovered)
		default:
			t.setRaw(RawNone)
		}
	}
}
