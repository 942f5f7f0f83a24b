package willowui

import "github.com/hajimehoshi/ebiten/v2"

// CursorShape is the system cursor requested by resize handles.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota
	CursorMove
	CursorNSResize
	CursorEWResize
	CursorNESWResize
	CursorNWSEResize
)

// CursorControl receives cursor requests from the drag engine and resize
// handles.
type CursorControl interface {
	// Grab confines the cursor while a drag is underway.
	Grab()
	// Release undoes Grab.
	Release()
	SetShape(shape CursorShape)
}

// EbitenCursor applies cursor requests to the Ebitengine window.
type EbitenCursor struct {
	// Capture hides and captures the cursor while dragging. Ebitengine has no
	// confined-but-visible mode, so grabbing is a no-op unless this is set.
	Capture bool
}

// Grab implements CursorControl.
func (c *EbitenCursor) Grab() {
	if c.Capture {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

// Release implements CursorControl.
func (c *EbitenCursor) Release() {
	if c.Capture {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// SetShape implements CursorControl.
func (c *EbitenCursor) SetShape(shape CursorShape) {
	ebiten.SetCursorShape(ebitenCursorShape(shape))
}

func ebitenCursorShape(shape CursorShape) ebiten.CursorShapeType {
	switch shape {
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorNSResize:
		return ebiten.CursorShapeNSResize
	case CursorEWResize:
		return ebiten.CursorShapeEWResize
	case CursorNESWResize:
		return ebiten.CursorShapeNESWResize
	case CursorNWSEResize:
		return ebiten.CursorShapeNWSEResize
	default:
		return ebiten.CursorShapeDefault
	}
}
