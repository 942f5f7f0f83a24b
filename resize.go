package willowui

// ResizeDirection is the edge or corner a resize handle sits on.
type ResizeDirection uint8

const (
	North ResizeDirection = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

func (d ResizeDirection) String() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "north-east"
	case East:
		return "east"
	case SouthEast:
		return "south-east"
	case South:
		return "south"
	case SouthWest:
		return "south-west"
	case West:
		return "west"
	case NorthWest:
		return "north-west"
	default:
		return "unknown"
	}
}

// SizeDiff converts pointer movement on a handle into a size change. Dragging
// a north or west edge away from the element grows it.
func (d ResizeDirection) SizeDiff(drag Vec2) Vec2 {
	switch d {
	case North:
		return Vec2{0, -drag.Y}
	case NorthEast:
		return Vec2{drag.X, -drag.Y}
	case East:
		return Vec2{drag.X, 0}
	case SouthEast:
		return drag
	case South:
		return Vec2{0, drag.Y}
	case SouthWest:
		return Vec2{-drag.X, drag.Y}
	case West:
		return Vec2{-drag.X, 0}
	case NorthWest:
		return Vec2{-drag.X, -drag.Y}
	default:
		return Vec2{}
	}
}

// Cursor returns the cursor shown while hovering a handle in direction d.
func (d ResizeDirection) Cursor() CursorShape {
	switch d {
	case North, South:
		return CursorNSResize
	case East, West:
		return CursorEWResize
	case NorthEast, SouthWest:
		return CursorNESWResize
	default:
		return CursorNWSEResize
	}
}

const (
	resizeZoneSize     = 4.0
	resizeZonePullback = 2.0
)

var handleHighlight = Color{0, 0.5, 1, 1}

// ResizeHandle marks a draggable element that resizes something.
type ResizeHandle struct {
	Direction ResizeDirection
}

// newResizeHandleContainer creates an absolutely positioned overlay that holds
// resize handles above the content of parent.
func (ui *UI) newResizeHandleContainer(parent *Element, name string, dir FlexDirection, z int) *Element {
	c := ui.NewElement(name)
	c.FocusPolicy = FocusPass
	c.SetPositionType(PositionAbsolute)
	c.SetWidth(Percent(100))
	c.SetHeight(Percent(100))
	c.SetFlexDirection(dir)
	c.SetZIndex(z)
	parent.AddChild(c)
	return c
}

// newResizeHandle creates a thin draggable strip for direction d under parent.
func (ui *UI) newResizeHandle(parent *Element, d ResizeDirection) *Element {
	h := ui.NewElement("resize handle " + d.String())
	h.FocusPolicy = FocusPass
	h.ResizeHandle = &ResizeHandle{Direction: d}
	h.MakeDraggable()

	var w, ht Val
	switch d {
	case North, South:
		w, ht = Percent(100), Px(resizeZoneSize)
	case East, West:
		w, ht = Px(resizeZoneSize), Percent(100)
	default:
		w, ht = Px(resizeZoneSize), Px(resizeZoneSize)
	}
	h.SetWidth(w)
	h.SetHeight(ht)
	h.SetTop(Px(-resizeZonePullback))
	h.SetLeft(Px(-resizeZonePullback))
	ui.backgrounds.Attach(h, InteractionConfig[Color]{Highlight: Some(handleHighlight)}, ui.highlightAnimation())
	parent.AddChild(h)
	return h
}

// updateResizeCursor shows the handle cursor while a handle is hovered or
// pressed. A press locks the cursor until release.
func (ui *UI) updateResizeCursor() {
	if ui.cursor == nil {
		return
	}
	changed := false
	for _, e := range ui.order {
		if e.ResizeHandle != nil && e.FluxChanged() {
			changed = true
			break
		}
	}
	if !changed {
		return
	}

	active := 0
	for _, e := range ui.order {
		if e.ResizeHandle == nil {
			continue
		}
		switch e.Flux() {
		case FluxPointerEnter:
			if !ui.resizeCursorLocked {
				active++
			}
		case FluxPressed:
			active++
		}
	}
	shapeFor := func(d ResizeDirection) CursorShape {
		if active > 1 {
			return CursorMove
		}
		return d.Cursor()
	}

	shape := None[CursorShape]()
	for _, e := range ui.order {
		if e.ResizeHandle == nil {
			continue
		}
		switch e.Flux() {
		case FluxPointerEnter:
			if !ui.resizeCursorLocked {
				shape = Some(shapeFor(e.ResizeHandle.Direction))
			}
		case FluxPressed:
			shape = Some(shapeFor(e.ResizeHandle.Direction))
			ui.resizeCursorLocked = true
		case FluxReleased, FluxPressCanceled:
			ui.resizeCursorLocked = false
			if !shape.Valid {
				shape = Some(CursorDefault)
			}
		case FluxPointerLeave:
			if !ui.resizeCursorLocked && !shape.Valid {
				shape = Some(CursorDefault)
			}
		}
	}
	if shape.Valid {
		ui.cursor.SetShape(shape.Value)
	}
}
