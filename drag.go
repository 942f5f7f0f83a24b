package willowui

// DragState is the phase of a drag gesture.
type DragState uint8

const (
	DragInactive DragState = iota
	// DragMaybeDragged: pressed, but the pointer has not moved yet.
	DragMaybeDragged
	// DragStart lasts exactly one frame.
	DragStart
	Dragging
	// DragEnd and DragCanceled reset to DragInactive on the next frame.
	DragEnd
	DragCanceled
)

func (s DragState) String() string {
	switch s {
	case DragInactive:
		return "inactive"
	case DragMaybeDragged:
		return "maybe-dragged"
	case DragStart:
		return "drag-start"
	case Dragging:
		return "dragging"
	case DragEnd:
		return "drag-end"
	case DragCanceled:
		return "drag-canceled"
	default:
		return "unknown"
	}
}

// active reports whether the drag has moved and not yet been reset.
func (s DragState) active() bool {
	return s != DragInactive && s != DragMaybeDragged
}

// moving reports whether the drag is underway or ends this frame.
func (s DragState) moving() bool {
	return s == DragStart || s == Dragging || s == DragEnd
}

// DragSourceKind identifies the pointer device that drives a drag.
type DragSourceKind uint8

const (
	SourceMouse DragSourceKind = iota
	SourceTouch
)

// DragSource is the pointer a drag follows. TouchID is only meaningful for
// SourceTouch.
type DragSource struct {
	Kind    DragSourceKind
	TouchID uint64
}

// Draggable is the drag state of an element. Origin and Position are set from
// the press until the drag resets to DragInactive. Diff is the pointer
// movement of the current frame.
type Draggable struct {
	State    DragState
	Origin   Optional[Vec2]
	Position Optional[Vec2]
	Diff     Vec2
	Source   DragSource
}

func (d *Draggable) clear() {
	d.Origin = None[Vec2]()
	d.Position = None[Vec2]()
	d.Diff = Vec2{}
}

// MakeDraggable gives e drag tracking. The element also tracks interactions,
// since drags begin with a press.
func (e *Element) MakeDraggable() *Draggable {
	e.TrackInteraction()
	if e.Drag == nil {
		e.Drag = &Draggable{}
	}
	return e.Drag
}

// pointerFor returns the current position of a drag source.
func (ui *UI) pointerFor(src DragSource) (Vec2, bool) {
	switch src.Kind {
	case SourceMouse:
		if ui.snapshot.HasCursor {
			return ui.snapshot.Cursor, true
		}
	case SourceTouch:
		return ui.snapshot.touch(src.TouchID)
	}
	return Vec2{}, false
}

// updateDragProgress resets finished drags and follows the pointer of drags
// in progress.
func (ui *UI) updateDragProgress() {
	for _, e := range ui.order {
		d := e.Drag
		if d == nil || e.interaction == nil {
			continue
		}
		d.Diff = Vec2{}
		switch {
		case d.State == DragEnd:
			d.State = DragInactive
			d.clear()
		case d.State == DragCanceled:
			d.State = DragInactive
		case e.interaction.flux == FluxPressed &&
			(d.State == DragMaybeDragged || d.State == DragStart || d.State == Dragging):
			if (d.State == DragStart || d.State == Dragging) && ui.snapshot.EscapePressed {
				d.State = DragCanceled
				d.clear()
				ui.emit(Event{Type: EventDragCanceled, Element: e.ID})
				continue
			}
			if d.State == DragStart {
				d.State = Dragging
			}
			pos, ok := ui.pointerFor(d.Source)
			if !ok || !d.Position.Valid {
				continue
			}
			diff := pos.Sub(d.Position.Value)
			if diff.LengthSquared() > 0 {
				if d.State == DragMaybeDragged {
					d.State = DragStart
					ui.emit(Event{Type: EventDragStarted, Element: e.ID, Position: pos})
				}
				d.Position = Some(pos)
				d.Diff = diff
			}
		}
	}
}

// updateDragState reacts to flux changes: a press arms the drag, a release or
// cancel ends it.
func (ui *UI) updateDragState() {
	for _, e := range ui.order {
		d := e.Drag
		if d == nil || !e.FluxChanged() {
			continue
		}
		switch e.interaction.flux {
		case FluxPressed:
			if d.State == DragMaybeDragged {
				continue
			}
			src, pos, ok := ui.snapshot.primary()
			d.State = DragMaybeDragged
			d.Source = src
			if ok {
				d.Origin = Some(pos)
				d.Position = Some(pos)
			} else {
				d.Origin = None[Vec2]()
				d.Position = None[Vec2]()
			}
			d.Diff = Vec2{}
		case FluxReleased, FluxPressCanceled:
			switch d.State {
			case DragStart, Dragging:
				d.State = DragEnd
				ui.emit(Event{Type: EventDragEnded, Element: e.ID, Position: d.Position.Value})
			case DragMaybeDragged:
				d.State = DragInactive
				d.clear()
			}
		}
	}
}

// updateCursorConfinement grabs the cursor when a drag starts and releases it
// when a drag ends.
func (ui *UI) updateCursorConfinement() {
	if ui.cursor == nil {
		return
	}
	var start, end bool
	for _, e := range ui.order {
		if e.Drag == nil {
			continue
		}
		switch e.Drag.State {
		case DragStart:
			start = true
		case DragEnd, DragCanceled:
			end = true
		}
	}
	switch {
	case start:
		ui.cursor.Grab()
	case end:
		ui.cursor.Release()
	}
}
