package willowui

// DropPhase is the state of a drop zone relative to the droppable being
// dragged.
type DropPhase uint8

const (
	DropInactive DropPhase = iota
	// DroppableEntered advances to DroppableHover on the next frame.
	DroppableEntered
	DroppableHover
	// DroppableLeft, Dropped and DropCanceled reset to DropInactive on the
	// next frame.
	DroppableLeft
	Dropped
	DropCanceled
)

func (p DropPhase) String() string {
	switch p {
	case DropInactive:
		return "inactive"
	case DroppableEntered:
		return "droppable-entered"
	case DroppableHover:
		return "droppable-hover"
	case DroppableLeft:
		return "droppable-left"
	case Dropped:
		return "dropped"
	case DropCanceled:
		return "drop-canceled"
	default:
		return "unknown"
	}
}

// DropZone tracks droppables hovering an element.
type DropZone struct {
	phase    DropPhase
	incoming ElementID
	position Optional[Vec2]
	changed  bool
}

// Phase returns the current drop phase.
func (z *DropZone) Phase() DropPhase { return z.phase }

// Incoming returns the droppable currently over the zone.
func (z *DropZone) Incoming() (ElementID, bool) { return z.incoming, z.incoming != 0 }

// Position returns the pointer position of the incoming droppable.
func (z *DropZone) Position() (Vec2, bool) { return z.position.Value, z.position.Valid }

// Changed reports whether the zone was written this frame.
func (z *DropZone) Changed() bool { return z.changed }

func (z *DropZone) reset(phase DropPhase) {
	z.phase = phase
	z.incoming = 0
	z.position = None[Vec2]()
	z.changed = true
}

// MakeDropZone lets droppables be dropped onto e. Zones are hit tested with
// their measured geometry.
func (e *Element) MakeDropZone() *DropZone {
	if e.Drop == nil {
		e.Drop = &DropZone{}
	}
	return e.Drop
}

// MakeDroppable lets e be dropped onto drop zones.
func (e *Element) MakeDroppable() *Draggable {
	e.Droppable = true
	return e.MakeDraggable()
}

// resetDropZones moves single-frame phases on.
func (ui *UI) resetDropZones() {
	for _, e := range ui.order {
		z := e.Drop
		if z == nil {
			continue
		}
		switch z.phase {
		case DroppableLeft, DropCanceled, Dropped:
			z.reset(DropInactive)
		case DroppableEntered:
			z.phase = DroppableHover
			z.changed = true
		}
	}
}

// activeDroppable returns the first droppable with a drag underway.
func (ui *UI) activeDroppable() *Element {
	for _, e := range ui.order {
		if e.Droppable && e.Drag != nil && e.Drag.State.active() {
			return e
		}
	}
	return nil
}

// updateDropZones advances the top-most zone under the pointer and lets every
// other hovered zone go.
func (ui *UI) updateDropZones() {
	dragged := ui.activeDroppable()
	if dragged == nil {
		return
	}
	d := dragged.Drag

	var top *Element
	if pos, ok := ui.pointerFor(d.Source); ok {
		for _, e := range ui.order {
			if e.Drop == nil || !e.geometry.Laid() || !ui.isRendered(e) {
				continue
			}
			if !e.geometry.Rect().Contains(pos.X, pos.Y) {
				continue
			}
			if top == nil || e.geometry.StackIndex > top.geometry.StackIndex {
				top = e
			}
		}
	}

	if top != nil {
		z := top.Drop
		switch {
		case z.phase == DropInactive:
			z.phase = DroppableEntered
		case d.State == DragEnd:
			z.phase = Dropped
		case d.State == DragCanceled:
			z.phase = DropCanceled
		}
		if d.State.moving() {
			z.incoming = dragged.ID
			z.position = d.Position
		} else {
			z.incoming = 0
			z.position = None[Vec2]()
		}
		z.changed = true
		if z.phase == Dropped {
			ui.emit(Event{Type: EventDropped, Element: top.ID, Other: dragged.ID, Position: z.position.Value})
		}
	}

	for _, e := range ui.order {
		z := e.Drop
		if z == nil || e == top {
			continue
		}
		if z.phase == DroppableEntered || z.phase == DroppableHover {
			z.reset(DroppableLeft)
		}
	}
}
