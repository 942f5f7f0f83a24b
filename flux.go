package willowui

// RawInteraction is the per-frame pointer state of an element as reported by
// the focus pass.
type RawInteraction uint8

const (
	RawNone RawInteraction = iota
	RawHovered
	RawPressed
)

func (r RawInteraction) String() string {
	switch r {
	case RawNone:
		return "none"
	case RawHovered:
		return "hovered"
	case RawPressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// FluxInteraction is the transition-aware interaction state derived from two
// consecutive raw states.
type FluxInteraction uint8

const (
	FluxNone FluxInteraction = iota
	FluxPointerEnter
	FluxPointerLeave
	FluxPressed
	FluxReleased
	FluxPressCanceled
	FluxDisabled
)

func (f FluxInteraction) String() string {
	switch f {
	case FluxNone:
		return "none"
	case FluxPointerEnter:
		return "pointer-enter"
	case FluxPointerLeave:
		return "pointer-leave"
	case FluxPressed:
		return "pressed"
	case FluxReleased:
		return "released"
	case FluxPressCanceled:
		return "press-canceled"
	case FluxDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// DefaultMaxInteractionDuration is how long a flux stopwatch runs before it is
// dropped.
const DefaultMaxInteractionDuration = 1.0

// trackedInteraction is the interaction state of an element that opted into
// flux tracking.
type trackedInteraction struct {
	raw        RawInteraction
	rawChanged bool
	prev       RawInteraction
	flux       FluxInteraction
	// fluxChanged is set for the frame in which flux was written. Writes made
	// after the flux stage carry over into the next frame.
	fluxChanged bool
	fluxCarry   bool
	elapsed     float64
	timing      bool
}

// Classify returns the flux state for a raw transition from prev to curr. Pairs
// not in the transition table keep current. Disabled never changes.
func Classify(prev, curr RawInteraction, current FluxInteraction) FluxInteraction {
	if current == FluxDisabled {
		return current
	}
	switch {
	case prev == RawNone && curr == RawHovered:
		return FluxPointerEnter
	case prev == RawNone && curr == RawPressed,
		prev == RawHovered && curr == RawPressed:
		return FluxPressed
	case prev == RawHovered && curr == RawNone:
		return FluxPointerLeave
	case prev == RawPressed && curr == RawNone:
		return FluxPressCanceled
	case prev == RawPressed && curr == RawHovered:
		return FluxReleased
	}
	return current
}

// TrackInteraction makes e interactable and starts classifying its pointer
// transitions.
func (e *Element) TrackInteraction() {
	e.Interactable = true
	if e.interaction == nil {
		e.interaction = &trackedInteraction{}
	}
}

// FluxChanged reports whether the flux state was written this frame.
func (e *Element) FluxChanged() bool {
	return e.interaction != nil && e.interaction.fluxChanged
}

// DisableInteraction freezes the element in FluxDisabled until
// EnableInteraction is called.
func (e *Element) DisableInteraction() {
	if e.interaction == nil {
		return
	}
	e.setFlux(FluxDisabled)
}

// EnableInteraction leaves FluxDisabled. No-op for enabled elements.
func (e *Element) EnableInteraction() {
	if e.interaction == nil || e.interaction.flux != FluxDisabled {
		return
	}
	e.setFlux(FluxNone)
}

func (e *Element) setFlux(f FluxInteraction) {
	t := e.interaction
	if t.flux == f {
		return
	}
	t.flux = f
	t.fluxChanged = true
	if e.ui == nil || e.ui.fluxStageDone {
		t.fluxCarry = true
	}
}

// setRaw records the focus pass result for this frame.
func (t *trackedInteraction) setRaw(r RawInteraction) {
	if t.raw == r {
		return
	}
	t.raw = r
	t.rawChanged = true
}

// tickFluxStopwatches advances every running stopwatch by dt and drops those
// that ran past max.
func (ui *UI) tickFluxStopwatches(dt float64) {
	max := ui.cfg.MaxInteractionDuration
	for _, e := range ui.order {
		t := e.interaction
		if t == nil || !t.timing {
			continue
		}
		if t.elapsed > max {
			t.timing = false
			t.elapsed = 0
			continue
		}
		t.elapsed += dt
	}
}

// updateFlux classifies every raw change, restarts stopwatches for changed
// flux and remembers the raw state for the next frame.
func (ui *UI) updateFlux() {
	for _, e := range ui.order {
		t := e.interaction
		if t == nil || !t.rawChanged {
			continue
		}
		e.setFlux(Classify(t.prev, t.raw, t.flux))
	}
	for _, e := range ui.order {
		t := e.interaction
		if t == nil {
			continue
		}
		if t.fluxChanged {
			t.timing = true
			t.elapsed = 0
			ui.emit(Event{Type: EventFluxChanged, Element: e.ID, Flux: t.flux})
		}
		if t.rawChanged {
			t.prev = t.raw
		}
	}
	ui.fluxStageDone = true
}

// clearFrameFlags resets single-frame change markers at the start of a frame.
func (ui *UI) clearFrameFlags() {
	for _, e := range ui.order {
		if t := e.interaction; t != nil {
			t.rawChanged = false
			t.fluxChanged = t.fluxCarry
			t.fluxCarry = false
		}
		if d := e.Drop; d != nil {
			d.changed = false
		}
	}
	ui.fluxStageDone = false
}
