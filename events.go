package willowui

import "errors"

// EventType identifies a kind of UI event.
type EventType uint8

const (
	EventFluxChanged  EventType = iota // an element's flux state changed
	EventDragStarted                   // a drag moved for the first time
	EventDragEnded                     // a drag was released
	EventDragCanceled                  // a drag was canceled with Escape
	EventDropped                       // a droppable was dropped on a drop zone
	EventPanelDocked                   // a floating panel became a tab
	EventPanelClosed                   // a floating panel was closed
	EventTabMoved                      // a tab was reordered by dragging
	EventZoneSplit                     // a docking zone was split
	EventZoneRemoved                   // an empty docking zone was removed
)

func (t EventType) String() string {
	switch t {
	case EventFluxChanged:
		return "flux-changed"
	case EventDragStarted:
		return "drag-started"
	case EventDragEnded:
		return "drag-ended"
	case EventDragCanceled:
		return "drag-canceled"
	case EventDropped:
		return "dropped"
	case EventPanelDocked:
		return "panel-docked"
	case EventPanelClosed:
		return "panel-closed"
	case EventTabMoved:
		return "tab-moved"
	case EventZoneSplit:
		return "zone-split"
	case EventZoneRemoved:
		return "zone-removed"
	default:
		return "unknown"
	}
}

// Event describes something that happened during an update.
type Event struct {
	Type EventType
	// Element is the element the event is about.
	Element ElementID
	// Other is the second party: the droppable for EventDropped, the docked
	// panel for EventPanelDocked, the new zone for EventZoneSplit.
	Other    ElementID
	Flux     FluxInteraction
	Position Vec2
}

// EventSink receives UI events. When set on a UI, every event is forwarded to
// the sink as it happens.
type EventSink interface {
	EmitEvent(event Event)
}

// SetEventSink sets the optional event sink.
func (ui *UI) SetEventSink(sink EventSink) {
	ui.sink = sink
}

func (ui *UI) emit(ev Event) {
	if ui.sink != nil {
		ui.sink.EmitEvent(ev)
	}
}

var (
	ErrNotTabContainer  = errors.New("willowui: element is not a tab container")
	ErrNotTab           = errors.New("willowui: element is not a tab")
	ErrMissingViewport  = errors.New("willowui: tab container has no viewport")
	ErrNotFloatingPanel = errors.New("willowui: element is not a floating panel")
	ErrMissingPanel     = errors.New("willowui: content panel missing")
	ErrNotDockingZone   = errors.New("willowui: element is not a docking zone")
	ErrNoParent         = errors.New("willowui: element has no parent")
	ErrInvalidScript    = errors.New("willowui: invalid input script")
	ErrInvalidConfig    = errors.New("willowui: invalid config")
)
