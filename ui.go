package willowui

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// UI owns the element tree and runs the interaction pipeline once per frame.
type UI struct {
	root     *Element
	elements map[ElementID]*Element
	// order holds live elements in creation order. Despawn replaces the slice
	// so that loops over it stay valid.
	order  []*Element
	nextID ElementID

	cfg    Config
	logger *slog.Logger
	sink   EventSink
	debug  bool

	input      InputSource
	cursor     CursorControl
	injectQ    []InputSnapshot
	lastInject InputSnapshot
	snapshot   InputSnapshot
	wasPressed bool
	runner     *ScriptRunner

	backgrounds *Controller[Color]
	controllers []updater

	fluxStageDone      bool
	resizeCursorLocked bool
	zonesDirty         bool
	zonesRemoved       bool

	windowSize    Vec2
	windowResized bool
	frame         uint64
}

// NewUI creates a UI with a root element. Input is read from Ebitengine and
// the cursor shape is driven through Ebitengine.
func NewUI(cfg Config) *UI {
	ui := &UI{
		elements:      make(map[ElementID]*Element),
		cfg:           cfg,
		logger:        newLogger(cfg),
		input:         &EbitenInput{},
		cursor:        &EbitenCursor{Capture: cfg.CaptureCursorOnDrag},
		fluxStageDone: true,
	}
	if ui.cfg.MaxInteractionDuration <= 0 {
		ui.cfg.MaxInteractionDuration = DefaultMaxInteractionDuration
	}
	ui.backgrounds = NewController(BackgroundColor)
	ui.AddController(ui.backgrounds)

	ui.root = ui.NewElement("root")
	ui.root.IsRoot = true
	ui.root.SetWidth(Percent(100))
	ui.root.SetHeight(Percent(100))
	ui.SetDebugMode(cfg.Debug)
	return ui
}

// Root returns the root element.
func (ui *UI) Root() *Element {
	return ui.root
}

// Config returns the configuration the UI runs with.
func (ui *UI) Config() Config {
	return ui.cfg
}

// Backgrounds returns the built-in background colour controller.
func (ui *UI) Backgrounds() *Controller[Color] {
	return ui.backgrounds
}

// NewElement creates a detached element owned by ui.
func (ui *UI) NewElement(name string) *Element {
	ui.nextID++
	e := &Element{
		ID:    ui.nextID,
		Name:  name,
		Style: DefaultStyle(),
		ui:    ui,
	}
	ui.elements[e.ID] = e
	ui.order = append(ui.order, e)
	return e
}

// Element returns the live element with the given id, or nil.
func (ui *UI) Element(id ElementID) *Element {
	if id == 0 {
		return nil
	}
	return ui.elements[id]
}

// Len returns the number of live elements.
func (ui *UI) Len() int {
	return len(ui.order)
}

// Despawn removes e and its subtree from the UI.
func (ui *UI) Despawn(e *Element) {
	if e == nil || e.disposed {
		return
	}
	if e == ui.root {
		panic("willowui: cannot despawn the root element")
	}
	e.RemoveFromParent()

	zones := false
	var mark func(n *Element)
	mark = func(n *Element) {
		n.disposed = true
		delete(ui.elements, n.ID)
		if n.Zone != nil {
			zones = true
		}
		for _, c := range n.children {
			mark(c)
		}
	}
	mark(e)

	live := make([]*Element, 0, len(ui.order))
	for _, n := range ui.order {
		if !n.disposed {
			live = append(live, n)
		}
	}
	ui.order = live

	if zones {
		ui.zonesRemoved = true
		ui.zonesDirty = true
	}
}

// isRendered reports whether e and all of its ancestors are rendered and
// visible.
func (ui *UI) isRendered(e *Element) bool {
	for p := e; p != nil; p = p.Parent {
		if !p.Style.Render {
			return false
		}
	}
	for p := e; p != nil; p = p.Parent {
		switch p.Style.Visibility {
		case VisibilityHidden:
			return false
		case VisibilityVisible:
			return true
		}
	}
	return true
}

// SetWindowSize records the window size. A change pulls floating panels back
// into view on the next update.
func (ui *UI) SetWindowSize(w, h float64) {
	size := Vec2{w, h}
	if size == ui.windowSize {
		return
	}
	if !ui.windowSize.IsZero() {
		ui.windowResized = true
	}
	ui.windowSize = size
	ui.root.SetGeometry(Geometry{Size: size})
}

// SetInputSource replaces the source of pointer input.
func (ui *UI) SetInputSource(src InputSource) {
	ui.input = src
}

// SetCursorControl replaces the cursor backend. nil disables cursor changes.
func (ui *UI) SetCursorControl(c CursorControl) {
	ui.cursor = c
}

// Frame returns the number of completed updates.
func (ui *UI) Frame() uint64 {
	return ui.frame
}

// Update runs one frame with Ebitengine's tick duration.
func (ui *UI) Update() {
	ui.Step(1.0 / float64(ebiten.TPS()))
}

// Step runs one frame of dt seconds. Geometry must be written by the layout
// engine between steps.
func (ui *UI) Step(dt float64) {
	ui.clearFrameFlags()
	if ui.runner != nil {
		ui.runner.step(ui)
	}
	ui.pollInput()
	ui.updateFocus()

	ui.tickFluxStopwatches(dt)
	ui.updateFlux()
	for _, c := range ui.controllers {
		c.Update()
	}
	ui.updateResizeCursor()

	ui.updateDragProgress()
	ui.updateDragState()
	ui.updateCursorConfinement()
	ui.resetDropZones()
	ui.updateDropZones()

	ui.indexFloatingPanels()
	ui.processPanelButtons()
	ui.updatePanelSizeOnResize()
	ui.updatePanelOnTitleDrag()
	ui.handleWindowResize()
	ui.updatePanelLayout()
	ui.updateTabsOnPress()
	ui.handleTabDragging()

	ui.updateZoneHandleContainers()
	ui.handleDockingZoneDropChange()
	ui.updateTabsOnChange()
	ui.cleanupEmptyDockingZones()
	ui.clearTabChanges()

	ui.syncZoneStructure()
	ui.updateZonesOnResize()
	ui.fitZones()
	ui.syncZoneStyles()
	ui.sweepOrphans()
	ui.frame++
}

// clearTabChanges runs at the end of a frame so that tab changes made between
// frames are seen by the next one.
func (ui *UI) clearTabChanges() {
	for _, e := range ui.order {
		if tc := e.Tabs; tc != nil {
			tc.changed = false
		}
	}
}
