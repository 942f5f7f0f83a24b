package willowui

import (
	"fmt"
	"sort"
)

// MinPanelSize is the smallest size a floating panel can be resized to.
var MinPanelSize = Vec2{150, 100}

const (
	// MinFloatingPanelZIndex is the z-index floor for floating panels.
	MinFloatingPanelZIndex = 1000
	// PriorityFloatingPanelZIndex is used by panels with Priority set.
	PriorityFloatingPanelZIndex = 10000

	windowResizePadding = 20.0
)

var (
	defaultPanelSize      = Vec2{300, 500}
	panelBackground       = Color{0.15, 0.155, 0.16, 1}
	panelBorderColor      = Color{0, 0, 0, 1}
	panelTitleBackground  = Color{0.25, 0.25, 0.25, 1}
	panelButtonBackground = Color{0.5, 0.5, 0.5, 1}
	panelButtonHighlight  = Color{0, 1, 1, 1}
)

// FloatingPanel is a movable, resizable window holding a content panel.
type FloatingPanel struct {
	Size     Vec2
	Position Vec2
	// ZIndex is assigned on the first update after the panel is created.
	ZIndex Optional[int]
	// Priority panels stay on top and block moving and resizing of every
	// floating panel.
	Priority bool
	Folded   bool

	resizable bool
	resizing  bool
	moving    bool

	title            ElementID
	foldButton       ElementID
	closeButton      ElementID
	contentView      ElementID
	contentContainer ElementID
	content          ElementID
	handles          [2]ElementID
}

// Content returns the id of the content panel.
func (p *FloatingPanel) Content() ElementID { return p.content }

// TitleID returns the id of the title bar.
func (p *FloatingPanel) TitleID() ElementID { return p.title }

// Moving reports whether the panel is being dragged by its title.
func (p *FloatingPanel) Moving() bool { return p.moving }

// Resizing reports whether one of the panel's resize handles is dragged.
func (p *FloatingPanel) Resizing() bool { return p.resizing }

// PanelTitle marks the title bar of a floating panel. Titles of droppable
// panels can be dropped on docking zones.
type PanelTitle struct {
	Panel ElementID
}

// PanelHandle marks a resize handle of a floating panel.
type PanelHandle struct {
	Panel ElementID
}

// PanelButtonKind identifies a title bar button.
type PanelButtonKind uint8

const (
	PanelClose PanelButtonKind = iota
	PanelFold
)

// PanelButton is a close or fold button in a floating panel's title bar.
type PanelButton struct {
	Panel ElementID
	Kind  PanelButtonKind
}

// FloatingPanelConfig configures a new floating panel. A zero Size uses
// 300x500.
type FloatingPanelConfig struct {
	Title     string
	Size      Vec2
	Position  Optional[Vec2]
	Droppable bool
	// Fixed panels have no resize handles.
	Fixed  bool
	Folded bool
}

// NewFloatingPanel creates a floating panel under parent, with a title bar,
// resize handles and an empty content panel.
func (ui *UI) NewFloatingPanel(parent *Element, cfg FloatingPanelConfig) *Element {
	title := cfg.Title
	if title == "" {
		title = "Untitled"
	}
	size := cfg.Size
	if size.IsZero() {
		size = defaultPanelSize
	}

	frame := ui.NewElement("floating panel " + title)
	fp := &FloatingPanel{
		Size:      size,
		Position:  cfg.Position.Or(Vec2{}),
		Folded:    cfg.Folded,
		resizable: !cfg.Fixed,
	}
	frame.Floating = fp
	frame.FocusPolicy = FocusBlock
	frame.SetPositionType(PositionAbsolute)
	frame.SetFlexDirection(FlexColumn)
	frame.SetBorder(Edges{2, 2, 2, 2})
	frame.SetBorderColor(panelBorderColor)
	frame.SetBackground(panelBackground)

	vertical := ui.newResizeHandleContainer(frame, "panel handles vertical", FlexColumn, 10)
	horizontal := ui.newResizeHandleContainer(frame, "panel handles horizontal", FlexRow, 11)
	for _, d := range []ResizeDirection{NorthWest, North, NorthEast, South, SouthWest, SouthEast} {
		h := ui.newResizeHandle(vertical, d)
		h.PanelHandle = &PanelHandle{Panel: frame.ID}
	}
	for _, d := range []ResizeDirection{West, East} {
		h := ui.newResizeHandle(horizontal, d)
		h.PanelHandle = &PanelHandle{Panel: frame.ID}
	}
	fp.handles = [2]ElementID{vertical.ID, horizontal.ID}

	bar := ui.NewElement("panel title " + title)
	bar.Title = &PanelTitle{Panel: frame.ID}
	bar.FocusPolicy = FocusBlock
	bar.SetWidth(Percent(100))
	bar.SetBackground(panelTitleBackground)
	if cfg.Droppable {
		bar.MakeDroppable()
	} else {
		bar.MakeDraggable()
	}
	frame.AddChild(bar)
	fp.title = bar.ID

	fp.foldButton = ui.newPanelButton(bar, frame, PanelFold).ID
	fp.closeButton = ui.newPanelButton(bar, frame, PanelClose).ID

	view := ui.NewElement("panel content view")
	view.SetWidth(Percent(100))
	view.SetHeight(Percent(100))
	frame.AddChild(view)
	fp.contentView = view.ID

	container := ui.NewElement("panel content")
	container.SetWidth(Percent(100))
	container.SetHeight(Percent(100))
	view.AddChild(container)
	fp.contentContainer = container.ID

	fp.content = ui.NewPanel(container, title).ID

	if parent != nil {
		parent.AddChild(frame)
	}
	ui.layoutFloatingPanel(frame)
	return frame
}

func (ui *UI) newPanelButton(bar, panel *Element, kind PanelButtonKind) *Element {
	name := "panel close"
	if kind == PanelFold {
		name = "panel fold"
	}
	b := ui.NewElement(name)
	b.PanelButton = &PanelButton{Panel: panel.ID, Kind: kind}
	b.FocusPolicy = FocusBlock
	b.SetWidth(Px(16))
	b.SetHeight(Px(16))
	b.SetMargin(Edges{Top: 3, Right: 3, Bottom: 3, Left: 3})
	b.SetBackground(panelButtonBackground)
	ui.backgrounds.Attach(b, InteractionConfig[Color]{Highlight: Some(panelButtonHighlight)}, ui.highlightAnimation())
	bar.AddChild(b)
	return b
}

// SetPanelContent replaces the content panel of a floating panel with panel.
// The previous content is despawned.
func (ui *UI) SetPanelContent(floating, panel *Element) error {
	if floating == nil || floating.Floating == nil {
		return fmt.Errorf("set panel content: %w", ErrNotFloatingPanel)
	}
	if panel == nil || panel.Panel == nil {
		return fmt.Errorf("set panel content of %d: %w", floating.ID, ErrMissingPanel)
	}
	if panel.ID == floating.Floating.content {
		ui.warn("tried setting floating panel content to its current panel", "panel", floating.ID)
		return nil
	}
	ui.attachPanelContent(floating, panel)
	return nil
}

func (ui *UI) attachPanelContent(floating, panel *Element) {
	fp := floating.Floating
	if old := ui.Element(fp.content); old != nil && old != panel {
		ui.Despawn(old)
	}
	if c := ui.Element(fp.contentContainer); c != nil {
		c.AddChild(panel)
	}
	panel.SetRender(true)
	fp.content = panel.ID
}

// floatingPanels returns every floating panel in creation order.
func (ui *UI) floatingPanels() []*Element {
	var panels []*Element
	for _, e := range ui.order {
		if e.Floating != nil {
			panels = append(panels, e)
		}
	}
	return panels
}

func (ui *UI) priorityPanel() bool {
	for _, e := range ui.order {
		if e.Floating != nil && e.Floating.Priority {
			return true
		}
	}
	return false
}

func maxPanelZ(panels []*Element) int {
	m := 0
	for _, p := range panels {
		if z := p.Floating.ZIndex; z.Valid && z.Value > m {
			m = z.Value
		}
	}
	return m
}

// indexFloatingPanels gives new panels a z-index above every other panel.
func (ui *UI) indexFloatingPanels() {
	panels := ui.floatingPanels()
	top := max(maxPanelZ(panels), MinFloatingPanelZIndex)
	offset := 1
	for _, p := range panels {
		if !p.Floating.ZIndex.Valid {
			p.Floating.ZIndex = Some(top + offset)
			offset++
		}
	}
}

// processPanelButtons closes or folds panels on button release.
func (ui *UI) processPanelButtons() {
	var closed []*Element
	for _, e := range ui.order {
		b := e.PanelButton
		if b == nil || !e.FluxChanged() || e.Flux() != FluxReleased {
			continue
		}
		p := ui.Element(b.Panel)
		if p == nil || p.Floating == nil {
			continue
		}
		switch b.Kind {
		case PanelClose:
			closed = append(closed, p)
		case PanelFold:
			p.Floating.Folded = !p.Floating.Folded
		}
	}
	for _, p := range closed {
		if !p.disposed {
			ui.Despawn(p)
			ui.emit(Event{Type: EventPanelClosed, Element: p.ID})
		}
	}
}

// clipPositionChange limits how far a north or west edge moves so that a panel
// shrinking below min does not drift.
func clipPositionChange(diff, min, oldSize, newSize float64) float64 {
	switch {
	case oldSize <= min && newSize <= min:
		return 0
	case oldSize > min && newSize <= min:
		return diff - (min - newSize)
	case oldSize < min && newSize >= min:
		return diff + (min - oldSize)
	}
	return diff
}

// updatePanelSizeOnResize applies resize handle drags to their panels.
func (ui *UI) updatePanelSizeOnResize() {
	if ui.priorityPanel() {
		return
	}
	// A panel is resizing while any one of its handles is being dragged.
	for _, p := range ui.floatingPanels() {
		p.Floating.resizing = false
	}
	for _, h := range ui.order {
		ref, d := h.PanelHandle, h.Drag
		if ref == nil || d == nil || h.ResizeHandle == nil {
			continue
		}
		p := ui.Element(ref.Panel)
		if p == nil || p.Floating == nil {
			continue
		}
		fp := p.Floating
		switch d.State {
		case DragInactive, DragMaybeDragged, DragCanceled:
			continue
		}
		fp.resizing = true
		if d.Diff.IsZero() && d.State != DragEnd {
			continue
		}

		dir := h.ResizeHandle.Direction
		old := fp.Size
		fp.Size = fp.Size.Add(dir.SizeDiff(d.Diff))
		if d.State == DragEnd {
			fp.Size.X = max(fp.Size.X, MinPanelSize.X)
			fp.Size.Y = max(fp.Size.Y, MinPanelSize.Y)
		}

		var move Vec2
		switch dir {
		case North, NorthEast:
			move.Y = clipPositionChange(d.Diff.Y, MinPanelSize.Y, old.Y, fp.Size.Y)
		case SouthWest, West:
			move.X = clipPositionChange(d.Diff.X, MinPanelSize.X, old.X, fp.Size.X)
		case NorthWest:
			move.X = clipPositionChange(d.Diff.X, MinPanelSize.X, old.X, fp.Size.X)
			move.Y = clipPositionChange(d.Diff.Y, MinPanelSize.Y, old.Y, fp.Size.Y)
		}
		fp.Position = fp.Position.Add(move)
	}
}

// updatePanelOnTitleDrag moves panels dragged by their title and raises them
// above the others.
func (ui *UI) updatePanelOnTitleDrag() {
	if ui.priorityPanel() {
		return
	}
	panels := ui.floatingPanels()
	top := maxPanelZ(panels)
	offset := 1
	updated := false

	for _, t := range ui.order {
		if t.Title == nil || t.Drag == nil {
			continue
		}
		p := ui.Element(t.Title.Panel)
		if p == nil || p.Floating == nil {
			continue
		}
		fp, d := p.Floating, t.Drag
		if fp.resizing {
			continue
		}
		switch d.State {
		case DragInactive, DragMaybeDragged, DragCanceled:
			fp.moving = false
			continue
		}
		fp.moving = true
		if d.Diff.IsZero() {
			continue
		}
		fp.ZIndex = Some(top + offset)
		fp.Position = fp.Position.Add(d.Diff)
		offset++
		updated = true
	}
	if !updated {
		return
	}

	sort.SliceStable(panels, func(i, j int) bool {
		a, b := panels[i].Floating.ZIndex, panels[j].Floating.ZIndex
		if a.Valid != b.Valid {
			return !a.Valid
		}
		return a.Value < b.Value
	})
	for i, p := range panels {
		p.Floating.ZIndex = Some(MinFloatingPanelZIndex + i + 1)
	}
}

// handleWindowResize pulls panels that ended up past the window edge back
// into view.
func (ui *UI) handleWindowResize() {
	if !ui.windowResized {
		return
	}
	ui.windowResized = false
	w, h := ui.windowSize.X, ui.windowSize.Y
	for _, p := range ui.floatingPanels() {
		if !p.geometry.Laid() {
			continue
		}
		fp := p.Floating
		pos := p.geometry.Position
		if pos.X > w-windowResizePadding {
			fp.Position.X = max(fp.Position.X-fp.Size.X+windowResizePadding, 0)
			if pos.Y > h-fp.Size.Y {
				fp.Position.Y = max(fp.Position.Y-(pos.Y-(h-fp.Size.Y)), 0)
			}
		}
		if pos.Y > h-windowResizePadding {
			fp.Position.Y = max(fp.Position.Y-fp.Size.Y+windowResizePadding, 0)
			if pos.X > w-fp.Size.X {
				fp.Position.X = max(fp.Position.X-(pos.X-(w-fp.Size.X)), 0)
			}
		}
	}
}

// updatePanelLayout writes panel state into the styles of the panel and its
// parts.
func (ui *UI) updatePanelLayout() {
	for _, p := range ui.floatingPanels() {
		ui.layoutFloatingPanel(p)
	}
}

func (ui *UI) layoutFloatingPanel(p *Element) {
	fp := p.Floating
	showHandles := !fp.Folded && fp.resizable && !fp.moving
	for _, id := range fp.handles {
		if h := ui.Element(id); h != nil {
			h.SetRender(showHandles)
		}
	}
	if v := ui.Element(fp.contentView); v != nil {
		v.SetRender(!fp.Folded)
	}

	policy := FocusBlock
	if fp.moving {
		policy = FocusPass
	}
	p.FocusPolicy = policy
	if t := ui.Element(fp.title); t != nil {
		t.FocusPolicy = policy
		setInteractionEnabled(t, !fp.resizing)
	}
	for _, id := range []ElementID{fp.foldButton, fp.closeButton} {
		if b := ui.Element(id); b != nil {
			setInteractionEnabled(b, !fp.moving && !fp.resizing)
		}
	}

	if fp.Folded {
		p.SetWidth(Auto())
		p.SetHeight(Auto())
	} else {
		p.SetWidth(Px(max(fp.Size.X, MinPanelSize.X)))
		p.SetHeight(Px(max(fp.Size.Y, MinPanelSize.Y)))
	}
	p.SetLeft(Px(fp.Position.X))
	p.SetTop(Px(fp.Position.Y))
	switch {
	case fp.Priority:
		p.SetZIndex(PriorityFloatingPanelZIndex)
	case fp.ZIndex.Valid:
		p.SetZIndex(fp.ZIndex.Value)
	}
}

func setInteractionEnabled(e *Element, enabled bool) {
	if enabled {
		e.EnableInteraction()
	} else {
		e.DisableInteraction()
	}
}
