package willowui

import "fmt"

var dockHighlight = Color{0.7, 0.8, 0.9, 0.2}

// DropArea is the part of a docking zone a panel is dropped on.
type DropArea uint8

const (
	DropAreaNone DropArea = iota
	DropAreaCenter
	DropAreaNorth
	DropAreaEast
	DropAreaSouth
	DropAreaWest
)

func (a DropArea) String() string {
	switch a {
	case DropAreaCenter:
		return "center"
	case DropAreaNorth:
		return "north"
	case DropAreaEast:
		return "east"
	case DropAreaSouth:
		return "south"
	case DropAreaWest:
		return "west"
	default:
		return "none"
	}
}

// CalculateDropArea returns the area of a zone with the given center and
// size that position falls in. The middle third on both axes is the center;
// the horizontal bands are tested first.
func CalculateDropArea(position, center, size Vec2) DropArea {
	sixthW, sixthH := size.X/6, size.Y/6
	switch {
	case position.X < center.X-sixthW:
		return DropAreaWest
	case position.X > center.X+sixthW:
		return DropAreaEast
	case position.Y < center.Y-sixthH:
		return DropAreaNorth
	case position.Y > center.Y+sixthH:
		return DropAreaSouth
	}
	return DropAreaCenter
}

// SplitDirection is where a split places the new docking zone relative to the
// zone being split.
type SplitDirection uint8

const (
	VerticallyBefore SplitDirection = iota
	VerticallyAfter
	HorizontallyBefore
	HorizontallyAfter
)

func (d SplitDirection) String() string {
	switch d {
	case VerticallyBefore:
		return "vertically-before"
	case VerticallyAfter:
		return "vertically-after"
	case HorizontallyBefore:
		return "horizontally-before"
	case HorizontallyAfter:
		return "horizontally-after"
	default:
		return "unknown"
	}
}

func (a DropArea) split() SplitDirection {
	switch a {
	case DropAreaNorth:
		return VerticallyBefore
	case DropAreaEast:
		return HorizontallyAfter
	case DropAreaWest:
		return HorizontallyBefore
	default:
		return VerticallyAfter
	}
}

// splitStrategy decides, for a zone laid out in dir, whether a split in
// direction d needs a new split container around the zone, and whether the
// new zone goes before the existing one.
func splitStrategy(dir FlexDirection, d SplitDirection) (inject, siblingBefore bool) {
	var table [4][2]bool
	switch dir {
	case FlexRow:
		table = [4][2]bool{{false, true}, {false, false}, {true, true}, {true, false}}
	case FlexColumn:
		table = [4][2]bool{{true, true}, {true, false}, {false, true}, {false, false}}
	case FlexRowReverse:
		table = [4][2]bool{{false, false}, {false, true}, {true, false}, {true, true}}
	case FlexColumnReverse:
		table = [4][2]bool{{true, false}, {true, true}, {false, false}, {false, true}}
	}
	return table[d][0], table[d][1]
}

// DockingZone is a sized zone holding a tab container that panels can be
// docked into or split off from.
type DockingZone struct {
	tabContainer ElementID
	highlight    ElementID
}

// TabContainer returns the id of the zone's tab container.
func (d *DockingZone) TabContainer() ElementID { return d.tabContainer }

// Highlight returns the id of the drop highlight overlay.
func (d *DockingZone) Highlight() ElementID { return d.highlight }

// NewDockingZone creates a docking zone as the last child of parent. When
// removeEmpty is set the zone is removed once its last tab is closed.
func (ui *UI) NewDockingZone(parent *Element, cfg SizedZoneConfig, removeEmpty bool) *Element {
	zone := ui.NewSizedZone(parent, cfg)
	zone.Name = "docking zone"

	tabs := ui.NewTabContainer(zone)
	if removeEmpty {
		tabs.removeEmpty = zone.ID
	}

	hl := ui.NewElement("docking zone highlight")
	hl.SetPositionType(PositionAbsolute)
	hl.SetWidth(Percent(100))
	hl.SetHeight(Percent(100))
	hl.SetZIndex(100)
	hl.SetBackground(ColorNone)
	zone.AddChild(hl)

	zone.Dock = &DockingZone{tabContainer: tabs.ID, highlight: hl.ID}
	zone.MakeDropZone()
	return zone
}

// NewDockingZoneSplit creates a sized zone that holds further docking zones.
func (ui *UI) NewDockingZoneSplit(parent *Element, cfg SizedZoneConfig) *Element {
	z := ui.NewSizedZone(parent, cfg)
	z.Name = "docking zone split"
	z.SplitContainer = true
	return z
}

// SplitDockingZone adds a docking zone next to zone and docks floating into
// it when floating is not nil. The existing zone gives up half of its size,
// or moves into a new split container when the split runs across its parent's
// axis.
func (ui *UI) SplitDockingZone(zone *Element, d SplitDirection, floating *Element) (*Element, error) {
	if zone == nil || zone.Dock == nil || zone.Zone == nil {
		return nil, ErrNotDockingZone
	}
	parent := zone.Parent
	if parent == nil {
		return nil, fmt.Errorf("split docking zone %d: %w", zone.ID, ErrNoParent)
	}
	if tc := ui.Element(zone.Dock.tabContainer); tc == nil || tc.Tabs == nil {
		return nil, fmt.Errorf("split docking zone %d: %w", zone.ID, ErrNotTabContainer)
	}

	// Directions may be stale if the tree changed since the last update.
	ui.syncZoneStructure()

	z := zone.Zone
	current, currentMin := z.Size(), z.MinSize()
	index := parent.mustChildIndex(zone)
	inject, before := splitStrategy(z.direction, d)

	newSize := current / 2
	if inject {
		newSize = 50
	}
	z.SetSize(newSize)

	if inject {
		split := ui.NewDockingZoneSplit(nil, SizedZoneConfig{Size: current, MinSize: currentMin})
		parent.AddChildAt(split, index)
		parent = split
	}

	created := ui.NewDockingZone(parent, SizedZoneConfig{Size: newSize, MinSize: currentMin}, floating != nil)
	if floating != nil {
		if err := ui.DockPanel(ui.Element(created.Dock.tabContainer), floating); err != nil {
			ui.warn("docking split panel failed", "zone", created.ID, "err", err)
		}
	}

	switch {
	case inject && before:
		parent.AddChild(zone)
	case inject:
		parent.AddChildAt(zone, 0)
	case before:
		parent.AddChildAt(created, index)
	default:
		parent.AddChildAt(created, index+1)
	}
	ui.zonesDirty = true
	ui.emit(Event{Type: EventZoneSplit, Element: zone.ID, Other: created.ID})
	return created, nil
}

// handleDockingZoneDropChange shows where a dragged panel would go and docks
// or splits when it is dropped.
func (ui *UI) handleDockingZoneDropChange() {
	type drop struct {
		zone, tabs, title *Element
		area              DropArea
	}
	var drops []drop

	for _, e := range ui.order {
		dz, z := e.Dock, e.Drop
		if dz == nil || z == nil || !z.changed {
			continue
		}
		tabs := ui.Element(dz.tabContainer)
		if tabs == nil || tabs.Tabs == nil {
			ui.warn("docking zone missing its tab container", "zone", e.ID)
			continue
		}
		bar := ui.Element(tabs.Tabs.bar)
		if bar == nil {
			ui.warn("tab container missing its tab bar", "container", tabs.ID)
			continue
		}
		hl := ui.Element(dz.highlight)
		if hl == nil {
			ui.warn("docking zone missing its highlight", "zone", e.ID)
			continue
		}

		var title *Element
		if id, ok := z.Incoming(); ok {
			if t := ui.Element(id); t != nil && t.Title != nil {
				title = t
			}
		}
		pos, hasPos := z.Position()
		if bar.Interaction() == RawHovered || title == nil || !hasPos ||
			z.phase == DropInactive || z.phase == DropCanceled || z.phase == DroppableLeft {
			hl.SetBackground(ColorNone)
			continue
		}

		area := CalculateDropArea(pos, e.geometry.Center(), e.geometry.Size)
		switch z.phase {
		case DroppableEntered, DroppableHover:
			full, half := Percent(100), Percent(50)
			var w, h, top, left Val
			switch area {
			case DropAreaCenter:
				barH := bar.geometry.Size.Y
				w, h, top, left = full, Px(e.geometry.Size.Y-barH), Px(barH), Auto()
			case DropAreaNorth:
				w, h, top, left = full, half, Auto(), Auto()
			case DropAreaEast:
				w, h, top, left = half, full, Auto(), half
			case DropAreaSouth:
				w, h, top, left = full, half, half, Auto()
			case DropAreaWest:
				w, h, top, left = half, full, Auto(), Auto()
			default:
				w, h, top, left = full, full, Auto(), Auto()
			}
			hl.SetWidth(w)
			hl.SetHeight(h)
			hl.SetTop(top)
			hl.SetLeft(left)
			hl.SetBackground(dockHighlight)
		case Dropped:
			drops = append(drops, drop{zone: e, tabs: tabs, title: title, area: area})
			hl.SetBackground(ColorNone)
		}
	}

	for _, d := range drops {
		if d.zone.disposed || d.title.disposed {
			continue
		}
		floating := ui.Element(d.title.Title.Panel)
		if floating == nil {
			ui.warn("dropped title has no floating panel", "title", d.title.ID)
			continue
		}
		var err error
		if d.area == DropAreaCenter {
			err = ui.DockPanel(d.tabs, floating)
		} else {
			_, err = ui.SplitDockingZone(d.zone, d.area.split(), floating)
		}
		if err != nil {
			ui.warn("dock on drop failed", "zone", d.zone.ID, "area", d.area, "err", err)
		}
	}
}

// updateZoneHandleContainers hides sized-zone resize handles while a floating
// panel is dragged by its title.
func (ui *UI) updateZoneHandleContainers() {
	seen, dragging := false, false
	for _, e := range ui.order {
		if e.Title == nil || e.Drag == nil || e.Drag.State == DragInactive {
			continue
		}
		seen = true
		if s := e.Drag.State; s == DragStart || s == Dragging {
			dragging = true
		}
	}
	if !seen {
		return
	}
	for _, e := range ui.order {
		if e.HandleContainer {
			e.SetRender(!dragging)
		}
	}
}

// cleanupEmptyDockingZones removes docking zones whose last tab was closed. A
// split container left with no zones is removed with it; one left with a
// single nested split hands that split's children to its own parent.
func (ui *UI) cleanupEmptyDockingZones() {
	var empty []*Element
	for _, e := range ui.order {
		if e.Tabs != nil && e.Tabs.changed && e.Tabs.count == 0 && e.removeEmpty != 0 {
			empty = append(empty, e)
		}
	}
	for _, tabs := range empty {
		zone := ui.Element(tabs.removeEmpty)
		if zone == nil || zone.disposed {
			continue
		}
		ui.removeDockingZone(zone)
	}
}

func (ui *UI) removeDockingZone(zone *Element) {
	parent := zone.Parent
	if parent == nil {
		ui.warn("docking zone has no parent", "zone", zone.ID)
		ui.Despawn(zone)
		return
	}

	if parent.SplitContainer {
		var remaining []*Element
		for _, c := range parent.children {
			if c == zone || c.HandleContainer {
				continue
			}
			if c.Zone != nil {
				remaining = append(remaining, c)
			}
		}
		switch {
		case len(remaining) == 0:
			ui.Despawn(parent)
			ui.emit(Event{Type: EventZoneRemoved, Element: zone.ID})
			return
		case len(remaining) == 1 && remaining[0].SplitContainer:
			if grand := parent.Parent; grand != nil {
				ui.hoistSplit(grand, parent, remaining[0])
			}
			ui.Despawn(parent)
			ui.emit(Event{Type: EventZoneRemoved, Element: zone.ID})
			return
		}
	}

	ui.Despawn(zone)
	ui.zonesDirty = true
	ui.emit(Event{Type: EventZoneRemoved, Element: zone.ID})
}

// hoistSplit moves the children of split into grand at the index of parent.
// The children keep their extent in grand: they shared split's main axis,
// which is parent's main axis in grand.
func (ui *UI) hoistSplit(grand, parent, split *Element) {
	scale := 1.0
	if parent.Zone != nil {
		scale = parent.Zone.Size() / 100
	}
	var moved []*Element
	for _, c := range split.children {
		if c.HandleContainer {
			continue
		}
		moved = append(moved, c)
	}
	for _, c := range moved {
		if c.Zone != nil {
			c.Zone.SetSize(c.Zone.Size() * scale)
		}
	}
	grand.InsertChildren(grand.mustChildIndex(parent), moved...)
	ui.zonesDirty = true
}
