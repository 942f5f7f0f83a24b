package willowui

// MinSizedZoneSize is the smallest min size a sized zone can have, in pixels.
const MinSizedZoneSize = 50.0

var zoneBorderColor = Color{0.1, 0.1, 0.1, 1}

// SizedZone is a resizable region that takes a percentage of its parent's main
// axis. Sized zones alternate direction with their parent: the sized children
// of a row lay out as columns and vice versa.
type SizedZone struct {
	sizePercent  float64
	minSize      float64
	childrenSize float64
	direction    FlexDirection
	// handles are indexed by the handle slots below.
	handles [4]ElementID
	changed bool
}

// handle slots of a sized zone
const (
	handleTop = iota
	handleRight
	handleBottom
	handleLeft
)

// SizedZoneConfig configures a new sized zone. MinSize is raised to
// MinSizedZoneSize.
type SizedZoneConfig struct {
	Size    float64
	MinSize float64
}

// Size returns the zone's share of its parent's main axis in percent.
func (z *SizedZone) Size() float64 { return z.sizePercent }

// SetSize sets the zone's share in percent, clamped to [0, 100].
func (z *SizedZone) SetSize(size float64) {
	z.sizePercent = min(max(size, 0), 100)
	z.changed = true
}

// MinSize returns the zone's own minimum size in pixels.
func (z *SizedZone) MinSize() float64 { return z.minSize }

// ChildrenSize returns the effective floor: the larger of the zone's own
// minimum and the minimums of nested zones sharing its axis.
func (z *SizedZone) ChildrenSize() float64 { return z.childrenSize }

// Direction returns the zone's flex direction.
func (z *SizedZone) Direction() FlexDirection { return z.direction }

// ZoneHandle links a resize handle to the zone it resizes and the sibling
// zone that gives up or receives space.
type ZoneHandle struct {
	Zone      ElementID
	Neighbour ElementID
}

// NewSizedZone creates a sized zone as the last child of parent, with its
// resize handles.
func (ui *UI) NewSizedZone(parent *Element, cfg SizedZoneConfig) *Element {
	z := ui.NewElement("sized zone")
	z.Zone = &SizedZone{
		sizePercent: min(max(cfg.Size, 0), 100),
		minSize:     max(cfg.MinSize, MinSizedZoneSize),
		changed:     true,
	}
	z.SetWidth(Percent(100))
	z.SetHeight(Percent(100))
	z.SetBorderColor(zoneBorderColor)
	if parent != nil {
		parent.AddChild(z)
	}
	ui.addZoneHandles(z)
	ui.zonesDirty = true
	return z
}

// addZoneHandles gives z two overlay containers: one with the north and south
// handles and one with the west and east handles.
func (ui *UI) addZoneHandles(z *Element) {
	vertical := ui.newResizeHandleContainer(z, "zone handles vertical", FlexColumn, 10)
	horizontal := ui.newResizeHandleContainer(z, "zone handles horizontal", FlexRow, 11)
	vertical.HandleContainer = true
	horizontal.HandleContainer = true
	dirs := [4]ResizeDirection{handleTop: North, handleRight: East, handleBottom: South, handleLeft: West}
	for slot, d := range dirs {
		parent := vertical
		if d == East || d == West {
			parent = horizontal
		}
		h := ui.newResizeHandle(parent, d)
		h.ZoneHandle = &ZoneHandle{Zone: z.ID}
		z.Zone.handles[slot] = h.ID
	}
}

// zoneHandle returns the zone's resize handle for direction d, or nil for
// diagonal directions.
func (ui *UI) zoneHandle(z *SizedZone, d ResizeDirection) *Element {
	switch d {
	case North:
		return ui.Element(z.handles[handleTop])
	case East:
		return ui.Element(z.handles[handleRight])
	case South:
		return ui.Element(z.handles[handleBottom])
	case West:
		return ui.Element(z.handles[handleLeft])
	}
	return nil
}

// sizedZoneParents returns the distinct parents of all sized zones in
// creation order.
func (ui *UI) sizedZoneParents() []*Element {
	var parents []*Element
	seen := make(map[*Element]bool)
	for _, e := range ui.order {
		if e.Zone == nil || e.Parent == nil || seen[e.Parent] {
			continue
		}
		seen[e.Parent] = true
		parents = append(parents, e.Parent)
	}
	return parents
}

// syncZoneStructure recomputes directions, floors, borders and handles after
// zones were added, removed or moved.
func (ui *UI) syncZoneStructure() {
	if !ui.zonesDirty {
		return
	}
	ui.zonesDirty = false
	ui.presetZoneDirections()
	ui.presetZoneChildrenSize()
	ui.presetZoneHandles()
	ui.presetZoneBorders()
}

func (ui *UI) presetZoneDirections() {
	for _, e := range ui.order {
		if e.Zone == nil || e.Parent == nil || e.Parent.Zone != nil {
			continue
		}
		propagateZoneDirection(e, e.Parent.Style.FlexDirection)
	}
}

func propagateZoneDirection(e *Element, parentDir FlexDirection) {
	dir := parentDir.Crossed()
	if e.Zone.direction != dir {
		e.Zone.direction = dir
		e.Zone.changed = true
	}
	for _, c := range e.children {
		if c.Zone != nil {
			propagateZoneDirection(c, dir)
		}
	}
}

func (ui *UI) presetZoneChildrenSize() {
	for _, e := range ui.order {
		if e.Zone != nil {
			e.Zone.childrenSize = 0
		}
	}
	for _, e := range ui.order {
		z := e.Zone
		if z == nil {
			continue
		}
		for p := e.Parent; p != nil; p = p.Parent {
			if p.Zone != nil && p.Zone.direction == z.direction {
				p.Zone.childrenSize += z.minSize
			}
		}
	}
	for _, e := range ui.order {
		if z := e.Zone; z != nil {
			z.childrenSize = max(z.childrenSize, z.minSize)
		}
	}
}

func (ui *UI) presetZoneBorders() {
	for _, e := range ui.order {
		if e.Zone == nil {
			continue
		}
		switch e.Zone.direction {
		case FlexRow:
			e.SetBorder(VerticalEdges(2))
		case FlexColumn:
			e.SetBorder(HorizontalEdges(2))
		}
	}
}

// presetZoneHandles shows only the handles on seams between sibling zones and
// links each to the zone on the other side of its seam.
func (ui *UI) presetZoneHandles() {
	show := func(id ElementID, visible bool) {
		h := ui.Element(id)
		if h == nil {
			ui.warn("sized zone handle missing", "handle", id)
			return
		}
		if visible {
			h.SetVisibility(VisibilityInherited)
		} else {
			h.SetVisibility(VisibilityHidden)
		}
	}

	for _, parent := range ui.sizedZoneParents() {
		children := parent.children
		if len(children) == 1 {
			z := children[0].Zone
			for _, id := range z.handles {
				show(id, false)
			}
			continue
		}

		var zones []*Element
		prevIsZone := true
		for i, c := range children {
			z := c.Zone
			if z == nil {
				if c.Style.Position == PositionRelative {
					prevIsZone = false
				}
				continue
			}
			last := i == len(children)-1
			switch z.direction {
			case FlexRow:
				show(z.handles[handleTop], !prevIsZone)
				show(z.handles[handleBottom], !last)
				show(z.handles[handleRight], false)
				show(z.handles[handleLeft], false)
			case FlexColumn:
				show(z.handles[handleLeft], !prevIsZone)
				show(z.handles[handleRight], !last)
				show(z.handles[handleTop], false)
				show(z.handles[handleBottom], false)
			default:
				ui.warn("invalid flex direction on sized zone", "zone", c.ID, "direction", z.direction)
			}
			prevIsZone = true
			zones = append(zones, c)
		}

		for i, c := range zones {
			z := c.Zone
			var prev, next ElementID
			switch z.direction {
			case FlexRow:
				prev, next = z.handles[handleTop], z.handles[handleBottom]
			case FlexColumn:
				prev, next = z.handles[handleLeft], z.handles[handleRight]
			default:
				ui.warn("invalid flex direction on sized zone", "zone", c.ID, "direction", z.direction)
				continue
			}
			if i == 0 {
				show(prev, false)
			}
			if i == len(zones)-1 {
				show(next, false)
			}
			var before, after ElementID
			if i > 0 {
				before = zones[i-1].ID
			}
			if i < len(zones)-1 {
				after = zones[i+1].ID
			}
			ui.setHandleNeighbour(prev, before)
			ui.setHandleNeighbour(next, after)
		}
	}
}

func (ui *UI) setHandleNeighbour(handle, neighbour ElementID) {
	if h := ui.Element(handle); h != nil && h.ZoneHandle != nil {
		h.ZoneHandle.Neighbour = neighbour
	}
}

// resizeZonePair moves diff pixels between two adjacent zones of size current
// and neighbour. A zone never shrinks below its floor; whatever the shrinking
// zone cannot give up is dropped, not passed on to other siblings.
func resizeZonePair(current, neighbour, currentMin, neighbourMin, diff float64) (float64, float64) {
	currentNew, neighbourNew := current, neighbour
	switch {
	case diff < 0:
		if current+diff >= currentMin {
			currentNew += diff
			neighbourNew -= diff
		} else {
			currentNew = currentMin
			neighbourNew += current - currentMin
		}
	case diff > 0:
		if neighbour-diff >= neighbourMin {
			neighbourNew -= diff
			currentNew += diff
		} else {
			neighbourNew = neighbourMin
			currentNew += neighbour - neighbourMin
		}
	}
	return currentNew, neighbourNew
}

// zoneAxis returns the component of v along the main axis of a zone with
// direction d. ok is false for reversed directions.
func zoneAxis(d FlexDirection, v Vec2) (float64, bool) {
	switch d {
	case FlexRow:
		return v.Y, true
	case FlexColumn:
		return v.X, true
	}
	return 0, false
}

// updateZonesOnResize applies handle drags to the dragged zone and its
// neighbour.
func (ui *UI) updateZonesOnResize() {
	for _, h := range ui.order {
		ref, d := h.ZoneHandle, h.Drag
		if ref == nil || d == nil || h.ResizeHandle == nil || ref.Neighbour == 0 {
			continue
		}
		if !d.State.moving() || d.Diff.IsZero() {
			continue
		}
		cur, nb := ui.Element(ref.Zone), ui.Element(ref.Neighbour)
		if cur == nil || nb == nil || cur.Zone == nil || nb.Zone == nil {
			continue
		}
		if cur.Parent != nb.Parent {
			ui.warn("neighbouring sized zones have different parents", "zone", cur.ID, "neighbour", nb.ID)
			continue
		}
		sizeDiff, ok := zoneAxis(cur.Zone.direction, h.ResizeHandle.Direction.SizeDiff(d.Diff))
		if !ok {
			ui.warn("invalid flex direction on sized zone", "zone", cur.ID, "direction", cur.Zone.direction)
			continue
		}
		if sizeDiff == 0 {
			continue
		}
		if cur.Parent == nil {
			ui.warn("sized zone has no parent", "zone", cur.ID)
			continue
		}
		total, _ := zoneAxis(cur.Zone.direction, cur.Parent.geometry.Size)
		if total == 0 {
			continue
		}
		c, n := resizeZonePair(
			cur.Zone.sizePercent/100*total,
			nb.Zone.sizePercent/100*total,
			cur.Zone.childrenSize,
			nb.Zone.childrenSize,
			sizeDiff,
		)
		cur.Zone.SetSize(c / total * 100)
		nb.Zone.SetSize(n / total * 100)
	}
}

// fitZones rescales zone percentages from their measured sizes, so that zones
// keep their proportions after the window or a sibling changes size.
func (ui *UI) fitZones() {
	run := ui.zonesRemoved
	for _, e := range ui.order {
		if e.Zone != nil && e.geometryChanged {
			run = true
		}
		e.geometryChanged = false
	}
	ui.zonesRemoved = false
	if !run {
		return
	}

	for _, parent := range ui.sizedZoneParents() {
		if !parent.geometry.Laid() {
			continue
		}
		var nonSized, sumZones Vec2
		for _, c := range parent.children {
			switch {
			case c.Zone != nil:
				sumZones = sumZones.Add(c.geometry.Size)
			case c.Style.Position == PositionRelative:
				nonSized = nonSized.Add(c.geometry.Size)
			}
		}
		for _, c := range parent.children {
			z := c.Zone
			if z == nil {
				continue
			}
			total, ok := zoneAxis(z.direction, parent.geometry.Size)
			if !ok {
				continue
			}
			other, _ := zoneAxis(z.direction, nonSized)
			sum, _ := zoneAxis(z.direction, sumZones)
			own, _ := zoneAxis(z.direction, c.geometry.Size)
			sized := total - other
			if total == 0 || sum == 0 || sized <= 0 {
				continue
			}
			z.SetSize(max(own, z.childrenSize) / total * 100 * (sized / sum))
		}
	}
}

// syncZoneStyles writes changed zone sizes and directions into their styles.
func (ui *UI) syncZoneStyles() {
	for _, e := range ui.order {
		z := e.Zone
		if z == nil || !z.changed {
			continue
		}
		z.changed = false
		e.SetFlexDirection(z.direction)
		switch z.direction {
		case FlexRow:
			e.SetWidth(Percent(100))
			e.SetHeight(Percent(z.sizePercent))
		case FlexColumn:
			e.SetWidth(Percent(z.sizePercent))
			e.SetHeight(Percent(100))
		}
	}
}
