package willowui

// FocusPolicy decides whether an element stops the hover search from reaching
// elements stacked below it.
type FocusPolicy uint8

const (
	FocusPass  FocusPolicy = iota // elements below may be hovered as well (default)
	FocusBlock                    // elements below are not hovered
)

// Geometry is the measured placement of an element, written by the external
// layout engine. A zero Size means the element has not been laid out.
type Geometry struct {
	// Position is the top-left corner in window coordinates.
	Position Vec2
	Size     Vec2
	// StackIndex is the element's rank in painter order; higher is on top.
	StackIndex uint32
}

// Center returns the center point of the rectangle.
func (g Geometry) Center() Vec2 { return g.Position.Add(g.Size.Scale(0.5)) }

// Rect returns the rectangle covered by the element.
func (g Geometry) Rect() Rect {
	return Rect{X: g.Position.X, Y: g.Position.Y, Width: g.Size.X, Height: g.Size.Y}
}

// Laid reports whether the element has a measured size.
func (g Geometry) Laid() bool { return !g.Size.IsZero() }

// Element is the fundamental tree element. A single flat struct carries every
// role an element can play; role data lives behind optional pointers and is
// nil when the element does not have that role.
type Element struct {
	// Identity
	ID   ElementID
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout
	Style           Style
	geometry        Geometry
	geometryChanged bool

	// Interaction
	Interactable bool
	FocusPolicy  FocusPolicy
	interaction  *trackedInteraction

	// Drag and drop
	Drag      *Draggable
	Droppable bool
	Drop      *DropZone

	// Sized zones
	Zone       *SizedZone
	ZoneHandle *ZoneHandle
	// HandleContainer marks the overlays holding a sized zone's handles.
	HandleContainer bool

	// Docking
	Dock           *DockingZone
	SplitContainer bool
	removeEmpty    ElementID

	// Tabs and panels
	Tabs        *TabContainer
	Tab         *Tab
	Panel       *Panel
	Floating    *FloatingPanel
	Title       *PanelTitle
	PanelHandle *PanelHandle
	PanelButton *PanelButton

	// ResizeHandle is set on sized-zone and floating-panel resize handles.
	ResizeHandle *ResizeHandle

	// IsRoot marks the root of a UI context. Popped out panels attach to the
	// nearest root ancestor.
	IsRoot bool

	UserData any

	ui       *UI
	disposed bool
}

// Geometry returns the last measured geometry.
func (e *Element) Geometry() Geometry { return e.geometry }

// SetGeometry records the element's measured placement. Size changes of sized
// zones trigger a refit on the next update.
func (e *Element) SetGeometry(g Geometry) {
	if g.Size != e.geometry.Size {
		e.geometryChanged = true
	}
	e.geometry = g
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	e.AddChildAt(child, len(e.children))
}

// AddChildAt inserts child at the given index. A child already parented to e
// is removed first and index refers to the list without it; an index past the
// end appends.
func (e *Element) AddChildAt(child *Element, index int) {
	if child == nil {
		panic("willowui: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, e) {
		panic("willowui: adding child would create a cycle")
	}
	if index < 0 {
		panic("willowui: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index > len(e.children) {
		index = len(e.children)
	}
	child.Parent = e
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	e.markStructure(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// InsertChildren inserts children at index in order, reparenting each.
func (e *Element) InsertChildren(index int, children ...*Element) {
	for i, c := range children {
		e.AddChildAt(c, index+i)
	}
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("willowui: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
	e.markStructure(child)
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// ChildIndex returns the index of child among e's children, or -1.
func (e *Element) ChildIndex(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// mustChildIndex is ChildIndex for callers that hold a child reference taken
// from the tree. A miss means the tree is corrupt.
func (e *Element) mustChildIndex(child *Element) int {
	i := e.ChildIndex(child)
	if i < 0 {
		panic("willowui: element is not a child of its parent")
	}
	return i
}

// IsDisposed returns true if this element has been despawned.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// Flux returns the element's classified interaction, or FluxNone if the
// element does not track interactions.
func (e *Element) Flux() FluxInteraction {
	if e.interaction == nil {
		return FluxNone
	}
	return e.interaction.flux
}

// Interaction returns the raw pointer state from the focus pass.
func (e *Element) Interaction() RawInteraction {
	if e.interaction == nil {
		return RawNone
	}
	return e.interaction.raw
}

// Elapsed returns the time since the last flux change. ok is false when the
// stopwatch has expired or the element does not track interactions.
func (e *Element) Elapsed() (elapsed float64, ok bool) {
	if e.interaction == nil || !e.interaction.timing {
		return 0, false
	}
	return e.interaction.elapsed, true
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// markStructure flags the sized-zone structure for a resync when a zone is
// moved or when a zone gains or loses a sibling.
func (e *Element) markStructure(child *Element) {
	if e.ui == nil {
		return
	}
	if child.Zone != nil || e.Zone != nil {
		e.ui.zonesDirty = true
	}
}
