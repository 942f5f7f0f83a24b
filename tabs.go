package willowui

import "fmt"

const tabBarHeight = 30.0

var (
	tabActiveBackground      = Color{0.5, 0.5, 0.5, 1}
	tabHighlight             = Color{0.9, 0.8, 0.7, 0.5}
	tabPlaceholderBackground = Color{0, 0, 0.5, 1}
	tabBorderColor           = Color{0.25, 0.25, 0.25, 1}
)

// TabContainer shows one of several panels, selected by a bar of tabs.
type TabContainer struct {
	bar      ElementID
	viewport ElementID
	active   int
	count    int
	changed  bool
}

// Bar returns the id of the tab bar element.
func (tc *TabContainer) Bar() ElementID { return tc.bar }

// Viewport returns the id of the element holding the panels.
func (tc *TabContainer) Viewport() ElementID { return tc.viewport }

// Active returns the index of the visible tab.
func (tc *TabContainer) Active() int { return tc.active }

// TabCount returns the number of tabs.
func (tc *TabContainer) TabCount() int { return tc.count }

// SetActive selects the visible tab.
func (tc *TabContainer) SetActive(i int) {
	tc.active = i
	tc.changed = true
}

// Tab is a selectable entry in a tab bar.
type Tab struct {
	Title     string
	container ElementID
	bar       ElementID
	panel     ElementID

	placeholder   ElementID
	originalIndex Optional[int]
}

// Container returns the id of the owning tab container.
func (t *Tab) Container() ElementID { return t.container }

// PanelID returns the id of the panel the tab shows.
func (t *Tab) PanelID() ElementID { return t.panel }

// Panel is a titled content element.
type Panel struct {
	Title string
}

// NewTabContainer creates a tab container as the last child of parent.
func (ui *UI) NewTabContainer(parent *Element) *Element {
	c := ui.NewElement("tab container")
	c.SetWidth(Percent(100))
	c.SetHeight(Percent(100))
	c.SetFlexDirection(FlexColumn)

	bar := ui.NewElement("tab bar")
	bar.Interactable = true
	bar.TrackInteraction()
	bar.SetWidth(Percent(100))
	bar.SetHeight(Px(tabBarHeight))
	bar.SetBorder(Edges{Bottom: 1})
	bar.SetBorderColor(tabBorderColor)
	c.AddChild(bar)

	viewport := ui.NewElement("tab viewport")
	viewport.SetWidth(Percent(100))
	viewport.SetHeight(Percent(100))
	c.AddChild(viewport)

	c.Tabs = &TabContainer{bar: bar.ID, viewport: viewport.ID, changed: true}
	if parent != nil {
		parent.AddChild(c)
	}
	return c
}

// newTab creates a tab for panel in the container's bar.
func (ui *UI) newTab(container *Element, title string, panel *Element) *Element {
	tc := container.Tabs
	bar := ui.Element(tc.bar)
	t := ui.NewElement("tab " + title)
	t.Tab = &Tab{Title: title, container: container.ID, bar: tc.bar, panel: panel.ID}
	t.FocusPolicy = FocusBlock
	t.SetBorder(HorizontalEdges(1))
	t.SetBorderColor(tabBorderColor)
	t.MakeDraggable()
	ui.backgrounds.Attach(t, InteractionConfig[Color]{Highlight: Some(tabHighlight)}, ui.highlightAnimation())
	bar.AddChild(t)
	return t
}

// AddTab adds a new panel with the given title to a tab container and returns
// the tab and the panel. The new tab does not become active.
func (ui *UI) AddTab(container *Element, title string) (tab, panel *Element, err error) {
	if container == nil || container.Tabs == nil {
		return nil, nil, fmt.Errorf("add tab %q: %w", title, ErrNotTabContainer)
	}
	viewport := ui.Element(container.Tabs.viewport)
	if viewport == nil {
		return nil, nil, fmt.Errorf("add tab %q: container %d: %w", title, container.ID, ErrMissingViewport)
	}
	panel = ui.NewPanel(viewport, title)
	tab = ui.newTab(container, title, panel)
	container.Tabs.count++
	container.Tabs.changed = true
	return tab, panel, nil
}

// NewPanel creates a titled panel as the last child of parent.
func (ui *UI) NewPanel(parent *Element, title string) *Element {
	p := ui.NewElement("panel " + title)
	p.Panel = &Panel{Title: title}
	p.SetWidth(Percent(100))
	p.SetHeight(Percent(100))
	if parent != nil {
		parent.AddChild(p)
	}
	return p
}

// DockPanel moves the content of a floating panel into a new tab of container
// and despawns the floating panel. The new tab becomes active.
func (ui *UI) DockPanel(container, floating *Element) error {
	if container == nil || container.Tabs == nil {
		return fmt.Errorf("dock panel: %w", ErrNotTabContainer)
	}
	if floating == nil || floating.Floating == nil {
		return fmt.Errorf("dock panel into %d: %w", container.ID, ErrNotFloatingPanel)
	}
	panel := ui.Element(floating.Floating.content)
	if panel == nil || panel.Panel == nil {
		return fmt.Errorf("dock floating panel %d: %w", floating.ID, ErrMissingPanel)
	}
	viewport := ui.Element(container.Tabs.viewport)
	if viewport == nil {
		return fmt.Errorf("dock floating panel %d: %w", floating.ID, ErrMissingViewport)
	}
	ui.newTab(container, panel.Panel.Title, panel)
	viewport.AddChild(panel)
	ui.Despawn(floating)
	panel.SetRender(false)

	tc := container.Tabs
	tc.count++
	tc.active = tc.count - 1
	tc.changed = true
	ui.emit(Event{Type: EventPanelDocked, Element: container.ID, Other: panel.ID})
	return nil
}

// removeTab drops a tab from its container's count and keeps the active index
// in range.
func (ui *UI) removeTab(tab *Element) (*Element, error) {
	if tab == nil || tab.Tab == nil {
		return nil, ErrNotTab
	}
	container := ui.Element(tab.Tab.container)
	if container == nil || container.Tabs == nil {
		return nil, fmt.Errorf("tab %d: %w", tab.ID, ErrNotTabContainer)
	}
	tc := container.Tabs
	tc.count = max(tc.count-1, 0)
	if tc.active >= tc.count {
		tc.active = max(tc.count-1, 0)
	}
	tc.changed = true
	return container, nil
}

// CloseTab despawns a tab and its panel.
func (ui *UI) CloseTab(tab *Element) error {
	if _, err := ui.removeTab(tab); err != nil {
		return fmt.Errorf("close tab: %w", err)
	}
	if p := ui.Element(tab.Tab.panel); p != nil {
		ui.Despawn(p)
	}
	ui.Despawn(tab)
	return nil
}

// PopoutTab moves a tab's panel into a new floating panel, sized to 80% of
// the tab container and placed at the tab. The panel is attached to the
// nearest root ancestor, or the topmost ancestor if there is none.
func (ui *UI) PopoutTab(tab *Element) (*Element, error) {
	container, err := ui.removeTab(tab)
	if err != nil {
		return nil, fmt.Errorf("pop out tab: %w", err)
	}
	panel := ui.Element(tab.Tab.panel)
	if panel == nil || panel.Panel == nil {
		return nil, fmt.Errorf("pop out tab %d: %w", tab.ID, ErrMissingPanel)
	}

	root := container
	for p := container.Parent; p != nil; p = p.Parent {
		root = p
		if p.IsRoot {
			break
		}
	}

	size := container.geometry.Size.Scale(0.8)
	pos := tab.geometry.Position
	ui.Despawn(tab)
	fp := ui.NewFloatingPanel(root, FloatingPanelConfig{
		Title:     panel.Panel.Title,
		Size:      size,
		Position:  Some(pos),
		Droppable: true,
	})
	ui.attachPanelContent(fp, panel)
	return fp, nil
}

// updateTabsOnPress activates a tab when it is pressed.
func (ui *UI) updateTabsOnPress() {
	for _, e := range ui.order {
		if e.Tab == nil || e.interaction == nil || !e.interaction.rawChanged || e.interaction.raw != RawPressed {
			continue
		}
		container := ui.Element(e.Tab.container)
		if container == nil || container.Tabs == nil {
			continue
		}
		bar := ui.Element(container.Tabs.bar)
		if bar == nil {
			continue
		}
		i := 0
		for _, c := range bar.children {
			if c.Tab == nil {
				continue
			}
			if c == e {
				container.Tabs.SetActive(i)
				break
			}
			i++
		}
	}
}

// updateTabsOnChange shows the active tab's panel and hides the others. Tabs
// only react to the pointer when there is more than one.
func (ui *UI) updateTabsOnChange() {
	for _, e := range ui.order {
		tc := e.Tabs
		if tc == nil || !tc.changed {
			continue
		}
		bar := ui.Element(tc.bar)
		if bar == nil {
			continue
		}
		tabs := tabsOf(bar)
		enabled := len(tabs) > 1
		for i, t := range tabs {
			if enabled {
				t.EnableInteraction()
			} else {
				t.DisableInteraction()
			}
			panel := ui.Element(t.Tab.panel)
			if i == tc.active {
				t.SetBackground(tabActiveBackground)
				ui.backgrounds.SetOriginal(t, tabActiveBackground)
				if panel != nil {
					panel.SetRender(true)
				}
			} else {
				t.SetBackground(ColorNone)
				ui.backgrounds.SetOriginal(t, ColorNone)
				if panel != nil {
					panel.SetRender(false)
				}
			}
		}
	}
}

func tabsOf(bar *Element) []*Element {
	var tabs []*Element
	for _, c := range bar.children {
		if c.Tab != nil {
			tabs = append(tabs, c)
		}
	}
	return tabs
}

// handleTabDragging reorders tabs by dragging. A placeholder keeps the slot
// the tab will drop into.
func (ui *UI) handleTabDragging() {
	for _, e := range ui.order {
		d := e.Drag
		if e.Tab == nil || d == nil {
			continue
		}
		switch d.State {
		case DragStart, Dragging, DragEnd, DragCanceled:
		default:
			continue
		}
		container := ui.Element(e.Tab.container)
		if container == nil || container.Tabs == nil {
			ui.warn("tried to drag orphan tab", "tab", e.ID)
			continue
		}
		bar := ui.Element(container.Tabs.bar)
		if bar == nil {
			ui.warn("tab container has no tab bar", "container", container.ID)
			continue
		}
		tabs := tabsOf(bar)
		if len(tabs) < 2 {
			continue
		}

		switch d.State {
		case DragStart:
			ui.startTabDrag(e, bar, tabs)
		case Dragging:
			ui.moveTabDrag(e, bar)
		case DragEnd:
			ui.endTabDrag(e, bar, tabs, false)
		case DragCanceled:
			ui.endTabDrag(e, bar, tabs, true)
		}
	}
}

func (ui *UI) startTabDrag(tab, bar *Element, tabs []*Element) {
	for _, t := range tabs {
		if t != tab {
			t.DisableInteraction()
		}
	}
	index := bar.mustChildIndex(tab)
	size := tab.geometry.Size
	ph := ui.NewElement("tab placeholder")
	ph.SetWidth(Px(size.X * 1.1))
	ph.SetHeight(Px(size.Y))
	ph.SetBackground(tabPlaceholderBackground)
	bar.AddChildAt(ph, index)

	tab.SetPositionType(PositionAbsolute)
	tab.SetLeft(Px(tab.geometry.Position.X - bar.geometry.Position.X))
	tab.SetZIndex(100)
	tab.Tab.placeholder = ph.ID
	tab.Tab.originalIndex = Some(index)
}

func (ui *UI) moveTabDrag(tab, bar *Element) {
	d := tab.Drag
	if d.Diff.IsZero() || !d.Position.Valid {
		return
	}
	ph := ui.Element(tab.Tab.placeholder)
	if ph == nil {
		ui.warn("tab missing placeholder", "tab", tab.ID)
		return
	}
	pos := d.Position.Value

	// Indexes below refer to the bar's children without the placeholder.
	var others []*Element
	for _, c := range bar.children {
		if c != ph {
			others = append(others, c)
		}
	}
	for i, c := range others {
		if c == tab || c.Tab == nil || !c.geometry.Laid() {
			continue
		}
		if !c.geometry.Rect().Contains(pos.X, c.geometry.Position.Y) {
			continue
		}
		target := i
		if pos.X >= c.geometry.Center().X {
			target = i + 1
		}
		bar.AddChildAt(ph, target)
		break
	}

	left := tab.Style.Left.Value + d.Diff.X
	tab.SetLeft(Px(left))
}

func (ui *UI) endTabDrag(tab, bar *Element, tabs []*Element, canceled bool) {
	for _, t := range tabs {
		if t != tab {
			t.EnableInteraction()
		}
	}
	ph := ui.Element(tab.Tab.placeholder)
	if ph == nil {
		ui.warn("tab missing placeholder", "tab", tab.ID)
		return
	}
	tab.SetPositionType(PositionRelative)
	tab.SetLeft(Auto())
	tab.SetZIndex(0)
	if canceled {
		ui.Despawn(ph)
		bar.AddChildAt(tab, tab.Tab.originalIndex.Or(0))
	} else {
		bar.RemoveChild(tab)
		bar.AddChildAt(tab, bar.mustChildIndex(ph))
		ui.Despawn(ph)
	}
	tab.Tab.placeholder = 0
	tab.Tab.originalIndex = None[int]()

	if container := ui.Element(tab.Tab.container); container != nil {
		for i, t := range tabsOf(bar) {
			if t == tab {
				container.Tabs.SetActive(i)
			}
		}
	}
	ui.emit(Event{Type: EventTabMoved, Element: tab.ID})
}

// sweepOrphans despawns tabs whose container is gone and panel titles whose
// panel is gone.
func (ui *UI) sweepOrphans() {
	var orphans []*Element
	for _, e := range ui.order {
		switch {
		case e.Tab != nil:
			if c := ui.Element(e.Tab.container); c == nil || c.Tabs == nil {
				orphans = append(orphans, e)
			}
		case e.Title != nil:
			if p := ui.Element(e.Title.Panel); p == nil || p.Floating == nil {
				orphans = append(orphans, e)
			}
		}
	}
	for _, e := range orphans {
		if !e.disposed {
			ui.debugf("despawning orphan", "element", e.ID, "name", e.Name)
			ui.Despawn(e)
		}
	}
}
