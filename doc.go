// Package willowui is the interaction and docking-layout core of a retained
// mode UI for [Ebitengine].
//
// It classifies pointer input into flux interactions, animates element
// properties from those interactions (tweens via [gween]), runs drags and
// drops, and lays out resizable sized zones that panels can be docked into,
// split off from and popped out of. Measuring and drawing are left to the
// host: the host writes each element's [Geometry] after layout and reads its
// [Style] when drawing.
//
// # Quick start
//
//	ui := willowui.NewUI(willowui.DefaultConfig())
//	zone := ui.NewDockingZone(ui.Root(), willowui.SizedZoneConfig{Size: 100}, false)
//	tabs := ui.Element(zone.Dock.TabContainer())
//	ui.AddTab(tabs, "Inspector")
//
//	panel := ui.NewFloatingPanel(ui.Root(), willowui.FloatingPanelConfig{
//		Title:     "Assets",
//		Droppable: true,
//	})
//
// Call [UI.Update] from the game's Update, after the layout engine has
// written geometry for the previous frame's styles:
//
//	func (g *Game) Update() error {
//		g.layout.Apply(g.ui)
//		g.ui.Update()
//		return nil
//	}
//
// Dragging the panel's title over the zone highlights the drop area; dropping
// it in the middle docks it as a tab and dropping it near an edge splits the
// zone.
//
// # Frame pipeline
//
// Each update runs, in order: input and focus, flux classification,
// interactive-value controllers, drags, drop zones, floating panels and tabs,
// docking, empty-zone cleanup, and sized-zone resizing and refitting.
//
// # Events
//
// Set an [EventSink] with [UI.SetEventSink] to receive [Event] values.
// The willowui/ecs package forwards them to a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package willowui
