package willowui

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Resize arithmetic ---

func TestResizeZonePairProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("sizes are conserved and floors respected", prop.ForAll(
		func(curMin, curExtra, nbMin, nbExtra, diff float64) bool {
			cur, nb := curMin+curExtra, nbMin+nbExtra
			c, n := resizeZonePair(cur, nb, curMin, nbMin, diff)
			return math.Abs((c+n)-(cur+nb)) < 1e-9 && c >= curMin && n >= nbMin
		},
		gen.Float64Range(0, 300),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 300),
		gen.Float64Range(0, 1000),
		gen.Float64Range(-1500, 1500),
	))

	properties.Property("a zero diff changes nothing", prop.ForAll(
		func(cur, nb float64) bool {
			c, n := resizeZonePair(cur, nb, 0, 0, 0)
			return c == cur && n == nb
		},
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 1000),
	))

	properties.TestingRun(t)
}

func TestResizeZonePair(t *testing.T) {
	tests := []struct {
		name                   string
		cur, nb, curMin, nbMin float64
		diff                   float64
		wantCur, wantNb        float64
	}{
		{"grow", 500, 500, 50, 50, 100, 600, 400},
		{"shrink", 500, 500, 50, 50, -100, 400, 600},
		{"grow into neighbour floor", 500, 500, 50, 50, 600, 950, 50},
		{"shrink below own floor", 500, 500, 50, 50, -600, 50, 950},
		{"neighbour already at floor", 500, 50, 50, 50, 10, 500, 50},
	}
	for _, tt := range tests {
		c, n := resizeZonePair(tt.cur, tt.nb, tt.curMin, tt.nbMin, tt.diff)
		if c != tt.wantCur || n != tt.wantNb {
			t.Errorf("%s: got %v, %v; want %v, %v", tt.name, c, n, tt.wantCur, tt.wantNb)
		}
	}
}

// --- Structure ---

// twoZones lays out two 50% zones side by side under a 1000x500 root.
func twoZones(t *testing.T) (*UI, *Element, *Element) {
	t.Helper()
	ui, _ := newTestUI(t)
	ui.SetWindowSize(1000, 500)
	a := ui.NewSizedZone(ui.Root(), SizedZoneConfig{Size: 50})
	b := ui.NewSizedZone(ui.Root(), SizedZoneConfig{Size: 50})
	place(a, 0, 0, 500, 500, 1)
	place(b, 500, 0, 500, 500, 1)
	ui.Step(testDT)
	return ui, a, b
}

func TestSizedZoneDirections(t *testing.T) {
	ui, a, _ := twoZones(t)
	nested := ui.NewSizedZone(a, SizedZoneConfig{Size: 100})
	deeper := ui.NewSizedZone(nested, SizedZoneConfig{Size: 100})
	ui.Step(testDT)

	assert.Equal(t, FlexColumn, a.Zone.Direction())
	assert.Equal(t, FlexRow, nested.Zone.Direction())
	assert.Equal(t, FlexColumn, deeper.Zone.Direction())

	assert.Equal(t, Percent(50), a.Style.Width)
	assert.Equal(t, Percent(100), a.Style.Height)
	assert.Equal(t, Percent(100), nested.Style.Width)
	assert.Equal(t, Percent(100), nested.Style.Height)
	assert.Equal(t, HorizontalEdges(2), a.Style.Border)
	assert.Equal(t, VerticalEdges(2), nested.Style.Border)
}

func TestSizedZoneMinSizeFloor(t *testing.T) {
	ui, _ := newTestUI(t)
	z := ui.NewSizedZone(ui.Root(), SizedZoneConfig{Size: 100, MinSize: 10})
	assert.Equal(t, MinSizedZoneSize, z.Zone.MinSize())
	assert.Equal(t, 100.0, z.Zone.Size())

	z.Zone.SetSize(140)
	assert.Equal(t, 100.0, z.Zone.Size())
	z.Zone.SetSize(-3)
	assert.Equal(t, 0.0, z.Zone.Size())
}

func TestSizedZoneChildrenSize(t *testing.T) {
	ui, a, _ := twoZones(t)
	// A row child does not share the column zone's axis; its column children
	// do.
	row := ui.NewSizedZone(a, SizedZoneConfig{Size: 100, MinSize: 100})
	ui.NewSizedZone(row, SizedZoneConfig{Size: 50, MinSize: 200})
	ui.NewSizedZone(row, SizedZoneConfig{Size: 50, MinSize: 150})
	ui.Step(testDT)

	assert.Equal(t, 100.0, row.Zone.ChildrenSize())
	assert.Equal(t, 350.0, a.Zone.ChildrenSize())
}

func TestSizedZoneHandles(t *testing.T) {
	ui, a, b := twoZones(t)

	visible := func(z *Element, d ResizeDirection) bool {
		h := ui.zoneHandle(z.Zone, d)
		require.NotNil(t, h)
		return h.Style.Visibility != VisibilityHidden
	}
	assert.False(t, visible(a, West))
	assert.True(t, visible(a, East))
	assert.False(t, visible(b, West))
	assert.False(t, visible(b, East))
	assert.False(t, visible(a, North))
	assert.False(t, visible(a, South))

	assert.Equal(t, b.ID, ui.zoneHandle(a.Zone, East).ZoneHandle.Neighbour)
	assert.Equal(t, a.ID, ui.zoneHandle(b.Zone, West).ZoneHandle.Neighbour)
	assert.Zero(t, ui.zoneHandle(a.Zone, West).ZoneHandle.Neighbour)
}

func TestSizedZoneSingleChildHidesHandles(t *testing.T) {
	ui, _ := newTestUI(t)
	z := ui.NewSizedZone(ui.Root(), SizedZoneConfig{Size: 100})
	ui.Step(testDT)
	for _, d := range []ResizeDirection{North, East, South, West} {
		if h := ui.zoneHandle(z.Zone, d); h.Style.Visibility != VisibilityHidden {
			t.Errorf("%v handle visible on a lone zone", d)
		}
	}
}

// --- Resizing ---

func dragZoneHandle(ui *UI, h *Element, from, to Vec2) {
	place(h, from.X-2, 0, 4, 500, 50)
	pressStep(ui, from.X, from.Y)
	moveStep(ui, to.X, to.Y)
	releaseStep(ui, to.X, to.Y)
}

func TestSizedZoneResizeByHandle(t *testing.T) {
	ui, a, b := twoZones(t)
	h := ui.zoneHandle(a.Zone, East)

	dragZoneHandle(ui, h, Vec2{500, 250}, Vec2{600, 250})
	assert.InDelta(t, 60, a.Zone.Size(), 1e-9)
	assert.InDelta(t, 40, b.Zone.Size(), 1e-9)
	assert.Equal(t, UnitPercent, a.Style.Width.Unit)
	assert.InDelta(t, 60, a.Style.Width.Value, 1e-9)
}

func TestSizedZoneResizeStopsAtFloor(t *testing.T) {
	ui, a, b := twoZones(t)
	h := ui.zoneHandle(a.Zone, East)

	dragZoneHandle(ui, h, Vec2{500, 250}, Vec2{1000, 250})
	assert.InDelta(t, 95, a.Zone.Size(), 1e-9)
	assert.InDelta(t, 5, b.Zone.Size(), 1e-9)
}

func TestSizedZoneHandleCursor(t *testing.T) {
	ui, cur := newTestUI(t)
	ui.SetWindowSize(1000, 500)
	a := ui.NewSizedZone(ui.Root(), SizedZoneConfig{Size: 50})
	ui.NewSizedZone(ui.Root(), SizedZoneConfig{Size: 50})
	ui.Step(testDT)
	place(ui.zoneHandle(a.Zone, East), 498, 0, 4, 500, 50)

	hoverStep(ui, 500, 250)
	require.NotEmpty(t, cur.shapes)
	assert.Equal(t, CursorEWResize, cur.shapes[len(cur.shapes)-1])

	hoverStep(ui, 200, 250)
	assert.Equal(t, CursorDefault, cur.shapes[len(cur.shapes)-1])
}

// --- Fitting ---

func TestFitZonesFollowsGeometry(t *testing.T) {
	ui, a, b := twoZones(t)
	place(a, 0, 0, 300, 500, 1)
	place(b, 300, 0, 700, 500, 1)
	ui.Step(testDT)

	assert.InDelta(t, 30, a.Zone.Size(), 1e-9)
	assert.InDelta(t, 70, b.Zone.Size(), 1e-9)
}

func TestFitZonesAfterRemoval(t *testing.T) {
	ui, a, b := twoZones(t)
	ui.Despawn(b)
	ui.Step(testDT)
	assert.InDelta(t, 100, a.Zone.Size(), 1e-9)
}

func TestFitZonesSkipsUnchanged(t *testing.T) {
	ui, a, _ := twoZones(t)
	a.Zone.SetSize(42)
	ui.Step(testDT)
	assert.InDelta(t, 42, a.Zone.Size(), 1e-9)
}
