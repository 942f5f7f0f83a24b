package willowui

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorNone is fully transparent black, used to clear overlays.
var ColorNone = Color{}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp interpolates each channel toward to by t. Channels are clamped to [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: clamp01(lerpFloat(c.R, to.R, t)),
		G: clamp01(lerpFloat(c.G, to.G, t)),
		B: clamp01(lerpFloat(c.B, to.B, t)),
		A: clamp01(lerpFloat(c.A, to.A, t)),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ElementID identifies an element for the lifetime of its UI. Zero is never
// assigned and means "no element".
type ElementID uint32

// FlexDirection is the main axis along which an element lays out its children.
type FlexDirection uint8

const (
	FlexRow           FlexDirection = iota // children left to right
	FlexColumn                             // children top to bottom
	FlexRowReverse                         // children right to left
	FlexColumnReverse                      // children bottom to top
)

// Crossed returns the direction a sized child of an element with direction d
// lays out in. Row parents produce column children and vice versa.
func (d FlexDirection) Crossed() FlexDirection {
	switch d {
	case FlexRow, FlexRowReverse:
		return FlexColumn
	default:
		return FlexRow
	}
}

func (d FlexDirection) String() string {
	switch d {
	case FlexRow:
		return "row"
	case FlexColumn:
		return "column"
	case FlexRowReverse:
		return "row-reverse"
	case FlexColumnReverse:
		return "column-reverse"
	default:
		return "unknown"
	}
}

// PositionType selects whether an element takes part in its parent's flow.
type PositionType uint8

const (
	PositionRelative PositionType = iota // laid out in flow (default)
	PositionAbsolute                     // positioned independently of siblings
)

// Unit is the unit of a Val.
type Unit uint8

const (
	UnitAuto    Unit = iota // sized by the layout engine
	UnitPx                  // logical pixels
	UnitPercent             // percent of the parent's size
)

// Val is a style length.
type Val struct {
	Unit  Unit
	Value float64
}

// Auto returns an automatic length.
func Auto() Val { return Val{} }

// Px returns a pixel length.
func Px(v float64) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a percentage length.
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Lerp interpolates between two lengths of the same unit. Lengths with
// different units cannot be interpolated and v is returned unchanged.
func (v Val) Lerp(to Val, t float64) Val {
	if v.Unit == UnitAuto || v.Unit != to.Unit {
		return v
	}
	return Val{Unit: v.Unit, Value: lerpFloat(v.Value, to.Value, t)}
}

// Edges holds per-side lengths in pixels (borders, margins).
type Edges struct {
	Top, Right, Bottom, Left float64
}

// VerticalEdges returns edges with only top and bottom set.
func VerticalEdges(v float64) Edges { return Edges{Top: v, Bottom: v} }

// HorizontalEdges returns edges with only left and right set.
func HorizontalEdges(v float64) Edges { return Edges{Left: v, Right: v} }

// Lerp interpolates each side toward to by t.
func (e Edges) Lerp(to Edges, t float64) Edges {
	return Edges{
		Top:    lerpFloat(e.Top, to.Top, t),
		Right:  lerpFloat(e.Right, to.Right, t),
		Bottom: lerpFloat(e.Bottom, to.Bottom, t),
		Left:   lerpFloat(e.Left, to.Left, t),
	}
}

// Optional holds a value that may be absent.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some wraps v as a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Valid: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Or returns the wrapped value, or fallback when absent.
func (o Optional[T]) Or(fallback T) T {
	if o.Valid {
		return o.Value
	}
	return fallback
}

func lerpFloat(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
