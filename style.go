package willowui

// StyleAttr names one attribute of a Style. Attributes combine as a bit set
// for locking and change tracking.
type StyleAttr uint32

const (
	AttrWidth StyleAttr = 1 << iota
	AttrHeight
	AttrLeft
	AttrTop
	AttrFlexDirection
	AttrPosition
	AttrBackground
	AttrBorderColor
	AttrBorder
	AttrMargin
	AttrVisibility
	AttrRender
	AttrZIndex
)

// Visibility controls whether an element is drawn and hit tested. Hidden
// elements keep their layout space.
type Visibility uint8

const (
	VisibilityInherited Visibility = iota
	VisibilityHidden
	VisibilityVisible
)

// Style is the property sink read by the external layout engine and renderer.
// Fields may be read directly; writes should go through the Element setters so
// that locks and change tracking are honored.
type Style struct {
	Width, Height Val
	Left, Top     Val

	FlexDirection FlexDirection
	Position      PositionType

	Background  Color
	BorderColor Color
	Border      Edges
	Margin      Edges

	Visibility Visibility
	// Render false removes the element from layout entirely.
	Render bool
	ZIndex int

	locked  StyleAttr
	changed StyleAttr
}

// DefaultStyle returns the style new elements start with.
func DefaultStyle() Style {
	return Style{Render: true}
}

// Lock prevents the given attributes from being written by setters.
func (s *Style) Lock(attrs StyleAttr) { s.locked |= attrs }

// Unlock re-enables writes to the given attributes.
func (s *Style) Unlock(attrs StyleAttr) { s.locked &^= attrs }

// IsLocked reports whether any of attrs is locked.
func (s *Style) IsLocked(attrs StyleAttr) bool { return s.locked&attrs != 0 }

// Changed returns the attributes written since the last ClearChanged.
func (s *Style) Changed() StyleAttr { return s.changed }

// ClearChanged resets change tracking. The layout engine calls this after it
// has consumed the style.
func (s *Style) ClearChanged() { s.changed = 0 }

// setAttr writes v into field unless attr is locked. A write of an equal value
// is accepted without marking the attribute changed.
func setAttr[T comparable](s *Style, attr StyleAttr, field *T, v T) bool {
	if s.locked&attr != 0 {
		return false
	}
	if *field == v {
		return true
	}
	*field = v
	s.changed |= attr
	return true
}

// The setters below return false when the attribute is locked.

func (e *Element) SetWidth(v Val) bool  { return setAttr(&e.Style, AttrWidth, &e.Style.Width, v) }
func (e *Element) SetHeight(v Val) bool { return setAttr(&e.Style, AttrHeight, &e.Style.Height, v) }
func (e *Element) SetLeft(v Val) bool   { return setAttr(&e.Style, AttrLeft, &e.Style.Left, v) }
func (e *Element) SetTop(v Val) bool    { return setAttr(&e.Style, AttrTop, &e.Style.Top, v) }

func (e *Element) SetFlexDirection(d FlexDirection) bool {
	return setAttr(&e.Style, AttrFlexDirection, &e.Style.FlexDirection, d)
}

func (e *Element) SetPositionType(p PositionType) bool {
	return setAttr(&e.Style, AttrPosition, &e.Style.Position, p)
}

func (e *Element) SetBackground(c Color) bool {
	return setAttr(&e.Style, AttrBackground, &e.Style.Background, c)
}

func (e *Element) SetBorderColor(c Color) bool {
	return setAttr(&e.Style, AttrBorderColor, &e.Style.BorderColor, c)
}

func (e *Element) SetBorder(b Edges) bool { return setAttr(&e.Style, AttrBorder, &e.Style.Border, b) }
func (e *Element) SetMargin(m Edges) bool { return setAttr(&e.Style, AttrMargin, &e.Style.Margin, m) }

func (e *Element) SetVisibility(v Visibility) bool {
	return setAttr(&e.Style, AttrVisibility, &e.Style.Visibility, v)
}

// SetRender toggles whether the element takes part in layout at all.
func (e *Element) SetRender(render bool) bool {
	return setAttr(&e.Style, AttrRender, &e.Style.Render, render)
}

func (e *Element) SetZIndex(z int) bool { return setAttr(&e.Style, AttrZIndex, &e.Style.ZIndex, z) }
