package willowui

// Property reads and writes one interpolatable attribute of an element.
// Apply returns false when the write was refused, for example because the
// attribute is locked.
type Property[T comparable] struct {
	Name    string
	Extract func(e *Element) T
	Apply   func(e *Element, v T) bool
	Lerp    func(a, b T, t float64) T
}

// InteractionConfig holds the target values of a controlled property for each
// interaction state. Absent values mean no effect for that transition.
type InteractionConfig[T any] struct {
	Highlight Optional[T]
	Pressed   Optional[T]
	Cancel    Optional[T]
}

// Built-in properties.
var (
	BackgroundColor = Property[Color]{
		Name:    "background",
		Extract: func(e *Element) Color { return e.Style.Background },
		Apply:   (*Element).SetBackground,
		Lerp:    Color.Lerp,
	}
	BorderColor = Property[Color]{
		Name:    "border-color",
		Extract: func(e *Element) Color { return e.Style.BorderColor },
		Apply:   (*Element).SetBorderColor,
		Lerp:    Color.Lerp,
	}
	BorderSize = Property[Edges]{
		Name:    "border",
		Extract: func(e *Element) Edges { return e.Style.Border },
		Apply:   (*Element).SetBorder,
		Lerp:    Edges.Lerp,
	}
	Margin = Property[Edges]{
		Name:    "margin",
		Extract: func(e *Element) Edges { return e.Style.Margin },
		Apply:   (*Element).SetMargin,
		Lerp:    Edges.Lerp,
	}
	Height = Property[Val]{
		Name:    "height",
		Extract: func(e *Element) Val { return e.Style.Height },
		Apply:   (*Element).SetHeight,
		Lerp:    Val.Lerp,
	}
)

// LerpFloat interpolates float64 properties.
func LerpFloat(a, b, t float64) float64 { return lerpFloat(a, b, t) }

// controlEntry is the per-element state of a Controller.
type controlEntry[T comparable] struct {
	el       *Element
	cfg      InteractionConfig[T]
	anim     Optional[AnimatedInteraction]
	progress AnimationProgress
	original T
	base     T
}

// Controller drives one property of many elements from their interaction
// state. Register it with UI.AddController so it runs every frame after the
// flux stage.
type Controller[T comparable] struct {
	prop    Property[T]
	entries []*controlEntry[T]
}

// NewController creates a controller for prop.
func NewController[T comparable](prop Property[T]) *Controller[T] {
	if prop.Extract == nil || prop.Apply == nil || prop.Lerp == nil {
		panic("willowui: property " + prop.Name + " is incomplete")
	}
	return &Controller[T]{prop: prop}
}

// Attach starts controlling e. The current value of the property becomes the
// original value restored after interactions end. The element must track
// interactions; Attach enables tracking if it does not.
func (c *Controller[T]) Attach(e *Element, cfg InteractionConfig[T], anim Optional[AnimatedInteraction]) {
	e.TrackInteraction()
	for _, en := range c.entries {
		if en.el == e {
			en.cfg = cfg
			en.anim = anim
			return
		}
	}
	v := c.prop.Extract(e)
	c.entries = append(c.entries, &controlEntry[T]{
		el:       e,
		cfg:      cfg,
		anim:     anim,
		original: v,
		base:     v,
	})
}

// Detach stops controlling e. The property keeps its current value.
func (c *Controller[T]) Detach(e *Element) {
	for i, en := range c.entries {
		if en.el == e {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Original returns the value e had when it was attached.
func (c *Controller[T]) Original(e *Element) (T, bool) {
	for _, en := range c.entries {
		if en.el == e {
			return en.original, true
		}
	}
	var zero T
	return zero, false
}

// SetOriginal replaces the value restored once interactions end.
func (c *Controller[T]) SetOriginal(e *Element, v T) {
	for _, en := range c.entries {
		if en.el == e {
			en.original = v
			return
		}
	}
}

// Len returns the number of controlled elements.
func (c *Controller[T]) Len() int { return len(c.entries) }

// Update advances every controlled element by one frame. Despawned elements
// are dropped.
func (c *Controller[T]) Update() {
	live := c.entries[:0]
	for _, en := range c.entries {
		if en.el.disposed {
			continue
		}
		live = append(live, en)
		c.updateEntry(en)
	}
	for i := len(live); i < len(c.entries); i++ {
		c.entries[i] = nil
	}
	c.entries = live
}

func (c *Controller[T]) updateEntry(en *controlEntry[T]) {
	e := en.el
	t := e.interaction
	if t == nil {
		return
	}
	if t.fluxChanged && t.flux == FluxPressed {
		en.base = c.prop.Extract(e)
	}
	var progress Optional[AnimationProgress]
	if en.anim.Valid {
		if t.timing {
			en.progress = en.anim.Value.Progress(t.flux, t.elapsed)
		}
		progress = Some(en.progress)
	}
	v, ok := InteractionResult(t.flux, en.cfg, en.original, en.base, progress, c.prop.Lerp)
	if !ok {
		return
	}
	if v == c.prop.Extract(e) {
		return
	}
	c.prop.Apply(e, v)
}

// InteractionResult computes the value a controlled property should take for
// flux. ok is false when the transition has no configured effect.
func InteractionResult[T any](
	flux FluxInteraction,
	cfg InteractionConfig[T],
	original, base T,
	progress Optional[AnimationProgress],
	lerp func(a, b T, t float64) T,
) (v T, ok bool) {
	var start Optional[T]
	var end T
	switch flux {
	case FluxPressed:
		if !cfg.Pressed.Valid {
			return v, false
		}
		start, end = Some(base), cfg.Pressed.Value
	case FluxReleased:
		start, end = cfg.Pressed, cfg.Highlight.Or(original)
	case FluxPressCanceled:
		start, end = cfg.Cancel, original
	case FluxPointerEnter:
		if !cfg.Highlight.Valid {
			return v, false
		}
		start, end = Some(original), cfg.Highlight.Value
	case FluxPointerLeave:
		if !cfg.Highlight.Valid {
			return v, false
		}
		start, end = cfg.Highlight, original
	default:
		end = original
	}
	if !progress.Valid || !start.Valid {
		return end, true
	}
	switch progress.Value.Kind {
	case ProgressStart:
		return start.Value, true
	case ProgressInbetween:
		return lerp(start.Value, end, progress.Value.Ratio), true
	default:
		return end, true
	}
}

// updater is a per-frame system registered with a UI.
type updater interface {
	Update()
}

// AddController registers a controller to run every frame. Built-in
// controllers for backgrounds are registered by NewUI.
func (ui *UI) AddController(c updater) {
	ui.controllers = append(ui.controllers, c)
}
