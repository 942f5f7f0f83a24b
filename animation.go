package willowui

// ProgressKind distinguishes the three phases of an interaction animation.
type ProgressKind uint8

const (
	ProgressStart ProgressKind = iota
	ProgressInbetween
	ProgressEnd
)

// AnimationProgress is how far an interaction animation has come. Ratio is
// only meaningful for ProgressInbetween and is already eased.
type AnimationProgress struct {
	Kind  ProgressKind
	Ratio float64
}

// AnimationConfig describes one animated transition. Out fields apply to the
// reverse leg (release, pointer leave) and fall back to the in fields.
type AnimationConfig struct {
	Duration    float64
	Easing      Ease
	OutDuration Optional[float64]
	OutEasing   Optional[Ease]
}

func (c AnimationConfig) outDuration() float64 {
	return max(c.OutDuration.Or(c.Duration), 0)
}

func (c AnimationConfig) outEasing() Ease {
	return c.OutEasing.Or(c.Easing)
}

// AnimatedInteraction configures how a value animates between interaction
// states. Tween is the fallback for any state without its own config.
type AnimatedInteraction struct {
	Tween  AnimationConfig
	Hover  Optional[AnimationConfig]
	Press  Optional[AnimationConfig]
	Cancel Optional[AnimationConfig]
	// ResetDelay is how long a canceled press holds before easing back.
	// Defaults to the cancel duration.
	ResetDelay Optional[float64]
}

// DefaultAnimatedInteraction returns a 0.1s tween with a 0.05s press that
// snaps back on release and a 0.1s cancel.
func DefaultAnimatedInteraction() AnimatedInteraction {
	return AnimatedInteraction{
		Tween:  AnimationConfig{Duration: 0.1},
		Press:  Some(AnimationConfig{Duration: 0.05, OutDuration: Some(0.0)}),
		Cancel: Some(AnimationConfig{Duration: 0.1}),
	}
}

// Progress returns the animation progress for flux after elapsed seconds in
// that state. Every zero duration resolves to ProgressEnd.
func (a AnimatedInteraction) Progress(flux FluxInteraction, elapsed float64) AnimationProgress {
	switch flux {
	case FluxPressed:
		tw := a.Press.Or(a.Tween)
		d := max(tw.Duration, 0)
		if d == 0 {
			return AnimationProgress{Kind: ProgressEnd}
		}
		return inbetween(tw.Easing.Apply(elapsed / d))
	case FluxReleased:
		tw := a.Press.Or(a.Tween)
		return easeToEnd(elapsed, tw.outDuration(), tw.outEasing())
	case FluxPressCanceled:
		tw := a.Cancel.Or(a.Tween)
		d := max(tw.Duration, 0)
		delay := max(a.ResetDelay.Or(d), 0)
		length := tw.outDuration()
		if elapsed < delay {
			return AnimationProgress{Kind: ProgressStart}
		}
		if d == 0 || length == 0 {
			return AnimationProgress{Kind: ProgressEnd}
		}
		r := tw.outEasing().Apply((elapsed - delay) / length)
		if r == 1 {
			return AnimationProgress{Kind: ProgressEnd}
		}
		return inbetween(r)
	case FluxPointerEnter:
		tw := a.Hover.Or(a.Tween)
		return easeToEnd(elapsed, max(tw.Duration, 0), tw.Easing)
	case FluxPointerLeave:
		tw := a.Hover.Or(a.Tween)
		return easeToEnd(elapsed, tw.outDuration(), tw.outEasing())
	default:
		return AnimationProgress{Kind: ProgressEnd}
	}
}

// easeToEnd eases elapsed over d and reports End once the curve reaches 1.
func easeToEnd(elapsed, d float64, e Ease) AnimationProgress {
	if d == 0 {
		return AnimationProgress{Kind: ProgressEnd}
	}
	r := e.Apply(elapsed / d)
	if r == 1 {
		return AnimationProgress{Kind: ProgressEnd}
	}
	return inbetween(r)
}

func inbetween(r float64) AnimationProgress {
	return AnimationProgress{Kind: ProgressInbetween, Ratio: r}
}
