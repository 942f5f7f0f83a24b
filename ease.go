package willowui

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ease names an easing curve. Every curve maps [0, 1] onto a progress value
// with f(0) = 0 and f(1) = 1; Back and Elastic overshoot in between.
type Ease uint8

const (
	Linear Ease = iota
	InSine
	OutSine
	InOutSine
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic
	InBounce
	OutBounce
	InOutBounce
	OutInSine
	OutInQuad
	OutInCubic
	OutInQuart
	OutInQuint
	OutInExpo
	OutInCirc
	OutInBack
	OutInElastic
	OutInBounce
	easeCount
)

var easeFuncs = [easeCount]ease.TweenFunc{
	Linear:       ease.Linear,
	InSine:       ease.InSine,
	OutSine:      ease.OutSine,
	InOutSine:    ease.InOutSine,
	InQuad:       ease.InQuad,
	OutQuad:      ease.OutQuad,
	InOutQuad:    ease.InOutQuad,
	InCubic:      ease.InCubic,
	OutCubic:     ease.OutCubic,
	InOutCubic:   ease.InOutCubic,
	InQuart:      ease.InQuart,
	OutQuart:     ease.OutQuart,
	InOutQuart:   ease.InOutQuart,
	InQuint:      ease.InQuint,
	OutQuint:     ease.OutQuint,
	InOutQuint:   ease.InOutQuint,
	InExpo:       ease.InExpo,
	OutExpo:      ease.OutExpo,
	InOutExpo:    ease.InOutExpo,
	InCirc:       ease.InCirc,
	OutCirc:      ease.OutCirc,
	InOutCirc:    ease.InOutCirc,
	InBack:       ease.InBack,
	OutBack:      ease.OutBack,
	InOutBack:    ease.InOutBack,
	InElastic:    ease.InElastic,
	OutElastic:   ease.OutElastic,
	InOutElastic: ease.InOutElastic,
	InBounce:     ease.InBounce,
	OutBounce:    ease.OutBounce,
	InOutBounce:  ease.InOutBounce,
	OutInSine:    ease.OutInSine,
	OutInQuad:    ease.OutInQuad,
	OutInCubic:   ease.OutInCubic,
	OutInQuart:   ease.OutInQuart,
	OutInQuint:   ease.OutInQuint,
	OutInExpo:    ease.OutInExpo,
	OutInCirc:    ease.OutInCirc,
	OutInBack:    ease.OutInBack,
	OutInElastic: ease.OutInElastic,
	OutInBounce:  ease.OutInBounce,
}

var easeNames = [easeCount]string{
	Linear:       "linear",
	InSine:       "in-sine",
	OutSine:      "out-sine",
	InOutSine:    "in-out-sine",
	InQuad:       "in-quad",
	OutQuad:      "out-quad",
	InOutQuad:    "in-out-quad",
	InCubic:      "in-cubic",
	OutCubic:     "out-cubic",
	InOutCubic:   "in-out-cubic",
	InQuart:      "in-quart",
	OutQuart:     "out-quart",
	InOutQuart:   "in-out-quart",
	InQuint:      "in-quint",
	OutQuint:     "out-quint",
	InOutQuint:   "in-out-quint",
	InExpo:       "in-expo",
	OutExpo:      "out-expo",
	InOutExpo:    "in-out-expo",
	InCirc:       "in-circ",
	OutCirc:      "out-circ",
	InOutCirc:    "in-out-circ",
	InBack:       "in-back",
	OutBack:      "out-back",
	InOutBack:    "in-out-back",
	InElastic:    "in-elastic",
	OutElastic:   "out-elastic",
	InOutElastic: "in-out-elastic",
	InBounce:     "in-bounce",
	OutBounce:    "out-bounce",
	InOutBounce:  "in-out-bounce",
	OutInSine:    "out-in-sine",
	OutInQuad:    "out-in-quad",
	OutInCubic:   "out-in-cubic",
	OutInQuart:   "out-in-quart",
	OutInQuint:   "out-in-quint",
	OutInExpo:    "out-in-expo",
	OutInCirc:    "out-in-circ",
	OutInBack:    "out-in-back",
	OutInElastic: "out-in-elastic",
	OutInBounce:  "out-in-bounce",
}

// Apply evaluates the curve at t. Inputs outside [0, 1] are clamped, and the
// endpoints are exact.
func (e Ease) Apply(t float64) float64 {
	fn := ease.Linear
	if e < easeCount {
		fn = easeFuncs[e]
	}
	v, _ := gween.New(0, 1, 1, fn).Set(float32(t))
	return float64(v)
}

// TweenFunc returns the underlying gween easing function.
func (e Ease) TweenFunc() ease.TweenFunc {
	if e >= easeCount {
		return ease.Linear
	}
	return easeFuncs[e]
}

func (e Ease) String() string {
	if e >= easeCount {
		return fmt.Sprintf("ease(%d)", uint8(e))
	}
	return easeNames[e]
}

// ParseEase returns the curve with the given name ("linear", "out-expo", ...).
func ParseEase(name string) (Ease, error) {
	for i, n := range easeNames {
		if n == name {
			return Ease(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Ease) MarshalText() ([]byte, error) {
	if e >= easeCount {
		return nil, fmt.Errorf("unknown easing %d", uint8(e))
	}
	return []byte(easeNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Ease) UnmarshalText(text []byte) error {
	v, err := ParseEase(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
