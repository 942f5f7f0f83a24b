package willowui

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEaseEndpoints(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every curve maps 0 to 0 and 1 to 1", prop.ForAll(
		func(i int) bool {
			e := Ease(i)
			return math.Abs(e.Apply(0)) < 1e-4 && math.Abs(e.Apply(1)-1) < 1e-4
		},
		gen.IntRange(0, int(easeCount)-1),
	))

	properties.Property("inputs outside [0, 1] are clamped", prop.ForAll(
		func(i int, over float64) bool {
			e := Ease(i)
			return e.Apply(-over) == e.Apply(0) && e.Apply(1+over) == e.Apply(1)
		},
		gen.IntRange(0, int(easeCount)-1),
		gen.Float64Range(0.001, 10),
	))

	properties.Property("linear is the identity", prop.ForAll(
		func(t float64) bool {
			return math.Abs(Linear.Apply(t)-t) < 1e-6
		},
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestParseEaseRoundTrip(t *testing.T) {
	for e := Linear; e < easeCount; e++ {
		got, err := ParseEase(e.String())
		if err != nil {
			t.Fatalf("ParseEase(%q): %v", e.String(), err)
		}
		if got != e {
			t.Errorf("ParseEase(%q) = %v, want %v", e.String(), got, e)
		}
	}
}

func TestParseEaseUnknown(t *testing.T) {
	if _, err := ParseEase("wobble"); err == nil {
		t.Error("ParseEase(wobble) returned no error")
	}
}

func TestEaseText(t *testing.T) {
	b, err := InOutCubic.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "in-out-cubic" {
		t.Errorf("MarshalText = %q, want in-out-cubic", b)
	}

	var e Ease
	if err := e.UnmarshalText([]byte("out-bounce")); err != nil {
		t.Fatal(err)
	}
	if e != OutBounce {
		t.Errorf("UnmarshalText = %v, want out-bounce", e)
	}

	if _, err := easeCount.MarshalText(); err == nil {
		t.Error("MarshalText of an unknown curve returned no error")
	}
	if got := Ease(200).String(); got != "ease(200)" {
		t.Errorf("String = %q, want ease(200)", got)
	}
}

func TestEaseOvershoot(t *testing.T) {
	// Back curves leave [0, 1] between the endpoints.
	if v := InBack.Apply(0.2); v >= 0 {
		t.Errorf("InBack.Apply(0.2) = %v, want negative", v)
	}
	if v := OutBack.Apply(0.8); v <= 1 {
		t.Errorf("OutBack.Apply(0.8) = %v, want above 1", v)
	}
}
