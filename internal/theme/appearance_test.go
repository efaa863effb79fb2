package theme

import "testing"

type fixedDetector struct {
	name string
	a    Appearance
	ok   bool
}

func (d fixedDetector) Name() string               { return d.name }
func (d fixedDetector) Detect() (Appearance, bool) { return d.a, d.ok }

func TestParseAppearance(t *testing.T) {
	tests := []struct {
		in   string
		want Appearance
		ok   bool
	}{
		{"dark", Dark, true},
		{"Light", Light, true},
		{" LIGHT\n", Light, true},
		{"", Dark, false},
		{"sepia", Dark, false},
	}
	for _, tt := range tests {
		got, ok := ParseAppearance(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAppearance(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDetectAppearance_FirstAnswerWins(t *testing.T) {
	a, src := DetectAppearance(
		fixedDetector{name: "silent"},
		fixedDetector{name: "second", a: Light, ok: true},
		fixedDetector{name: "third", a: Dark, ok: true},
	)
	if a != Light || src != "second" {
		t.Errorf("got %v from %q, want light from second", a, src)
	}
}

func TestDetectAppearance_DefaultsToDark(t *testing.T) {
	a, src := DetectAppearance(fixedDetector{name: "silent"})
	if a != Dark || src != "" {
		t.Errorf("got %v from %q, want dark fallback", a, src)
	}
}

func TestEnvDetector(t *testing.T) {
	d := EnvDetector{Var: "ARB_APPEARANCE"}

	t.Setenv("ARB_APPEARANCE", "light")
	if a, ok := d.Detect(); !ok || a != Light {
		t.Errorf("got %v, %v", a, ok)
	}

	t.Setenv("ARB_APPEARANCE", "")
	if _, ok := d.Detect(); ok {
		t.Error("unset variable should have no opinion")
	}
}

func TestAppearanceToggle(t *testing.T) {
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Error("toggle broken")
	}
	if Dark.String() != "dark" || Light.String() != "light" {
		t.Error("unexpected String values")
	}
}
