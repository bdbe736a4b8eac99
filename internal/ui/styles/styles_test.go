package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/decoded/internal/theme"
)

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(theme.Dark) })

	Apply(theme.Light)
	if T() != For(theme.Light) {
		t.Error("T() should return the light palette after Apply(Light)")
	}
	if T().BgBase != "#F0F2F5" {
		t.Errorf("light BgBase = %s, want #F0F2F5", T().BgBase)
	}

	Apply(theme.Dark)
	if T() != For(theme.Dark) {
		t.Error("T() should return the dark palette after Apply(Dark)")
	}
}

func TestStylesCached(t *testing.T) {
	p := For(theme.Light)
	if p.S() != p.S() {
		t.Error("S() should build styles once")
	}
	if For(theme.Dark).S() == p.S() {
		t.Error("palettes should not share styles")
	}
}

func TestBlend(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#FFFFFF")

	tests := []struct {
		name string
		t    float64
		want string
	}{
		{"start", 0, "#000000"},
		{"end", 1, "#FFFFFF"},
		{"below range clamps", -3, "#000000"},
		{"above range clamps", 7, "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colorful.Hex(string(Blend(from, to, tt.t)))
			if err != nil {
				t.Fatalf("Blend returned invalid hex: %v", err)
			}
			want, _ := colorful.Hex(tt.want)
			if d := got.DistanceRgb(want); d > 0.01 {
				t.Errorf("Blend(%v) = %s, want %s", tt.t, got.Hex(), tt.want)
			}
		})
	}
}

func TestApplyBoldGradient(t *testing.T) {
	if got := ApplyBoldGradient("", "#000000", "#FFFFFF"); got != "" {
		t.Errorf("empty text = %q, want empty", got)
	}

	for _, text := range []string{"D", "Decoded", "é́ lesson"} {
		got := ApplyBoldGradient(text, "#000000", "#FFFFFF")
		if plain := ansi.Strip(got); plain != text {
			t.Errorf("ApplyBoldGradient(%q) visible text = %q", text, plain)
		}
	}
}
