package markdown

import (
	"strings"
	"testing"
)

func TestRenderWidth_BlankPassesThrough(t *testing.T) {
	for _, in := range []string{"", "   ", "\n"} {
		if got := RenderWidth(in, 40); got != in {
			t.Errorf("RenderWidth(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestRenderWidth_KeepsTextTrimsPadding(t *testing.T) {
	SetStyle("notty")
	defer SetStyle("")

	out := RenderWidth("# Appointments\n\nDr. Grey is available on Tuesday.", 60)
	for _, want := range []string{"Appointments", "Tuesday"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Errorf("output should be trimmed of blank padding: %q", out)
	}
}

func TestRendererFor_CachesPerWidth(t *testing.T) {
	SetStyle("notty")
	defer SetStyle("")

	a := rendererFor(50)
	b := rendererFor(50)
	c := rendererFor(70)
	if a == nil || c == nil {
		t.Fatal("renderer construction failed")
	}
	if a != b {
		t.Error("want cached renderer for the same width")
	}
	if a == c {
		t.Error("want distinct renderers for distinct widths")
	}
}
