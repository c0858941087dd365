package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesSectionCounters(t *testing.T) {
	IncSectionGenerated("title")
	IncSectionGenerated("title")
	IncSectionGenerated("abstract")
	IncUnknownSection()
	ObserveGenerationDurationMs(3)

	out := Render()
	for _, want := range []string{
		`sections_generated_total{section="title"} `,
		`sections_generated_total{section="abstract"} `,
		"# TYPE unknown_section_total counter",
		`generation_duration_ms_bucket{le="+Inf"} `,
		"generation_duration_ms_count ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, `section="abstract"`) > strings.Index(out, `section="title"`) {
		t.Fatalf("expected labels sorted")
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{1, 10})
	h.Observe(0.5)
	h.Observe(5)
	h.Observe(50)
	snap := h.Snapshot()
	if snap.count != 3 || snap.counts[0] != 1 || snap.counts[1] != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
