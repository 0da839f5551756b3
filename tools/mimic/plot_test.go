package mimic

import (
	"math"
	"strings"
	"testing"
)

func TestResidueTicks(t *testing.T) {
	ticks := ResidueTicks{Residues: []byte("ACD")}.Ticks(0, 5)
	if len(ticks) != 3 {
		t.Fatalf("got %d ticks, want 3", len(ticks))
	}
	for i, want := range []string{"A", "C", "D"} {
		if ticks[i].Label != want || ticks[i].Value != float64(i+1) {
			t.Errorf("tick %d = %+v, want %s at %d", i, ticks[i], want, i+1)
		}
	}
}

func TestObservedComposition(t *testing.T) {
	tab := ReferenceTable(BackgroundUniform, false)
	recs := []OutputRecord{
		{Header: "orig", Seq: "WWWW"},
		{Header: "mimic_1|shuffle_1", Seq: "AACX"},
		{Header: "mimic_1|shuffle_2", Seq: "C"},
	}
	obs := ObservedComposition(tab, recs, "mimic")
	if len(obs) != len(tab.Residues()) {
		t.Fatalf("got %d values, want %d", len(obs), len(tab.Residues()))
	}
	res := tab.Residues()
	for i, r := range res {
		var want float64
		switch r {
		case 'A', 'C':
			want = 0.5
		}
		if math.Abs(obs[i]-want) > 1e-12 {
			t.Errorf("observed %c = %v, want %v", r, obs[i], want)
		}
	}

	if zero := ObservedComposition(tab, recs, "none"); zero[0] != 0 {
		t.Errorf("no matching records should give zeros, got %v", zero)
	}
}

func TestCompositionPlotSVG(t *testing.T) {
	tab := ReferenceTable(BackgroundSwissProt, false)
	recs := []OutputRecord{{Header: "mimic|Random_1|shuffle_1", Seq: "MKWVTFISLL"}}

	svg, err := CompositionPlotSVG(tab, ObservedComposition(tab, recs, "mimic"))
	if err != nil {
		t.Fatalf("CompositionPlotSVG() error = %v", err)
	}
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("output is not SVG: %.80q", svg)
	}
}
