package rating

import "testing"

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"nominal", "ordinal", "interval", "ratio"} {
		l, err := ParseLevel(name)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", name, err)
		}
		if !l.Valid() || l.String() != name {
			t.Errorf("ParseLevel(%q) = %v", name, l)
		}
	}
	if _, err := ParseLevel("cardinal"); err == nil {
		t.Error("Expected error for unknown level name")
	}
}

func TestLevelPredicates(t *testing.T) {
	if Nominal.Ranked() {
		t.Error("nominal must not be ranked")
	}
	if !Ordinal.Ranked() || Ordinal.Continuous() {
		t.Error("ordinal is ranked but not continuous")
	}
	if !Interval.Continuous() || !Ratio.Continuous() {
		t.Error("interval and ratio are continuous")
	}
	if Level(99).Valid() {
		t.Error("Level(99) must be invalid")
	}
}

func TestParseWeightScheme(t *testing.T) {
	for _, name := range []string{"none", "linear", "quadratic"} {
		w, err := ParseWeightScheme(name)
		if err != nil {
			t.Errorf("ParseWeightScheme(%q): %v", name, err)
		}
		if !w.Valid() || w.String() != name {
			t.Errorf("ParseWeightScheme(%q) = %v", name, w)
		}
	}
	if _, err := ParseWeightScheme("cubic"); err == nil {
		t.Error("Expected error for unknown scheme name")
	}
	if WeightScheme(-1).Valid() {
		t.Error("WeightScheme(-1) must be invalid")
	}
}
