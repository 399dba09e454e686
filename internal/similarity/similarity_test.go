package similarity

import "testing"

func TestPercent_Identity(t *testing.T) {
	inputs := []string{
		"a",
		"HELLO WORLD",
		"We start With good\n\nBecause all businesses should\n\nbe doing something good",
		"ünïcødé tëxt",
	}

	for _, s := range inputs {
		if got := Percent(s, s); got != 100.0 {
			t.Errorf("Percent(%q, %q) = %v, want 100.00", s, s, got)
		}
	}
}

func TestPercent_Disjoint(t *testing.T) {
	if got := Percent("abc", "xyz"); got != 0.0 {
		t.Errorf("Percent(abc, xyz) = %v, want 0.00", got)
	}
}

func TestPercent_EmptyCandidate(t *testing.T) {
	if got := Percent("HELLO", ""); got != 0.0 {
		t.Errorf("Percent(HELLO, \"\") = %v, want 0.00", got)
	}
	if got := Percent("", "HELLO"); got != 0.0 {
		t.Errorf("Percent(\"\", HELLO) = %v, want 0.00", got)
	}
}

func TestPercent_BothEmpty(t *testing.T) {
	if got := Percent("", ""); got != 100.0 {
		t.Errorf("Percent(\"\", \"\") = %v, want 100.00", got)
	}
}

func TestPercent_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"HELLO WORLD", "HELL0 W0RLD"},
		{"the quick brown fox", "the quick brawn fix"},
		{"abcdef", "abcxef"},
		{"handwritten", "typed"},
	}

	for _, p := range pairs {
		ab := Percent(p[0], p[1])
		ba := Percent(p[1], p[0])
		if ab != ba {
			t.Errorf("Percent(%q, %q) = %v but Percent(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestRatio_KnownValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		// One common block "abcd" of length 4, 2*4/(4+4).
		{"abcd", "abcd", 1.0},
		// "ab" matches, 2*2/(2+4).
		{"ab", "xaby", 2.0 * 2 / 6},
		// Longest block "ab ", then "cd" recovered on the right: 2*5/(5+6).
		{"ab cd", "ab xcd", 2.0 * 5 / 11},
	}

	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPercent_Rounding(t *testing.T) {
	// 2*1/(1+2) = 0.666..., reported as 66.67.
	if got := Percent("a", "ab"); got != 66.67 {
		t.Errorf("Percent(a, ab) = %v, want 66.67", got)
	}
}

func TestRatio_MultilineOCRText(t *testing.T) {
	reference := "We start With good\n\nBecause all businesses should\n\nbe doing something good"
	candidate := "We start with good\n\nBecause all businesses should\n\nbe doing something good"

	got := Ratio(reference, candidate)
	if got <= 0.9 || got >= 1.0 {
		t.Errorf("Ratio() = %v, want a high but imperfect score", got)
	}
}
