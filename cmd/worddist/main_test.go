package main

import (
	"math"
	"testing"
)

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1.25, "1.25"},
		{math.Inf(1), "9999"},
	}
	for _, c := range cases {
		if got := formatDistance(c.in); got != c.want {
			t.Errorf("formatDistance(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRewriteMultiCharShortFlags(t *testing.T) {
	in := []string{"-dp", "-sep", "_", "-spl", `\s+`, "-l", "3"}
	out := rewriteMultiCharShortFlags(in)
	want := []string{"--disablePerTokenLimit", "--tokenSep", "_", "--tokenSplit", `\s+`, "-l", "3"}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestRewriteMultiCharShortFlagsEqualsForm(t *testing.T) {
	out := rewriteMultiCharShortFlags([]string{"-sep=_"})
	if len(out) != 1 || out[0] != "--tokenSep=_" {
		t.Errorf("got %v, want [--tokenSep=_]", out)
	}
}
