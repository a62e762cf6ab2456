package worddist

import (
	"math"
	"testing"
)

func mustBuild(t *testing.T, b *Builder) *Config {
	t.Helper()
	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return cfg
}

func TestIdentityAndCaseFolding(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())

	if got := cfg.Distance("dog", "dog"); got != 0 {
		t.Errorf("Distance(dog, dog) = %v, want 0", got)
	}
	if got := cfg.Distance("DoG", "dOg"); got != 0 {
		t.Errorf("Distance(DoG, dOg) = %v, want 0", got)
	}
}

func TestSingleSwap(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	if got := cfg.Distance("abcde", "abdce"); math.Abs(got-1.25) > 1e-9 {
		t.Errorf("Distance(abcde, abdce) = %v, want 1.25", got)
	}
}

func TestSwapWithLimit(t *testing.T) {
	cfg := mustBuild(t, NewBuilder().SwapCost(0.75).InsDelCost(1.0).DefaultLimit(0.99))
	if got := cfg.Distance("abc", "acb"); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Distance(abc, acb) = %v, want 0.75", got)
	}
}

func TestSwapWithDigitPenalty(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	if got := cfg.Distance("12345", "12435"); math.Abs(got-1.58) > 1e-9 {
		t.Errorf("Distance(12345, 12435) = %v, want 1.58", got)
	}
}

func TestDuplicateDiscount(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	if got := cfg.Distance("aabbccddee", "abcde"); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Distance(aabbccddee, abcde) = %v, want 0.25", got)
	}
}

func TestLimitScenario(t *testing.T) {
	tight := mustBuild(t, NewBuilder().DefaultLimit(1).DefaultNormLimit(5))
	if got := tight.Distance("abcdefghij", "acefghij"); !math.IsInf(got, 1) {
		t.Errorf("tight limit: Distance = %v, want +Inf", got)
	}

	loose := mustBuild(t, NewBuilder().DefaultLimit(10).DefaultNormLimit(0.25))
	if got := loose.Distance("abcdefghij", "acefghij"); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("loose limit: Distance = %v, want 2.0", got)
	}
}

func TestPerTokenLimitScenario(t *testing.T) {
	perToken := mustBuild(t, NewBuilder().DefaultNormLimit(0.25))
	if got := perToken.Distance("an dog", "a dog"); !math.IsInf(got, 1) {
		t.Errorf("perTokenLimit=true: Distance = %v, want +Inf", got)
	}

	noPerToken := mustBuild(t, NewBuilder().DefaultNormLimit(0.25).PerTokenLimit(false))
	if got := noPerToken.Distance("an dog", "a dog"); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("perTokenLimit=false: Distance = %v, want 1.0", got)
	}
}

func TestNonNegativity(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	pairs := [][2]string{
		{"hello world", "goodbye world"},
		{"", "nonempty"},
		{"a", "b"},
		{"the quick brown fox", "a slow brown ox"},
	}
	for _, p := range pairs {
		if got := cfg.Distance(p[0], p[1]); !math.IsInf(got, 1) && got < 0 {
			t.Errorf("Distance(%q, %q) = %v, want >= 0", p[0], p[1], got)
		}
	}
}

func TestSymmetryMaxAndMin(t *testing.T) {
	for _, nt := range []NormType{NormMax, NormMin} {
		cfg := mustBuild(t, NewBuilder().NormType(nt))
		a, b := "kitten", "sitting"
		d1, d2 := cfg.Distance(a, b), cfg.Distance(b, a)
		if d1 != d2 {
			t.Errorf("normType=%v: Distance(a,b)=%v != Distance(b,a)=%v", nt, d1, d2)
		}
	}
}

func TestEmptyInputLaw(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	b := "hello"
	want := cfg.newItem(b).normLength
	got := cfg.Distance("", b)
	if !math.IsInf(got, 1) && math.Abs(got-want) > 1e-9 {
		t.Errorf("Distance(\"\", %q) = %v, want %v or +Inf", b, got, want)
	}
}

func TestSpacelessEqualityDiscount(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	got := cfg.Distance("an dog", "andog")
	if got > 0.30+1e-9 {
		t.Errorf("Distance(\"an dog\", \"andog\") = %v, want small (<= ~0.3)", got)
	}
}

func TestLimitMonotonicity(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	a, b := "abcdefghij", "acefghij"

	tight := cfg.DistanceWithLimits(a, b, 1, 0)
	loose := cfg.DistanceWithLimits(a, b, 100, 0)

	if math.IsInf(tight, 1) && !math.IsInf(loose, 1) {
		// allowed: tightening a limit may turn a finite result infinite;
		// only the reverse, checked below, is a violation.
	}
	if !math.IsInf(tight, 1) && math.IsInf(loose, 1) {
		t.Errorf("loosening limit turned finite result infinite: tight=%v loose=%v", tight, loose)
	}
}

func TestDefaultLimitAppliesWithoutExplicitCall(t *testing.T) {
	cfg := mustBuild(t, NewBuilder().DefaultLimit(0.1))
	if got := cfg.Distance("abcdefghij", "zzzzzzzzzz"); !math.IsInf(got, 1) {
		t.Errorf("Distance under a tiny default limit = %v, want +Inf", got)
	}
}

func TestZeroLimitsDisableAllPruning(t *testing.T) {
	cfg := mustBuild(t, NewBuilder().DefaultLimit(0).DefaultNormLimit(0))
	got := cfg.Distance("abcdefghij", "zzzzzzzzzz")
	if math.IsInf(got, 1) {
		t.Errorf("Distance with both limits at 0 = +Inf, want finite")
	}
}

func TestBuildRejectsNegativeCost(t *testing.T) {
	if _, err := NewBuilder().InsDelCost(-1).Build(); err == nil {
		t.Error("Build with negative insDelCost: want error, got nil")
	}
}

func TestBuildRejectsZeroTokenSep(t *testing.T) {
	if _, err := NewBuilder().TokenSep(0).Build(); err == nil {
		t.Error("Build with zero tokenSep: want error, got nil")
	}
}

func TestCustomTokenizerBypassesDefault(t *testing.T) {
	calls := 0
	custom := func(s string) []string {
		calls++
		return []string{s}
	}
	cfg := mustBuild(t, NewBuilder().Tokenizer(custom))
	cfg.Distance("Hello World", "Hello World")
	if calls != 2 {
		t.Errorf("custom tokenizer called %d times, want 2", calls)
	}
}
