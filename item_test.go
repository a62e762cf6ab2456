package worddist

import "testing"

func TestNewItemCanonicalization(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	it := cfg.newItem("  Hello,   World!  ")
	got := string(it.text)
	want := "hello world"
	if got != want {
		t.Errorf("newItem text = %q, want %q", got, want)
	}
	if it.tokenCount != 2 {
		t.Errorf("tokenCount = %d, want 2", it.tokenCount)
	}
	if string(it.spacelessText) != "helloworld" {
		t.Errorf("spacelessText = %q, want %q", string(it.spacelessText), "helloworld")
	}
}

func TestNewItemEmpty(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	it := cfg.newItem("   ,,, !!!  ")
	if len(it.text) != 0 {
		t.Errorf("text = %q, want empty", string(it.text))
	}
	if it.tokenCount != 0 {
		t.Errorf("tokenCount = %d, want 0", it.tokenCount)
	}
	if it.normLength != 0 {
		t.Errorf("normLength = %v, want 0", it.normLength)
	}
}

func TestItemDuplicate(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	it := cfg.newItem("aabb")
	if it.duplicate(0) {
		t.Error("duplicate(0) = true, want false")
	}
	if !it.duplicate(1) {
		t.Error("duplicate(1) = false, want true (a follows a)")
	}
	if it.duplicate(2) {
		t.Error("duplicate(2) = true, want false (b follows a)")
	}
}

func TestItemTokenStart(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	it := cfg.newItem("an dog")
	sep := cfg.tokenSep
	if !it.isTokenStart(0, sep) {
		t.Error("isTokenStart(0) = false, want true")
	}
	if it.isTokenStart(1, sep) {
		t.Error("isTokenStart(1) = true, want false")
	}
	spaceIdx := 2
	if !it.isTokenSep(spaceIdx, sep) {
		t.Fatalf("expected index %d to be the separator in %q", spaceIdx, string(it.text))
	}
	if !it.isTokenStart(spaceIdx+1, sep) {
		t.Error("isTokenStart after separator = false, want true")
	}
}

func TestUniqueCharMinCostZeroForIdenticalSets(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	a := cfg.newItem("abc")
	b := cfg.newItem("bca")
	if got := cfg.uniqueCharMinCost(a, b); got != 0 {
		t.Errorf("uniqueCharMinCost(abc, bca) = %v, want 0", got)
	}
}

func TestUniqueCharMinCostPositiveForDisjointSets(t *testing.T) {
	cfg := mustBuild(t, NewBuilder())
	a := cfg.newItem("abc")
	b := cfg.newItem("xyz")
	if got := cfg.uniqueCharMinCost(a, b); got <= 0 {
		t.Errorf("uniqueCharMinCost(abc, xyz) = %v, want > 0", got)
	}
}
