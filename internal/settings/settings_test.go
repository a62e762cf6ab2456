package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDistanceBuilds(t *testing.T) {
	if _, err := DefaultDistance().Build(); err != nil {
		t.Fatalf("DefaultDistance().Build(): %v", err)
	}
}

func TestBuildRejectsUnknownNormType(t *testing.T) {
	d := DefaultDistance()
	d.NormType = "bogus"
	if _, err := d.Build(); err == nil {
		t.Error("Build with bad NormType: want error, got nil")
	}
}

func TestBuildRejectsMultiScalarTokenSep(t *testing.T) {
	d := DefaultDistance()
	d.TokenSep = "ab"
	if _, err := d.Build(); err == nil {
		t.Error("Build with multi-scalar tokenSep: want error, got nil")
	}
}

func TestLoadFileTOMLOverridesSelectively(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worddist.toml")
	content := "host = \"0.0.0.0\"\nport = 9090\n\n[distance]\nswap_cost = 2.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Load()
	if err := LoadFile(path, &s); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Host != "0.0.0.0" || s.Port != 9090 {
		t.Errorf("Host/Port = %q/%d, want 0.0.0.0/9090", s.Host, s.Port)
	}
	if s.Distance.SwapCost != 2.0 {
		t.Errorf("Distance.SwapCost = %v, want 2.0", s.Distance.SwapCost)
	}
	if s.Distance.InsDelCost != 1.0 {
		t.Errorf("Distance.InsDelCost = %v, want unchanged default 1.0", s.Distance.InsDelCost)
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worddist.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Load()
	if err := LoadFile(path, &s); err == nil {
		t.Error("LoadFile(.json): want error, got nil")
	}
}
