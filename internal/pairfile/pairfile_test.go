package pairfile

import (
	"strings"
	"testing"
)

func TestReadTabSeparated(t *testing.T) {
	in := "dog\tdog\nkitten\tsitting\n"
	pairs, err := ReadAny(strings.NewReader(in), "pairs.tsv")
	if err != nil {
		t.Fatalf("ReadAny: %v", err)
	}
	want := []Pair{{"dog", "dog"}, {"kitten", "sitting"}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i, p := range pairs {
		if p != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestReadTabSeparatedSkipsBlankLines(t *testing.T) {
	in := "dog\tdog\n\n\nkitten\tsitting\n"
	pairs, err := ReadAny(strings.NewReader(in), "pairs.txt")
	if err != nil {
		t.Fatalf("ReadAny: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
}

func TestReadTabSeparatedRejectsWrongColumnCount(t *testing.T) {
	in := "dog\tdog\textra\n"
	_, err := ReadAny(strings.NewReader(in), "pairs.tsv")
	if err == nil {
		t.Error("ReadAny with 3 columns: want error, got nil")
	}
}

func TestReadCSVSkipsShortRows(t *testing.T) {
	in := "a,b\nc\nd,e\n"
	pairs, err := ReadAny(strings.NewReader(in), "pairs.csv")
	if err != nil {
		t.Fatalf("ReadAny: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
}

func TestReadAnyUnsupportedExtension(t *testing.T) {
	_, err := ReadAny(strings.NewReader(""), "pairs.json")
	if err == nil {
		t.Error("ReadAny(.json): want error, got nil")
	}
}
