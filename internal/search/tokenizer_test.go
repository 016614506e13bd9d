package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"dark-mode v2", []string{"dark", "mode", "v2"}},
		{"a I x", nil},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"", nil},
		{"UPPER lower MiXeD", []string{"upper", "lower", "mixed"}},
	}
	for _, c := range cases {
		got := Tokenize(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	in := "deploy Friday workflow, deploy again"
	first := Tokenize(in)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(Tokenize(in), first) {
			t.Fatal("expected identical term sequence on repeat")
		}
	}
}

func TestTokenizePreservesOrderAndRepeats(t *testing.T) {
	got := Tokenize("alpha beta alpha")
	want := []string{"alpha", "beta", "alpha"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order-preserving repeats %v, got %v", want, got)
	}
}

func TestQueryTermsCollapseRepeats(t *testing.T) {
	got := queryTerms("dark dark mode")
	want := []string{"dark", "mode"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
