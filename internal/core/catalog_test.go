package core

import "testing"

func TestCategoryLabel(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"Groceries", "Alimentos"},
		{"Transportation", "Transporte"},
		{"Salary", "Salario"},
		{"Shopping (Non-essential)", "Compras (No esenciales)"},
		{"NoSuchCategory", "NoSuchCategory"}, // unknown codes render as-is
	}
	for _, tc := range cases {
		if got := CategoryLabel(tc.code); got != tc.want {
			t.Errorf("CategoryLabel(%q): expected %q, got %q", tc.code, tc.want, got)
		}
	}
}

func TestKnownCategory(t *testing.T) {
	if !KnownCategory("Miscellaneous") {
		t.Error("expected Miscellaneous to be known")
	}
	if KnownCategory("") {
		t.Error("expected empty code to be unknown")
	}
	if KnownCategory("Alimentos") {
		t.Error("labels are not codes")
	}
}

func TestCategoriesIsACopy(t *testing.T) {
	first := Categories()
	if len(first) != 21 {
		t.Fatalf("expected 21 catalog entries, got %d", len(first))
	}
	first[0].Label = "mutated"
	if Categories()[0].Label != "Alimentos" {
		t.Error("catalog leaked internal state")
	}
}
