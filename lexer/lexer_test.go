package lexer

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	source := "Hello World Souffle.\r\n\r\nIngredients.\n72 g Haricots verts\n\nMethod.\nPut Haricots verts into 1st mixing bowl. Serve with Sauce.\n\nServes 1.\n"
	want := []string{
		"Hello World Souffle",
		"",
		"Ingredients",
		"72 g Haricots verts",
		"",
		"Method",
		"Put Haricots verts into 1st mixing bowl", "Serve with Sauce",
		"",
		"Serves 1",
	}
	got := Normalize(source)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() =\n%#v\nwant\n%#v", got, want)
	}
}

func TestNormalizeKeepsBlankRuns(t *testing.T) {
	source := "Title.\n\n\nIngredients."
	got := Normalize(source)
	want := []string{"Title", "", "", "Ingredients"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %#v, want %#v", got, want)
	}
}

func TestNormalizeMultiSentenceLine(t *testing.T) {
	got := Normalize("Stir the mixing bowl for 2 minutes. Remove n from mixing bowl.")
	want := []string{"Stir the mixing bowl for 2 minutes", "Remove n from mixing bowl"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %#v, want %#v", got, want)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	got := Normalize("A.\r\nB.\r")
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %#v, want %#v", got, want)
	}
}
