package dispatcher

import (
	"testing"

	"github.com/kuu/chef/token"
)

func TestVerb(t *testing.T) {
	tokens := Tokenize("Put Haricots verts into 1st mixing bowl")
	v, ok := Verb(tokens)
	if !ok || v != token.Put {
		t.Fatalf("Verb() = (%q, %v), want (Put, true)", v, ok)
	}

	loopTokens := Tokenize("Cook the potatoes")
	_, ok = Verb(loopTokens)
	if ok {
		t.Fatalf("Verb() should report not-ok for an arbitrary loop-header verb")
	}
}

func TestExtractIngredientName(t *testing.T) {
	tokens := Tokenize("Put the Haricots verts into 1st mixing bowl")
	name := ExtractIngredientName(tokens, 1, "into")
	if name != "Haricots verts" {
		t.Errorf("ExtractIngredientName = %q, want %q", name, "Haricots verts")
	}

	tokens = Tokenize("Add dry ingredients")
	name = ExtractIngredientName(tokens, 1, "")
	if name != "dry ingredients" {
		t.Errorf("ExtractIngredientName = %q, want %q", name, "dry ingredients")
	}
}

func TestExtractMixingBowlIndex(t *testing.T) {
	cases := []struct {
		stmt  string
		want  int
		found bool
	}{
		{"Put x into 1st mixing bowl", 1, true},
		{"Put x into 2nd mixing bowl", 2, true},
		{"Put x into mixing bowl", 1, true},
		{"Fold x", 0, false},
	}
	for _, c := range cases {
		idx, found := ExtractMixingBowlIndex(Tokenize(c.stmt))
		if idx != c.want || found != c.found {
			t.Errorf("ExtractMixingBowlIndex(%q) = (%d, %v), want (%d, %v)", c.stmt, idx, found, c.want, c.found)
		}
	}
}

func TestExtractBakingDishIndex(t *testing.T) {
	idx, found := ExtractBakingDishIndex(Tokenize("Pour contents of the 3rd baking dish into the 1st baking dish"))
	if !found || idx != 3 {
		t.Errorf("ExtractBakingDishIndex = (%d, %v), want (3, true)", idx, found)
	}
}
