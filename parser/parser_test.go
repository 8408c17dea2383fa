package parser

import "testing"

const helloSource = `Hello World Souffle.

Ingredients.
72 g Haricots verts
101 eggs

Method.
Put Haricots verts into 1st mixing bowl.
Put eggs into 1st mixing bowl.

Serves 1.
`

func TestParseBasicRecipe(t *testing.T) {
	prog, err := Parse(helloSource)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(prog.Order) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(prog.Order))
	}
	r := prog.Recipes[prog.Order[0]]
	if r.Title != "Hello World Souffle" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.ServesN != 1 {
		t.Errorf("ServesN = %d, want 1", r.ServesN)
	}
	haricots, ok := r.Ingredients["Haricots verts"]
	if !ok {
		t.Fatalf("missing ingredient Haricots verts")
	}
	if haricots.Type.String() != "dry" || haricots.Value == nil || *haricots.Value != 72 {
		t.Errorf("Haricots verts decoded wrong: %+v", haricots)
	}
	eggs, ok := r.Ingredients["eggs"]
	if !ok || eggs.Value == nil || *eggs.Value != 101 {
		t.Errorf("eggs decoded wrong: %+v", eggs)
	}

	if prog.Statements[r.MethodStart] != "Put Haricots verts into 1st mixing bowl" {
		t.Errorf("MethodStart points at %q", prog.Statements[r.MethodStart])
	}
	if prog.Statements[r.MethodEnd] != "" {
		t.Errorf("MethodEnd should point at the blank delimiter, got %q", prog.Statements[r.MethodEnd])
	}
}

func TestParseMultipleRecipes(t *testing.T) {
	source := helloSource + `
Sauce.

Ingredients.
20 ml milk

Method.
Put milk into 1st mixing bowl.

Serves 1.
`
	prog, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(prog.Order) != 2 {
		t.Fatalf("expected 2 recipes, got %d: %v", len(prog.Order), prog.Order)
	}
	if _, ok := prog.Recipes["sauce"]; !ok {
		t.Errorf("expected sous-chef recipe 'sauce' to be indexed")
	}
}

func TestParseMissingMethodMarker(t *testing.T) {
	bad := `Title.

Ingredients.
1 g x

Serves 1.
`
	if _, err := Parse(bad); err == nil {
		t.Fatal("expected a parse error for missing Method marker")
	}
}

func TestParseMissingServes(t *testing.T) {
	bad := `Title.

Ingredients.
1 g x

Method.
Put x into mixing bowl.
`
	if _, err := Parse(bad); err == nil {
		t.Fatal("expected a parse error for missing Serves marker")
	}
}

func TestDecodeIngredientUnits(t *testing.T) {
	cases := []struct {
		line    string
		name    string
		typeStr string
	}{
		{"72 g Haricots verts", "Haricots verts", "dry"},
		{"1 heaped teaspoon cinnamon", "cinnamon", "dry"},
		{"2 ml oil", "oil", "liquid"},
		{"1 cup sugar", "sugar", "unspecified"},
		{"2 eggs", "eggs", "unspecified"},
		{"salt", "salt", "unspecified"},
	}
	for _, c := range cases {
		ing, err := decodeIngredient(c.line, 0)
		if err != nil {
			t.Fatalf("decodeIngredient(%q) error: %v", c.line, err)
		}
		if ing.Name != c.name {
			t.Errorf("decodeIngredient(%q).Name = %q, want %q", c.line, ing.Name, c.name)
		}
		if ing.Type.String() != c.typeStr {
			t.Errorf("decodeIngredient(%q).Type = %q, want %q", c.line, ing.Type.String(), c.typeStr)
		}
	}
}
