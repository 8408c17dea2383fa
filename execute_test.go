package chef_test

import (
	"fmt"
	"testing"

	"github.com/kuu/chef"
)

// ExampleExecute demonstrates running a minimal recipe to completion.
func ExampleExecute() {
	source := `Hello World Souffle.

Ingredients.
72 g H
105 g i

Method.
Put H into 1st mixing bowl.
Put i into 1st mixing bowl.
Liquefy contents of the 1st mixing bowl.
Pour contents of the 1st mixing bowl into the 1st baking dish.

Serves 1.
`
	dishes, err := chef.Execute(source)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range dishes {
		fmt.Println(d)
	}
	// Output:
	// iH
}

func TestExecuteMissingServes(t *testing.T) {
	source := `Broken.

Ingredients.
1 g x

Method.
Put x into 1st mixing bowl.
`
	if _, err := chef.Execute(source); err == nil {
		t.Fatal("expected an error for a recipe missing its Serves section")
	}
}

func TestExecuteUnknownIngredient(t *testing.T) {
	source := `Broken.

Ingredients.
1 g x

Method.
Put y into 1st mixing bowl.

Serves 1.
`
	_, err := chef.Execute(source)
	if err == nil {
		t.Fatal("expected a reference fault for an unknown ingredient")
	}
	fault, ok := err.(*chef.Fault)
	if !ok {
		t.Fatalf("error is %T, want *chef.Fault", err)
	}
	if fault.Kind != chef.FaultReference {
		t.Errorf("fault.Kind = %v, want %v", fault.Kind, chef.FaultReference)
	}
}

func TestExecuteSousChefRecursionCap(t *testing.T) {
	source := `Loopy.

Ingredients.
1 g x

Method.
Serve with Loopy.

Serves 1.
`
	_, err := chef.ExecuteWithOptions(source, chef.ExecuteOptions{MaxSousChefDepth: 4})
	if err == nil {
		t.Fatal("expected a structural fault for unbounded sous-chef recursion")
	}
}
