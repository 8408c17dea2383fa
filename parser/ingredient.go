package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kuu/chef/model"
)

// decodeIngredient decodes one "Ingredients" section line: an optional
// quantity, an optional unit, and an ingredient name.
func decodeIngredient(line string, declPos int) (*model.Ingredient, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty ingredient line")
	}

	if len(tokens) == 1 {
		return model.NewIngredient(tokens[0], nil, model.Unspecified, declPos), nil
	}

	value, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		// Not a numeric first token: the whole line is a bare ingredient
		// name (e.g. a multi-word ingredient declared without a value).
		name := strings.Join(tokens, " ")
		return model.NewIngredient(name, nil, model.Unspecified, declPos), nil
	}

	start, typ := unitStart(tokens)
	if start >= len(tokens) {
		return nil, fmt.Errorf("ingredient line %q has no name after its value/unit", line)
	}
	name := strings.Join(tokens[start:], " ")
	v := value
	return model.NewIngredient(name, &v, typ, declPos), nil
}
