// Package parser implements the Chef recipe parser and section state
// machine: it walks the normalized statement list,
// extracting each recipe's title, ingredient table, and method-statement
// range, and builds the title index "Serve with" uses to locate
// sous-chef recipes.
package parser

import (
	"strconv"
	"strings"

	"github.com/kuu/chef/lexer"
	"github.com/kuu/chef/model"
	"github.com/kuu/chef/token"
)

// Recipe is one parsed titled recipe: its ingredient symbol table and
// the absolute statement-index range of its method body, plus its
// Serves declaration. The engine runs the program counter over
// [MethodStart, MethodEnd) and, on natural completion, serves ServesN
// dishes.
type Recipe struct {
	Title       string
	TitleIndex  int
	Ingredients map[string]*model.Ingredient
	MethodStart int
	MethodEnd   int // exclusive; index of the blank statement after the method body
	ServesIndex int
	ServesN     int
}

// Program is the fully parsed source text: every recipe it contains
// (main recipe plus any sous-chef recipes), keyed by lowercase trimmed
// title, plus the statement list they all share and the source order of
// titles (Order[0] is the main recipe).
type Program struct {
	Statements []string
	Recipes    map[string]*Recipe
	Order      []string
}

// Parse normalizes source and parses every recipe it contains.
func Parse(source string) (*Program, error) {
	statements := normalize(source)
	prog := &Program{Statements: statements, Recipes: map[string]*Recipe{}}

	pos := 0
	for pos < len(statements) {
		// Skip blank statements between recipes.
		if statements[pos] == "" {
			pos++
			continue
		}
		recipe, next, err := parseOne(statements, pos)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(strings.TrimSpace(recipe.Title))
		prog.Recipes[key] = recipe
		prog.Order = append(prog.Order, key)
		pos = next
	}

	if len(prog.Order) == 0 {
		return nil, model.NewFault(model.FaultParse, 0, "no recipe found in source")
	}
	return prog, nil
}

// parseOne parses a single recipe beginning at statement index start
// (which must be the title statement, or the first of several) and
// returns it along with the index to resume scanning from for the next
// recipe.
func parseOne(statements []string, start int) (*Recipe, int, error) {
	r := &Recipe{Ingredients: map[string]*model.Ingredient{}}
	state := token.DiscoveringTitle
	i := start
	declPos := 0

	for i < len(statements) {
		stmt := statements[i]
		switch state {
		case token.DiscoveringTitle:
			switch {
			case stmt == "Ingredients":
				state = token.ReadingIngredients
			case stmt != "":
				if r.Title == "" {
					r.Title = stmt
					r.TitleIndex = i
				} else {
					r.Title += " " + stmt
				}
			}

		case token.ReadingIngredients:
			if stmt == "" {
				state = token.IngredientsComplete
				break
			}
			ing, err := decodeIngredient(stmt, declPos)
			if err != nil {
				return nil, 0, model.NewFault(model.FaultParse, i, "%s", err)
			}
			r.Ingredients[ing.Name] = ing
			declPos++

		case token.IngredientsComplete:
			if stmt != "Method" {
				return nil, 0, model.NewFault(model.FaultParse, i, "expected 'Method' section marker, found %q", stmt)
			}
			state = token.ReadingInstructions
			r.MethodStart = i + 1

		case token.ReadingInstructions:
			if stmt == "" {
				state = token.Serving
				r.MethodEnd = i
			}

		case token.Serving:
			if !strings.HasPrefix(stmt, "Serves ") {
				return nil, 0, model.NewFault(model.FaultParse, i, "expected 'Serves N' section marker, found %q", stmt)
			}
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(stmt, "Serves ")))
			if err != nil {
				return nil, 0, model.NewFault(model.FaultParse, i, "malformed Serves statement: %q", stmt)
			}
			r.ServesIndex = i
			r.ServesN = n
			return r, i + 1, nil
		}
		i++
	}

	return nil, 0, model.NewFault(model.FaultParse, i, "recipe %q is missing its Serves section", r.Title)
}

// normalize is a thin indirection so this package has a single seam to
// the lexer.
func normalize(source string) []string {
	return lexer.Normalize(source)
}
