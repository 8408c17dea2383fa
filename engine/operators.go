package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kuu/chef/dispatcher"
	"github.com/kuu/chef/model"
)

// opPut implements "Put <ingredient> into [the] [<ordinal>] mixing bowl."
// The target bowl must be explicit.
func (s *state) opPut(pc int, tokens []string) error {
	name := dispatcher.ExtractIngredientName(tokens, 1, "into")
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		return model.NewFault(model.FaultParse, pc, "Put requires an explicit mixing bowl")
	}
	ing, err := s.ingredient(name)
	if err != nil {
		return err
	}
	s.bowl(bowlIdx).Push(model.Cell{Value: *ing.Value, Type: ing.Type})
	return nil
}

// opFold implements "Fold <ingredient> into [the] [<ordinal>] mixing
// bowl.": pop the bowl's top cell into the named ingredient.
func (s *state) opFold(pc int, tokens []string) error {
	name := dispatcher.ExtractIngredientName(tokens, 1, "into")
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		return model.NewFault(model.FaultParse, pc, "Fold requires an explicit mixing bowl")
	}
	cell, ok := s.bowl(bowlIdx).Pop()
	if !ok {
		return model.NewFault(model.FaultState, pc, "mixing bowl %d is empty", bowlIdx)
	}
	ing, ok := s.recipe.Ingredients[name]
	if !ok {
		return model.NewFault(model.FaultReference, pc, "unknown ingredient %q", name)
	}
	v := cell.Value
	ing.Value = &v
	ing.Type = cell.Type
	return nil
}

// opAdd implements "Add <ingredient> [to [the] [<ordinal>] mixing
// bowl]." and the special form "Add dry ingredients [to ...]."
func (s *state) opAdd(pc int, tokens []string) error {
	name := dispatcher.ExtractIngredientName(tokens, 1, "to")
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		bowlIdx = 1
	}
	bowl := s.bowl(bowlIdx)

	if name == "dry ingredients" {
		ordered := make([]*model.Ingredient, 0, len(s.recipe.Ingredients))
		for _, ing := range s.recipe.Ingredients {
			ordered = append(ordered, ing)
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].DeclPos() < ordered[j].DeclPos() })

		var sum int64
		for _, ing := range ordered {
			if ing.Type == model.Dry && ing.Value != nil {
				sum += *ing.Value
			}
		}
		bowl.Push(model.Cell{Value: sum, Type: model.Unspecified})
		return nil
	}

	ing, err := s.ingredient(name)
	if err != nil {
		return err
	}
	top, ok := bowl.Top()
	if !ok {
		return model.NewFault(model.FaultState, pc, "mixing bowl %d is empty", bowlIdx)
	}
	top.Value += *ing.Value
	return nil
}

// opRemove implements "Remove <ingredient> [from [the] [<ordinal>]
// mixing bowl]."
func (s *state) opRemove(pc int, tokens []string) error {
	name := dispatcher.ExtractIngredientName(tokens, 1, "from")
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		bowlIdx = 1
	}
	ing, err := s.ingredient(name)
	if err != nil {
		return err
	}
	top, ok := s.bowl(bowlIdx).Top()
	if !ok {
		return model.NewFault(model.FaultState, pc, "mixing bowl %d is empty", bowlIdx)
	}
	top.Value -= *ing.Value
	return nil
}

// opCombine implements "Combine <ingredient> [into [the] [<ordinal>]
// mixing bowl]." (multiply the bowl's top cell by the ingredient).
func (s *state) opCombine(pc int, tokens []string) error {
	name := dispatcher.ExtractIngredientName(tokens, 1, "into")
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		bowlIdx = 1
	}
	ing, err := s.ingredient(name)
	if err != nil {
		return err
	}
	top, ok := s.bowl(bowlIdx).Top()
	if !ok {
		return model.NewFault(model.FaultState, pc, "mixing bowl %d is empty", bowlIdx)
	}
	top.Value *= *ing.Value
	return nil
}

// opDivide implements "Divide <ingredient> [into [the] [<ordinal>]
// mixing bowl]." Division truncates toward zero, matching Go's native
// integer division.
func (s *state) opDivide(pc int, tokens []string) error {
	name := dispatcher.ExtractIngredientName(tokens, 1, "into")
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		bowlIdx = 1
	}
	ing, err := s.ingredient(name)
	if err != nil {
		return err
	}
	if *ing.Value == 0 {
		return model.NewFault(model.FaultState, pc, "division by zero")
	}
	top, ok := s.bowl(bowlIdx).Top()
	if !ok {
		return model.NewFault(model.FaultState, pc, "mixing bowl %d is empty", bowlIdx)
	}
	top.Value /= *ing.Value
	return nil
}

// opLiquefy implements both "Liquefy <ingredient>." (a documentation-only
// ingredient-form, treated identically) and "Liquefy contents of the
// [<ordinal>] mixing bowl.": mark every cell currently in the target
// bowl liquid.
func (s *state) opLiquefy(_ int, tokens []string) error {
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		bowlIdx = 1
	}
	bowl := s.bowl(bowlIdx)
	for i := range bowl.Cells {
		bowl.Cells[i].Type = model.Liquid
	}
	return nil
}

// opStir implements both stir forms:
//
//	Stir [the [<ordinal>] mixing bowl] for <N> minutes.
//	Stir <ingredient> into the [<ordinal>] mixing bowl.
//
// Both roll the bowl's top cell down by N positions.
func (s *state) opStir(pc int, tokens []string) error {
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		bowlIdx = 1
	}

	var n int64
	if idx := dispatcher.IndexOf(tokens, "minutes"); idx > 0 {
		v, err := strconv.ParseInt(tokens[idx-1], 10, 64)
		if err != nil {
			return model.NewFault(model.FaultParse, pc, "Stir: invalid minute count %q", tokens[idx-1])
		}
		n = v
	} else {
		name := dispatcher.ExtractIngredientName(tokens, 1, "into")
		ing, err := s.ingredient(name)
		if err != nil {
			return err
		}
		n = *ing.Value
	}

	return stirRoll(pc, s.bowl(bowlIdx), n)
}

// stirRoll pops the bowl's top cell and reinserts it n positions down:
// the new index is max(0, remaining length - n).
func stirRoll(pc int, bowl *model.Stack, n int64) error {
	top, ok := bowl.Pop()
	if !ok {
		return model.NewFault(model.FaultState, pc, "mixing bowl is empty")
	}
	remaining := int64(len(bowl.Cells))
	idx := remaining - n
	if idx < 0 {
		idx = 0
	}
	bowl.Cells = append(bowl.Cells, model.Cell{})
	copy(bowl.Cells[idx+1:], bowl.Cells[idx:])
	bowl.Cells[idx] = top
	return nil
}

// opClean implements "Clean [the [<ordinal>] mixing bowl].": replace the
// target bowl with an empty one (default index 1).
func (s *state) opClean(_ int, tokens []string) error {
	bowlIdx, specified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !specified {
		bowlIdx = 1
	}
	s.bowls[bowlIdx] = &model.Stack{}
	return nil
}

// opPour implements "Pour contents of the [<ordinal>] mixing bowl into
// the [<ordinal>] baking dish.": append the bowl's cells (bottom to top)
// onto the dish, leaving the bowl intact.
func (s *state) opPour(pc int, tokens []string) error {
	bowlIdx, bowlSpecified := dispatcher.ExtractMixingBowlIndex(tokens)
	if !bowlSpecified {
		return model.NewFault(model.FaultParse, pc, "Pour requires an explicit mixing bowl")
	}
	dishIdx, dishSpecified := dispatcher.ExtractBakingDishIndex(tokens)
	if !dishSpecified {
		return model.NewFault(model.FaultParse, pc, "Pour requires an explicit baking dish")
	}
	bowl := s.bowl(bowlIdx)
	if bowl.Len() == 0 {
		return model.NewFault(model.FaultState, pc, "mixing bowl %d is empty", bowlIdx)
	}
	dish := s.dish(dishIdx)
	dish.Cells = append(dish.Cells, bowl.Cells...)
	return nil
}

// opSetAside implements "Set aside.": force the innermost loop to exit
// before the next statement runs; the pc loop then resumes just after
// that loop's until-footer. A no-op outside any loop.
func (s *state) opSetAside(_ int, _ []string) error {
	if len(s.loops) == 0 {
		return nil
	}
	s.loops[len(s.loops)-1].forceExit = true
	return nil
}

// opServe implements "Serve with <recipe title>.": deep-copy the caller's
// bowls and dishes, run the named recipe as a sous-chef, and merge bowl
// 1 of its result back by appending onto the caller's bowl 1.
func (s *state) opServe(pc int, tokens []string) error {
	title := dispatcher.ExtractIngredientName(tokens, 2, "")
	key := strings.ToLower(strings.TrimSpace(title))
	sous, ok := s.prog.Recipes[key]
	if !ok {
		return model.NewFault(model.FaultStructural, pc, "no recipe named %q to serve", title)
	}
	if s.depth+1 >= s.opts.MaxSousChefDepth {
		return model.NewFault(model.FaultStructural, pc, "sous-chef recursion depth exceeded serving %q", title)
	}

	clonedBowls := cloneStacks(s.bowls)
	clonedDishes := cloneStacks(s.dishes)
	_, sousBowls, err := run(s.prog, sous, clonedBowls, clonedDishes, s.depth+1, s.opts)
	if err != nil {
		return err
	}

	if sousBowl1, ok := sousBowls[1]; ok {
		s.bowl(1).Cells = append(s.bowl(1).Cells, sousBowl1.Cells...)
	}
	return nil
}

// opRefrigerate implements "Refrigerate." and "Refrigerate for <N>
// hours.": both end the recipe immediately; the "for N hours" form also
// serves the first N baking dishes before stopping.
func (s *state) opRefrigerate(pc int, tokens []string) error {
	s.exit = true
	if idx := dispatcher.IndexOf(tokens, "for"); idx >= 0 && idx+1 < len(tokens) {
		n, err := strconv.Atoi(tokens[idx+1])
		if err != nil {
			return model.NewFault(model.FaultParse, pc, "Refrigerate: invalid hour count %q", tokens[idx+1])
		}
		dishStrings, err := prepareDishes(s.dishes, n, pc)
		if err != nil {
			return err
		}
		s.diners = append(s.diners, dishStrings...)
	}
	return nil
}

// opLoopHeader implements the arbitrary-verb loop header "<Verb> the
// <ingredient>.": scan forward for the matching "until" statement,
// record a loop frame, and let the pc loop's back-edge handling take
// over from there.
//
// The scan tracks nesting depth rather than stopping at the first
// "until" it sees: any statement after the header that is itself an
// arbitrary-verb loop header (not one of the fixed verbs, and not
// itself an until-footer) opens another level, and each until-footer
// closes one. This lets a lexically nested loop's own footer close
// without being mistaken for the enclosing loop's end.
func (s *state) opLoopHeader(pc int, tokens []string) error {
	guardName := dispatcher.ExtractIngredientName(tokens, 1, "")
	guard, ok := s.recipe.Ingredients[guardName]
	if !ok {
		return model.NewFault(model.FaultReference, pc, "unknown loop ingredient %q", guardName)
	}

	endPC := -1
	depth := 1
	for j := pc + 1; j < s.recipe.MethodEnd; j++ {
		candidate := dispatcher.Tokenize(s.prog.Statements[j])
		if len(candidate) == 0 {
			continue
		}
		if dispatcher.IndexOf(candidate, "until") >= 0 {
			depth--
			if depth == 0 {
				endPC = j
				break
			}
			continue
		}
		if _, fixed := dispatcher.Verb(candidate); !fixed {
			depth++
		}
	}
	if endPC < 0 {
		return model.NewFault(model.FaultStructural, pc, "loop started by %q has no matching until", s.prog.Statements[pc])
	}

	footer := dispatcher.Tokenize(s.prog.Statements[endPC])
	decrement := guard
	if decName := dispatcher.ExtractIngredientName(footer, 1, "until"); decName != "" {
		d, ok := s.recipe.Ingredients[decName]
		if !ok {
			return model.NewFault(model.FaultReference, endPC, "unknown loop decrement ingredient %q", decName)
		}
		decrement = d
	}

	s.pushLoop(&loopFrame{
		startPC:   pc,
		endPC:     endPC,
		guard:     guard,
		decrement: decrement,
	})
	return nil
}

func cloneStacks(src map[int]*model.Stack) map[int]*model.Stack {
	out := make(map[int]*model.Stack, len(src))
	for k, v := range src {
		out[k] = v.Clone()
	}
	return out
}

