// Package engine implements the Chef execution engine: it owns the
// mutable cooking state — ingredients, mixing bowls, baking dishes, the
// diner output buffer, and the loop stack — and drives the program
// counter across a parsed recipe's method body, dispatching each
// statement to its operator.
package engine

import (
	"strconv"
	"strings"

	"github.com/kuu/chef/dispatcher"
	"github.com/kuu/chef/model"
	"github.com/kuu/chef/parser"
	"github.com/kuu/chef/token"
)

// DefaultMaxSousChefDepth bounds "Serve with" recursion so a recipe that
// (directly or transitively) serves itself cannot overflow the stack.
const DefaultMaxSousChefDepth = 64

// Options configures a single top-level Run.
type Options struct {
	MaxSousChefDepth int
}

func (o Options) withDefaults() Options {
	if o.MaxSousChefDepth <= 0 {
		o.MaxSousChefDepth = DefaultMaxSousChefDepth
	}
	return o
}

// loopFrame is one entry of the loop stack.
type loopFrame struct {
	startPC   int
	endPC     int
	guard     *model.Ingredient
	decrement *model.Ingredient
	forceExit bool
}

// state is the per-invocation cooking state. A fresh state
// is created for the main recipe and for every sous-chef invocation.
type state struct {
	prog    *parser.Program
	recipe  *parser.Recipe
	bowls   map[int]*model.Stack
	dishes  map[int]*model.Stack
	diners  []string
	loops   []*loopFrame
	pc      int
	exit    bool
	depth   int
	opts    Options
}

// Run executes the program's main recipe (prog.Order[0]) and returns its
// served dishes.
func Run(prog *parser.Program, opts Options) ([]string, error) {
	if len(prog.Order) == 0 {
		return nil, model.NewFault(model.FaultParse, 0, "program has no recipes")
	}
	main := prog.Recipes[prog.Order[0]]
	diners, _, err := run(prog, main, map[int]*model.Stack{}, map[int]*model.Stack{}, 0, opts.withDefaults())
	return diners, err
}

// run executes one recipe invocation (main or sous-chef) to completion
// and returns its diner output and its final bowls (for sous-chef
// merge-back of bowl 1).
func run(prog *parser.Program, recipe *parser.Recipe, bowls, dishes map[int]*model.Stack, depth int, opts Options) ([]string, map[int]*model.Stack, error) {
	s := &state{
		prog:   prog,
		recipe: recipe,
		bowls:  bowls,
		dishes: dishes,
		pc:     recipe.MethodStart,
		depth:  depth,
		opts:   opts,
	}

	for s.pc < recipe.MethodEnd && !s.exit {
		if len(s.loops) > 0 {
			top := s.loops[len(s.loops)-1]
			switch {
			case top.forceExit:
				s.pc = top.endPC + 1
				s.popLoop()
				continue
			case s.pc == top.endPC:
				if top.guard.Value == nil {
					return nil, nil, model.NewFault(model.FaultReference, top.startPC, "loop guard %q has no value", top.guard.Name)
				}
				if top.decrement.Value != nil {
					*top.decrement.Value--
				}
				if *top.guard.Value <= 0 {
					s.pc = top.endPC + 1
					s.popLoop()
					continue
				}
				s.pc = top.startPC + 1
				continue
			}
		}

		if err := s.dispatch(s.pc); err != nil {
			return nil, nil, err
		}
		s.pc++
	}

	if !s.exit {
		dishStrings, err := prepareDishes(s.dishes, recipe.ServesN, recipe.ServesIndex)
		if err != nil {
			return nil, nil, err
		}
		s.diners = append(s.diners, dishStrings...)
	}

	return s.diners, s.bowls, nil
}

func (s *state) pushLoop(f *loopFrame) { s.loops = append(s.loops, f) }

func (s *state) popLoop() { s.loops = s.loops[:len(s.loops)-1] }

func (s *state) bowl(idx int) *model.Stack {
	b, ok := s.bowls[idx]
	if !ok {
		b = &model.Stack{}
		s.bowls[idx] = b
	}
	return b
}

func (s *state) dish(idx int) *model.Stack {
	d, ok := s.dishes[idx]
	if !ok {
		d = &model.Stack{}
		s.dishes[idx] = d
	}
	return d
}

func (s *state) ingredient(name string) (*model.Ingredient, error) {
	ing, ok := s.recipe.Ingredients[name]
	if !ok {
		return nil, model.NewFault(model.FaultReference, s.pc, "unknown ingredient %q", name)
	}
	if ing.Value == nil {
		return nil, model.NewFault(model.FaultReference, s.pc, "ingredient %q has no value", name)
	}
	return ing, nil
}

// dispatch decodes and executes the statement at the given program
// counter.
func (s *state) dispatch(pc int) error {
	stmt := s.prog.Statements[pc]
	tokens := dispatcher.Tokenize(stmt)
	if len(tokens) == 0 {
		return nil
	}

	if _, unsupported := token.UnsupportedVerbs[tokens[0]]; unsupported {
		return model.NewFault(model.FaultUnsupported, pc, "unsupported verb %q", tokens[0])
	}

	verb, ok := dispatcher.Verb(tokens)
	if !ok {
		return s.opLoopHeader(pc, tokens)
	}

	switch verb {
	case token.Put:
		return s.opPut(pc, tokens)
	case token.Fold:
		return s.opFold(pc, tokens)
	case token.Add:
		return s.opAdd(pc, tokens)
	case token.Remove:
		return s.opRemove(pc, tokens)
	case token.Combine:
		return s.opCombine(pc, tokens)
	case token.Divide:
		return s.opDivide(pc, tokens)
	case token.Liquefy:
		return s.opLiquefy(pc, tokens)
	case token.Stir:
		return s.opStir(pc, tokens)
	case token.Clean:
		return s.opClean(pc, tokens)
	case token.Pour:
		return s.opPour(pc, tokens)
	case token.Set:
		return s.opSetAside(pc, tokens)
	case token.Serve:
		return s.opServe(pc, tokens)
	case token.Refrigerate:
		return s.opRefrigerate(pc, tokens)
	default:
		return model.NewFault(model.FaultParse, pc, "unrecognized statement %q", stmt)
	}
}

// prepareDishes implements prepareDishes(N): drain the
// first N baking dishes top-to-bottom, rendering dry cells as decimal
// integers and liquid cells as their Unicode code point. Unspecified
// cells (an "Add dry ingredients" sum, or a Put of an ingredient
// declared without a dry or liquid unit) render as decimal, the same as
// dry.
func prepareDishes(dishes map[int]*model.Stack, n int, stmtIndex int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		d, ok := dishes[i]
		if !ok {
			return nil, model.NewFault(model.FaultState, stmtIndex, "Serves %d requires %d baking dishes, only %d exist", n, n, i-1)
		}
		var b strings.Builder
		for {
			cell, ok := d.Pop()
			if !ok {
				break
			}
			b.WriteString(renderCell(cell))
		}
		out = append(out, b.String())
	}
	return out, nil
}

func renderCell(c model.Cell) string {
	if c.Type == model.Liquid {
		return string(rune(c.Value))
	}
	return strconv.FormatInt(c.Value, 10)
}
