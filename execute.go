package chef

import (
	"github.com/kuu/chef/engine"
	"github.com/kuu/chef/parser"
)

// ExecuteOptions configures a single Execute call.
type ExecuteOptions struct {
	// MaxSousChefDepth bounds "Serve with" recursion. Zero means the
	// engine's default (engine.DefaultMaxSousChefDepth).
	MaxSousChefDepth int
}

// Execute parses source as a Chef program and runs its main recipe to
// completion, returning the ordered list of dishes it serves.
func Execute(source string) ([]string, error) {
	return ExecuteWithOptions(source, ExecuteOptions{})
}

// ExecuteWithOptions is Execute with explicit engine options, used by
// cmd/chef to expose the sous-chef recursion cap as a configuration
// value.
func ExecuteWithOptions(source string, opts ExecuteOptions) ([]string, error) {
	prog, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return engine.Run(prog, engine.Options{MaxSousChefDepth: opts.MaxSousChefDepth})
}
