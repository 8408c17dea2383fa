package renderers

import "strings"

// Plain renders each dish on its own line, the way Chef's reference
// implementation prints diner output.
type Plain struct{}

func (Plain) RenderDishes(dishes []string) string {
	return strings.Join(dishes, "\n")
}
