package renderers

import "encoding/json"

// JSON renders the dish list as a JSON array of strings.
type JSON struct{}

func (JSON) RenderDishes(dishes []string) string {
	if dishes == nil {
		dishes = []string{}
	}
	out, err := json.MarshalIndent(dishes, "", "  ")
	if err != nil {
		// Dishes are plain strings; MarshalIndent cannot fail on them.
		panic(err)
	}
	return string(out)
}
