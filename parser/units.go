package parser

import (
	"strings"

	units "github.com/bcicen/go-units"

	"github.com/kuu/chef/model"
)

// staticUnits is the fixed Chef unit table. It takes
// priority over go-units because a handful of these tokens ("cup",
// "dash", ...) carry Chef-specific typing that doesn't line up with
// go-units' general-purpose unit categories, and "pinch"/"heaped"/
// "level" aren't real-world units at all.
var staticUnits = map[string]model.IngredientType{
	"g": model.Dry, "kg": model.Dry, "pinch": model.Dry, "pinches": model.Dry,
	"ml": model.Liquid, "l": model.Liquid, "dash": model.Liquid, "dashes": model.Liquid,
	"cup": model.Unspecified, "cups": model.Unspecified,
	"teaspoon": model.Unspecified, "teaspoons": model.Unspecified,
	"tablespoon": model.Unspecified, "tablespoons": model.Unspecified,
}

// unitStart reports the index in tokens at which the ingredient name
// starts (past the leading numeric value and any unit tokens), and the
// type that unit implies.
// tokens[1] is the candidate unit token; tokens[0] is already known to
// be the numeric value.
func unitStart(tokens []string) (start int, typ model.IngredientType) {
	if len(tokens) < 2 {
		return 1, model.Unspecified
	}
	second := strings.ToLower(tokens[1])
	switch second {
	case "heaped", "level":
		return 3, model.Dry
	default:
		if t, ok := staticUnits[second]; ok {
			return 2, t
		}
		if t, ok := tryRealWorldUnit(second); ok {
			return 2, t
		}
		return 1, model.Unspecified
	}
}

// tryRealWorldUnit consults go-units for a unit token the static Chef
// table doesn't recognize.
func tryRealWorldUnit(tok string) (model.IngredientType, bool) {
	u, err := units.Find(tok)
	if err != nil {
		return model.Unspecified, false
	}
	switch u.Kind {
	case units.Mass:
		return model.Dry, true
	case units.Volume:
		return model.Liquid, true
	default:
		return model.Unspecified, false
	}
}
