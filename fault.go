package chef

import "github.com/kuu/chef/model"

// Fault is the error type Execute returns on failure. It is an alias
// for model.Fault so callers never need to import the model package
// directly for a type assertion.
type Fault = model.Fault

// FaultKind is the taxonomy of error a Fault can carry.
type FaultKind = model.FaultKind

const (
	FaultParse       = model.FaultParse
	FaultReference   = model.FaultReference
	FaultState       = model.FaultState
	FaultUnsupported = model.FaultUnsupported
	FaultStructural  = model.FaultStructural
)
