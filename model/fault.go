package model

import "fmt"

// FaultKind is the taxonomy of error a Fault can carry;
// it is not exposed as distinct Go error types, only as a tag on Fault.
type FaultKind string

const (
	FaultParse       FaultKind = "parse"
	FaultReference   FaultKind = "reference"
	FaultState       FaultKind = "state"
	FaultUnsupported FaultKind = "unsupported"
	FaultStructural  FaultKind = "structural"
)

// Fault is the single error value the core returns. It always carries
// the 1-based statement index at which execution failed, so a caller
// can report a location without the core needing any source-position
// tracking beyond the statement list itself.
type Fault struct {
	Kind      FaultKind
	Message   string
	Statement int // 1-based statement index; NewFault always sets it to at least 1, and Error omits it only when it is 0
}

func (f *Fault) Error() string {
	if f.Statement > 0 {
		return fmt.Sprintf("statement %d: %s", f.Statement, f.Message)
	}
	return f.Message
}

// NewFault is the exported constructor other packages (parser,
// dispatcher, engine) use to build a Fault at a given 0-based statement
// index.
func NewFault(kind FaultKind, stmtIndex int, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, args...), Statement: stmtIndex + 1}
}
