// Package diagnostics carries the non-fatal reports produced while building
// and running reducers. Nothing in this package ever panics or returns an
// error to the dispatch path; reports are handed to a Sink.
package diagnostics

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a diagnostic.
type Kind string

const (
	// KindConfigWarning is reported while a reducer is being constructed
	// (missing name, missing handler table, duplicate action type, unbound handler).
	KindConfigWarning Kind = "config_warning"

	// KindMissingHandler is reported at dispatch time when the matched
	// handler name has no function.
	KindMissingHandler Kind = "missing_handler"

	// KindHandlerContract is reported at dispatch time when a handler
	// returned no state.
	KindHandlerContract Kind = "handler_contract"
)

// Severity is the log level a diagnostic maps to.
type Severity string

const (
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Severity returns the severity of the kind.
func (k Kind) Severity() Severity {
	if k == KindHandlerContract {
		return SeverityError
	}
	return SeverityWarn
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Codes attached to diagnostics.
const (
	CodeMissingName         = "MISSING_NAME"
	CodeMissingHandlers     = "MISSING_HANDLERS"
	CodeDuplicateActionType = "DUPLICATE_ACTION_TYPE"
	CodeUnboundHandler      = "UNBOUND_HANDLER"
	CodeMissingHandler      = "MISSING_HANDLER"
	CodeNoStateReturned     = "NO_STATE_RETURNED"
)

// Diagnostic is a single report.
type Diagnostic struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	Code       string    `json:"code"`
	Reducer    string    `json:"reducer,omitempty"`
	Handler    string    `json:"handler,omitempty"`
	ActionType string    `json:"action_type,omitempty"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New creates a Diagnostic with a fresh ID and timestamp.
func New(kind Kind, code, message string) Diagnostic {
	return Diagnostic{
		ID:         uuid.New(),
		Kind:       kind,
		Code:       code,
		Message:    message,
		OccurredAt: time.Now(),
	}
}

// WithReducer returns a copy tagged with the reducer name.
func (d Diagnostic) WithReducer(name string) Diagnostic {
	d.Reducer = name
	return d
}

// WithHandler returns a copy tagged with the handler name.
func (d Diagnostic) WithHandler(name string) Diagnostic {
	d.Handler = name
	return d
}

// WithActionType returns a copy tagged with the action type.
func (d Diagnostic) WithActionType(actionType string) Diagnostic {
	d.ActionType = actionType
	return d
}

// Severity returns the severity of the diagnostic's kind.
func (d Diagnostic) Severity() Severity {
	return d.Kind.Severity()
}
