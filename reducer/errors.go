package reducer

import (
	"errors"
	"fmt"

	"github.com/uniedit/reduxkit/diagnostics"
)

// Configuration errors returned by Config.Validate.
var (
	ErrMissingName         = errors.New("reducer name missing")
	ErrMissingHandlers     = errors.New("handler table missing")
	ErrDuplicateActionType = errors.New("action type bound to more than one handler")
	ErrUnboundHandler      = errors.New("handler function missing")
)

// ConfigError describes one problem in a reducer Config.
type ConfigError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Handler    string `json:"handler,omitempty"`
	ActionType string `json:"action_type,omitempty"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func missingNameError() *ConfigError {
	return &ConfigError{
		Code:    diagnostics.CodeMissingName,
		Message: "One of your reducers is missing a `name` property in its object definition.",
		Err:     ErrMissingName,
	}
}

func missingHandlersError(title string) *ConfigError {
	return &ConfigError{
		Code:    diagnostics.CodeMissingHandlers,
		Message: fmt.Sprintf("The 'handlers' key must be present in %s to listen to action types", title),
		Err:     ErrMissingHandlers,
	}
}

func duplicateActionTypeError(title, actionType, owner, handler string) *ConfigError {
	return &ConfigError{
		Code: diagnostics.CodeDuplicateActionType,
		Message: fmt.Sprintf("The '%s' action type is already handled by '%s' on %s; '%s' will not receive it.",
			actionType, owner, title, handler),
		Handler:    handler,
		ActionType: actionType,
		Err:        ErrDuplicateActionType,
	}
}

func unboundHandlerError(title, handler string) *ConfigError {
	return &ConfigError{
		Code:    diagnostics.CodeUnboundHandler,
		Message: fmt.Sprintf("The '%s' handler function doesn't exist on %s.", handler, title),
		Handler: handler,
		Err:     ErrUnboundHandler,
	}
}

// diagnostic converts a construction-time problem into a config warning.
func (e *ConfigError) diagnostic(reducer string) diagnostics.Diagnostic {
	return diagnostics.New(diagnostics.KindConfigWarning, e.Code, e.Message).
		WithReducer(reducer).
		WithHandler(e.Handler).
		WithActionType(e.ActionType)
}
