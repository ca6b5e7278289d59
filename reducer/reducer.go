// Package reducer builds Redux-style reducers from a table of named handlers.
//
// A reducer is created once from an initial state and a Config, then
// dispatched many times:
//
//	r := reducer.New(initial, reducer.Config[State, Payload]{
//		Name:     "session",
//		Handlers: reducer.Table(reducer.Bind("onLogin", LOGIN, REFRESH)),
//		Funcs:    map[string]reducer.HandlerFunc[State, Payload]{"onLogin": onLogin},
//	})
//	next := r.Reduce(nil, reducer.NewAction(LOGIN, payload))
//
// Misconfiguration never fails a dispatch. It is reported to the configured
// diagnostics.Sink and the current state is returned unchanged.
package reducer

import (
	"errors"
	"fmt"
	"maps"

	"go.uber.org/zap"

	"github.com/uniedit/reduxkit/diagnostics"
	"github.com/uniedit/reduxkit/internal/logger"
)

// HandlerFunc computes the next state from the current state and the action data.
// Returning ok == false means the handler produced no state.
type HandlerFunc[S, P any] func(state S, data P) (next S, ok bool)

// Always adapts a transition that always yields a state.
func Always[S, P any](fn func(state S, data P) S) HandlerFunc[S, P] {
	return func(state S, data P) (S, bool) {
		return fn(state, data), true
	}
}

// DispatchFunc is the standard reducer signature. A nil state selects the initial state.
type DispatchFunc[S, P any] func(state *S, action Action[P]) S

// Config describes a reducer.
type Config[S, P any] struct {
	// Name is only used in diagnostics. An empty name is treated as
	// missing and reported as a config warning by New.
	Name string

	// Handlers maps handler names to the action types they respond to.
	Handlers HandlerTable

	// Funcs holds the state transitions keyed by handler name.
	Funcs map[string]HandlerFunc[S, P]

	// Sink receives diagnostics. Defaults to a zap sink over Logger.
	Sink diagnostics.Sink

	// Logger is used when Sink is nil. Defaults to the library logger.
	Logger *zap.Logger
}

// title is the human readable reducer reference used in messages.
func (c Config[S, P]) title() string {
	if c.Name != "" {
		return fmt.Sprintf("the %s reducer", c.Name)
	}
	return "your reducer"
}

// problems lists every configuration issue in reporting order.
func (c Config[S, P]) problems(idx *index) []*ConfigError {
	title := c.title()

	var out []*ConfigError
	if c.Name == "" {
		out = append(out, missingNameError())
	}
	if c.Handlers == nil {
		out = append(out, missingHandlersError(title))
	}
	for _, d := range idx.duplicates {
		out = append(out, duplicateActionTypeError(title, d.actionType, d.owner, d.handler))
	}

	seen := make(map[string]bool, len(c.Handlers))
	for _, h := range c.Handlers.Handlers() {
		if seen[h] {
			continue
		}
		seen[h] = true
		if c.Funcs[h] == nil {
			out = append(out, unboundHandlerError(title, h))
		}
	}
	return out
}

// Validate returns every configuration problem joined into one error, or nil.
// New accepts configs that fail validation; Validate is for callers that
// prefer to fail fast.
func (c Config[S, P]) Validate() error {
	problems := c.problems(compile(c.Handlers))
	if len(problems) == 0 {
		return nil
	}

	errs := make([]error, 0, len(problems))
	for _, p := range problems {
		errs = append(errs, p)
	}
	return errors.Join(errs...)
}

// Reducer dispatches actions to handler functions.
// It is immutable after New and safe for concurrent use as long as the
// handler functions and the sink are. The zero value routes nothing and
// returns every state unchanged.
type Reducer[S, P any] struct {
	name    string
	title   string
	initial S
	idx     *index
	funcs   map[string]HandlerFunc[S, P]
	sink    diagnostics.Sink
}

// New creates a Reducer. Configuration problems are reported as warnings
// and never prevent construction.
func New[S, P any](initialState S, cfg Config[S, P]) *Reducer[S, P] {
	sink := cfg.Sink
	if sink == nil {
		l := cfg.Logger
		if l == nil {
			l = logger.Default()
		}
		sink = diagnostics.NewZapSink(l)
	}

	r := &Reducer[S, P]{
		name:    cfg.Name,
		title:   cfg.title(),
		initial: initialState,
		idx:     compile(cfg.Handlers),
		funcs:   maps.Clone(cfg.Funcs),
		sink:    sink,
	}

	for _, p := range cfg.problems(r.idx) {
		r.sink.Report(p.diagnostic(r.name))
	}
	return r
}

// Name returns the reducer name, possibly empty.
func (r *Reducer[S, P]) Name() string {
	return r.name
}

// InitialState returns the state used when Reduce is given a nil state.
func (r *Reducer[S, P]) InitialState() S {
	return r.initial
}

// Handles reports whether some handler is bound to actionType.
func (r *Reducer[S, P]) Handles(actionType string) bool {
	_, ok := r.idx.lookup(actionType)
	return ok
}

// ActionTypes returns the routed action types in definition order.
func (r *Reducer[S, P]) ActionTypes() []string {
	return r.idx.actionTypes()
}

// Reduce computes the next state. A nil state is replaced by the initial state.
// At most one handler runs; unmatched actions return the state unchanged.
func (r *Reducer[S, P]) Reduce(state *S, action Action[P]) S {
	current := r.initial
	if state != nil {
		current = *state
	}

	handler, ok := r.idx.lookup(action.Type)
	if !ok {
		return current
	}

	fn := r.funcs[handler]
	if fn == nil {
		r.sink.Report(diagnostics.New(
			diagnostics.KindMissingHandler,
			diagnostics.CodeMissingHandler,
			fmt.Sprintf("The '%s' handler function doesn't exist on %s.", handler, r.title),
		).WithReducer(r.name).WithHandler(handler).WithActionType(action.Type))
		return current
	}

	next, ok := fn(current, action.Data)
	if !ok {
		r.sink.Report(diagnostics.New(
			diagnostics.KindHandlerContract,
			diagnostics.CodeNoStateReturned,
			fmt.Sprintf("Action handlers in reducers must return the new state. Check the '%s' handler on %s.", handler, r.title),
		).WithReducer(r.name).WithHandler(handler).WithActionType(action.Type))
		return current
	}
	return next
}

// Dispatch is Reduce with a present state.
func (r *Reducer[S, P]) Dispatch(state S, action Action[P]) S {
	return r.Reduce(&state, action)
}

// Func returns the reducer as a DispatchFunc.
func (r *Reducer[S, P]) Func() DispatchFunc[S, P] {
	return r.Reduce
}
