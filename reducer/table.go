package reducer

import "slices"

// Action is a record describing an intent to change state.
type Action[P any] struct {
	Type string `json:"type"`
	Data P      `json:"data"`
}

// NewAction creates an Action.
func NewAction[P any](actionType string, data P) Action[P] {
	return Action[P]{Type: actionType, Data: data}
}

// Binding names a handler and the action types it responds to.
type Binding struct {
	Handler     string   `json:"handler"`
	ActionTypes []string `json:"action_types"`
}

// Bind creates a Binding.
func Bind(handler string, actionTypes ...string) Binding {
	return Binding{Handler: handler, ActionTypes: actionTypes}
}

// Listens reports whether the binding lists actionType.
func (b Binding) Listens(actionType string) bool {
	return slices.Contains(b.ActionTypes, actionType)
}

// HandlerTable maps handler names to action types in definition order.
// A nil table means "no table given"; an empty non-nil table means "no handlers".
type HandlerTable []Binding

// Table creates a non-nil HandlerTable from bindings.
func Table(bindings ...Binding) HandlerTable {
	if bindings == nil {
		return HandlerTable{}
	}
	return HandlerTable(bindings)
}

// Lookup returns the first binding, in definition order, that lists actionType.
func (t HandlerTable) Lookup(actionType string) (Binding, bool) {
	for _, b := range t {
		if b.Listens(actionType) {
			return b, true
		}
	}
	return Binding{}, false
}

// Handlers returns the handler names in definition order.
func (t HandlerTable) Handlers() []string {
	names := make([]string, 0, len(t))
	for _, b := range t {
		names = append(names, b.Handler)
	}
	return names
}

// index maps action types to the first binding listing them.
type index struct {
	routes     map[string]string
	types      []string
	duplicates []duplicate
}

type duplicate struct {
	actionType string
	handler    string
	owner      string
}

// compile indexes t. The owner of each action type is whatever Lookup
// returns for it, so the index always agrees with the ordered scan.
func compile(t HandlerTable) *index {
	idx := &index{routes: make(map[string]string)}
	for _, b := range t {
		for _, at := range b.ActionTypes {
			owner, _ := t.Lookup(at)
			if owner.Handler != b.Handler {
				idx.duplicates = append(idx.duplicates, duplicate{actionType: at, handler: b.Handler, owner: owner.Handler})
				continue
			}
			if _, ok := idx.routes[at]; ok {
				continue
			}
			idx.routes[at] = b.Handler
			idx.types = append(idx.types, at)
		}
	}
	return idx
}

func (idx *index) lookup(actionType string) (string, bool) {
	if idx == nil {
		return "", false
	}
	handler, ok := idx.routes[actionType]
	return handler, ok
}

func (idx *index) actionTypes() []string {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.types)
}
