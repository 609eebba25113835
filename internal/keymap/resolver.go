package keymap

import "slices"

// Resolver looks up the action bound to a key within one set of bindings.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings. A key bound twice resolves to the later binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// ForContext returns a resolver over the bindings of one context.
func ForContext(context string) *Resolver {
	return NewResolver(ByContext(context))
}

// Resolve returns the action bound to key, or "" if none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// Is reports whether key triggers action.
func (r *Resolver) Is(key string, action Action) bool {
	return action != "" && r.actions[key] == action
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}
