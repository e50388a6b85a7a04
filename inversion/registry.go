package inversion

import (
	"sort"
	"sync"
)

// Factory builds a fresh Inverter. Factories must be side-effect free;
// New calls them once per request.
type Factory func() (Inverter, error)

// Engine names pre-registered by this package.
const (
	// NamePD selects the base ProductDifference engine.
	NamePD = "pd"

	// NamePDAdaptive selects AdaptivePD with DefaultOptions.
	NamePDAdaptive = "pd-adaptive"
)

var (
	regMu    sync.RWMutex
	registry = map[string]Factory{
		NamePD: func() (Inverter, error) { return NewProductDifference(), nil },
		NamePDAdaptive: func() (Inverter, error) {
			return NewAdaptivePD(DefaultOptions())
		},
	}
)

// Register adds a named engine factory so callers can select inversion
// strategies dynamically (e.g. from configuration handled outside this
// module). Names are first-come-first-served: re-registering an existing
// name, an empty name, or a nil factory returns ErrBadRegistration.
func Register(name string, f Factory) error {
	if name == "" || f == nil {
		return ErrBadRegistration
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[name]; dup {
		return ErrBadRegistration
	}
	registry[name] = f

	return nil
}

// New instantiates the engine registered under name.
// Returns ErrUnknownInverter for names never registered.
func New(name string) (Inverter, error) {
	regMu.RLock()
	f, found := registry[name]
	regMu.RUnlock()
	if !found {
		return nil, ErrUnknownInverter
	}

	return f()
}

// Names lists all registered engine names in lexical order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
