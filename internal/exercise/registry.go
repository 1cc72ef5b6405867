package exercise

import (
	"sync"

	"github.com/go-faster/errors"

	"drill/pkg/serrors"
)

// Case is one sample invocation of a drill.
type Case struct {
	// Give is the display form of the invocation arguments, e.g. "5, 4".
	Give string
	// Want is the expected output literal. Empty when Check is set.
	Want string
	// Run executes the bound function and formats its output.
	Run func() (string, error)
	// Check validates outputs whose contract is a property rather than a
	// literal, such as a value falling within a range. Used instead of Want.
	Check func(got string) error
}

// Spec describes a named drill: a one-line description and the sample cases
// the runner executes for it.
type Spec struct {
	// Name is the unique drill name, e.g. "tableRow".
	Name string
	// Description is a one-line summary of the drill's contract.
	Description string
	// Cases are the sample invocations, in execution order.
	Cases []Case
}

// Registry holds drill specs by name, preserving registration order.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
	order []string
}

// NewRegistry creates an empty drill registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[string]Spec),
	}
}

// Register adds a drill spec to the registry. Registering the same name twice
// is an error.
func (r *Registry) Register(spec Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[spec.Name]; exists {
		return errors.Errorf("drill %q already registered", spec.Name)
	}

	r.specs[spec.Name] = spec
	r.order = append(r.order, spec.Name)

	return nil
}

// Get retrieves a drill spec by name. Unknown names return a not-found error.
func (r *Registry) Get(name string) (Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, exists := r.specs[name]
	if !exists {
		return Spec{}, serrors.With(serrors.ErrNotFound, "drill %q not found", name)
	}

	return spec, nil
}

// All returns every registered drill spec in registration order.
func (r *Registry) All() []Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.specs[name])
	}

	return specs
}
