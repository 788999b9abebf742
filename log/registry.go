package log

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Registry holds the factories made visible by backends, in registration order.
//
// The zero value of Registry is ready for use.
type Registry struct {
	lock    sync.Mutex
	handles []Handle
}

// Register adds the given factory to the registry, panicking if it is nil.
func (r *Registry) Register(factory Factory) {
	if factory == nil {
		panic("log: Register factory is nil")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.handles = append(r.handles, NewHandle(factory))
}

// Handles returns a snapshot of the registered factories. The order reflects registration order only, it doesn't imply
// any priority.
func (r *Registry) Handles() []Handle {
	r.lock.Lock()
	defer r.lock.Unlock()

	return slices.Clone(r.handles)
}

// registry is the process wide registry populated by backend 'init' functions.
var registry Registry

// Register makes a backend factory available for binding, it's intended to be called from the 'init' function of
// backend packages. Registering after the binding has been resolved has no effect on the bound factory.
func Register(factory Factory) {
	registry.Register(factory)
}

// Registered returns a snapshot of every factory registered with 'Register'.
func Registered() []Handle {
	return registry.Handles()
}
