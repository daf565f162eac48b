package zscroll

import (
	"fmt"
	"log"
)

// Registry maps containers to their controllers. Each container owns at
// most one controller. A Registry belongs to whichever layer creates the
// containers; it is not safe for concurrent use.
type Registry struct {
	controllers map[Container]*Controller
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{controllers: make(map[Container]*Controller)}
}

// Bind returns the controller of b.Container, creating it with config on
// first use, and initializes it. Binding an already bound container ignores
// b and config and re-runs Initialize on the existing controller. config
// follows the rules of NewController.
func (r *Registry) Bind(b Binding, config Config) (*Controller, error) {
	c, ok := r.controllers[b.Container]
	if !ok {
		c = NewController(b, config)
		r.controllers[b.Container] = c
	}
	if err := c.Initialize(); err != nil {
		return c, err
	}
	return c, nil
}

// Lookup returns the controller bound to a container.
func (r *Registry) Lookup(container Container) (*Controller, bool) {
	c, ok := r.controllers[container]
	return c, ok
}

// Len returns the number of bound containers.
func (r *Registry) Len() int {
	return len(r.controllers)
}

// ScrollTo scrolls the controller bound to container. It fails when no
// controller is bound or the controller never became active.
func (r *Registry) ScrollTo(container Container, target ScrollTarget) error {
	c, ok := r.controllers[container]
	if !ok {
		log.Printf("zscroll: scroll to on unbound container %T", container)
		return fmt.Errorf("scroll to: %w", ErrNoController)
	}
	return c.ScrollTo(target)
}

// Update re-runs layout for the controller bound to container.
func (r *Registry) Update(container Container) error {
	c, ok := r.controllers[container]
	if !ok {
		return fmt.Errorf("update: %w", ErrNoController)
	}
	return c.Update()
}

// Unbind forgets the controller of a container and ends any drag it holds.
// Persisted offsets are left intact.
func (r *Registry) Unbind(container Container) {
	c, ok := r.controllers[container]
	if !ok {
		return
	}
	c.pointerUp(true)
	delete(r.controllers, container)
}
