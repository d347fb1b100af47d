// Package scene defines the contract between the host page and the demos.
package scene

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/subhrm/shaders-playground/client/engine"
)

// State is the lifecycle state of a scene.
type State int

const (
	Uninitialized State = iota
	Initialized
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Lifecycle holds a scene's GPU state T, which is only reachable while the
// scene is Initialized.
type Lifecycle[T any] struct {
	state     State
	resources engine.Resources
	value     T
}

func (l *Lifecycle[T]) State() State { return l.state }

// Init builds the scene state. Everything build allocates must be registered
// with the tracker it is given; on failure those resources are released and
// the lifecycle ends in Destroyed.
func (l *Lifecycle[T]) Init(build func(r *engine.Resources) (T, error)) error {
	if l.state != Uninitialized {
		return errors.Errorf("init called on %v scene", l.state)
	}
	v, err := build(&l.resources)
	if err != nil {
		l.resources.Release()
		l.state = Destroyed
		return err
	}
	l.value = v
	l.state = Initialized
	return nil
}

// Get returns the scene state, or false unless the scene is Initialized.
func (l *Lifecycle[T]) Get() (*T, bool) {
	if l.state != Initialized {
		return nil, false
	}
	return &l.value, true
}

// Destroy releases all tracked resources. It is safe in any state and idempotent.
func (l *Lifecycle[T]) Destroy() {
	l.resources.Release()
	var zero T
	l.value = zero
	l.state = Destroyed
}
