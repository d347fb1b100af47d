package scene

import "sync"

// Drawable is the part of a scene that a Slot drives once it is attached.
type Drawable interface {
	Draw(dt float64)
	Destroy()
}

// Slot holds the scene currently on screen. Draw and Destroy always run under
// the slot's lock, so a frame never draws a scene that is being torn down.
type Slot[T Drawable] struct {
	mu         sync.Mutex
	active     T
	activeID   string
	attached   bool
	generation int
}

// Draw draws the attached scene, if any.
func (s *Slot[T]) Draw(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		s.active.Draw(dt)
	}
}

// Detach destroys the attached scene and starts a new selection. The returned
// generation must be passed to Attach; it goes stale once Detach is called
// again. previousID is empty if nothing was attached.
func (s *Slot[T]) Detach() (generation int, previousID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.attached {
		s.active.Destroy()
		previousID = s.activeID
	}
	var zero T
	s.active, s.activeID, s.attached = zero, "", false
	return s.generation, previousID
}

// Attach makes next the active scene unless a later Detach superseded
// generation, in which case next is destroyed and Attach returns false.
func (s *Slot[T]) Attach(generation int, id string, next T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		next.Destroy()
		return false
	}
	s.active, s.activeID, s.attached = next, id, true
	return true
}

// ActiveID returns the id of the attached scene, or "" if none is attached.
func (s *Slot[T]) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}
