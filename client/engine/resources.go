package engine

import log "github.com/sirupsen/logrus"

type resource struct {
	name    string
	release func()
}

// Resources tracks GPU objects that must be released explicitly.
// The zero value is ready to use.
type Resources struct {
	tracked []resource
}

// Track registers release to be called by Release. A nil release is ignored.
func (r *Resources) Track(name string, release func()) {
	if release == nil {
		return
	}
	r.tracked = append(r.tracked, resource{name: name, release: release})
}

// Len returns the number of resources still awaiting release.
func (r *Resources) Len() int {
	return len(r.tracked)
}

// Release releases every tracked resource in reverse order of tracking.
// Calling it again is a no-op.
func (r *Resources) Release() {
	for i := len(r.tracked) - 1; i >= 0; i-- {
		res := r.tracked[i]
		log.WithField("resource", res.name).Debug("releasing")
		res.release()
	}
	r.tracked = nil
}
