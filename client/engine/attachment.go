package engine

// AttachmentFactory allocates an attachment of the given size and returns it
// along with the function that releases it.
type AttachmentFactory[T any] func(width, height int) (T, func())

// SizedAttachment holds an attachment whose dimensions must follow the canvas,
// such as a depth texture.
type SizedAttachment[T any] struct {
	create AttachmentFactory[T]

	value   T
	release func()
	width   int
	height  int
	valid   bool
}

func NewSizedAttachment[T any](create AttachmentFactory[T]) *SizedAttachment[T] {
	return &SizedAttachment[T]{create: create}
}

// Ensure returns an attachment sized width x height, replacing the current one
// if its size differs. Sizes below 1 are clamped to 1.
func (a *SizedAttachment[T]) Ensure(width, height int) T {
	width, height = max(width, 1), max(height, 1)
	if a.valid && a.width == width && a.height == height {
		return a.value
	}
	a.Release()
	a.value, a.release = a.create(width, height)
	a.width, a.height = width, height
	a.valid = true
	return a.value
}

// Size returns the recorded dimensions; ok is false when nothing is allocated.
func (a *SizedAttachment[T]) Size() (width, height int, ok bool) {
	return a.width, a.height, a.valid
}

// Release frees the current attachment, if any. Safe to call repeatedly.
func (a *SizedAttachment[T]) Release() {
	if !a.valid {
		return
	}
	if a.release != nil {
		a.release()
	}
	var zero T
	a.value, a.release = zero, nil
	a.width, a.height = 0, 0
	a.valid = false
}
