// Package value holds a component value that is either owned by the caller
// (controlled) or by the component itself (uncontrolled). The mode is chosen
// at construction and never changes.
package value

// Source is a controlled or uncontrolled value.
type Source[T any] struct {
	get   func() T
	local T
}

// Controlled returns a source that reads the caller's value on every Get.
// The component never stores a copy; it reports changes and lets the caller
// update what get returns.
func Controlled[T any](get func() T) Source[T] {
	return Source[T]{get: get}
}

// Uncontrolled returns a source that manages its own value, starting at initial.
func Uncontrolled[T any](initial T) Source[T] {
	return Source[T]{local: initial}
}

// IsControlled reports whether the caller owns the value.
func (s Source[T]) IsControlled() bool {
	return s.get != nil
}

// Get returns the current value.
func (s Source[T]) Get() T {
	if s.get != nil {
		return s.get()
	}
	return s.local
}

// Set stores v when the source is uncontrolled and reports whether it did.
// Controlled sources ignore writes.
func (s *Source[T]) Set(v T) bool {
	if s.get != nil {
		return false
	}
	s.local = v
	return true
}
