// Package update provides the tri-state wrapper used by edit requests.
package update

// NewValue distinguishes "leave alone" from "set to this value".
// The zero value is unset, so request structs default to no-op edits.
type NewValue[T any] struct {
	value T
	isSet bool
}

// Set wraps a value the caller wants written
func Set[T any](value T) NewValue[T] {
	return NewValue[T]{value: value, isSet: true}
}

// Unset is the explicit form of the zero value
func Unset[T any]() NewValue[T] {
	return NewValue[T]{}
}

// IsSet reports whether the caller supplied a value
func (v NewValue[T]) IsSet() bool {
	return v.isSet
}

// Value returns the supplied value; zero when unset
func (v NewValue[T]) Value() T {
	return v.value
}

// ValueOr returns the supplied value or current when unset
func (v NewValue[T]) ValueOr(current T) T {
	if v.isSet {
		return v.value
	}
	return current
}

// AnySet reports whether at least one of the given fields is set.
// Request types enumerate their fields explicitly when calling this.
func AnySet(fields ...interface{ IsSet() bool }) bool {
	for _, f := range fields {
		if f.IsSet() {
			return true
		}
	}
	return false
}
