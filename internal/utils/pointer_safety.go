// Package utils holds small generic helpers for the optional fields the
// backend returns as JSON null.
package utils

// Value dereferences v, substituting the zero value for nil.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
