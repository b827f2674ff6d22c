package utils

func Float64Ptr(v float64) *float64 {
	return &v
}

// Deref returns the pointed value or the zero value of T.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
