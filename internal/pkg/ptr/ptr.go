package ptr

func Of[T any](v T) *T {
	return &v
}

// Map applies f to the value behind p. A nil p stays nil.
func Map[T, U any](p *T, f func(T) U) *U {
	if p == nil {
		return nil
	}
	return Of(f(*p))
}

// Coalesce returns the value pointed to by p if it's not nil, otherwise returns fallback
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
