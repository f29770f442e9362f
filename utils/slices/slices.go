package slices

// OneOf checks whether x is any of xs.
func OneOf[T comparable](x T, xs ...T) bool {
	for _, x2 := range xs {
		if x == x2 {
			return true
		}
	}

	return false
}

// Map applies f to every element of l.
func Map[T, U any](l []T, f func(T) U) []U {
	res := make([]U, 0, len(l))
	for _, x := range l {
		res = append(res, f(x))
	}
	return res
}
