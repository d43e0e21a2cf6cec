package boot

// Registry is an ordered collection of hooks or listeners. Registration
// order is preserved.
type Registry[T any] struct {
	value []T
}

func (reg *Registry[T]) Register(value T) {
	reg.value = append(reg.value, value)
}

func (reg Registry[T]) Value() []T {
	return reg.value
}
