package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Float64Source yields uniformly distributed values in [0, 1).
type Float64Source interface {
	Float64() float64
}
