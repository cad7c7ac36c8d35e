package basics

import "math"

// Mathematical constants
const (
	Pi = math.Pi
)

// Vertex distance epsilon for geometric calculations
const (
	VertexDistEpsilon   = 1e-14
	IntersectionEpsilon = 1.0e-30
)
