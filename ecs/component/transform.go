package component

import "github.com/jakecoffman/cp"

// Transform places an entity in world space. Position is the sprite centre;
// world y grows downwards like screen space.
type Transform struct {
	Position cp.Vector
	Scale    float64
}

func NewTransform(x, y, scale float64) Transform {
	return Transform{Position: cp.Vector{X: x, Y: y}, Scale: scale}
}
