package physics

import (
	"math"

	"github.com/lixenwraith/jumpman/vmath"
)

// ApplyGravity integrates gravity into a vertical velocity and caps it at terminal
func ApplyGravity(velY, gravity, terminal, dt float64) float64 {
	return math.Min(velY+gravity*dt, terminal)
}

// Accelerate moves horizontal velocity toward target at rate per second
func Accelerate(velX, target, rate, dt float64) float64 {
	return vmath.Approach(velX, target, rate*dt)
}
