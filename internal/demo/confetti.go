package demo

import (
	"math"
	"math/rand/v2"
)

// ParticleCount is the number of confetti pieces spawned per run.
const ParticleCount = 50

// Palette is the set of confetti colours.
var Palette = []string{"#800000", "#a51c30", "#FFD700", "#FFA500", "#FF6347"}

// NewConfetti launches n particles from the panel centre. Each gets a palette
// colour, a size of 5 to 15 px, a uniform direction, a travel distance of 100
// to 300 px and a rotation of 0 to 720 degrees.
func NewConfetti(r *rand.Rand, n int) []Particle {
	out := make([]Particle, n)
	for i := range out {
		angle := r.Float64() * 2 * math.Pi
		velocity := r.Float64()*200 + 100
		out[i] = Particle{
			Color:    Palette[r.IntN(len(Palette))],
			Size:     r.Float64()*10 + 5,
			TX:       math.Cos(angle) * velocity,
			TY:       math.Sin(angle) * velocity,
			Rotation: r.Float64() * 720,
		}
	}
	return out
}
