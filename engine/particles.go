package engine

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
)

// Particle is a decorative spark with no gameplay effect
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2 // units per tick
	Size    float64
	Color   int // palette index, < constants.ParticlePaletteSize
	Life    float64
	MaxLife float64
	Alpha   float64
}

// ParticleSystem owns all live particles
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
}

func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 64),
		rng:       rng,
	}
}

// Burst sprays typing sparks upward from the input box
func (ps *ParticleSystem) Burst(at core.Vec2) {
	for i := 0; i < constants.TypingParticleCount; i++ {
		lift := constants.TypingParticleLiftMin + ps.rng.Float64()*(constants.TypingParticleLiftMax-constants.TypingParticleLiftMin)
		ps.particles = append(ps.particles, Particle{
			Pos:     at,
			Vel:     core.Vec2{X: (ps.rng.Float64() - 0.5) * constants.TypingParticleSpreadX, Y: -lift},
			Size:    ps.rng.Float64()*4 + 2,
			Color:   ps.rng.Intn(constants.ParticlePaletteSize),
			Life:    constants.TypingParticleLifeMs,
			MaxLife: constants.TypingParticleLifeMs,
			Alpha:   1,
		})
	}
}

// Ring spreads defeat sparks evenly around a point
func (ps *ParticleSystem) Ring(at core.Vec2) {
	n := constants.DefeatParticleCount
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi / float64(n) * float64(i)
		speed := constants.DefeatParticleSpeedMin + ps.rng.Float64()*(constants.DefeatParticleSpeedMax-constants.DefeatParticleSpeedMin)
		ps.particles = append(ps.particles, Particle{
			Pos:     at,
			Vel:     core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:    ps.rng.Float64()*6 + 3,
			Color:   ps.rng.Intn(constants.ParticlePaletteSize - 1),
			Life:    constants.DefeatParticleLifeMs,
			MaxLife: constants.DefeatParticleLifeMs,
			Alpha:   1,
		})
	}
}

// Update moves every particle one tick, ages it by dtMs and drops the dead
func (ps *ParticleSystem) Update(dtMs float64) {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= dtMs
		if p.Life <= 0 {
			continue
		}
		p.Alpha = p.Life / p.MaxLife
		live = append(live, p)
	}
	ps.particles = live
}

// Particles returns the live set; callers must not retain it across Update
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
