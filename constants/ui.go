package constants

// Feedback Timing (milliseconds of game time)
const (
	// InputShakeMs is how long the input box shakes after a miss
	InputShakeMs = 300.0

	// ScreenShakeMs is how long the board shakes after a theft
	ScreenShakeMs = 300.0
)

// Particles
const (
	TypingParticleCount   = 5
	TypingParticleLifeMs  = 500.0
	TypingParticleSpreadX = 8.0
	TypingParticleLiftMin = 2.0
	TypingParticleLiftMax = 7.0

	DefeatParticleCount    = 20
	DefeatParticleLifeMs   = 800.0
	DefeatParticleSpeedMin = 3.0
	DefeatParticleSpeedMax = 8.0

	// ParticlePaletteSize is the number of colours renderers must provide
	ParticlePaletteSize = 4
)

// HUD
const (
	// ComboDisplayMin is the combo at which the HUD starts showing it
	ComboDisplayMin = 2
)
