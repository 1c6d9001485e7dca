package constants

// DifficultySettings drives the spawn/progress model for one difficulty
type DifficultySettings struct {
	SpawnIntervalMs      float64
	MaxConcurrentEnemies int
	StageGoal            int
}

// SpeedRange is the per-tick enemy speed drawn once at creation: Min + rand*Spread
type SpeedRange struct {
	Min    float64
	Spread float64
}

// Indexed by core.Difficulty
var (
	Difficulties = [3]DifficultySettings{
		{SpawnIntervalMs: 3000, MaxConcurrentEnemies: 3, StageGoal: 15},
		{SpawnIntervalMs: 2000, MaxConcurrentEnemies: 5, StageGoal: 25},
		{SpawnIntervalMs: 1200, MaxConcurrentEnemies: 8, StageGoal: 40},
	}

	EnemySpeeds = [3]SpeedRange{
		{Min: 0.8, Spread: 0.3},
		{Min: 1.2, Spread: 0.4},
		{Min: 1.8, Spread: 0.6},
	}
)

// Lives
const (
	MaxLives = 5
)

// SpawnRedrawLimit is how many untypeable words one spawn tolerates before giving up the slot
const SpawnRedrawLimit = 8

// Enemy Movement
const (
	// SpawnMargin is how far outside the board edge enemies appear
	SpawnMargin = 100.0

	// ArrivalDistance is the distance to the plate that counts as a theft
	ArrivalDistance = 50.0

	// EscapeOffset is how far past the nearer edge a carrying enemy heads
	EscapeOffset = 200.0

	// EscapeBounds is the overshoot past any edge that marks an enemy escaped
	EscapeBounds = 250.0

	// CarrySpeedFactor multiplies speed while carrying food away
	CarrySpeedFactor = 1.5

	// DefeatFadePerTick is the alpha lost per tick after defeat
	DefeatFadePerTick = 0.05

	// DefeatGrowPerTick is the scale gained per tick after defeat
	DefeatGrowPerTick = 0.02
)

// Scoring
const (
	ScorePerKeyChar = 10
	ScorePerCombo   = 5
	ClearBonusLife  = 500
)

// Accepted input alphabet besides a-z
const InputSymbols = "-"
