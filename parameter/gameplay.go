package parameter

// Scoring
const (
	ScoreCoin     = 200
	ScoreMushroom = 1000
	ScoreStomp    = 100
	ScoreGoal     = 500
)

// Contact rules
const (
	// StompTolerance is how far below an enemy's top edge the player's feet may be and still stomp
	StompTolerance = 6.0

	// KnockbackNudge is the instant horizontal displacement applied on a powered hit
	KnockbackNudge = 4.0

	// FallMargin is the distance below the world's bottom edge that counts as falling off
	FallMargin = 200.0

	// LedgeProbe is the distance beyond an enemy's leading foot sampled for ground
	LedgeProbe = 1.0
)

// Collectible and goal geometry, as fractions of the tile size
const (
	CoinRadiusFactor = 0.2
	GoalPoleHeight   = 3.0
	GoalPoleWidth    = 0.18
	SpawnFacing      = 1.0
	EnemySpawnFacing = -1.0
)
