package manager

// scoreMultiplier is the score awarded per food eaten.
const scoreMultiplier = 10

// ScoreManager accumulates the session's score and length. It consumes
// the collision manager's one-shot food-eaten signal, so counters move
// on the same tick the food is eaten.
type ScoreManager struct {
	collisions *CollisionManager
	score      int
	length     int
}

func NewScoreManager(collisions *CollisionManager, startLength int) *ScoreManager {
	return &ScoreManager{collisions: collisions, length: startLength}
}

// Update advances the counters if a food was eaten since the last
// call. Each eat is counted exactly once.
func (sm *ScoreManager) Update() {
	if sm.collisions.ConsumeFoodEaten() {
		sm.score += scoreMultiplier
		sm.length++
	}
}

func (sm *ScoreManager) Score() int {
	return sm.score
}

func (sm *ScoreManager) Length() int {
	return sm.length
}
