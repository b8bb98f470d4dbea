package game

const (
	distancePerPoint = 10.0 // scroll pixels per score point
	pointsPerLevel   = 100  // score points per level step
)

// ScoreTracker derives score and level from scroll distance and keeps
// the coin total for the run plus the best score seen by this process.
// The high score survives run resets; everything else does not.
type ScoreTracker struct {
	score     int
	coinTotal int
	level     int
	highScore int
}

func newScoreTracker() *ScoreTracker {
	return &ScoreTracker{level: 1}
}

// Update recomputes score and level from the scroll distance.
func (st *ScoreTracker) Update(distance float64) {
	st.score = int(distance / distancePerPoint)
	st.level = st.score/pointsPerLevel + 1
}

// AddCoins credits a pickup's value to the run's coin total.
func (st *ScoreTracker) AddCoins(value int) {
	st.coinTotal += value
}

// ResetRun clears the per-run tallies, leaving the high score alone.
func (st *ScoreTracker) ResetRun() {
	st.score = 0
	st.coinTotal = 0
	st.level = 1
}

// Finalize compares the run's score against the stored high score and
// promotes it if it is better. It reports whether a new high score was
// set.
func (st *ScoreTracker) Finalize() bool {
	if st.score > st.highScore {
		st.highScore = st.score
		return true
	}
	return false
}

func (st *ScoreTracker) Score() int     { return st.score }
func (st *ScoreTracker) CoinTotal() int { return st.coinTotal }
func (st *ScoreTracker) Level() int     { return st.level }
func (st *ScoreTracker) HighScore() int { return st.highScore }
