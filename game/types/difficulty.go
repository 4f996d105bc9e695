package types

// Difficulty selects the movement cadence. It is read once at session
// start and never changes afterwards.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Seconds between snake steps per tier. fallbackInterval covers
// Difficulty values outside the known tiers, independently of the
// name fallback in ParseDifficulty.
const (
	easyInterval     = 0.5
	mediumInterval   = 0.3
	hardInterval     = 0.1
	fallbackInterval = 0.6
)

// ParseDifficulty maps a tier name to its value. Unrecognized names
// are silently treated as Easy.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "Easy":
		return Easy
	case "Medium":
		return Medium
	case "Hard":
		return Hard
	}
	return Easy
}

// Interval returns the minimum wall-clock seconds between steps.
func (d Difficulty) Interval() float64 {
	switch d {
	case Easy:
		return easyInterval
	case Medium:
		return mediumInterval
	case Hard:
		return hardInterval
	}
	return fallbackInterval
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return "Unknown"
}
