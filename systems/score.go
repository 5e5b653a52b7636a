package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// ApplyScore is the single mutation point for the cleanliness score.
// Both the motion step and taps route through here.
func ApplyScore(e *ecs.ECS, delta float64) {
	score := GetScore(e)
	if score == nil {
		return
	}
	score.Apply(delta)
}
