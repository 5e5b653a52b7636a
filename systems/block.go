package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// ActivateBlock turns the block modifier on and restarts its window.
// Re-triggering while active restarts the duration; it never stacks.
func ActivateBlock(e *ecs.ECS) {
	block := GetBlock(e)
	if block == nil {
		return
	}
	block.Active = true
	if block.Expiry != nil {
		block.Expiry.Reset(block.Duration)
	}
}

// ExpireBlock is the block-expiry timer callback.
func ExpireBlock(e *ecs.ECS) {
	if block := GetBlock(e); block != nil {
		block.Active = false
	}
}

// IsBlocked reports whether beneficial spawns are suppressed.
func IsBlocked(e *ecs.ECS) bool {
	block := GetBlock(e)
	return block != nil && block.Active
}
