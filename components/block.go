package components

import (
	"github.com/automoto/toothfall/schedule"
	"github.com/yohamta/donburi"
)

// BlockData suppresses beneficial spawns until Expiry fires.
type BlockData struct {
	Active   bool
	Duration int            // ticks
	Expiry   *schedule.Task // one-shot, re-armed on every activation
}

// RemainingTicks returns how long the block has left, or 0 when inactive.
func (b *BlockData) RemainingTicks() int {
	if !b.Active || b.Expiry == nil {
		return 0
	}
	return b.Expiry.Remaining()
}

var Block = donburi.NewComponentType[BlockData]()
