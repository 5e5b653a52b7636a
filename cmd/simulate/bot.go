package main

import (
	"math/rand"

	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/round"
)

// bot plays a round through the same tap path a player uses. It looks at the
// screen every reaction ticks, taps a visible germ with probability skill and
// occasionally mis-taps something else.
type bot struct {
	rng      *rand.Rand
	skill    float64
	reaction int
}

func newBot(seed int64, skill float64) *bot {
	return &bot{
		rng:      rand.New(rand.NewSource(seed)),
		skill:    skill,
		reaction: 12,
	}
}

func (b *bot) act(s *round.Session) {
	if s.Phase() != cfg.PhasePlaying || s.Now()%b.reaction != 0 {
		return
	}
	for _, v := range s.Entities() {
		if v.Y < 0 {
			continue
		}
		cx, cy := v.X+v.Size/2, v.Y+v.Size/2
		switch v.Kind {
		case cfg.KindHarmful:
			if b.rng.Float64() < b.skill {
				s.TapAt(cx, cy)
			}
		default:
			if b.rng.Float64() < (1-b.skill)*0.05 {
				s.TapAt(cx, cy)
			}
		}
	}
}
