package main

import (
	"time"

	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/systems"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/yohamta/donburi"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// Tones per effect; notes play in sequence.
var tunes = [cfg.EffectCount][]note{
	cfg.EffectPop:       {{880, 60 * time.Millisecond}},
	cfg.EffectSparkle:   {{987.77, 70 * time.Millisecond}, {1318.51, 110 * time.Millisecond}},
	cfg.EffectExplosion: {{110, 120 * time.Millisecond}, {82.41, 180 * time.Millisecond}},
}

// player turns effect events into short tones.
type player struct {
	mixer *beep.Mixer
}

func newPlayer() (*player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	p := &player{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// tone builds the streamer for one effect.
func tone(kind cfg.EffectID) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, n := range tunes[kind] {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}

func (p *player) play(kind cfg.EffectID) {
	s, err := tone(kind)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// listen plays a tone for every effect the round requests.
func (p *player) listen(world donburi.World) {
	systems.EffectRequested.Subscribe(world, func(w donburi.World, evt systems.EffectEvent) {
		p.play(evt.Kind)
	})
}

func (p *player) close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
