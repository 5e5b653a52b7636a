// Command termfall plays a round in the terminal. Click germs with the mouse.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/round"
	"github.com/gdamore/tcell/v2"
)

type game struct {
	screen  tcell.Screen
	grid    grid
	session *round.Session
	sound   *player
	seed    int64
	buttons tcell.ButtonMask
}

func main() {
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	// The terminal is the display; keep round logs out of it.
	log.SetOutput(io.Discard)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termfall: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "termfall: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	g := &game{screen: screen, seed: *seed}
	if !*mute {
		if p, err := newPlayer(); err == nil {
			g.sound = p
			defer p.close()
		}
	}
	g.resize()
	g.newRound()
	g.run()
}

func (g *game) newRound() {
	if g.session != nil {
		g.session.Close()
	}
	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, h := g.grid.area()
	g.session = round.NewSession(round.Options{Seed: seed, Width: w, Height: h})
	if g.sound != nil {
		g.sound.listen(g.session.ECS().World)
	}
}

func (g *game) resize() {
	cols, rows := g.screen.Size()
	g.grid = grid{cols: cols, rows: rows}
	if g.session != nil {
		g.session.SetPlayArea(g.grid.area())
	}
}

func (g *game) run() {
	// Start input handling goroutine
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Round.TicksPerSecond))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.session.Step()
			draw(g.screen, g.grid, g.session)
		}
	}
}

// handle applies one terminal event and reports whether to quit.
func (g *game) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			return true
		case ev.Rune() == 'r' && g.session.Phase() == cfg.PhaseEnded:
			g.newRound()
		}
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
		g.buttons = ev.Buttons()
		if pressed {
			col, row := ev.Position()
			if x, y, ok := g.grid.toPlayArea(col, row); ok {
				g.session.TapAt(x, y)
			}
		}
	}
	return false
}
