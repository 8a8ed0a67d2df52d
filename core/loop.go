package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop advances a Match at a fixed tick rate until stopped.
type GameLoop struct {
	match    *Match
	tickRate int
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick runs after every Update, on the loop goroutine.
	OnTick func(m *Match)
}

func NewGameLoop(match *Match, tickRate int) *GameLoop {
	return &GameLoop{
		match:    match,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. It may be called more than once and from OnTick.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.match.Update(1 / float64(g.tickRate))
	if g.OnTick != nil {
		g.OnTick(g.match)
	}
}
