package core

import (
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	sync     bool
	maxTicks int64

	ticks    int64
	outcome  string
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
	doneOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int, sync bool) *GameLoop {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		sync:     sync,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run ticks in real time until stopped or the simulation is over.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.server.logger.Info().Int("tickRate", g.tickRate).Msg("game loop started")

	for {
		select {
		case <-g.stopChan:
			g.server.logger.Info().Int64("ticks", g.ticks).Msg("game loop stopped")
			g.finish("")
			return
		case <-ticker.C:
			if g.tick() {
				return
			}
		}
	}
}

// RunFor ticks without waiting until the simulation is over or maxTicks have
// run. 0 means no limit.
func (g *GameLoop) RunFor(maxTicks int64) string {
	g.maxTicks = maxTicks
	for {
		select {
		case <-g.stopChan:
			g.finish("")
			return g.outcome
		default:
		}
		if g.tick() {
			return g.outcome
		}
	}
}

// SetMaxTicks limits a real-time run. 0 means no limit.
func (g *GameLoop) SetMaxTicks(n int64) {
	g.maxTicks = n
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

// Outcome is only meaningful after Done is closed.
func (g *GameLoop) Outcome() string {
	return g.outcome
}

func (g *GameLoop) Ticks() int64 {
	return g.ticks
}

// tick advances one step and reports whether the loop has finished.
func (g *GameLoop) tick() bool {
	g.server.scene.Update()
	g.ticks++

	if g.sync {
		if err := srvsync.DoSync(); err != nil {
			g.server.logger.Warn().Err(err).Msg("sync error")
		}
	}

	if over, outcome := g.server.scene.Over(); over {
		g.server.logger.Info().Str("outcome", outcome).Int64("ticks", g.ticks).Msg("outbreak decided")
		g.finish(outcome)
		return true
	}
	if g.maxTicks > 0 && g.ticks >= g.maxTicks {
		g.finish("")
		return true
	}
	return false
}

func (g *GameLoop) finish(outcome string) {
	g.doneOnce.Do(func() {
		g.outcome = outcome
		close(g.done)
	})
}
