package core

import (
	"sync"

	"github.com/automoto/outbreak/scenes"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/rs/zerolog"
)

// Server runs a simulation scene and streams it to spectators
type Server struct {
	scene     *scenes.SimulationScene
	loop      *GameLoop
	transport *transports.WsServerTransport
	logger    zerolog.Logger

	// Connected spectators
	spectators map[*router.NetworkClient]bool
	mu         sync.RWMutex
}

// NewServer creates a server for scene. spectate enables network sync; the
// scene must have been built with spectator sync for it to send anything.
func NewServer(scene *scenes.SimulationScene, tickRate int, spectate bool, logger zerolog.Logger) *Server {
	s := &Server{
		scene:      scene,
		logger:     logger,
		spectators: make(map[*router.NetworkClient]bool),
	}
	s.loop = NewGameLoop(s, tickRate, spectate)

	if spectate {
		s.setupRouterCallbacks()
	}

	return s
}

// Start runs the tick loop in real time and serves spectators on port. It
// blocks while the transport is running.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// RunHeadless advances the simulation as fast as possible until it is over
// or maxTicks have run (0 for no limit). It returns the outcome, empty when
// the limit was hit first.
func (s *Server) RunHeadless(maxTicks int64) string {
	return s.loop.RunFor(maxTicks)
}

// Done is closed when the simulation is over
func (s *Server) Done() <-chan struct{} {
	return s.loop.Done()
}

// Outcome returns the result once Done is closed
func (s *Server) Outcome() string {
	return s.loop.Outcome()
}

// Stop gracefully shuts down the tick loop
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.mu.Lock()
		s.spectators[client] = true
		s.mu.Unlock()
		s.logger.Info().Str("client", client.Id()).Msg("spectator connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.mu.Lock()
		delete(s.spectators, client)
		s.mu.Unlock()
		if err != nil {
			s.logger.Info().Str("client", client.Id()).Err(err).Msg("spectator disconnected with error")
			return
		}
		s.logger.Info().Str("client", client.Id()).Msg("spectator disconnected")
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.logger.Warn().Err(err).Msg("client error")
	})
}

// Scene returns the simulation being served
func (s *Server) Scene() *scenes.SimulationScene {
	return s.scene
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}

// Loop returns the tick loop
func (s *Server) Loop() *GameLoop {
	return s.loop
}
