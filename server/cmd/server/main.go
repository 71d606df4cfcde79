package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/outbreak/assets"
	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/scenes"
	"github.com/automoto/outbreak/server/core"
	"github.com/automoto/outbreak/server/recorder"
	"github.com/automoto/outbreak/server/telemetry"
	"github.com/automoto/outbreak/shared/leveldata"
	"github.com/automoto/outbreak/shared/logging"
	"github.com/automoto/outbreak/shared/protocol"
	"github.com/automoto/outbreak/systems"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "Config file (YAML or JSON) overlaid on the defaults")
	scenario := flag.String("scenario", assets.DefaultScenario, "Built-in scenario name or path to a .tmx file")
	list := flag.Bool("list", false, "List built-in scenarios and exit")
	tickRate := flag.Int("tickrate", 0, "Simulation ticks per second (0 = config)")
	ticks := flag.Int64("ticks", 0, "Stop after this many ticks (0 = run until decided)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = from clock)")
	spectate := flag.Bool("spectate", false, "Run in real time and serve spectators")
	port := flag.Uint("port", 0, "Spectator port (0 = config)")
	record := flag.String("record", "", "Record events to this sqlite file")
	logLevel := flag.String("log", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			bootLogger := logging.New("info", os.Stderr, true)
			bootLogger.Fatal().Err(err).Msg("failed to load config")
		}
	}
	applyFlags(*tickRate, *spectate, *port, *record, *logLevel)

	logger := logging.New(config.Log.Level, os.Stderr, config.Log.Console)

	if *list {
		names, err := assets.ScenarioNames(config.Sim.PixelsPerUnit)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load scenarios")
		}
		for _, n := range names {
			os.Stdout.WriteString(n + "\n")
		}
		return
	}

	if config.Spectator.Enabled {
		if err := protocol.RegisterComponents(); err != nil {
			logger.Fatal().Err(err).Msg("failed to register components")
		}
	}

	sc, err := loadScenario(*scenario)
	if err != nil {
		logger.Fatal().Err(err).Str("scenario", *scenario).Msg("failed to load scenario")
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = uint64(time.Now().UnixNano())
	}

	effects := systems.NewEffectLog(logger)
	scene, err := scenes.NewSimulationScene(sc, scenes.Options{
		Seed:      runSeed,
		Logger:    &logger,
		Effects:   effects,
		Spectator: config.Spectator.Enabled,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build simulation")
	}

	metrics, err := telemetry.New(telemetry.Meter())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create metrics")
	}
	metrics.Attach(scene.World())

	var rec *recorder.Recorder
	if config.Recorder.Enabled {
		rec, err = recorder.Open(config.Recorder.Path, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open recorder")
		}
		defer rec.Close()
		if err := rec.StartRun(sc.Name, runSeed); err != nil {
			logger.Fatal().Err(err).Msg("failed to start run")
		}
		rec.Attach(scene.World())
	}

	server := core.NewServer(scene, config.Sim.TickRate, config.Spectator.Enabled, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info().Msg("shutting down")
		server.Stop()
	}()

	logger.Info().
		Str("scenario", sc.Name).
		Uint64("seed", runSeed).
		Int("tickRate", config.Sim.TickRate).
		Bool("spectate", config.Spectator.Enabled).
		Msg("starting outbreak")

	var outcome string
	if config.Spectator.Enabled {
		outcome = serve(server, *ticks, logger)
	} else {
		outcome = server.RunHeadless(*ticks)
	}

	finish(scene, rec, metrics, effects, sc.Name, runSeed, outcome, logger)
}

func applyFlags(tickRate int, spectate bool, port uint, record, logLevel string) {
	if tickRate > 0 {
		config.Sim.TickRate = tickRate
	}
	if spectate {
		config.Spectator.Enabled = true
	}
	if port > 0 {
		config.Spectator.Port = int(port)
	}
	if record != "" {
		config.Recorder.Enabled = true
		config.Recorder.Path = record
	}
	if logLevel != "" {
		config.Log.Level = logLevel
	}
}

// loadScenario treats anything ending in .tmx as a file path and everything
// else as a built-in scenario name.
func loadScenario(name string) (*leveldata.Scenario, error) {
	if strings.HasSuffix(name, ".tmx") {
		fsys := os.DirFS(filepath.Dir(name))
		return leveldata.LoadScenario(fsys, filepath.Base(name), config.Sim.PixelsPerUnit)
	}
	return assets.LoadScenario(name, config.Sim.PixelsPerUnit)
}

func serve(server *core.Server, maxTicks int64, logger zerolog.Logger) string {
	if maxTicks > 0 {
		server.Loop().SetMaxTicks(maxTicks)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(uint(config.Spectator.Port))
	}()
	logger.Info().Int("port", config.Spectator.Port).Msg("serving spectators")

	select {
	case <-server.Done():
	case err := <-errChan:
		if err != nil {
			logger.Error().Err(err).Msg("transport error")
		}
		server.Stop()
		<-server.Done()
	}
	return server.Outcome()
}

func finish(scene *scenes.SimulationScene, rec *recorder.Recorder, metrics *telemetry.Metrics, effects *systems.EffectLog,
	scenario string, seed uint64, outcome string, logger zerolog.Logger) {
	summary := systems.SummarizeRun(scene.ECS(), scenario, seed)

	if rec != nil {
		if err := rec.FinishRun(outcome, summary.Ticks, summary.Seconds); err != nil {
			logger.Error().Err(err).Msg("failed to finish recorded run")
		}
	}

	totals := metrics.Totals()
	if outcome == "" {
		outcome = "undecided"
	}
	logger.Info().
		Str("outcome", outcome).
		Int64("ticks", summary.Ticks).
		Float64("seconds", summary.Seconds).
		Int("civilians", summary.Civilians).
		Int("cops", summary.Cops).
		Int("soldiers", summary.Soldiers).
		Int("zombies", summary.Zombies).
		Int("dead", summary.Dead).
		Int("escaped", summary.Escaped).
		Int64("shots", totals.Shots).
		Int64("risen", totals.Risen).
		Int("explosions", effects.Count(components.EffectExplosion)).
		Msg("run finished")

	if err := systems.InitPersistence(config.Recorder.AppName, logger); err != nil {
		return
	}
	records, err := systems.SaveRun(summary)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to save run summary")
		return
	}
	logger.Info().Int("runs", records.Runs).Float64("bestSurvival", records.BestSurvival).Msg("run saved")
}
