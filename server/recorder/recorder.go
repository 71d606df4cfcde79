// Package recorder stores simulation events in a sqlite database.
package recorder

import (
	"fmt"
	"time"

	"github.com/automoto/outbreak/shared/messages"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Event kinds stored in EventRecord.Kind
const (
	KindDied     = "died"
	KindRisen    = "risen"
	KindSpawned  = "spawned"
	KindPickedUp = "picked_up"
	KindPhase    = "phase"
)

// Run is one simulation run
type Run struct {
	ID        uint `gorm:"primarykey"`
	Scenario  string
	Seed      uint64
	StartedAt time.Time
	EndedAt   *time.Time
	Outcome   string
	Ticks     int64
	Seconds   float64
	Shots     int64
}

// EventRecord is one gameplay event of a run
type EventRecord struct {
	ID        uint `gorm:"primarykey"`
	RunID     uint `gorm:"index"`
	Kind      string `gorm:"index"`
	Time      float64
	Entity    uint64
	UnitType  string
	Other     uint64
	OtherType string
	X, Y      float64
	Detail    string
}

// Recorder buffers events during a tick and writes them in batches
type Recorder struct {
	DB     *gorm.DB
	Logger zerolog.Logger

	run       *Run
	pending   []EventRecord
	shots     int64
	batchSize int
}

// Open opens or creates the database at path. An empty path uses an
// in-memory database.
func Open(path string, log zerolog.Logger) (*Recorder, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        500,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open recorder db: %w", err)
	}

	if err := db.AutoMigrate(&Run{}, &EventRecord{}); err != nil {
		return nil, fmt.Errorf("migrate recorder db: %w", err)
	}

	log.Info().Str("path", path).Msg("recorder ready")
	return &Recorder{
		DB:        db,
		Logger:    log,
		batchSize: 500,
	}, nil
}

// StartRun creates the run row events are attached to
func (r *Recorder) StartRun(scenario string, seed uint64) error {
	run := &Run{
		Scenario:  scenario,
		Seed:      seed,
		StartedAt: time.Now().UTC(),
	}
	if err := r.DB.Create(run).Error; err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	r.run = run
	r.shots = 0
	return nil
}

// Attach subscribes the recorder to the world's simulation events
func (r *Recorder) Attach(w donburi.World) {
	messages.UnitDied.Subscribe(w, func(_ donburi.World, ev messages.UnitDiedEvent) {
		detail := ""
		if ev.Infected {
			detail = "infected"
		}
		r.add(EventRecord{
			Kind:      KindDied,
			Time:      ev.Time,
			Entity:    uint64(ev.Unit),
			UnitType:  ev.Type,
			Other:     uint64(ev.Killer),
			OtherType: ev.KillerType,
			X:         ev.Position.X,
			Y:         ev.Position.Y,
			Detail:    detail,
		})
	})
	messages.UnitRisen.Subscribe(w, func(_ donburi.World, ev messages.UnitRisenEvent) {
		r.add(EventRecord{
			Kind:     KindRisen,
			Time:     ev.Time,
			Entity:   uint64(ev.Risen),
			UnitType: ev.Type,
			Other:    uint64(ev.Corpse),
			X:        ev.Position.X,
			Y:        ev.Position.Y,
		})
	})
	messages.UnitSpawned.Subscribe(w, func(_ donburi.World, ev messages.UnitSpawnedEvent) {
		r.add(EventRecord{
			Kind:     KindSpawned,
			Time:     ev.Time,
			Entity:   uint64(ev.Unit),
			UnitType: ev.Type,
			X:        ev.Position.X,
			Y:        ev.Position.Y,
			Detail:   ev.Spawner,
		})
	})
	messages.WeaponPickedUp.Subscribe(w, func(_ donburi.World, ev messages.WeaponPickedUpEvent) {
		r.add(EventRecord{
			Kind:   KindPickedUp,
			Time:   ev.Time,
			Entity: uint64(ev.Unit),
			Other:  uint64(ev.Weapon),
			Detail: ev.WeaponName,
		})
	})
	messages.OutbreakPhase.Subscribe(w, func(_ donburi.World, ev messages.OutbreakPhaseEvent) {
		r.add(EventRecord{
			Kind:   KindPhase,
			Time:   ev.Time,
			Detail: fmt.Sprintf("%s at %d%%", ev.Phase, ev.PercentCivilians),
		})
	})
	// Shots are too frequent to store one by one
	messages.ShotFired.Subscribe(w, func(_ donburi.World, _ messages.ShotFiredEvent) {
		r.shots++
	})
}

func (r *Recorder) add(ev EventRecord) {
	if r.run != nil {
		ev.RunID = r.run.ID
	}
	r.pending = append(r.pending, ev)
	if len(r.pending) >= r.batchSize {
		if err := r.Flush(); err != nil {
			r.Logger.Error().Err(err).Msg("flushing events")
		}
	}
}

// Flush writes buffered events
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	if err := r.DB.CreateInBatches(r.pending, r.batchSize).Error; err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	r.Logger.Debug().Int("events", len(r.pending)).Msg("events written")
	r.pending = r.pending[:0]
	return nil
}

// FinishRun flushes and stores the run outcome
func (r *Recorder) FinishRun(outcome string, ticks int64, seconds float64) error {
	if err := r.Flush(); err != nil {
		return err
	}
	if r.run == nil {
		return nil
	}
	now := time.Now().UTC()
	r.run.EndedAt = &now
	r.run.Outcome = outcome
	r.run.Ticks = ticks
	r.run.Seconds = seconds
	r.run.Shots = r.shots
	if err := r.DB.Save(r.run).Error; err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// Run returns the current run, nil before StartRun
func (r *Recorder) Run() *Run {
	return r.run
}

// Count returns how many stored events of kind belong to the current run
func (r *Recorder) Count(kind string) (int64, error) {
	var n int64
	q := r.DB.Model(&EventRecord{}).Where("kind = ?", kind)
	if r.run != nil {
		q = q.Where("run_id = ?", r.run.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Close closes the underlying connection
func (r *Recorder) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
