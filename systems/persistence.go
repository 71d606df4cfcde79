package systems

import (
	"encoding/json"

	"github.com/automoto/outbreak/components"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
)

// RunSummary is the outcome of one simulation run stored on disk
type RunSummary struct {
	Scenario  string  `json:"scenario"`
	Seed      uint64  `json:"seed"`
	Ticks     int64   `json:"ticks"`
	Seconds   float64 `json:"seconds"`
	Civilians int     `json:"civilians"`
	Cops      int     `json:"cops"`
	Soldiers  int     `json:"soldiers"`
	Zombies   int     `json:"zombies"`
	Dead      int     `json:"dead"`
	Escaped   int     `json:"escaped"`

	PercentCivilians int  `json:"percentCivilians"`
	Dispatched       bool `json:"dispatched"`
	Patrolling       bool `json:"patrolling"`
}

// RunRecords keeps the last run and the longest any civilian survived
type RunRecords struct {
	Last RunSummary `json:"last"`
	Runs int        `json:"runs"`

	// Longest run that still had living civilians at the end
	BestSurvival float64 `json:"bestSurvival"`
}

const runRecordsKey = "runs"

// itemStore is the part of gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var runStore itemStore

// InitPersistence opens the gdata store used for run records
func InitPersistence(appName string, logger zerolog.Logger) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	runStore = m
	return nil
}

// SummarizeRun builds a summary from the simulation clock and census
func SummarizeRun(ecs *ecs.ECS, scenario string, seed uint64) RunSummary {
	sim := simOf(ecs.World)
	summary := RunSummary{
		Scenario: scenario,
		Seed:     seed,
		Ticks:    sim.Tick,
		Seconds:  sim.Time,
	}

	if entry, ok := components.Stats.First(ecs.World); ok {
		stats := components.Stats.Get(entry)
		census(ecs.World, stats)
		summary.Civilians = stats.Civilians
		summary.Cops = stats.Cops
		summary.Soldiers = stats.Soldiers
		summary.Zombies = stats.Zombies
		summary.Dead = stats.Dead
		summary.Escaped = stats.Escaped
		summary.PercentCivilians = stats.PercentCivilians
		summary.Dispatched = stats.Dispatched
		summary.Patrolling = stats.Patrolling
	}
	return summary
}

// LoadRunRecords loads the stored records. Missing records are not an error.
func LoadRunRecords() (*RunRecords, error) {
	if runStore == nil {
		return nil, nil
	}
	data, err := runStore.LoadItem(runRecordsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var records RunRecords
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return &records, nil
}

// SaveRun folds summary into the stored records and returns them
func SaveRun(summary RunSummary) (*RunRecords, error) {
	records, err := LoadRunRecords()
	if err != nil || records == nil {
		records = &RunRecords{}
	}

	records.Last = summary
	records.Runs++
	if summary.Civilians > 0 && summary.Seconds > records.BestSurvival {
		records.BestSurvival = summary.Seconds
	}

	if runStore == nil {
		return records, nil
	}
	data, err := json.Marshal(records)
	if err != nil {
		return records, err
	}
	if err := runStore.SaveItem(runRecordsKey, data); err != nil {
		return records, err
	}
	return records, nil
}
