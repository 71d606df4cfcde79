package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/outbreak/shared/leveldata"
)

var (
	//go:embed all:scenarios
	scenarioFS embed.FS
)

// ScenarioDir is the directory of the bundled scenario maps
const ScenarioDir = "scenarios"

// DefaultScenario is run when no map is given
const DefaultScenario = "town"

// Scenarios returns the bundled scenario maps as a filesystem
func Scenarios() fs.FS {
	return scenarioFS
}

// LoadScenario loads a bundled scenario by stem name
func LoadScenario(name string, pixelsPerUnit float64) (*leveldata.Scenario, error) {
	return leveldata.LoadScenario(scenarioFS, ScenarioDir+"/"+name+".tmx", pixelsPerUnit)
}

// ScenarioNames lists the bundled scenarios in sorted order
func ScenarioNames(pixelsPerUnit float64) ([]string, error) {
	_, names, err := leveldata.LoadAllScenarios(scenarioFS, ScenarioDir, pixelsPerUnit)
	return names, err
}
