package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(os.DirFS("testdata"), "outbreak.tmx", 16)
	require.NoError(t, err)

	assert.Equal(t, "outbreak", sc.Name)
	assert.InDelta(t, 40, sc.Width, 1e-9)
	assert.InDelta(t, 30, sc.Height, 1e-9)

	require.Len(t, sc.Walls, 3)
	assert.Equal(t, Rect{X: 10, Y: 10, W: 2, H: 6}, sc.Walls[2])

	require.Len(t, sc.Paths, 1)
	assert.Equal(t, "patrol", sc.Paths[0].Name)
	assert.Equal(t, []Point{{4, 4}, {14, 4}, {14, 14}, {4, 14}}, sc.Paths[0].Points)

	require.Len(t, sc.Units, 3)
	civ := sc.Units[0]
	assert.Equal(t, "Civilian", civ.Type)
	assert.Equal(t, Point{X: 20, Y: 15}, civ.Pos)
	assert.True(t, civ.Tether)

	cop := sc.Units[1]
	assert.Equal(t, "Cop", cop.Type)
	assert.Equal(t, "patrol", cop.Path)
	assert.Equal(t, "pingpong", cop.PathMode)
	assert.Equal(t, 1, cop.PathDir)
	assert.InDelta(t, 90, cop.Facing, 1e-9)

	require.Len(t, sc.Spawners, 2)
	army := sc.Spawners[0]
	assert.Equal(t, "army", army.Name)
	assert.Equal(t, []string{"Soldier", "Soldier"}, army.Templates)
	assert.Equal(t, 4, army.Count)
	assert.False(t, army.Active)
	assert.True(t, army.Dispatch)
	assert.InDelta(t, 2, army.Delay, 1e-9)

	horde := sc.Spawners[1]
	assert.Equal(t, -1, horde.Count)
	assert.True(t, horde.Active)
	assert.Equal(t, -1, horde.PathDir)
	assert.True(t, horde.Tether)
	assert.InDelta(t, 8, horde.TetherDistance, 1e-9)

	require.Len(t, sc.Triggers, 2)
	bridge := sc.Triggers[0]
	assert.Equal(t, "bridge", bridge.Name)
	assert.Equal(t, Rect{X: 36, Y: 10, W: 3, H: 4}, bridge.Bounds)
	assert.Equal(t, []string{"civilian", "cop"}, bridge.Mask)
	assert.True(t, bridge.Active)
	assert.True(t, bridge.DestroyOnEnter)
	assert.True(t, bridge.Escape)

	alarm := sc.Triggers[1]
	assert.False(t, alarm.Active)
	assert.Empty(t, alarm.Mask)
	assert.Equal(t, []string{"army"}, alarm.Activate)
	assert.Equal(t, "patrol", alarm.Path)
	assert.Equal(t, "loop", alarm.PathMode)
	assert.True(t, alarm.Deactivate)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		ppu  float64
		want error
	}{
		{"unknown path", "broken_path.tmx", 16, ErrUnknownPath},
		{"no units", "empty.tmx", 16, ErrNoUnits},
		{"bad scale", "outbreak.tmx", 0, ErrBadPixelSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(os.DirFS("testdata"), tt.file, tt.ppu)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(os.DirFS("testdata"), "nope.tmx", 16)
	assert.Error(t, err)
}

func TestLoadAllScenarios_FailsOnBrokenMap(t *testing.T) {
	_, _, err := LoadAllScenarios(os.DirFS("."), "testdata", 16)
	assert.ErrorIs(t, err, ErrUnknownPath)
}
