package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from scenario maps
const (
	LayerWalls    = "Walls"
	LayerPaths    = "Paths"
	LayerUnits    = "Units"
	LayerSpawners = "Spawners"
	LayerTriggers = "Triggers"
)

var (
	ErrNoUnits      = errors.New("scenario has no units or spawners")
	ErrEmptyPath    = errors.New("path has no points")
	ErrUnknownPath  = errors.New("unknown path")
	ErrNoTemplates  = errors.New("spawner has no templates")
	ErrBadPixelSize = errors.New("pixels per unit must be positive")
)

// LoadScenario parses a TMX scenario. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. pixelsPerUnit converts map pixels to world units.
func LoadScenario(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*Scenario, error) {
	if pixelsPerUnit <= 0 {
		return nil, ErrBadPixelSize
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scale := 1 / pixelsPerUnit
	sc := &Scenario{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width*levelMap.TileWidth) * scale,
		Height: float64(levelMap.Height*levelMap.TileHeight) * scale,
	}

	// Walls may be painted as tiles or drawn as rectangles
	tileW := float64(levelMap.TileWidth) * scale
	tileH := float64(levelMap.TileHeight) * scale
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				sc.Walls = append(sc.Walls, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case LayerWalls:
			for _, o := range og.Objects {
				sc.Walls = append(sc.Walls, Rect{
					X: o.X * scale,
					Y: o.Y * scale,
					W: o.Width * scale,
					H: o.Height * scale,
				})
			}
		case LayerPaths:
			for _, o := range og.Objects {
				path, err := parsePath(o, scale)
				if err != nil {
					return nil, err
				}
				sc.Paths = append(sc.Paths, path)
			}
		case LayerUnits:
			for _, o := range og.Objects {
				sc.Units = append(sc.Units, parseUnit(o, scale))
			}
		case LayerSpawners:
			for _, o := range og.Objects {
				sp, err := parseSpawner(o, scale)
				if err != nil {
					return nil, err
				}
				sc.Spawners = append(sc.Spawners, sp)
			}
		case LayerTriggers:
			for _, o := range og.Objects {
				sc.Triggers = append(sc.Triggers, parseTrigger(o, scale))
			}
		}
	}

	if len(sc.Units) == 0 && len(sc.Spawners) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoUnits)
	}
	if err := sc.checkPaths(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	return sc, nil
}

// objectClass returns the object's class, falling back to the legacy type
// attribute.
func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

func parsePath(o *tiled.Object, scale float64) (Path, error) {
	path := Path{Name: o.Name}
	for _, pl := range o.PolyLines {
		if pl.Points == nil {
			continue
		}
		for _, p := range *pl.Points {
			path.Points = append(path.Points, Point{
				X: (o.X + p.X) * scale,
				Y: (o.Y + p.Y) * scale,
			})
		}
	}
	if len(path.Points) == 0 {
		return path, fmt.Errorf("path %q: %w", o.Name, ErrEmptyPath)
	}
	return path, nil
}

func parseUnit(o *tiled.Object, scale float64) UnitPlacement {
	unitType := objectClass(o)
	if unitType == "" {
		unitType = o.Name
	}
	return UnitPlacement{
		Type:           unitType,
		Pos:            Point{X: o.X * scale, Y: o.Y * scale},
		Facing:         o.Properties.GetFloat("facing"),
		Path:           o.Properties.GetString("path"),
		PathMode:       o.Properties.GetString("pathMode"),
		PathDir:        pathDir(o.Properties.GetInt("pathDir")),
		Sticky:         o.Properties.GetBool("sticky"),
		Tether:         o.Properties.GetBool("tether"),
		TetherDistance: o.Properties.GetFloat("tetherDistance"),
	}
}

func parseSpawner(o *tiled.Object, scale float64) (SpawnerPlacement, error) {
	templates := splitList(o.Properties.GetString("templates"))
	if len(templates) == 0 {
		return SpawnerPlacement{}, fmt.Errorf("spawner %q: %w", o.Name, ErrNoTemplates)
	}

	count := -1
	if hasProperty(o.Properties, "count") {
		count = o.Properties.GetInt("count")
	}
	active := true
	if hasProperty(o.Properties, "active") {
		active = o.Properties.GetBool("active")
	}

	return SpawnerPlacement{
		Name:           o.Name,
		Pos:            Point{X: o.X * scale, Y: o.Y * scale},
		Facing:         o.Properties.GetFloat("facing"),
		Templates:      templates,
		Count:          count,
		Active:         active,
		Dispatch:       o.Properties.GetBool("dispatch"),
		InitialDelay:   o.Properties.GetFloat("initialDelay"),
		Delay:          o.Properties.GetFloat("delay"),
		Path:           o.Properties.GetString("path"),
		PathMode:       o.Properties.GetString("pathMode"),
		PathDir:        pathDir(o.Properties.GetInt("pathDir")),
		Sticky:         o.Properties.GetBool("sticky"),
		Tether:         o.Properties.GetBool("tether"),
		TetherDistance: o.Properties.GetFloat("tetherDistance"),
	}, nil
}

func parseTrigger(o *tiled.Object, scale float64) TriggerPlacement {
	active := true
	if hasProperty(o.Properties, "active") {
		active = o.Properties.GetBool("active")
	}
	return TriggerPlacement{
		Name: o.Name,
		Bounds: Rect{
			X: o.X * scale,
			Y: o.Y * scale,
			W: o.Width * scale,
			H: o.Height * scale,
		},
		Mask:            splitList(o.Properties.GetString("collides")),
		Active:          active,
		DamagePerSecond: o.Properties.GetFloat("damagePerSecond"),
		Activate:        splitList(o.Properties.GetString("activate")),
		Path:            o.Properties.GetString("path"),
		PathMode:        o.Properties.GetString("pathMode"),
		Sticky:          o.Properties.GetBool("sticky"),
		DestroyOnEnter:  o.Properties.GetBool("destroyOnEnter"),
		Escape:          o.Properties.GetBool("escape"),
		Deactivate:      o.Properties.GetBool("deactivate"),
	}
}

// splitList splits a comma separated property, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}

// pathDir maps the stored direction to +1 or -1, defaulting to +1.
func pathDir(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}

// checkPaths reports units or spawners that name a path the map lacks.
func (sc *Scenario) checkPaths() error {
	names := make(map[string]bool, len(sc.Paths))
	for _, p := range sc.Paths {
		names[p.Name] = true
	}
	for _, u := range sc.Units {
		if u.Path != "" && !names[u.Path] {
			return fmt.Errorf("unit %s: %w %q", u.Type, ErrUnknownPath, u.Path)
		}
	}
	for _, s := range sc.Spawners {
		if s.Path != "" && !names[s.Path] {
			return fmt.Errorf("spawner %s: %w %q", s.Name, ErrUnknownPath, s.Path)
		}
	}
	for _, t := range sc.Triggers {
		if t.Path != "" && !names[t.Path] {
			return fmt.Errorf("trigger %s: %w %q", t.Name, ErrUnknownPath, t.Path)
		}
	}
	return nil
}

// LoadAllScenarios discovers all .tmx files in dir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllScenarios(fsys fs.FS, dir string, pixelsPerUnit float64) (map[string]*Scenario, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	scenarios := make(map[string]*Scenario, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		sc, err := LoadScenario(fsys, path, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		scenarios[sc.Name] = sc
		names = append(names, sc.Name)
	}

	sort.Strings(names)
	return scenarios, names, nil
}
