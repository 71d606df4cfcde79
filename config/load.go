package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// sections maps config file keys onto the package-level settings.
func sections() map[string]any {
	return map[string]any{
		"sim":        &Sim,
		"perception": &Perception,
		"steering":   &Steering,
		"avoidance":  &Avoidance,
		"shield":     &Shield,
		"infection":  &Infection,
		"projectile": &Projectile,
		"particle":   &Particle,
		"burn":       &Burn,
		"blast":      &Blast,
		"pickup":     &Pickup,
		"spawner":    &Spawner,
		"stats":      &Stats,
		"spectator":  &Spectator,
		"recorder":   &Recorder,
		"log":        &Log,
	}
}

// Load overlays a YAML or JSON file onto the defaults. Keys missing from the
// file keep their default values. Unit and weapon entries replace the whole
// named entry.
func Load(path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	for key, target := range sections() {
		if !v.IsSet(key) {
			continue
		}
		if err := v.UnmarshalKey(key, target); err != nil {
			return fmt.Errorf("error decoding %q: %w", key, err)
		}
	}

	// viper lower-cases map keys, so entries are re-keyed by their Name.
	if v.IsSet("units") {
		var units map[string]UnitTypeConfig
		if err := v.UnmarshalKey("units", &units); err != nil {
			return fmt.Errorf("error decoding %q: %w", "units", err)
		}
		for key, u := range units {
			if u.Name == "" {
				u.Name = key
			}
			Units[u.Name] = u
		}
	}

	if v.IsSet("weapons") {
		var weapons map[string]WeaponTypeConfig
		if err := v.UnmarshalKey("weapons", &weapons); err != nil {
			return fmt.Errorf("error decoding %q: %w", "weapons", err)
		}
		for key, w := range weapons {
			if w.Name == "" {
				w.Name = key
			}
			Weapons[w.Name] = w
		}
	}

	return nil
}
