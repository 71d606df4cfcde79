package components

import (
	"slices"
	"strings"
)

// Layer is a faction bit. Units carry one layer and masks of enemy and
// friendly layers.
type Layer uint32

const (
	LayerCivilian Layer = 1 << iota
	LayerCop
	LayerSoldier
	LayerZombie
	LayerPlayer
	LayerDead
)

var layerNames = map[string]Layer{
	"civilian": LayerCivilian,
	"cop":      LayerCop,
	"soldier":  LayerSoldier,
	"zombie":   LayerZombie,
	"player":   LayerPlayer,
	"dead":     LayerDead,
}

// ParseLayer looks up a layer by its case-insensitive name.
func ParseLayer(name string) (Layer, bool) {
	l, ok := layerNames[strings.ToLower(name)]
	return l, ok
}

// LayerMask combines named layers. Unknown names are skipped.
func LayerMask(names ...string) Layer {
	var mask Layer
	for _, n := range names {
		if l, ok := ParseLayer(n); ok {
			mask |= l
		}
	}
	return mask
}

// Has reports whether any bit of o is set in l.
func (l Layer) Has(o Layer) bool {
	return l&o != 0
}

func (l Layer) String() string {
	var parts []string
	for name, bit := range layerNames {
		if l.Has(bit) {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	slices.Sort(parts)
	return strings.Join(parts, "|")
}
