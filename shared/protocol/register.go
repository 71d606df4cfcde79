package protocol

import (
	"github.com/automoto/outbreak/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetUnit     uint = 10
	SyncIDNetOutbreak uint = 11
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetUnit uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// Spectator clients must register the same components before connecting.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetUnit,
		netcomponents.NetUnitData{},
		netcomponents.NetUnit,
		esync.WithInterpFn(InterpIDNetUnit, netcomponents.LerpNetUnit),
	); err != nil {
		return err
	}

	// Outbreak census: no interpolation (discrete counts)
	if err := esync.RegisterComponent(
		SyncIDNetOutbreak,
		netcomponents.NetOutbreakData{},
		netcomponents.NetOutbreak,
	); err != nil {
		return err
	}

	return nil
}
