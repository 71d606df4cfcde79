package systems

import (
	"sync"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/rs/zerolog"
)

// EffectLog is a headless effect sink. It counts every effect by kind and
// traces them to the logger.
type EffectLog struct {
	logger zerolog.Logger

	mu     sync.Mutex
	counts map[components.EffectKind]int
}

func NewEffectLog(logger zerolog.Logger) *EffectLog {
	return &EffectLog{
		logger: logger,
		counts: make(map[components.EffectKind]int),
	}
}

func (l *EffectLog) Emit(kind components.EffectKind, pos, dir gamemath.Vec2) {
	l.mu.Lock()
	l.counts[kind]++
	l.mu.Unlock()

	l.logger.Trace().
		Str("effect", string(kind)).
		Float64("x", pos.X).
		Float64("y", pos.Y).
		Msg("effect")
}

// Count returns how many effects of kind were emitted
func (l *EffectLog) Count(kind components.EffectKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[kind]
}

// Counts returns a copy of all counts keyed by effect name
func (l *EffectLog) Counts() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int, len(l.counts))
	for k, v := range l.counts {
		out[string(k)] = v
	}
	return out
}
