package systems

import (
	cfg "github.com/automoto/lockstrike/config"
	"github.com/yohamta/donburi/features/events"
)

type ScoreEvent struct {
	Score int
}

type HealthEvent struct {
	Health int
	Max    int
}

type WaveEvent struct {
	Wave     int
	Total    int
	Progress float64
}

type PowerUpEvent struct {
	Active map[cfg.PowerUpKind]float64 // kind -> seconds remaining
}

// RunEndEvent is published once when a run ends in game over or victory.
type RunEndEvent struct {
	Score int
	Wave  int
}

type WaveCompleteEvent struct {
	Wave int
}

type PlayerHurtEvent struct {
	Amount   int
	Shielded bool
}

// Events published during a step. They are dispatched together at the end of it.
var (
	ScoreChanged    = events.NewEventType[ScoreEvent]()
	HealthChanged   = events.NewEventType[HealthEvent]()
	WaveChanged     = events.NewEventType[WaveEvent]()
	PowerUpsChanged = events.NewEventType[PowerUpEvent]()
	GameOver        = events.NewEventType[RunEndEvent]()
	Victory         = events.NewEventType[RunEndEvent]()
	WaveCompleted   = events.NewEventType[WaveCompleteEvent]()
	PlayerHurt      = events.NewEventType[PlayerHurtEvent]()
)
