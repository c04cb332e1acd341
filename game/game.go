package game

import (
	"log"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/systems"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Simulation owns one game world and steps it frame by frame. All methods must
// be called from the host's update goroutine.
type Simulation struct {
	world    donburi.World
	notifier Notifier
	sound    SoundPlayer
	systems  []systems.System
}

// New creates a simulation in the menu phase. A nil notifier or sound player
// is replaced by a no-op.
func New(notifier Notifier, sound SoundPlayer) *Simulation {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if sound == nil {
		sound = nopSoundPlayer{}
	}

	s := &Simulation{
		world:    donburi.NewWorld(),
		notifier: notifier,
		sound:    sound,
	}
	factory.CreateSpace(s.world)
	systems.GetOrCreateGame(s.world)
	systems.GetOrCreateWave(s.world)
	systems.GetOrCreatePause(s.world)
	systems.GetOrCreateAudio(s.world)

	s.subscribe()

	// Frame order
	s.systems = []systems.System{
		systems.WithGameplayChecks(systems.UpdatePlayer),
		systems.WithGameplayChecks(systems.UpdateSpawner),
		systems.WithGameplayChecks(systems.UpdateEnemies),
		systems.WithGameplayChecks(systems.UpdateAutoAim),
		systems.WithGameplayChecks(systems.UpdateProjectiles),
		systems.WithGameplayChecks(systems.UpdateCombat),
		systems.WithGameplayChecks(systems.UpdatePowerUps),
		systems.WithGameplayChecks(systems.UpdateWave),
		systems.WithPauseCheck(systems.UpdateEffects),
	}
	return s
}

func (s *Simulation) subscribe() {
	systems.ScoreChanged.Subscribe(s.world, func(_ donburi.World, ev systems.ScoreEvent) {
		s.notifier.UpdateScoreDisplay(ev.Score)
	})
	systems.HealthChanged.Subscribe(s.world, func(_ donburi.World, ev systems.HealthEvent) {
		s.notifier.UpdateHealthDisplay(ev.Health, ev.Max)
	})
	systems.WaveChanged.Subscribe(s.world, func(_ donburi.World, ev systems.WaveEvent) {
		s.notifier.UpdateWaveDisplay(ev.Wave, ev.Total, ev.Progress)
	})
	systems.PowerUpsChanged.Subscribe(s.world, func(_ donburi.World, ev systems.PowerUpEvent) {
		s.notifier.UpdatePowerUpDisplay(ev.Active)
	})
	systems.GameOver.Subscribe(s.world, func(_ donburi.World, ev systems.RunEndEvent) {
		s.notifier.OnGameOver(ev.Score, ev.Wave)
	})
	systems.Victory.Subscribe(s.world, func(_ donburi.World, ev systems.RunEndEvent) {
		s.notifier.OnVictory(ev.Score, ev.Wave)
	})
}

// World exposes the entity world for hosts that draw it.
func (s *Simulation) World() donburi.World {
	return s.world
}

// SetRand replaces the random source, e.g. with a seeded one.
func (s *Simulation) SetRand(r components.Rand) {
	if r == nil {
		return
	}
	systems.SetRand(s.world, r)
}

// SetArena replaces the spawn lanes and player start used by the next run.
func (s *Simulation) SetArena(layout cfg.ArenaLayout) {
	if len(layout.Lanes) == 0 {
		log.Printf("Warning: arena %q has no spawn lanes, keeping %q", layout.Name, systems.GetArena(s.world).Name)
		return
	}
	*systems.GetArena(s.world) = layout
}

// StartGame begins a new run from the menu.
func (s *Simulation) StartGame() {
	id := systems.ResetRun(s.world)
	log.Printf("Run %s: started", id)
	s.flush()
}

// RestartGame discards the current run and begins a fresh one within this call.
func (s *Simulation) RestartGame() {
	prev := s.RunID()
	id := systems.ResetRun(s.world)
	log.Printf("Run %s: restarted as %s", prev, id)
	s.flush()
}

// ReturnToMenu abandons the current run.
func (s *Simulation) ReturnToMenu() {
	systems.EndRun(s.world)
	s.flush()
}

// TogglePause flips the pause flag during a run and returns the new state.
func (s *Simulation) TogglePause() bool {
	paused := systems.TogglePause(s.world)
	s.flush()
	return paused
}

func (s *Simulation) Paused() bool {
	return systems.IsPaused(s.world)
}

// SetSteer sets the steering input in [-1, 1]; 0 holds the current lane.
func (s *Simulation) SetSteer(dir float64) {
	systems.SetSteer(s.world, dir)
}

func (s *Simulation) Phase() cfg.GamePhase {
	return systems.GetOrCreateGame(s.world).Phase
}

func (s *Simulation) RunID() uuid.UUID {
	return systems.GetOrCreateGame(s.world).RunID
}

// Update advances the simulation by dt seconds, clamped to [0, MaxDelta].
// While paused nothing advances; queued sounds and notifications still flush.
func (s *Simulation) Update(dt float64) {
	if !systems.IsPaused(s.world) {
		systems.AdvanceClock(s.world, dt)
		for _, system := range s.systems {
			system(s.world)
		}
	}
	s.flush()
}

// flush hands queued sounds to the sound player and dispatches the step's
// notifications.
func (s *Simulation) flush() {
	for _, req := range systems.DrainSounds(s.world) {
		if req.Stop {
			s.sound.Stop(req.Key)
			continue
		}
		s.sound.Play(req.ID.String(), SoundOptions{
			Volume:   req.Volume,
			Position: req.Position,
			Loop:     req.Loop,
			Key:      req.Key,
		})
	}
	events.ProcessAllEvents(s.world)
}
