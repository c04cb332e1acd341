package systems

import (
	"log"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/gamemath"
	"github.com/automoto/lockstrike/systems/factory"
	"github.com/yohamta/donburi"
)

// triggerGameOver ends the run. It only acts on the first call of a run.
func triggerGameOver(w donburi.World, playerEntry *donburi.Entry, at gamemath.Vec3) {
	game := GetOrCreateGame(w)
	player := components.Player.Get(playerEntry)
	if player.Dead || game.Phase != cfg.PhasePlaying {
		return
	}

	player.Dead = true
	player.Hidden = true
	player.LockTarget = donburi.Null
	game.Phase = cfg.PhaseGameOver

	factory.SpawnEffect(w, components.EffectExplosion, at, factory.EffectParams{Scale: 2, Rand: GetRand(w)})
	PlaySFX(w, cfg.SoundExplosion)
	PlaySFX(w, cfg.SoundGameOver)
	StopMusic(w)

	wave := GetOrCreateWave(w)
	log.Printf("Run %s: game over on wave %d with score %d", game.RunID, wave.Number, game.Score)
	GameOver.Publish(w, RunEndEvent{Score: game.Score, Wave: wave.Number})
}

// triggerVictory ends the run after the final wave.
func triggerVictory(w donburi.World) {
	game := GetOrCreateGame(w)
	if game.Phase != cfg.PhasePlaying {
		return
	}
	game.Phase = cfg.PhaseVictory

	wave := GetOrCreateWave(w)
	wave.Victory = true

	PlaySFX(w, cfg.SoundVictory)
	StopMusic(w)

	log.Printf("Run %s: victory with score %d", game.RunID, game.Score)
	Victory.Publish(w, RunEndEvent{Score: game.Score, Wave: wave.Total})
}
