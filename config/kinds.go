package config

// EnemyKind identifies an enemy type and selects its AI strategy.
type EnemyKind int

const (
	EnemyRunner EnemyKind = iota
	EnemyShooter
	EnemyTank
)

var enemyKindNames = map[EnemyKind]string{
	EnemyRunner:  "runner",
	EnemyShooter: "shooter",
	EnemyTank:    "tank",
}

func (k EnemyKind) String() string {
	if name, ok := enemyKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEnemyKind maps an arena property value back to a kind.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	for k, n := range enemyKindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// PowerUpKind identifies a pick-up and the buff it grants.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpShield
	PowerUpDamage
	PowerUpSpeed
	PowerUpKindCount // must stay last
)

var powerUpKindNames = [PowerUpKindCount]string{
	PowerUpHealth: "health",
	PowerUpShield: "shield",
	PowerUpDamage: "damage",
	PowerUpSpeed:  "speed",
}

func (k PowerUpKind) String() string {
	if k < 0 || k >= PowerUpKindCount {
		return "unknown"
	}
	return powerUpKindNames[k]
}

// Side is the owner of a projectile.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// GamePhase is the top-level lifecycle of a run.
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseGameOver
	PhaseVictory
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	}
	return "unknown"
}
