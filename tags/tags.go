package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for the broad-phase grid
const (
	ResolvPlayer           = "Player"
	ResolvEnemy            = "Enemy"
	ResolvPlayerProjectile = "PlayerProjectile"
	ResolvEnemyProjectile  = "EnemyProjectile"
	ResolvPowerUp          = "PowerUp"
)
