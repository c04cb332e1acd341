// Package render draws the simulation's world and HUD with ebiten.
package render

import "github.com/yohamta/donburi/ecs"

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerOverlay
)
