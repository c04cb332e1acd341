package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's footprint on the broad-phase grid.
// The grid is a top-down x/z projection of the world.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase grid.
var Space = donburi.NewComponentType[resolv.Space]()
