package systems

import (
	"testing"

	"github.com/yohamta/donburi"
)

// stubRand returns fixed values so drops and spawns are predictable.
type stubRand struct {
	float float64
	intn  int
}

func (r stubRand) Float64() float64 { return r.float }

func (r stubRand) IntN(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

// newTestWorld returns a world with a run in progress and no random drops.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	SetRand(w, stubRand{float: 0.99})
	ResetRun(w)
	DrainSounds(w)
	return w
}

func mustPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := GetPlayer(w)
	if !ok {
		t.Fatal("player not found")
	}
	return e
}
