package components

import "github.com/yohamta/donburi"

// HealthData is hit points for the player and enemies. Current never drops
// below zero.
type HealthData struct {
	Current int
	Max     int
}

// Fraction returns Current/Max in [0, 1], 0 when Max is unset.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return min(1, max(0, float64(h.Current)/float64(h.Max)))
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
