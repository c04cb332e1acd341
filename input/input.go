// Package input polls keyboard and gamepads into per-frame action state.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Data stores the current and previous frame's pressed state for all actions
// plus the analog steering axis.
type Data struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	Axis     float64 // left stick horizontal after deadzone, -1..1
}

var Component = donburi.NewComponentType[Data]()

// Action returns the full ActionState for an action ID.
func (d *Data) Action(id ActionID) ActionState {
	curr := d.Current[id]
	prev := d.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Steer folds digital and analog input into a steering value in [-1, 1].
// Digital input wins over the stick.
func (d *Data) Steer() float64 {
	left := d.Current[ActionSteerLeft]
	right := d.Current[ActionSteerRight]
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	case left && right:
		return 0
	}
	return d.Axis
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Update polls raw input into the singleton Data. Must run before anything
// that reads actions in the same frame.
func Update(e *ecs.ECS) {
	poll(GetOrCreate(e.World))
}

// GetOrCreate returns the singleton input state, creating if needed
func GetOrCreate(w donburi.World) *Data {
	entry, ok := Component.First(w)
	if !ok {
		entry = w.Entry(w.Create(Component))
	}
	return Component.Get(entry)
}

func poll(d *Data) {
	// Swap buffers: current becomes previous, then zero out current
	d.Previous = d.Current
	d.Current = [ActionCount]bool{}
	d.Axis = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				d.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					d.Current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if axis := ApplyDeadzone(horizontal, Bindings.AnalogDeadzone); axis != 0 {
			d.Axis = axis
		}
		// Stick also drives menu navigation
		if vertical < -Bindings.AnalogDeadzone {
			d.Current[ActionMenuUp] = true
		}
		if vertical > Bindings.AnalogDeadzone {
			d.Current[ActionMenuDown] = true
		}
	}
}

// ApplyDeadzone zeroes v inside the deadzone and rescales the rest to the
// full [-1, 1] range.
func ApplyDeadzone(v, deadzone float64) float64 {
	if deadzone >= 1 {
		return 0
	}
	switch {
	case v > deadzone:
		return min(1, (v-deadzone)/(1-deadzone))
	case v < -deadzone:
		return max(-1, (v+deadzone)/(1-deadzone))
	}
	return 0
}
