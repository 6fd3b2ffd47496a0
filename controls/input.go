package controls

import (
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into every Input component in the world,
// creating a standalone one for worlds without a player.
// Must run BEFORE the simulation step in the system order.
func UpdateInput(e *ecs.ECS) {
	if _, ok := components.Input.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Input))
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		Poll(components.Input.Get(entry), gamepadIDs)
	})
}

// Input returns the world's first Input component, creating one if needed.
func Input(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// Poll swaps the input buffers and records which actions are held this frame.
func Poll(input *components.InputData, gamepads []ebiten.GamepadID) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(gamepads)
	if left {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
	}
	if up {
		input.Current[cfg.ActionMenuUp] = true
	}
	if down {
		input.Current[cfg.ActionMenuDown] = true
	}
}

// analogStickState reads the left analog stick from all gamepads
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -AnalogDeadzone
		right = right || horizontal > AnalogDeadzone
		up = up || vertical < -AnalogDeadzone
		down = down || vertical > AnalogDeadzone
	}
	return
}
