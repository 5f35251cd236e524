package systems

import (
	"strings"

	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateVehicles in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Left stick steers; throttle stays on the triggers
	if gpID, h, ok := readSteerAxis(gamepadIDs); ok {
		applySteerAxis(input, h)
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// applySteerAxis merges a horizontal stick value into the steer actions.
func applySteerAxis(input *components.InputData, horizontal float64) {
	deadzone := cfg.Input.AnalogDeadzone
	if horizontal < -deadzone {
		input.Current[cfg.ActionSteerLeft] = true
	}
	if horizontal > deadzone {
		input.Current[cfg.ActionSteerRight] = true
	}
}

// readSteerAxis returns the first left stick outside the deadzone.
func readSteerAxis(gamepads []ebiten.GamepadID) (ebiten.GamepadID, float64, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone || h > deadzone {
			return gpID, h, true
		}
	}
	return 0, 0, false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := controllerTypeFromName(name)
	controllerTypeCache[gpID] = method
	return method
}

func controllerTypeFromName(name string) components.InputMethod {
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		return components.InputPlayStation
	}
	// Default gamepad to Xbox-style
	return components.InputXbox
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// VehicleInput maps the held actions onto the vehicle's key set.
func VehicleInput(input *components.InputData) vehicle.Input {
	return vehicle.Input{
		Up:    input.Current[cfg.ActionAccelerate],
		Down:  input.Current[cfg.ActionReverse],
		Left:  input.Current[cfg.ActionSteerLeft],
		Right: input.Current[cfg.ActionSteerRight],
		Boost: input.Current[cfg.ActionBoost],
	}
}
