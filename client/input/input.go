package input

import (
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// RepeatDelay is the number of ticks a key is held before it repeats.
	RepeatDelay = 10
	// RepeatInterval is the number of ticks between repeats.
	RepeatInterval = 3
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	return isGamepadJustPressed(ebiten.StandardGamepadButtonRightBottom, ebiten.GamepadButton0)
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsNegativeJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	return isGamepadJustPressed(ebiten.StandardGamepadButtonRightRight, ebiten.GamepadButton1)
}

func isGamepadJustPressed(standard ebiten.StandardGamepadButton, fallback ebiten.GamepadButton) bool {
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, standard) {
				return true
			}
		} else {
			// The button 0/1 might not be A/B buttons.
			if inpututil.IsGamepadButtonJustPressed(g, fallback) {
				return true
			}
		}
	}
	return false
}

// isRepeating reports whether key was just pressed or has been held long
// enough to repeat on this tick.
func isRepeating(key ebiten.Key) bool {
	return repeats(inpututil.KeyPressDuration(key))
}

func repeats(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return ticks > RepeatDelay && (ticks-RepeatDelay)%RepeatInterval == 0
}

func isGamepadRepeating(standard ebiten.StandardGamepadButton) bool {
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) && repeats(inpututil.StandardGamepadButtonPressDuration(g, standard)) {
			return true
		}
	}
	return false
}

func IsLeftRepeating() bool {
	return isRepeating(ebiten.KeyLeft) || isRepeating(ebiten.KeyA) || isGamepadRepeating(ebiten.StandardGamepadButtonLeftLeft)
}

func IsRightRepeating() bool {
	return isRepeating(ebiten.KeyRight) || isRepeating(ebiten.KeyD) || isGamepadRepeating(ebiten.StandardGamepadButtonLeftRight)
}

func IsDownRepeating() bool {
	return isRepeating(ebiten.KeyDown) || isRepeating(ebiten.KeyS) || isGamepadRepeating(ebiten.StandardGamepadButtonLeftBottom)
}

func IsRotateJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyX) || isGamepadJustPressed(ebiten.StandardGamepadButtonLeftTop, ebiten.GamepadButton2)
}

func IsHardDropJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || isGamepadJustPressed(ebiten.StandardGamepadButtonRightTop, ebiten.GamepadButton3)
}

// Actions returns the session actions for this tick's input.
// While a name is being entered, the text field owns ENTER and BACKSPACE.
func Actions(mode session.Mode, nameEntry bool) []session.Action {
	var actions []session.Action
	switch mode {
	case session.ModeMenu:
		if IsPositiveJustPressed() {
			actions = append(actions, session.ActionConfirm)
		}
		if IsNegativeJustPressed() {
			actions = append(actions, session.ActionCancel)
		}
	case session.ModePlaying:
		if IsNegativeJustPressed() {
			return []session.Action{session.ActionCancel}
		}
		if IsLeftRepeating() {
			actions = append(actions, session.ActionLeft)
		}
		if IsRightRepeating() {
			actions = append(actions, session.ActionRight)
		}
		if IsRotateJustPressed() {
			actions = append(actions, session.ActionRotate)
		}
		if IsDownRepeating() {
			actions = append(actions, session.ActionSoftDrop)
		}
		if IsHardDropJustPressed() {
			actions = append(actions, session.ActionHardDrop)
		}
	case session.ModeGameOver:
		if !nameEntry && IsPositiveJustPressed() {
			actions = append(actions, session.ActionConfirm)
		}
		if IsNegativeJustPressed() {
			actions = append(actions, session.ActionCancel)
		}
	}
	return actions
}
