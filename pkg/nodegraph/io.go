// Input bindings and the per-frame input snapshot. The caller samples
// its windowing layer once per frame and hands the result to Update;
// press/release edges are derived here from the previous frame's
// state.

package nodegraph

// Modifier names a keyboard modifier used in the IO bindings.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierAlt
	ModifierCtrl
	ModifierShift
	ModifierCommand
)

// Modifiers is the sampled modifier key state for one frame.
type Modifiers struct {
	Alt, Ctrl, Shift, Command bool
}

func (m Modifier) activeIn(mods Modifiers) bool {
	switch m {
	case ModifierAlt:
		return mods.Alt
	case ModifierCtrl:
		return mods.Ctrl
	case ModifierShift:
		return mods.Shift
	case ModifierCommand:
		return mods.Command
	}
	return false
}

// PointerButton identifies a mouse button in Input.ButtonsDown.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle

	buttonCount

	// ButtonNone disables the alternate-button binding.
	ButtonNone PointerButton = -1
)

// IO configures which buttons and modifiers drive canvas interactions.
type IO struct {
	// EmulateThreeButtonMouse, when held, makes the primary button act
	// as the pan button.
	EmulateThreeButtonMouse Modifier

	// LinkDetachWithModifierClick, when held, turns a click on a link
	// into a detach instead of a selection.
	LinkDetachWithModifierClick Modifier

	// AltMouseButton is the button that pans the canvas. Should not be
	// ButtonPrimary.
	AltMouseButton PointerButton
}

// DefaultIO pans with the middle mouse button and binds no modifiers.
func DefaultIO() IO {
	return IO{
		EmulateThreeButtonMouse:     ModifierNone,
		LinkDetachWithModifierClick: ModifierNone,
		AltMouseButton:              ButtonMiddle,
	}
}

// Input is the pointer snapshot for one frame, in screen coordinates.
type Input struct {
	MousePos    Vec2
	ButtonsDown [buttonCount]bool
	Modifiers   Modifiers
}

func (in Input) buttonDown(b PointerButton) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return in.ButtonsDown[b]
}
