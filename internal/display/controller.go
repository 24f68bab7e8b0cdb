package display

import "github.com/faiface/pixel/pixelgl"

// Button names the eight keys the console exposes.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller tracks the on/off state of the eight buttons, updated
// from a pixelgl window's keyboard state once per frame.
type Controller struct {
	state [8]bool
}

var keyBindings = map[Button]pixelgl.Button{
	ButtonA:      pixelgl.KeyJ,
	ButtonB:      pixelgl.KeyK,
	ButtonSelect: pixelgl.KeyRightShift,
	ButtonStart:  pixelgl.KeyEnter,
	ButtonUp:     pixelgl.KeyW,
	ButtonDown:   pixelgl.KeyS,
	ButtonLeft:   pixelgl.KeyA,
	ButtonRight:  pixelgl.KeyD,
}

// NewController returns a controller with every button released.
func NewController() *Controller {
	return &Controller{}
}

// Poll updates button state from the window's input this frame.
func (c *Controller) Poll(win *pixelgl.Window) {
	for button, key := range keyBindings {
		if win.JustPressed(key) {
			c.state[button] = true
		}
		if win.JustReleased(key) {
			c.state[button] = false
		}
	}
}

// Pressed reports whether button is currently held down.
func (c *Controller) Pressed(button Button) bool {
	return c.state[button]
}
