// Package display is the windowed presentation collaborator: it pulls
// completed frames off a gb.System and paints them with pixel/pixelgl,
// plus an optional debug panel showing the CPU's last disassembled
// instruction. None of this is part of the core -- the core never
// imports this package.
package display

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/dmg-emu/core/gb"
)

const (
	resW  float64 = gb.FrameWidth
	resH  float64 = gb.FrameHeight
	scale float64 = 3

	gameW = resW * scale
	gameH = resH * scale

	debugW = 360

	screenPosX float64 = 600
	screenPosY float64 = 300
)

// Display owns the pixelgl window, the RGBA image the emulator's
// grayscale frame is copied into each update, and the debug text
// panel.
type Display struct {
	gameRGBA *image.RGBA
	window   *pixelgl.Window
	matrix   pixel.Matrix

	isDebug     bool
	debugAtlas  *text.Atlas
	debugText   *text.Text
}

// New opens a window sized for the console's native 160x144
// framebuffer scaled 3x, with an optional debug side panel.
func New(isDebug bool) *Display {
	rect := image.Rect(0, 0, int(resW), int(resH))
	gameRGBA := image.NewRGBA(rect)

	screenW := gameW
	if isDebug {
		screenW += debugW
	}

	cfg := pixelgl.WindowConfig{
		Title:    "dmgemu",
		Bounds:   pixel.R(0, 0, screenW, gameH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal("display: unable to open window: ", err)
	}

	pic := pixel.PictureDataFromImage(gameRGBA)
	matrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	matrix = matrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	debugText := text.New(pixel.V(gameW+8, gameH-40), atlas)

	return &Display{
		gameRGBA:   gameRGBA,
		window:     window,
		matrix:     matrix,
		isDebug:    isDebug,
		debugAtlas: atlas,
		debugText:  debugText,
	}
}

// Closed reports whether the user has asked to close the window.
func (d *Display) Closed() bool { return d.window.Closed() }

// Window exposes the underlying pixelgl window so a controller can
// poll its keyboard state.
func (d *Display) Window() *pixelgl.Window { return d.window }

// UploadFrame copies a gb.System frame buffer (row-major, 3
// grayscale-replicated bytes per pixel) into the display's image.
func (d *Display) UploadFrame(frame []byte) {
	if len(frame) != gb.FrameBytes {
		log.Fatalf("display: frame is %d bytes, want %d", len(frame), gb.FrameBytes)
	}
	for y := 0; y < gb.FrameHeight; y++ {
		for x := 0; x < gb.FrameWidth; x++ {
			off := (y*gb.FrameWidth + x) * 3
			v := frame[off]
			// image.RGBA's origin is top-left; the console's frame
			// buffer is already row-major top-to-bottom, so invert Y
			// for pixel's bottom-left coordinate convention.
			d.gameRGBA.SetRGBA(x, gb.FrameHeight-1-y, color.RGBA{v, v, v, 0xFF})
		}
	}
}

// WriteDebugText replaces the debug panel's disassembly line.
func (d *Display) WriteDebugText(s string) {
	d.debugText.Clear()
	fmt.Fprint(d.debugText, s)
}

// Update clears the window, draws the game frame (and the debug panel
// when enabled), and presents.
func (d *Display) Update() {
	d.window.Clear(colornames.Black)

	pic := pixel.PictureDataFromImage(d.gameRGBA)
	sprite := pixel.NewSprite(pic, pic.Bounds())
	sprite.Draw(d.window, d.matrix)

	if d.isDebug {
		d.debugText.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}
