package marquee

import (
	"math"
	"time"

	"github.com/faiface/pixel/pixelgl"
)

const localDataFile = "./localdata.yml"

type uiContext struct {
	lastFrame time.Time
}

func NewUi() *uiContext {
	return &uiContext{lastFrame: time.Now()}
}

func uiSkip(win *pixelgl.Window) bool {
	return win.JustPressed(pixelgl.KeyEnter) ||
		win.JustPressed(pixelgl.KeyEscape) ||
		win.JustPressed(pixelgl.KeySpace) ||
		win.JustPressed(pixelgl.MouseButton1)
}

// UpdateApp gathers one frame of input from the window, advances the state
// machine, and carries out the side effects the pure layer reports: the skip
// chime, music upkeep, and the visit record when a splash plays to the end.
func UpdateApp(win *pixelgl.Window, a *app, ui *uiContext) {
	dt := math.Min(time.Since(ui.lastFrame).Seconds(), 0.1)
	ui.lastFrame = time.Now()

	in := input{
		width:     win.Bounds().W(),
		height:    win.Bounds().H(),
		musicFlip: win.JustPressed(pixelgl.KeyM),
	}
	mouse := win.MousePosition().Sub(win.Bounds().Center())
	in.mouseX = mouse.X
	in.mouseY = mouse.Y

	skipping := false
	if a.state == "splash" {
		in.skip = uiSkip(win)
		skipping = in.skip && !a.splash.Done()
	} else {
		in.click = win.JustPressed(pixelgl.MouseButton1)
	}

	clicked := in.click && hitCTA(in.width, in.height, in.mouseX, in.mouseY) >= 0
	wasMusic := a.music

	a.advance(dt, in)

	if skipping || clicked {
		PlaySound("chime")
	}
	if a.consumeCompleted() {
		a.local.Completed++
		a.local.WriteToFile(localDataFile)
	}
	if wasMusic != a.music {
		if a.music {
			PlaySong("overture")
		} else {
			StopMusic()
		}
	}
	if a.music {
		updateMusic("overture")
	}
}
