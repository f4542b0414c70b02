package marquee

import "fmt"

// input is one frame's worth of user intent, gathered from the window by the
// ui layer. Keeping it a plain struct lets the whole state machine run in
// tests without a window.
type input struct {
	skip      bool
	click     bool
	mouseX    float64
	mouseY    float64
	width     float64
	height    float64
	musicFlip bool
}

type app struct {
	state string

	config Config
	local  LocalData

	stage  *Stage
	splash *Splash
	page   *Page

	music     bool
	totalTime float64
	width     float64
	height    float64

	// set once when the splash finishes unskipped, consumed by the ui layer
	completed bool
}

func NewApp(config Config, local LocalData) *app {
	a := &app{
		state:  "splash",
		config: config,
		local:  local,
		stage:  NewStage(),
		page:   NewPage(),
		music:  config.Music,
		width:  config.ScreenWidth,
		height: config.ScreenHeight,
	}
	a.splash = NewSplash(a.stage, func() float64 { return a.width })
	a.splash.Start()
	return a
}

// advance is the whole per-frame state transition. Pure with respect to the
// window: audio and persistence side effects happen in the ui layer.
func (a *app) advance(dt float64, in input) {
	a.totalTime += dt
	if in.width > 0 {
		a.width = in.width
		a.height = in.height
	}
	if in.musicFlip {
		a.music = !a.music
	}

	switch a.state {
	case "splash":
		if in.skip && !a.splash.Done() {
			a.splash.Skip()
		}
		a.splash.Update(dt)
		a.stage.Update(dt)
		if a.splash.Done() {
			if !a.splash.skipped {
				a.completed = true
			}
			a.state = "page"
		}

	case "page":
		a.stage.Update(dt)
		a.page.HotCTA = hitCTA(a.width, a.height, in.mouseX, in.mouseY)
		if in.click && a.page.HotCTA >= 0 {
			fmt.Printf("[Page] %s -> %s\n", a.page.CTAs[a.page.HotCTA], boxOfficeURL)
		}
	}
}

// consumeCompleted reports a finished, unskipped splash exactly once.
func (a *app) consumeCompleted() bool {
	if !a.completed {
		return false
	}
	a.completed = false
	return true
}
