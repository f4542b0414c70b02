package marquee

import (
	"testing"
)

// tick is a power-of-two frame step so the simulated clock hits the schedule's
// half-second offsets exactly.
const tick = 1.0 / 64.0

func wideWidth() float64   { return 1024.0 }
func narrowWidth() float64 { return 600.0 }

func runSplash(s *Splash, stage *Stage, seconds float64) {
	frames := int(seconds / tick)
	for i := 0; i < frames; i++ {
		s.Update(tick)
		stage.Update(tick)
	}
}

func TestSplashNotDoneBeforeStart(t *testing.T) {
	stage := NewStage()
	s := NewSplash(stage, wideWidth)
	if s.Done() {
		t.Error("expected an unstarted splash to not be done")
	}
}

func TestSplashPlaysThrough(t *testing.T) {
	stage := NewStage()
	s := NewSplash(stage, wideWidth)
	s.Start()

	runSplash(s, stage, 36.0)

	if !s.Done() {
		t.Fatal("expected the splash to have finished")
	}
	for i, p := range sidePassages {
		if stage.Side[p.Slot].Text != p.Text {
			t.Errorf("side passage %d incomplete: %q", i, stage.Side[p.Slot].Text)
		}
	}
	if stage.Final.Text != finalPassage.Text {
		t.Errorf("final passage incomplete: %q", stage.Final.Text)
	}
	if !almost(stage.Content.Alpha(), 1.0) {
		t.Errorf("expected page content opaque, got %f", stage.Content.Alpha())
	}
	if !almost(stage.Splash.Alpha(), 0.0) {
		t.Errorf("expected splash overlay hidden, got %f", stage.Splash.Alpha())
	}
	if !almost(stage.Image.Alpha(), 1.0) {
		t.Errorf("expected image panel revealed, got %f", stage.Image.Alpha())
	}
	if stage.Overlay.Visible {
		t.Error("expected no call-to-action overlay on a wide viewport")
	}
}

func TestSplashCheckpoints(t *testing.T) {
	tests := []struct {
		name  string
		at    float64
		check func(t *testing.T, stage *Stage)
	}{
		{"logo fading in early", 1.0, func(t *testing.T, stage *Stage) {
			a := stage.Logo.Alpha()
			if a <= 0 || a >= 1 {
				t.Errorf("expected logo mid fade, got %f", a)
			}
		}},
		{"group still hidden before its turn", 3.5, func(t *testing.T, stage *Stage) {
			if stage.Group.Alpha() > 0 {
				t.Errorf("expected group hidden, got %f", stage.Group.Alpha())
			}
		}},
		{"no passage text before typing starts", 5.0, func(t *testing.T, stage *Stage) {
			for i := range stage.Side {
				if stage.Side[i].Text != "" {
					t.Errorf("slot %d typed early: %q", i, stage.Side[i].Text)
				}
			}
		}},
		{"passages typing after start", 7.0, func(t *testing.T, stage *Stage) {
			for i := range stage.Side {
				if stage.Side[i].Text == "" {
					t.Errorf("slot %d still empty", i)
				}
			}
		}},
		{"title gone, final line typing", 18.0, func(t *testing.T, stage *Stage) {
			if !almost(stage.Title.Alpha(), 0.0) {
				t.Errorf("expected title faded out, got %f", stage.Title.Alpha())
			}
			if stage.Final.Text == "" {
				t.Error("expected the closing line to be typing")
			}
		}},
		{"side slots cleared while final holds", 22.0, func(t *testing.T, stage *Stage) {
			for i := range stage.Side {
				if stage.Side[i].Alpha() > 0 {
					t.Errorf("slot %d still visible: %f", i, stage.Side[i].Alpha())
				}
			}
			if stage.Final.Alpha() <= 0 {
				t.Error("expected the final line still visible")
			}
		}},
		{"content fading in under the splash", 28.5, func(t *testing.T, stage *Stage) {
			a := stage.Content.Alpha()
			if a <= 0 || a >= 1 {
				t.Errorf("expected content mid fade, got %f", a)
			}
			if stage.Splash.Alpha() <= 0 {
				t.Error("expected splash still above the content")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := NewStage()
			s := NewSplash(stage, wideWidth)
			s.Start()
			runSplash(s, stage, tt.at)
			tt.check(t, stage)
		})
	}
}

// The image panel reveal fires a fixed twenty-nine seconds after the title
// group begins to appear.
func TestImageRevealTiming(t *testing.T) {
	stage := NewStage()
	s := NewSplash(stage, wideWidth)
	s.Start()

	runSplash(s, stage, 33.0-tick)
	if stage.Image.Alpha() > 0 || stage.Image.Fading() {
		t.Fatal("image panel revealed early")
	}
	runSplash(s, stage, 2*tick)
	if !stage.Image.Fading() && stage.Image.Alpha() <= 0 {
		t.Fatal("image panel did not start revealing on schedule")
	}
}

func TestSkipCollapsesToEndState(t *testing.T) {
	skipTimes := []float64{0.0, 0.25, 6.0, 17.0, 25.0, 31.0}

	for _, at := range skipTimes {
		stage := NewStage()
		s := NewSplash(stage, wideWidth)
		s.Start()
		runSplash(s, stage, at)

		s.Skip()

		if !s.Done() {
			t.Errorf("skip at %fs: expected done", at)
		}
		for _, slot := range stage.TextSlots() {
			if slot.Text != "" {
				t.Errorf("skip at %fs: slot %s kept text %q", at, slot.Name, slot.Text)
			}
			if slot.Alpha() > 0 {
				t.Errorf("skip at %fs: slot %s still visible", at, slot.Name)
			}
		}
		if !almost(stage.Content.Alpha(), 1.0) {
			t.Errorf("skip at %fs: content not revealed", at)
		}
		if !almost(stage.Splash.Alpha(), 0.0) {
			t.Errorf("skip at %fs: splash overlay not hidden", at)
		}
		if !almost(stage.Image.Alpha(), 1.0) {
			t.Errorf("skip at %fs: image panel not revealed", at)
		}

		// nothing scheduled before the skip may run afterwards
		runSplash(s, stage, 10.0)
		for _, slot := range stage.TextSlots() {
			if slot.Text != "" {
				t.Errorf("skip at %fs: text reappeared in %s: %q", at, slot.Name, slot.Text)
			}
		}
	}
}

func TestSkipIsIdempotent(t *testing.T) {
	stage := NewStage()
	s := NewSplash(stage, wideWidth)
	s.Start()
	runSplash(s, stage, 6.0)

	s.Skip()
	s.Skip()

	if !s.Done() {
		t.Error("expected done after repeated skips")
	}
	if !almost(stage.Content.Alpha(), 1.0) {
		t.Error("expected content revealed after repeated skips")
	}
}

func TestSkipOverlayOnNarrowViewport(t *testing.T) {
	tests := []struct {
		name    string
		width   func() float64
		overlay bool
	}{
		{"narrow shows the overlay", narrowWidth, true},
		{"wide does not", wideWidth, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := NewStage()
			s := NewSplash(stage, tt.width)
			s.Start()
			runSplash(s, stage, 2.0)

			s.Skip()
			runSplash(s, stage, 2.0)

			if stage.Overlay.Visible != tt.overlay {
				t.Errorf("overlay visible = %v, want %v", stage.Overlay.Visible, tt.overlay)
			}
			if tt.overlay && !almost(stage.Overlay.Alpha(), 1.0) {
				t.Errorf("expected overlay opaque, got %f", stage.Overlay.Alpha())
			}
		})
	}
}

func TestOverlayOnNarrowViewportWithoutSkip(t *testing.T) {
	stage := NewStage()
	s := NewSplash(stage, narrowWidth)
	s.Start()

	runSplash(s, stage, 36.0)

	if !stage.Overlay.Visible {
		t.Error("expected the overlay after a full narrow-viewport run")
	}
}

func TestStartRestarts(t *testing.T) {
	stage := NewStage()
	s := NewSplash(stage, wideWidth)
	s.Start()
	runSplash(s, stage, 36.0)
	if !s.Done() {
		t.Fatal("expected first run to finish")
	}

	s.Start()
	if s.Done() {
		t.Error("expected a restarted splash to not be done")
	}
	runSplash(s, stage, 1.0)
	if !stage.Logo.Fading() && stage.Logo.Alpha() >= 1.0 {
		t.Error("expected the logo fade to run again after restart")
	}
}
