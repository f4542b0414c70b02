package marquee

// Fade and wait lengths of the splash choreography, in seconds. The chain
// advances at the stated offsets whether or not a fade has visually finished;
// only the steps marked async fire and forget.
const (
	logoFadeIn     = 2.0
	logoWait       = 2.0
	groupFadeIn    = 1.5
	passageWait    = 8.0
	titleFadeOut   = 1.5
	finalFadeIn    = 1.5
	finalWait      = 3.0
	sideFadeOut    = 1.5
	sideWait       = 5.0
	finalFadeOut   = 1.5
	logoFadeOut    = 1.5
	contentFadeIn  = 2.0
	contentWait    = 1.0
	splashFadeOut  = 1.5
	splashWait     = 1.0
	overlayFadeIn  = 1.0
	narrowViewport = 768.0
)

// A step is one scheduled mutation of the stage: an opacity ramp or a
// passage playback start. delay is measured from the previous step's logical
// completion: fire time plus duration, or fire time alone when the previous
// step was async.
type step struct {
	delay    float64
	duration float64
	async    bool
	action   func(*Splash)
}

// Splash drives the intro from window-open to the reveal of the marketing
// page. One driver consumes the ordered step list; Skip cancels everything
// left in it, playbacks included.
type Splash struct {
	stage *Stage
	width func() float64

	steps     []step
	fireAt    []float64
	next      int
	clock     float64
	playbacks []*playback
	started   bool
	skipped   bool
}

func NewSplash(stage *Stage, width func() float64) *Splash {
	s := &Splash{
		stage: stage,
		width: width,
	}
	s.steps = []step{
		{delay: 0, duration: logoFadeIn, action: func(s *Splash) {
			s.stage.Logo.FadeTo(1.0, logoFadeIn)
		}},
		{delay: logoWait, duration: groupFadeIn, action: func(s *Splash) {
			s.stage.Group.FadeTo(1.0, groupFadeIn)
		}},
		{delay: 0, duration: 0, action: func(s *Splash) {
			for _, p := range sidePassages {
				s.play(p)
			}
		}},
		{delay: passageWait, duration: titleFadeOut, action: func(s *Splash) {
			s.stage.Title.FadeTo(0.0, titleFadeOut)
		}},
		{delay: 0, duration: finalFadeIn, action: func(s *Splash) {
			s.stage.Final.FadeTo(1.0, finalFadeIn)
		}},
		{delay: 0, duration: 0, action: func(s *Splash) {
			s.play(finalPassage)
		}},
		{delay: finalWait, duration: sideFadeOut, async: true, action: func(s *Splash) {
			for i := range s.stage.Side {
				s.stage.Side[i].FadeTo(0.0, sideFadeOut)
			}
		}},
		{delay: sideWait, duration: finalFadeOut, action: func(s *Splash) {
			s.stage.Final.FadeTo(0.0, finalFadeOut)
		}},
		{delay: 0, duration: logoFadeOut, action: func(s *Splash) {
			s.stage.Logo.FadeTo(0.0, logoFadeOut)
		}},
		{delay: 0, duration: contentFadeIn, action: func(s *Splash) {
			s.stage.Content.FadeTo(1.0, contentFadeIn)
		}},
		{delay: contentWait, duration: splashFadeOut, action: func(s *Splash) {
			s.stage.Splash.FadeTo(0.0, splashFadeOut)
		}},
		{delay: splashWait, duration: overlayFadeIn, action: func(s *Splash) {
			s.stage.Image.FadeTo(1.0, overlayFadeIn)
			if s.width() < narrowViewport {
				s.stage.Overlay.FadeTo(1.0, overlayFadeIn)
			}
		}},
	}

	// Resolve the relative delays into absolute fire times once, so the
	// driver is a plain cursor over a schedule.
	s.fireAt = make([]float64, len(s.steps))
	at := 0.0
	for i, st := range s.steps {
		at += st.delay
		s.fireAt[i] = at
		if !st.async {
			at += st.duration
		}
	}
	return s
}

// Start begins the timeline from zero. Starting an already-running splash
// restarts it rather than double-scheduling every step.
func (s *Splash) Start() {
	s.started = true
	s.skipped = false
	s.clock = 0
	s.next = 0
	s.playbacks = nil
}

// Skip collapses the whole timeline to its end state: every pending step and
// playback is cancelled, the five text slots are cleared, the marketing page
// is fully visible and the splash overlay hidden. On a narrow viewport the
// fixed call-to-action overlay is revealed. Safe to call repeatedly.
func (s *Splash) Skip() {
	s.skipped = true
	s.next = len(s.steps)
	s.playbacks = nil

	for _, slot := range s.stage.TextSlots() {
		slot.Text = ""
		slot.SetAlpha(0.0)
	}
	s.stage.Logo.SetAlpha(0.0)
	s.stage.Title.SetAlpha(0.0)
	s.stage.Group.SetAlpha(0.0)
	s.stage.Splash.SetAlpha(0.0)
	s.stage.Content.SetAlpha(1.0)
	s.stage.Image.SetAlpha(1.0)
	if s.width() < narrowViewport {
		s.stage.Overlay.FadeTo(1.0, overlayFadeIn)
	}
}

// Done reports whether the timeline has played (or been skipped) to the end.
func (s *Splash) Done() bool {
	if !s.started {
		return false
	}
	if s.skipped {
		return true
	}
	if s.next < len(s.steps) {
		return false
	}
	last := len(s.steps) - 1
	return s.clock >= s.fireAt[last]+s.steps[last].duration
}

func (s *Splash) play(p Passage) {
	slot := s.stage.Final
	if p.Slot != finalSlot {
		slot = s.stage.Side[p.Slot]
	}
	s.playbacks = append(s.playbacks, newPlayback(p, slot))
}

// Update advances the driver by one frame. Steps fire in documented order
// because each fire time was derived from its predecessor's completion, not
// because of any scheduler priority.
func (s *Splash) Update(dt float64) {
	if !s.started || s.skipped {
		return
	}
	s.clock += dt
	for s.next < len(s.steps) && s.clock >= s.fireAt[s.next] {
		step := s.steps[s.next]
		s.next++
		step.action(s)
		if s.skipped {
			return
		}
	}
	for _, pb := range s.playbacks {
		pb.update(dt)
	}
}
