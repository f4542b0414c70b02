package marquee

import "math"

// A Slot is one named surface the splash mutates: a piece of text, the logo,
// the content container. Slots are handed to the sequencer at construction
// rather than looked up by identifier, so tests can run against a bare Stage.
type Slot struct {
	Name    string
	Text    string
	Visible bool

	alpha float64
	fade  fade
}

type fade struct {
	from     float64
	to       float64
	duration float64
	elapsed  float64
	active   bool
}

// FadeTo starts an opacity ramp towards target over duration seconds. The
// ramp is cosmetic: nothing waits on it, and starting a new fade replaces any
// fade still in flight.
func (s *Slot) FadeTo(target float64, duration float64) {
	if duration <= 0 {
		s.alpha = target
		s.fade = fade{}
		return
	}
	s.fade = fade{
		from:     s.alpha,
		to:       target,
		duration: duration,
		active:   true,
	}
	if target > 0 {
		s.Visible = true
	}
}

// SetAlpha snaps opacity, cancelling any running fade. Used by skip.
func (s *Slot) SetAlpha(a float64) {
	s.alpha = a
	s.fade = fade{}
	s.Visible = a > 0
}

func (s *Slot) Alpha() float64 {
	return s.alpha
}

func (s *Slot) Update(dt float64) {
	if !s.fade.active {
		return
	}
	s.fade.elapsed += dt
	t := math.Min(1.0, s.fade.elapsed/s.fade.duration)
	s.alpha = s.fade.from + (s.fade.to-s.fade.from)*t
	if t >= 1.0 {
		s.fade = fade{}
		if s.alpha <= 0 {
			s.Visible = false
		}
	}
}

// Fading reports whether an opacity ramp is still running.
func (s *Slot) Fading() bool {
	return s.fade.active
}

// Side slot indices. The four side slots hold the short excerpts typed out
// around the title; the final slot holds the centered closing line.
const (
	SlotUpLeft = iota
	SlotUpRight
	SlotDownLeft
	SlotDownRight
	sideSlotCount
)

// Stage is the full set of surfaces the splash and the marketing page draw
// onto. Opacity of Group gates the title and side slots together; opacity of
// Splash gates the whole intro overlay.
type Stage struct {
	Logo    *Slot
	Title   *Slot
	Group   *Slot
	Side    [sideSlotCount]*Slot
	Final   *Slot
	Content *Slot
	Image   *Slot
	Overlay *Slot
	Splash  *Slot
}

func NewStage() *Stage {
	stage := &Stage{
		Logo:    &Slot{Name: "logo"},
		Title:   &Slot{Name: "title"},
		Group:   &Slot{Name: "group"},
		Final:   &Slot{Name: "final"},
		Content: &Slot{Name: "content"},
		Image:   &Slot{Name: "image"},
		Overlay: &Slot{Name: "cta-overlay"},
		Splash:  &Slot{Name: "splash"},
	}
	names := [sideSlotCount]string{"up-left", "up-right", "down-left", "down-right"}
	for i := range stage.Side {
		stage.Side[i] = &Slot{Name: names[i]}
		// individually opaque; the group slot gates them in together
		stage.Side[i].SetAlpha(1.0)
	}
	stage.Splash.SetAlpha(1.0)
	stage.Title.SetAlpha(1.0)
	return stage
}

// TextSlots returns the five passage surfaces: four side slots then final.
func (stage *Stage) TextSlots() []*Slot {
	slots := make([]*Slot, 0, sideSlotCount+1)
	for i := range stage.Side {
		slots = append(slots, stage.Side[i])
	}
	return append(slots, stage.Final)
}

func (stage *Stage) Update(dt float64) {
	stage.Logo.Update(dt)
	stage.Title.Update(dt)
	stage.Group.Update(dt)
	for i := range stage.Side {
		stage.Side[i].Update(dt)
	}
	stage.Final.Update(dt)
	stage.Content.Update(dt)
	stage.Image.Update(dt)
	stage.Overlay.Update(dt)
	stage.Splash.Update(dt)
}
