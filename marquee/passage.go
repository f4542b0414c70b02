package marquee

// A Passage is a literary excerpt revealed one character at a time into a
// fixed slot. The five passages below are the whole of the data model: they
// are defined once at boot and consumed character-by-character during the
// splash.
type Passage struct {
	Slot     int     // side slot index, or finalSlot
	Interval float64 // seconds per character
	Text     string
}

const finalSlot = -1

var sidePassages = []Passage{
	{
		Slot:     SlotUpLeft,
		Interval: 0.09,
		Text: "Be not afraid of greatness: some are born great,\n" +
			"some achieve greatness, and some have greatness\n" +
			"thrust upon 'em.",
	},
	{
		Slot:     SlotUpRight,
		Interval: 0.11,
		Text:     "Better a witty fool than a foolish wit.",
	},
	{
		Slot:     SlotDownLeft,
		Interval: 0.14,
		Text:     "I was adored once too.",
	},
	{
		Slot:     SlotDownRight,
		Interval: 0.1,
		Text: "What's to come is still unsure...\n" +
			"Youth's a stuff will not endure.",
	},
}

var finalPassage = Passage{
	Slot:     finalSlot,
	Interval: 0.15,
	Text:     "If music be the food of love, play on.",
}

// playback types a passage into its slot. It always starts from character
// zero and has no pause or resume; the only way to stop it early is the
// driver dropping it on skip, so a stray timer can never write text back
// into a cleared slot.
type playback struct {
	passage  Passage
	slot     *Slot
	runes    []rune
	revealed int
	elapsed  float64
}

func newPlayback(p Passage, slot *Slot) *playback {
	return &playback{
		passage: p,
		slot:    slot,
		runes:   []rune(p.Text),
	}
}

func (pb *playback) done() bool {
	return pb.revealed >= len(pb.runes)
}

func (pb *playback) update(dt float64) {
	if pb.done() {
		return
	}
	pb.elapsed += dt
	for !pb.done() && pb.elapsed >= pb.passage.Interval {
		pb.elapsed -= pb.passage.Interval
		pb.revealed++
	}
	pb.slot.Text = string(pb.runes[:pb.revealed])
}
