package marquee

import "testing"

func TestPlaybackRevealsInOrder(t *testing.T) {
	slot := &Slot{Name: "test"}
	p := Passage{Slot: 0, Interval: 0.1, Text: "play on"}
	pb := newPlayback(p, slot)

	runes := []rune(p.Text)
	for i := 1; i <= len(runes); i++ {
		pb.update(0.1)
		if slot.Text != string(runes[:i]) {
			t.Fatalf("after %d ticks expected %q, got %q", i, string(runes[:i]), slot.Text)
		}
	}
	if !pb.done() {
		t.Error("expected playback to be done")
	}
	if slot.Text != p.Text {
		t.Errorf("expected full text %q, got %q", p.Text, slot.Text)
	}
}

func TestPlaybackLargeStepRevealsEverything(t *testing.T) {
	slot := &Slot{Name: "test"}
	p := Passage{Slot: 0, Interval: 0.1, Text: "If music be the food of love"}
	pb := newPlayback(p, slot)

	pb.update(60.0)
	if slot.Text != p.Text {
		t.Errorf("expected full text after a large step, got %q", slot.Text)
	}
	pb.update(1.0)
	if slot.Text != p.Text {
		t.Error("expected no change once done")
	}
}

func TestPlaybackMultiByteRunes(t *testing.T) {
	slot := &Slot{Name: "test"}
	p := Passage{Slot: 0, Interval: 0.05, Text: "Olivia's café, naïve and glacé"}
	pb := newPlayback(p, slot)

	for !pb.done() {
		pb.update(0.05)
		for _, r := range slot.Text {
			if r == '�' {
				t.Fatalf("broken rune in partial text %q", slot.Text)
			}
		}
	}
	if slot.Text != p.Text {
		t.Errorf("expected %q, got %q", p.Text, slot.Text)
	}
}

func TestSidePassagesFillEverySlot(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range sidePassages {
		if p.Slot < 0 || p.Slot >= sideSlotCount {
			t.Errorf("passage slot %d out of range", p.Slot)
		}
		if seen[p.Slot] {
			t.Errorf("slot %d used twice", p.Slot)
		}
		seen[p.Slot] = true
		if p.Interval <= 0 {
			t.Errorf("slot %d has a non-positive interval", p.Slot)
		}
	}
	if len(seen) != sideSlotCount {
		t.Errorf("expected %d distinct slots, got %d", sideSlotCount, len(seen))
	}
	if finalPassage.Slot != finalSlot {
		t.Error("expected the closing line to target the final slot")
	}
}
