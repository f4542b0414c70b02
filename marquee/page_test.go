package marquee

import "testing"

func TestNewPageDefaults(t *testing.T) {
	page := NewPage()

	if page.HotCTA != -1 {
		t.Errorf("expected no hot button, got %d", page.HotCTA)
	}
	if len(page.CTAs) != ctaCount {
		t.Errorf("expected %d call-to-action buttons, got %d", ctaCount, len(page.CTAs))
	}
	if len(page.Schedule) == 0 || len(page.Cast) == 0 || len(page.Prices) == 0 {
		t.Error("expected the page copy to be populated")
	}
}

func TestCTARectRowIsCentered(t *testing.T) {
	left := ctaRect(1024, 768, 0, 2)
	right := ctaRect(1024, 768, 1, 2)

	if !almost(left.Center().X, -right.Center().X) {
		t.Errorf("expected a symmetric row, centers %f and %f", left.Center().X, right.Center().X)
	}
	if !almost(right.Min.X-left.Max.X, ctaSpacing) {
		t.Errorf("expected %f between buttons, got %f", ctaSpacing, right.Min.X-left.Max.X)
	}
	if !almost(left.W(), ctaWidth) || !almost(left.H(), ctaHeight) {
		t.Errorf("unexpected button size %fx%f", left.W(), left.H())
	}
}

func TestHitCTA(t *testing.T) {
	w, h := 1024.0, 768.0
	first := ctaRect(w, h, 0, ctaCount).Center()
	second := ctaRect(w, h, 1, ctaCount).Center()

	tests := []struct {
		name   string
		x, y   float64
		expect int
	}{
		{"first button center", first.X, first.Y, 0},
		{"second button center", second.X, second.Y, 1},
		{"gap between buttons", (first.X + second.X) / 2, first.Y, -1},
		{"above the row", first.X, first.Y + ctaHeight*2, -1},
		{"screen corner", -w / 2, -h / 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hitCTA(w, h, tt.x, tt.y); got != tt.expect {
				t.Errorf("hitCTA(%f, %f) = %d, want %d", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}
