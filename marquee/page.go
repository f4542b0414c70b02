package marquee

import "github.com/faiface/pixel"

// Static marketing copy for the production. Literal strings, defined once;
// the page never changes at runtime.

const showTitle = "Twelfth Night"
const showSubtitle = "or What You Will"
const companyName = "The Nightfall Players"
const venueName = "The Lantern Theatre, 14 Candlewick Lane"
const boxOfficeURL = "https://nightfallplayers.example/tickets"

type Performance struct {
	Day   string
	Date  string
	Time  string
	Notes string
}

type CastMember struct {
	Role string
	Name string
}

type Page struct {
	Schedule []Performance
	Cast     []CastMember
	Prices   []string
	CTAs     []string

	// Index of the CTA currently under the pointer, -1 for none.
	HotCTA int
}

func NewPage() *Page {
	return &Page{
		Schedule: []Performance{
			{Day: "Friday", Date: "October 16", Time: "7:30 pm", Notes: "opening night"},
			{Day: "Saturday", Date: "October 17", Time: "7:30 pm"},
			{Day: "Sunday", Date: "October 18", Time: "2:00 pm", Notes: "matinee"},
			{Day: "Friday", Date: "October 23", Time: "7:30 pm"},
			{Day: "Saturday", Date: "October 24", Time: "7:30 pm", Notes: "closing night"},
		},
		Cast: []CastMember{
			{Role: "Viola", Name: "Imogen Hart"},
			{Role: "Orsino", Name: "Tobias Wren"},
			{Role: "Olivia", Name: "Cesca Amberley"},
			{Role: "Malvolio", Name: "Edmund Pryce"},
			{Role: "Feste", Name: "Robin Swift"},
			{Role: "Sir Toby Belch", Name: "Hugh Carmody"},
		},
		Prices: []string{
			"Adults $28",
			"Concessions $22",
			"Under 16 $12",
		},
		CTAs: []string{
			"Book Tickets",
			"Join the Mailing List",
		},
		HotCTA: -1,
	}
}

const ctaWidth = 220.0
const ctaHeight = 48.0
const ctaSpacing = 24.0

// ctaRect places call-to-action button i in the window's centered coordinate
// space, a row above the bottom edge. Hit testing and drawing share this so
// the hot state can never disagree with the pixels.
func ctaRect(w, h float64, i, count int) pixel.Rect {
	rowWidth := float64(count)*ctaWidth + float64(count-1)*ctaSpacing
	left := -rowWidth/2 + float64(i)*(ctaWidth+ctaSpacing)
	bottom := -h/2 + 96.0
	return pixel.R(left, bottom, left+ctaWidth, bottom+ctaHeight)
}

const ctaCount = 2

func hitCTA(w, h, mx, my float64) int {
	for i := 0; i < ctaCount; i++ {
		if ctaRect(w, h, i, ctaCount).Contains(pixel.V(mx, my)) {
			return i
		}
	}
	return -1
}
