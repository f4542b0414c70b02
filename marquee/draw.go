package marquee

import (
	"fmt"
	"io/ioutil"
	"math"
	"strings"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var lampWarm = colorful.Color{R: 1.0, G: 0.84, B: 0.45}
var lampAmber = colorful.Color{R: 0.95, G: 0.45, B: 0.12}

type DrawContext struct {
	imd    *imdraw.IMDraw
	uiDraw *imdraw.IMDraw

	PrimaryCanvas *pixelgl.Canvas

	// Fonts
	titleFont *text.Atlas
	basicFont *text.Atlas
	smallFont *text.Atlas

	// Text objects
	logoTxt    *text.Text
	titleTxt   *text.Text
	passageTxt *text.Text
	finalTxt   *text.Text
	headingTxt *text.Text
	bodyTxt    *text.Text
	ctaTxt     *text.Text
	hintTxt    *text.Text

	// Poster sprite; nil means the vector placeholder is drawn instead
	poster *pixel.Sprite
}

func loadFace(path string, size float64) font.Face {
	ttfData, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Printf("[Boot] %s missing, falling back to the built-in face\n", path)
		return basicfont.Face7x13
	}
	ttf, err := truetype.Parse(ttfData)
	if err != nil {
		fmt.Printf("[Boot] %s unreadable, falling back to the built-in face\n", path)
		return basicfont.Face7x13
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size: size,
		DPI:  96,
	})
}

func NewDrawContext(cfg pixelgl.WindowConfig) *DrawContext {
	d := new(DrawContext)

	d.imd = imdraw.New(nil)
	d.uiDraw = imdraw.New(nil)

	d.titleFont = text.NewAtlas(loadFace("./font/gabriel_serif/Gabriel Serif.ttf", 28.0), text.ASCII)
	d.basicFont = text.NewAtlas(loadFace("./font/comfortaa/Comfortaa-Regular.ttf", 18.0), text.ASCII)
	d.smallFont = text.NewAtlas(loadFace("./font/comfortaa/Comfortaa-Regular.ttf", 14.0), text.ASCII)

	d.logoTxt = text.New(pixel.ZV, d.titleFont)
	d.titleTxt = text.New(pixel.ZV, d.titleFont)
	d.passageTxt = text.New(pixel.ZV, d.basicFont)
	d.finalTxt = text.New(pixel.ZV, d.basicFont)
	d.finalTxt.LineHeight = d.basicFont.LineHeight() * 1.5
	d.headingTxt = text.New(pixel.ZV, d.titleFont)
	d.bodyTxt = text.New(pixel.ZV, d.basicFont)
	d.bodyTxt.LineHeight = d.basicFont.LineHeight() * 1.4
	d.ctaTxt = text.New(pixel.ZV, d.basicFont)
	d.hintTxt = text.New(pixel.ZV, d.smallFont)

	if pic, err := loadPicture("./images/poster.png"); err == nil {
		d.poster = pixel.NewSprite(pic, pic.Bounds())
	}

	d.SetBounds(cfg.Bounds)
	return d
}

func (d *DrawContext) SetBounds(bounds pixel.Rect) {
	d.PrimaryCanvas = pixelgl.NewCanvas(pixel.R(-bounds.W()/2, -bounds.H()/2, bounds.W()/2, bounds.H()/2))
}

func ink(base pixel.RGBA, alpha float64) pixel.RGBA {
	return base.Mul(pixel.Alpha(alpha))
}

// writeCentered prints each line centered on the text origin.
func writeCentered(txt *text.Text, lines []string) {
	txt.Dot = txt.Orig
	for _, line := range lines {
		txt.Dot.X -= txt.BoundsOf(line).W() / 2
		fmt.Fprintln(txt, line)
	}
}

// drawLamps rings the top and bottom of the splash with marquee bulbs, each
// one blending between warm and amber on its own phase.
func drawLamps(d *DrawContext, a *app, alpha float64) {
	w := a.width
	h := a.height
	count := int(w / 48.0)
	if count < 2 {
		return
	}
	spacing := w / float64(count)
	for i := 0; i < count; i++ {
		t := 0.5 + 0.5*math.Sin(a.totalTime*3.0+float64(i)*0.9)
		c := lampWarm.BlendHcl(lampAmber, t)
		d.imd.Color = ink(pixel.RGB(c.R, c.G, c.B), alpha)
		x := -w/2 + spacing/2 + float64(i)*spacing
		d.imd.Push(pixel.V(x, h/2-24))
		d.imd.Circle(5.0, 0)
		d.imd.Push(pixel.V(x, -h/2+24))
		d.imd.Circle(5.0, 0)
	}
}

func drawSplash(win *pixelgl.Window, a *app, d *DrawContext) {
	stage := a.stage
	splashAlpha := stage.Splash.Alpha()
	if splashAlpha <= 0 {
		return
	}
	w := a.width
	h := a.height

	d.PrimaryCanvas.Clear(pixel.RGBA{A: 1.0})
	d.imd.Clear()

	drawLamps(d, a, stage.Logo.Alpha())

	// logo: the company name under a lamp arch
	logoAlpha := stage.Logo.Alpha()
	if logoAlpha > 0 {
		d.logoTxt.Clear()
		d.logoTxt.Orig = pixel.V(0, h/2-96)
		d.logoTxt.Color = ink(pixel.ToRGBA(colornames.Ivory), logoAlpha)
		writeCentered(d.logoTxt, []string{companyName})
		d.logoTxt.Draw(d.PrimaryCanvas, pixel.IM.Scaled(d.logoTxt.Orig, 1.5))
	}

	groupAlpha := stage.Group.Alpha()
	titleAlpha := groupAlpha * stage.Title.Alpha()
	if titleAlpha > 0 {
		d.titleTxt.Clear()
		d.titleTxt.Orig = pixel.V(0, 32)
		d.titleTxt.Color = ink(pixel.ToRGBA(colornames.Gold), titleAlpha)
		writeCentered(d.titleTxt, []string{showTitle, showSubtitle})
		d.titleTxt.Draw(d.PrimaryCanvas, pixel.IM.Scaled(d.titleTxt.Orig, 2))
	}

	// four side slots, one per quadrant
	anchors := [sideSlotCount]pixel.Vec{
		pixel.V(-w/2+64, h/2-192),
		pixel.V(w/2-320, h/2-192),
		pixel.V(-w/2+64, -h/2+192),
		pixel.V(w/2-320, -h/2+192),
	}
	for i, slot := range stage.Side {
		alpha := groupAlpha * slot.Alpha()
		if alpha <= 0 || slot.Text == "" {
			continue
		}
		d.passageTxt.Clear()
		d.passageTxt.Orig = anchors[i]
		d.passageTxt.Dot = anchors[i]
		d.passageTxt.Color = ink(pixel.ToRGBA(colornames.Ivory), alpha)
		for _, line := range strings.Split(slot.Text, "\n") {
			fmt.Fprintln(d.passageTxt, line)
		}
		d.passageTxt.Draw(d.PrimaryCanvas, pixel.IM.Scaled(d.passageTxt.Orig, 1))
	}

	finalAlpha := stage.Final.Alpha()
	if finalAlpha > 0 && stage.Final.Text != "" {
		d.finalTxt.Clear()
		d.finalTxt.Orig = pixel.V(0, 0)
		d.finalTxt.Color = ink(pixel.ToRGBA(colornames.Gold), finalAlpha)
		writeCentered(d.finalTxt, strings.Split(stage.Final.Text, "\n"))
		d.finalTxt.Draw(d.PrimaryCanvas, pixel.IM.Scaled(d.finalTxt.Orig, 1.5))
	}

	if a.config.SkipHint && a.local.ShowSkipHint() {
		d.hintTxt.Clear()
		d.hintTxt.Orig = pixel.V(0, -h/2+48)
		d.hintTxt.Color = ink(pixel.ToRGBA(colornames.Slategray), 1.0)
		writeCentered(d.hintTxt, []string{"press enter to skip"})
		d.hintTxt.Draw(d.PrimaryCanvas, pixel.IM.Scaled(d.hintTxt.Orig, 1))
	}

	d.imd.Draw(d.PrimaryCanvas)

	// the whole overlay fades out as one surface
	d.PrimaryCanvas.SetColorMask(pixel.Alpha(splashAlpha))
	d.PrimaryCanvas.Draw(win, pixel.IM.Moved(win.Bounds().Center()))
}

func drawPage(win *pixelgl.Window, a *app, d *DrawContext) {
	stage := a.stage
	page := a.page
	contentAlpha := stage.Content.Alpha()
	if contentAlpha <= 0 {
		return
	}
	w := a.width
	h := a.height
	center := win.Bounds().Center()

	d.uiDraw.Clear()

	d.headingTxt.Clear()
	d.headingTxt.Orig = pixel.V(0, h/2-72).Add(center)
	d.headingTxt.Color = ink(pixel.ToRGBA(colornames.Gold), contentAlpha)
	writeCentered(d.headingTxt, []string{showTitle})
	d.headingTxt.Draw(win, pixel.IM.Scaled(d.headingTxt.Orig, 2))

	d.bodyTxt.Clear()
	d.bodyTxt.Orig = pixel.V(-w/2+72, h/2-160).Add(center)
	d.bodyTxt.Dot = d.bodyTxt.Orig
	d.bodyTxt.Color = ink(pixel.ToRGBA(colornames.Ivory), contentAlpha)
	fmt.Fprintf(d.bodyTxt, "%s\n%s\n\n", companyName, venueName)
	fmt.Fprintln(d.bodyTxt, "Performances")
	for _, p := range page.Schedule {
		line := fmt.Sprintf("  %s %s, %s", p.Day, p.Date, p.Time)
		if p.Notes != "" {
			line += " (" + p.Notes + ")"
		}
		fmt.Fprintln(d.bodyTxt, line)
	}
	fmt.Fprintln(d.bodyTxt, "")
	fmt.Fprintln(d.bodyTxt, "Tickets")
	for _, price := range page.Prices {
		fmt.Fprintln(d.bodyTxt, "  "+price)
	}
	d.bodyTxt.Draw(win, pixel.IM.Scaled(d.bodyTxt.Orig, 1))

	d.bodyTxt.Clear()
	d.bodyTxt.Orig = pixel.V(48, h/2-160).Add(center)
	d.bodyTxt.Dot = d.bodyTxt.Orig
	d.bodyTxt.Color = ink(pixel.ToRGBA(colornames.Ivory), contentAlpha)
	fmt.Fprintln(d.bodyTxt, "Cast")
	for _, member := range page.Cast {
		fmt.Fprintf(d.bodyTxt, "  %-16s %s\n", member.Role, member.Name)
	}
	d.bodyTxt.Draw(win, pixel.IM.Scaled(d.bodyTxt.Orig, 1))

	// poster panel, revealed by the final timeline step
	imageAlpha := stage.Image.Alpha() * contentAlpha
	if imageAlpha > 0 {
		panel := pixel.R(w/2-280, -h/2+160, w/2-56, 120)
		if d.poster != nil {
			bounds := d.poster.Frame()
			scale := math.Min(panel.W()/bounds.W(), panel.H()/bounds.H())
			d.poster.DrawColorMask(win,
				pixel.IM.Scaled(pixel.ZV, scale).Moved(panel.Center().Add(center)),
				pixel.Alpha(imageAlpha))
		} else {
			d.uiDraw.Color = ink(pixel.ToRGBA(colornames.Midnightblue), imageAlpha)
			d.uiDraw.Push(panel.Min.Add(center), panel.Max.Add(center))
			d.uiDraw.Rectangle(0)
			d.uiDraw.Color = ink(pixel.RGB(lampWarm.R, lampWarm.G, lampWarm.B), imageAlpha)
			d.uiDraw.Push(panel.Min.Add(center), panel.Max.Add(center))
			d.uiDraw.Rectangle(3)
		}
	}

	// CTA buttons
	for i, label := range page.CTAs {
		r := ctaRect(w, h, i, len(page.CTAs))
		fill := pixel.ToRGBA(colornames.Darkslateblue)
		if i == page.HotCTA {
			fill = pixel.ToRGBA(colornames.Royalblue)
		}
		d.uiDraw.Color = ink(fill, contentAlpha)
		d.uiDraw.Push(r.Min.Add(center), r.Max.Add(center))
		d.uiDraw.Rectangle(0)

		d.ctaTxt.Clear()
		d.ctaTxt.Orig = r.Center().Add(pixel.V(0, -6)).Add(center)
		d.ctaTxt.Color = ink(pixel.ToRGBA(colornames.Ivory), contentAlpha)
		writeCentered(d.ctaTxt, []string{label})
		d.ctaTxt.Draw(win, pixel.IM.Scaled(d.ctaTxt.Orig, 1))
	}

	// fixed call-to-action bar, narrow viewports only
	overlayAlpha := stage.Overlay.Alpha()
	if stage.Overlay.Visible && overlayAlpha > 0 {
		d.uiDraw.Color = ink(pixel.ToRGBA(colornames.Crimson), overlayAlpha)
		d.uiDraw.Push(pixel.V(-w/2, -h/2).Add(center), pixel.V(w/2, -h/2+56).Add(center))
		d.uiDraw.Rectangle(0)

		d.ctaTxt.Clear()
		d.ctaTxt.Orig = pixel.V(0, -h/2+20).Add(center)
		d.ctaTxt.Color = ink(pixel.ToRGBA(colornames.Ivory), overlayAlpha)
		writeCentered(d.ctaTxt, []string{"Book Tickets"})
		d.ctaTxt.Draw(win, pixel.IM.Scaled(d.ctaTxt.Orig, 1))
	}

	d.uiDraw.Draw(win)
}

func DrawApp(win *pixelgl.Window, a *app, d *DrawContext) {
	win.Clear(colornames.Black)

	// content sits under the splash so the late fade-in shows through
	drawPage(win, a, d)
	if a.state == "splash" {
		drawSplash(win, a, d)
	}
}
