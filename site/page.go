package site

import (
	"math"

	"github.com/pthm-cable/starfield/content"
)

// Rect is an axis-aligned rectangle in page or screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Section is one vertical band of the page.
type Section struct {
	Anchor string
	Y, H   float32
}

// FormLayout holds the contact form's widget rectangles in page pixels.
type FormLayout struct {
	Bounds  Rect
	Email   Rect
	Message Rect
	Status  Rect
	Submit  Rect
}

// Section and element sizes in pixels.
const (
	gutter        = 24
	heroChrome    = 240 // Space above and below the orbit stage
	projectsHead  = 260
	projectRowH   = 110
	projectRowGap = 30
	aboutHead     = 440
	marqueeH      = 140
	expertiseHead = 200
	cardH         = 150
	cardGap       = 24
	contactHead   = 320
	formH         = 440
	socialsH      = 140
	socialW       = 160
	socialGap     = 32
	sectionPad    = 120
	footerH       = 80

	// MarqueeItemW is the horizontal pitch of one marquee logo.
	MarqueeItemW = 160

	maxContentW = 1000
	maxFormW    = 576
)

// Page is the laid-out document for one viewport size. All rectangles are
// in page coordinates; scrolling subtracts the camera offset.
type Page struct {
	Width, Height float32
	Sections      []Section

	Stage                      Rect
	StageCenterX, StageCenterY float32

	Projects []Rect
	Marquee  Rect
	Cards    []Rect
	Form     FormLayout
	Socials  []Rect
	Footer   Rect
}

// LayoutPage lays out every section for a viewport of width x height.
// stageH is the orbit stage height.
func LayoutPage(width, height, stageH float32) Page {
	p := Page{Width: width}
	contentW := min(width-2*gutter, maxContentW)
	contentX := (width - contentW) / 2

	// Hero fills the viewport, with room for the stage and its captions
	heroH := max(height, stageH+heroChrome)
	p.Sections = append(p.Sections, Section{Anchor: content.AnchorHome, Y: 0, H: heroH})
	p.Stage = Rect{X: 0, Y: (heroH - stageH) / 2, W: width, H: stageH}
	p.StageCenterX = width / 2
	p.StageCenterY = p.Stage.Y + stageH/2
	y := heroH

	// Projects list
	projectsY := y
	for i := range content.Projects {
		row := Rect{X: contentX, Y: projectsY + projectsHead + float32(i)*(projectRowH+projectRowGap), W: contentW, H: projectRowH}
		p.Projects = append(p.Projects, row)
	}
	projectsH := projectsHead + float32(len(content.Projects))*(projectRowH+projectRowGap) + sectionPad
	p.Sections = append(p.Sections, Section{Anchor: content.AnchorProjects, Y: projectsY, H: projectsH})
	y += projectsH

	// About: headline, marquee, expertise cards
	aboutY := y
	p.Marquee = Rect{X: 0, Y: aboutY + aboutHead, W: width, H: marqueeH}
	cardsY := p.Marquee.Y + marqueeH + expertiseHead
	for i := range content.ExpertiseAreas {
		p.Cards = append(p.Cards, Rect{X: contentX, Y: cardsY + float32(i)*(cardH+cardGap), W: contentW, H: cardH})
	}
	aboutH := cardsY - aboutY + float32(len(content.ExpertiseAreas))*(cardH+cardGap) + sectionPad
	p.Sections = append(p.Sections, Section{Anchor: content.AnchorAbout, Y: aboutY, H: aboutH})
	y += aboutH

	// Contact: heading, form, socials
	contactY := y
	formW := min(width-2*gutter, maxFormW)
	formX := (width - formW) / 2
	fy := contactY + contactHead
	p.Form = FormLayout{
		Bounds:  Rect{X: formX, Y: fy, W: formW, H: formH},
		Email:   Rect{X: formX, Y: fy + 30, W: formW, H: 56},
		Message: Rect{X: formX, Y: fy + 130, W: formW, H: 160},
		Status:  Rect{X: formX, Y: fy + 300, W: formW, H: 24},
		Submit:  Rect{X: formX + formW - 220, Y: fy + 350, W: 220, H: 56},
	}
	n := float32(len(content.Socials))
	rowW := n*socialW + (n-1)*socialGap
	sy := fy + formH + 40
	for i := range content.Socials {
		x := (width-rowW)/2 + float32(i)*(socialW+socialGap)
		p.Socials = append(p.Socials, Rect{X: x, Y: sy, W: socialW, H: 48})
	}
	contactH := float32(contactHead + formH + 40 + socialsH + sectionPad)
	p.Sections = append(p.Sections, Section{Anchor: content.AnchorContact, Y: contactY, H: contactH})
	y += contactH

	p.Footer = Rect{X: 0, Y: y, W: width, H: footerH}
	p.Height = y + footerH
	return p
}

// AnchorY returns the page offset of the named section and whether it exists.
func (p Page) AnchorY(anchor string) (float32, bool) {
	for _, s := range p.Sections {
		if s.Anchor == anchor {
			return s.Y, true
		}
	}
	return 0, false
}

// MarqueeStripW returns the width of one copy of the tech list.
func MarqueeStripW() float32 {
	return float32(len(content.TechStack)) * MarqueeItemW
}

// MarqueeItemAt returns the tech-stack index under screen x for a marquee
// scrolled by offset percent of a strip made of copies lists, or -1.
func MarqueeItemAt(x float32, offset float64, copies int) int {
	n := len(content.TechStack)
	if n == 0 || copies < 1 {
		return -1
	}
	stripW := float64(MarqueeStripW()) * float64(copies)
	local := float64(x) - offset/100*stripW
	if local < 0 || local >= stripW {
		return -1
	}
	return int(math.Floor(local/MarqueeItemW)) % n
}

// NavLinkW and NavLinkH size each navbar link.
const (
	NavLinkW = 110
	NavLinkH = 32
)

// NavLinks returns the navbar link rectangles in screen pixels for the
// anchors after home, right-aligned on a viewport of the given width.
func NavLinks(width float32) []Rect {
	anchors := content.Anchors()
	out := make([]Rect, len(anchors))
	for i := range anchors {
		x := width - gutter - float32(len(anchors)-i)*NavLinkW
		out[i] = Rect{X: x, Y: 24, W: NavLinkW, H: NavLinkH}
	}
	return out
}

// NavLogo returns the logo rectangle in screen pixels. It always links home.
func NavLogo() Rect {
	return Rect{X: gutter, Y: 20, W: 60, H: 40}
}
