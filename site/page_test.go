package site

import (
	"testing"

	"github.com/pthm-cable/starfield/content"
)

func TestLayoutPageSectionsContiguous(t *testing.T) {
	for _, size := range [][2]float32{{1280, 800}, {600, 900}, {1920, 400}} {
		p := LayoutPage(size[0], size[1], 600)

		want := []string{content.AnchorHome, content.AnchorProjects, content.AnchorAbout, content.AnchorContact}
		if len(p.Sections) != len(want) {
			t.Fatalf("expected %d sections, got %d", len(want), len(p.Sections))
		}
		y := float32(0)
		for i, sec := range p.Sections {
			if sec.Anchor != want[i] {
				t.Errorf("section %d: expected %s, got %s", i, want[i], sec.Anchor)
			}
			if sec.Y != y {
				t.Errorf("section %s starts at %v, expected %v", sec.Anchor, sec.Y, y)
			}
			y += sec.H
		}
		if p.Height != y+footerH {
			t.Errorf("expected page height %v, got %v", y+footerH, p.Height)
		}
	}
}

func TestLayoutPageHero(t *testing.T) {
	p := LayoutPage(1280, 800, 600)

	hero := p.Sections[0]
	if hero.H < 800 {
		t.Errorf("expected hero to fill the viewport, got %v", hero.H)
	}
	if p.Stage.Y < 0 || p.Stage.Y+p.Stage.H > hero.H {
		t.Errorf("stage %+v outside hero", p.Stage)
	}
	if p.StageCenterX != 640 {
		t.Errorf("expected stage centred at 640, got %v", p.StageCenterX)
	}
}

func TestLayoutPageElementsInsideSections(t *testing.T) {
	p := LayoutPage(1024, 768, 600)
	inside := func(r Rect, anchor string) bool {
		for _, s := range p.Sections {
			if s.Anchor == anchor {
				return r.Y >= s.Y && r.Y+r.H <= s.Y+s.H
			}
		}
		return false
	}

	if len(p.Projects) != len(content.Projects) || len(p.Cards) != len(content.ExpertiseAreas) || len(p.Socials) != len(content.Socials) {
		t.Fatal("expected one rectangle per content entry")
	}
	for i, r := range p.Projects {
		if !inside(r, content.AnchorProjects) {
			t.Errorf("project %d %+v outside its section", i, r)
		}
	}
	for i, r := range p.Cards {
		if !inside(r, content.AnchorAbout) {
			t.Errorf("card %d %+v outside its section", i, r)
		}
	}
	if !inside(p.Marquee, content.AnchorAbout) {
		t.Errorf("marquee %+v outside about", p.Marquee)
	}
	for _, r := range []Rect{p.Form.Email, p.Form.Message, p.Form.Status, p.Form.Submit} {
		if !inside(r, content.AnchorContact) {
			t.Errorf("form widget %+v outside contact", r)
		}
	}
	for i, r := range p.Socials {
		if !inside(r, content.AnchorContact) {
			t.Errorf("social %d %+v outside contact", i, r)
		}
	}
}

func TestAnchorY(t *testing.T) {
	p := LayoutPage(1024, 768, 600)

	if y, ok := p.AnchorY(content.AnchorHome); !ok || y != 0 {
		t.Errorf("expected home at 0, got %v %v", y, ok)
	}
	if y, ok := p.AnchorY(content.AnchorAbout); !ok || y != p.Sections[2].Y {
		t.Errorf("expected about at %v, got %v %v", p.Sections[2].Y, y, ok)
	}
	if _, ok := p.AnchorY("nowhere"); ok {
		t.Error("expected unknown anchor to be reported")
	}
}

func TestMarqueeItemAt(t *testing.T) {
	n := len(content.TechStack)
	tests := []struct {
		name   string
		x      float32
		offset float64
		want   int
	}{
		{"first item at rest", 10, 0, 0},
		{"second item at rest", MarqueeItemW + 10, 0, 1},
		{"wraps into second copy", MarqueeStripW() + 10, 0, 0},
		{"shifted half strip", 10, -50, 0},
		{"shifted one item", 10, -100 * float64(MarqueeItemW) / float64(4*MarqueeStripW()), 1},
		{"left of strip", -10, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarqueeItemAt(tt.x, tt.offset, 4)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
			if got >= n {
				t.Errorf("index %d out of range", got)
			}
		})
	}
}

func TestNavLinks(t *testing.T) {
	links := NavLinks(1280)
	if len(links) != len(content.Anchors()) {
		t.Fatalf("expected %d links, got %d", len(content.Anchors()), len(links))
	}
	last := links[len(links)-1]
	if last.X+last.W != 1280-gutter {
		t.Errorf("expected links right-aligned, last ends at %v", last.X+last.W)
	}
	for i := 1; i < len(links); i++ {
		if links[i].X <= links[i-1].X {
			t.Errorf("link %d not to the right of link %d", i, i-1)
		}
	}
	if NavLogo().Contains(links[0].X+1, links[0].Y+1) {
		t.Error("logo overlaps the first link")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	tests := []struct {
		x, y float32
		want bool
	}{
		{10, 20, true},
		{39.9, 59.9, true},
		{40, 30, false},
		{20, 60, false},
		{9, 30, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
	if got := r.Offset(5, -5); got != (Rect{X: 15, Y: 15, W: 30, H: 40}) {
		t.Errorf("unexpected offset rect %+v", got)
	}
}

func TestLayoutPageContactSection(t *testing.T) {
	p := LayoutPage(1024, 768, 700)

	var contactSec *Section
	for i := range p.Sections {
		if p.Sections[i].Anchor == content.AnchorContact {
			contactSec = &p.Sections[i]
		}
	}
	if contactSec == nil {
		t.Fatal("expected a contact section")
	}

	want := float32(contactHead + formH + 40 + socialsH + sectionPad)
	if contactSec.H != want {
		t.Errorf("expected contact height %v, got %v", want, contactSec.H)
	}
	if p.Footer.Y != contactSec.Y+contactSec.H {
		t.Errorf("expected footer at %v, got %v", contactSec.Y+contactSec.H, p.Footer.Y)
	}
	if p.Height != p.Footer.Y+footerH {
		t.Errorf("expected page height %v, got %v", p.Footer.Y+footerH, p.Height)
	}
}
