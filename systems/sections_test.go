package systems

import (
	"math"
	"testing"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/shared/resume"
	"github.com/automoto/starfolio/systems/factory"
	"github.com/automoto/starfolio/tags"
	"github.com/yohamta/donburi"
)

func TestVisibleFraction(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		scroll float64
		want   float64
	}{
		{"first at rest", 0, 0, 1},
		{"second at rest", 1, 0, 0},
		{"half way", 1, 500, 0.5},
		{"first half gone", 0, 500, 0.5},
		{"scrolled past", 0, 1500, 0},
		{"exactly aligned", 2, 2000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleFraction(tt.index, 1000, tt.scroll); !approx(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := VisibleFraction(0, 0, 0); got != 0 {
		t.Errorf("Expected 0 for a zero-width viewport, got %v", got)
	}
}

func TestActiveSection(t *testing.T) {
	tests := []struct {
		name   string
		scroll float64
		want   int
	}{
		{"start", 0, 0},
		{"just before lead", 799, 0},
		{"lead reaches next", 800, 1},
		{"end", 5000, 5},
		{"beyond end", 99999, 5},
		{"negative", -500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveSection(tt.scroll, 1000, 200, 6); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func testDoc() *resume.Document {
	return &resume.Document{
		Owner: "Test",
		Sections: []resume.Section{
			{ID: "hero", Title: "Hello", Subtitle: "Builder of things", Hero: true},
			{ID: "about", Title: "About", Body: []string{"Line one", "", "Line two"}},
			{ID: "skills", Title: "Skills"},
		},
	}
}

func TestSectionRevealAndReverse(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	factory.CreateSections(e, testDoc())

	byIndex := map[int]*components.SectionData{}
	tags.Section.Each(e.World, func(entry *donburi.Entry) {
		s := components.Section.Get(entry)
		byIndex[s.Index] = s
	})
	if len(byIndex) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(byIndex))
	}

	UpdateSections(e)
	if !byIndex[0].Revealed || byIndex[0].Progress <= 0 {
		t.Fatalf("Expected the first section to start revealing")
	}
	if byIndex[1].Revealed || byIndex[1].Progress != 0 {
		t.Fatalf("Expected the second section hidden")
	}

	ticks := int(math.Ceil(float64(cfg.Reveal.Duration)*float64(cfg.C.TPS))) + 2
	for i := 0; i < ticks; i++ {
		UpdateSections(e)
	}
	if !approx(float64(byIndex[0].Progress), 1) || byIndex[0].Tween != nil {
		t.Fatalf("Expected the reveal to settle at 1, got %v", byIndex[0].Progress)
	}

	// Scroll until the first section is off screen
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = true
	for i := 0; i < 200; i++ {
		UpdateNavigation(e)
		UpdateSections(e)
	}
	input.Current[cfg.ActionMoveRight] = false
	for i := 0; i < ticks; i++ {
		UpdateSections(e)
	}

	if byIndex[0].Revealed || !approx(float64(byIndex[0].Progress), 0) {
		t.Errorf("Expected the first section to reverse, got revealed=%v progress=%v", byIndex[0].Revealed, byIndex[0].Progress)
	}
	if !byIndex[1].Revealed {
		t.Errorf("Expected the second section revealed")
	}
}

func TestCreateSectionsHeroTypewriter(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	factory.CreateSections(e, testDoc())

	count := 0
	tags.Hero.Each(e.World, func(entry *donburi.Entry) {
		count++
		tw := components.Typewriter.Get(entry)
		if string(tw.Text) != "Builder of things" {
			t.Errorf("Expected hero subtitle text, got %q", string(tw.Text))
		}
		if tw.Delay != cfg.Ticks(cfg.Typewriter.Delay) || tw.Countdown != tw.Delay {
			t.Errorf("Expected countdown to start at the delay, got %d/%d", tw.Countdown, tw.Delay)
		}
	})
	if count != 1 {
		t.Errorf("Expected exactly one hero, got %d", count)
	}
}

func TestActiveSectionTitle(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	factory.CreateSections(e, testDoc())

	if got := ActiveSectionTitle(e); got != "Hello" {
		t.Errorf("Expected Hello, got %q", got)
	}
}
