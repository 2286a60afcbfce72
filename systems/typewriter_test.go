package systems

import (
	"testing"

	"github.com/automoto/starfolio/components"
)

func TestAdvanceTypewriter(t *testing.T) {
	tw := &components.TypewriterData{Delay: 3, Interval: 2}
	ResetTypewriter(tw, "abc")

	// Shown count after each tick
	want := []int{0, 0, 1, 1, 2, 2, 3, 3, 3}
	for i, w := range want {
		AdvanceTypewriter(tw)
		if tw.Shown != w {
			t.Fatalf("Expected %d runes after tick %d, got %d", w, i+1, tw.Shown)
		}
	}
	if !tw.Started {
		t.Errorf("Expected the typewriter to be started")
	}

	ResetTypewriter(tw, "xy")
	if tw.Shown != 0 || tw.Started || tw.Countdown != 3 {
		t.Errorf("Expected reset state, got shown=%d started=%v countdown=%d", tw.Shown, tw.Started, tw.Countdown)
	}
}

func TestAdvanceTypewriterMultibyte(t *testing.T) {
	tw := &components.TypewriterData{Delay: 1, Interval: 1}
	ResetTypewriter(tw, "héllo")
	for i := 0; i < 2; i++ {
		AdvanceTypewriter(tw)
	}
	if got := string(tw.Text[:tw.Shown]); got != "hé" {
		t.Errorf("Expected %q, got %q", "hé", got)
	}
}
