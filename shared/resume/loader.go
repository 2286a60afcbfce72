package resume

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	sectionsGroup = "Sections"
	bodySeparator = "|"
)

// ErrNoSections is returned when a map defines no content sections.
var ErrNoSections = errors.New("no sections in content map")

// ErrSectionCount is returned when a map does not fill the scrollable content.
var ErrSectionCount = errors.New("section count does not match content width")

// Load parses a TMX content map. It takes an fs.FS so callers can pass
// embed.FS (game) or fstest.MapFS (tests).
func Load(fsys fs.FS, tmxPath string) (*Document, error) {
	contentMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	doc := &Document{
		Owner: contentMap.Properties.GetString("owner"),
	}

	for _, og := range contentMap.ObjectGroups {
		if og.Name != sectionsGroup {
			continue
		}
		for _, o := range og.Objects {
			doc.Sections = append(doc.Sections, Section{
				ID:       o.Name,
				Title:    o.Properties.GetString("title"),
				Subtitle: o.Properties.GetString("subtitle"),
				Body:     splitBody(o.Properties.GetString("body")),
				Hero:     o.Properties.GetBool("hero"),
				X:        o.X,
			})
		}
	}

	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSections)
	}

	// Objects are placed left to right in the editor
	sort.SliceStable(doc.Sections, func(i, j int) bool {
		return doc.Sections[i].X < doc.Sections[j].X
	})

	return doc, nil
}

// RequireSections checks that the document has exactly n sections, one per
// viewport of content width.
func (d *Document) RequireSections(n int) error {
	if len(d.Sections) != n {
		return fmt.Errorf("%w: got %d sections, want %d", ErrSectionCount, len(d.Sections), n)
	}
	return nil
}

// HeroIndex returns the index of the first hero section, or -1.
func (d *Document) HeroIndex() int {
	for i, s := range d.Sections {
		if s.Hero {
			return i
		}
	}
	return -1
}

func splitBody(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, bodySeparator)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, strings.TrimSpace(p))
	}
	return lines
}

// Wrap breaks text into lines of at most maxChars runes on word boundaries.
// Words longer than maxChars get a line of their own.
func Wrap(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxChars <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var b strings.Builder
	n := 0
	for _, w := range words {
		wl := len([]rune(w))
		if n > 0 && n+1+wl > maxChars {
			lines = append(lines, b.String())
			b.Reset()
			n = 0
		}
		if n > 0 {
			b.WriteByte(' ')
			n++
		}
		b.WriteString(w)
		n += wl
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}
