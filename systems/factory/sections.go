package factory

import (
	"github.com/automoto/starfolio/archetypes"
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/shared/resume"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSections spawns one entity per résumé section, in layout order. The
// hero section also carries the typewriter for its subtitle.
func CreateSections(ecs *ecs.ECS, doc *resume.Document) []*donburi.Entry {
	hero := doc.HeroIndex()
	entries := make([]*donburi.Entry, 0, len(doc.Sections))

	for i, s := range doc.Sections {
		var body []string
		for _, line := range s.Body {
			if line == "" {
				body = append(body, "")
				continue
			}
			body = append(body, resume.Wrap(line, cfg.Section.MaxLineChars)...)
		}

		var entry *donburi.Entry
		if i == hero {
			entry = archetypes.Hero.Spawn(ecs)
			delay := cfg.Ticks(cfg.Typewriter.Delay)
			components.Typewriter.SetValue(entry, components.TypewriterData{
				Text:      []rune(s.Subtitle),
				Delay:     delay,
				Interval:  cfg.Ticks(cfg.Typewriter.Interval),
				Countdown: delay,
			})
		} else {
			entry = archetypes.Section.Spawn(ecs)
		}

		components.Section.SetValue(entry, components.SectionData{
			Index:    i,
			ID:       s.ID,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Body:     body,
		})
		entries = append(entries, entry)
	}
	return entries
}
