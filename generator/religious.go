package generator

import (
	"context"
	"strings"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
)

// TagReligious is the marker tag every religious event carries.
const TagReligious = "religious"

var religiousCategories = []string{"omen", "ceremony", "temple_dedication"}

const religiousSystem = `You are the keeper of sacred records of the Roman Republic. Report omens, ceremonies and temple affairs with solemn gravity. Never break character or reference the simulation.`

// Religious produces religious narrative events (omens, ceremonies, temple
// dedications), all significance 2. Every event carries a temple metadata
// key, extracted from the text or falling back to "Temple mentioned".
type Religious struct {
	base
	roster []string
}

// NewReligious constructs a religious event generator.
func NewReligious(backend model.Model, roster []string, optFns ...func(o *Options)) *Religious {
	return &Religious{base: newBase("religious", backend, optFns...), roster: roster}
}

// Name implements Generator.
func (g *Religious) Name() string { return g.name }

// Categories implements Generator.
func (g *Religious) Categories() []string {
	out := make([]string, len(religiousCategories))
	copy(out, religiousCategories)
	return out
}

// GenerateEvents implements Generator. Each failed single-event generation
// is dropped; the batch never errors.
func (g *Religious) GenerateEvents(ctx context.Context, clock core.Clock, nc *narrative.Context) []narrative.Event {
	var events []narrative.Event
	for i := 0; i < g.count; i++ {
		category := g.pickCategory(religiousCategories)
		ev, ok := g.generateOne(ctx, clock, nc, category)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events
}

func (g *Religious) generateOne(ctx context.Context, clock core.Clock, nc *narrative.Context, category string) (narrative.Event, bool) {
	text, err := g.generateText(ctx, religiousSystem, contextPrompt(clock, nc, category))
	if err != nil {
		g.logger.Warn("religious event generation failed", "category", category, "error", err)
		return narrative.Event{}, false
	}

	title, body := splitTitleBody(text)

	ev := narrative.NewEvent(category, body, narrative.DateFromClock(clock))
	ev.AddTags(TagReligious, category)
	ev.Entities = extractEntities(body, knownEntities(nc, g.roster))
	ev.Metadata["title"] = title
	ev.Metadata["temple"] = extractTemple(body)
	ev.Significance = 2
	return ev, true
}

// extractTemple pulls a "Temple of X" reference out of the text. Any other
// mention of a temple, or none at all, uses the "Temple mentioned" fallback.
func extractTemple(text string) string {
	for _, marker := range []string{"Temple of ", "temple of "} {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		// Take the run of capitalized words naming the deity or temple.
		var name []string
		for _, word := range strings.Fields(text[idx+len(marker):]) {
			trimmed := strings.Trim(word, ".,;:!?\"'")
			if trimmed == "" || trimmed[0] < 'A' || trimmed[0] > 'Z' {
				break
			}
			name = append(name, trimmed)
			if trimmed != word {
				break
			}
		}
		if len(name) > 0 {
			return "Temple of " + strings.Join(name, " ")
		}
	}
	return "Temple mentioned"
}
