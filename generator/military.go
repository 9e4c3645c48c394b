package generator

import (
	"context"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
)

// TagMilitary is the marker tag every military event carries.
const TagMilitary = "military"

var militaryCategories = []string{"battle", "troop_movement", "recruitment"}

const militarySystem = `You are the military chronicler of the Roman Republic. Report legion movements, battles and levies in terse dispatch style. Never break character or reference the simulation.`

// Military produces military narrative events (battles, troop movements,
// levies). Battles are always significance 3; other military events are 2.
// Every event carries a location metadata key.
type Military struct {
	base
	roster []string
}

// NewMilitary constructs a military event generator. roster names are added
// to the entity scan so events can reference known senators.
func NewMilitary(backend model.Model, roster []string, optFns ...func(o *Options)) *Military {
	return &Military{base: newBase("military", backend, optFns...), roster: roster}
}

// Name implements Generator.
func (g *Military) Name() string { return g.name }

// Categories implements Generator.
func (g *Military) Categories() []string {
	out := make([]string, len(militaryCategories))
	copy(out, militaryCategories)
	return out
}

// GenerateEvents implements Generator. Each failed single-event generation
// is dropped; the batch never errors.
func (g *Military) GenerateEvents(ctx context.Context, clock core.Clock, nc *narrative.Context) []narrative.Event {
	var events []narrative.Event
	for i := 0; i < g.count; i++ {
		category := g.pickCategory(militaryCategories)
		ev, ok := g.generateOne(ctx, clock, nc, category)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events
}

func (g *Military) generateOne(ctx context.Context, clock core.Clock, nc *narrative.Context, category string) (narrative.Event, bool) {
	text, err := g.generateText(ctx, militarySystem, contextPrompt(clock, nc, category))
	if err != nil {
		g.logger.Warn("military event generation failed", "category", category, "error", err)
		return narrative.Event{}, false
	}

	title, body := splitTitleBody(text)

	ev := narrative.NewEvent(category, body, narrative.DateFromClock(clock))
	ev.AddTags(TagMilitary, category)
	ev.Entities = extractEntities(body, knownEntities(nc, g.roster))
	ev.Metadata["title"] = title
	ev.Metadata["location"] = extractPlace(body, "Various locations")
	if category == "battle" {
		ev.Significance = 3
	} else {
		ev.Significance = 2
	}
	return ev, true
}
