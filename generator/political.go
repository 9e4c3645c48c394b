package generator

import (
	"context"
	"strings"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
)

// TagPolitical is the marker tag every political event carries.
const TagPolitical = "political"

var politicalCategories = []string{"scandal", "alliance", "legislation"}

const politicalSystem = `You are a political observer in the Roman forum. Report rumors, alliances and legislative maneuvering with a gossip's ear for names. Never break character or reference the simulation.`

// Political produces political narrative events (scandals, alliances,
// legislation), all significance 2. Every event carries a faction metadata
// key naming the faction most entangled in it.
type Political struct {
	base
	roster   []string
	factions []string
}

// NewPolitical constructs a political event generator. factions are the
// names scanned for when attributing an event; unattributable events fall
// back to "the Senate".
func NewPolitical(backend model.Model, roster, factions []string, optFns ...func(o *Options)) *Political {
	return &Political{base: newBase("political", backend, optFns...), roster: roster, factions: factions}
}

// Name implements Generator.
func (g *Political) Name() string { return g.name }

// Categories implements Generator.
func (g *Political) Categories() []string {
	out := make([]string, len(politicalCategories))
	copy(out, politicalCategories)
	return out
}

// GenerateEvents implements Generator. Each failed single-event generation
// is dropped; the batch never errors.
func (g *Political) GenerateEvents(ctx context.Context, clock core.Clock, nc *narrative.Context) []narrative.Event {
	var events []narrative.Event
	for i := 0; i < g.count; i++ {
		category := g.pickCategory(politicalCategories)
		ev, ok := g.generateOne(ctx, clock, nc, category)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events
}

func (g *Political) generateOne(ctx context.Context, clock core.Clock, nc *narrative.Context, category string) (narrative.Event, bool) {
	text, err := g.generateText(ctx, politicalSystem, contextPrompt(clock, nc, category))
	if err != nil {
		g.logger.Warn("political event generation failed", "category", category, "error", err)
		return narrative.Event{}, false
	}

	title, body := splitTitleBody(text)

	ev := narrative.NewEvent(category, body, narrative.DateFromClock(clock))
	ev.AddTags(TagPolitical, category)
	ev.Entities = extractEntities(body, knownEntities(nc, g.roster))
	ev.Metadata["title"] = title
	ev.Metadata["faction"] = g.extractFaction(body)
	ev.Significance = 2
	return ev, true
}

func (g *Political) extractFaction(text string) string {
	for _, faction := range g.factions {
		if faction != "" && strings.Contains(text, faction) {
			return faction
		}
	}
	return "the Senate"
}
