package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/logging"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
)

// Generator is the common capability all event producers implement.
type Generator interface {
	// Name identifies the generator family ("military", "religious", ...).
	Name() string

	// Categories enumerates the event categories this generator may emit.
	Categories() []string

	// GenerateEvents produces zero or more events for the current tick.
	// It never returns an error; failures shrink the result instead.
	GenerateEvents(ctx context.Context, clock core.Clock, nc *narrative.Context) []narrative.Event
}

// Options configure a generator.
type Options struct {
	Logger logging.Logger
	Rand   *rand.Rand
	// EventsPerTick is how many events a single GenerateEvents call attempts.
	EventsPerTick int
}

// base carries the plumbing shared by the concrete generators.
type base struct {
	name    string
	backend model.Model
	logger  logging.Logger
	rng     *rand.Rand
	count   int
}

func newBase(name string, backend model.Model, optFns ...func(o *Options)) base {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		EventsPerTick: 1,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if opts.EventsPerTick < 1 {
		opts.EventsPerTick = 1
	}
	return base{
		name:    name,
		backend: backend,
		logger:  opts.Logger,
		rng:     opts.Rand,
		count:   opts.EventsPerTick,
	}
}

// pickCategory selects one of the generator's categories at random.
func (b *base) pickCategory(categories []string) string {
	return categories[b.rng.Intn(len(categories))]
}

// generateText requests free prose from the backend for one event.
func (b *base) generateText(ctx context.Context, system, prompt string) (string, error) {
	resp, err := b.backend.Generate(ctx, model.Request{
		System:      system,
		Prompt:      prompt,
		Temperature: 0.9,
		MaxTokens:   300,
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("empty generation")
	}
	return text, nil
}

// contextPrompt builds the shared date/context payload for event prompts.
func contextPrompt(clock core.Clock, nc *narrative.Context, category string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Date: %s\n", clock.FormattedDate())
	if nc != nil {
		if events := nc.RecentEvents(5); len(events) > 0 {
			sb.WriteString("Recent happenings:\n")
			for _, ev := range events {
				fmt.Fprintf(&sb, "- %s\n", ev.Description)
			}
		}
		if entities := nc.RecurringEntities(2); len(entities) > 0 {
			fmt.Fprintf(&sb, "Recurring names: %s\n", strings.Join(entities, ", "))
		}
	}
	fmt.Fprintf(&sb, "\nWrite a short report of a new %s event. First line: a terse title. Following lines: 2-3 sentences of detail naming concrete people and places.", strings.ReplaceAll(category, "_", " "))
	return sb.String()
}

// splitTitleBody separates raw model output into a title (first non-empty
// line) and body (the remainder). Output with no second line uses the title
// as the body so an event always has a description.
func splitTitleBody(text string) (title, body string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	rest := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if title == "" {
			title = line
			continue
		}
		rest = append(rest, line)
	}
	body = strings.Join(rest, " ")
	if body == "" {
		body = title
	}
	return title, body
}

// extractEntities returns exactly the subset of known entities literally
// present in the text (case-sensitive substring match, as given).
func extractEntities(text string, known []string) []string {
	var found []string
	for _, entity := range known {
		if entity != "" && strings.Contains(text, entity) {
			found = append(found, entity)
		}
	}
	return found
}

// knownEntities collects the names worth scanning for: recurring entities
// from the narrative plus the roster names the caller supplied.
func knownEntities(nc *narrative.Context, extra []string) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if nc != nil {
		for _, name := range nc.RecurringEntities(1) {
			add(name)
		}
	}
	for _, name := range extra {
		add(name)
	}
	return names
}

// extractPlace finds a capitalized token following a locative preposition
// ("in", "at", "near", "from"). It is a deliberately simple keyword
// heuristic; callers supply the fallback used when nothing matches.
func extractPlace(text, fallback string) string {
	words := strings.Fields(text)
	for i := 0; i+1 < len(words); i++ {
		switch strings.ToLower(words[i]) {
		case "in", "at", "near", "from":
			place := strings.Trim(words[i+1], ".,;:!?\"'")
			if place != "" && place[0] >= 'A' && place[0] <= 'Z' {
				return place
			}
		}
	}
	return fallback
}
