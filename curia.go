// Package curia provides a high-level façade over the senate deliberation
// engine and its services (model backends, event generators, session
// snapshots and logging), enabling rapid construction of multi-agent debate
// simulations. Most applications interact with this package by:
//  1. Creating a Curia via New() with a model backend (optionally overriding
//     the default in-memory snapshot store, clock, or generators)
//  2. Initializing the roster and the topic docket
//  3. Advancing the narrative and running debates
//
// The façade delegates orchestration to senate.Environment while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// snapshot store and a structured logger.
package curia

import (
	"context"
	"fmt"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/generator"
	"github.com/hupe1980/curia/logging"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
	"github.com/hupe1980/curia/senate"
	"github.com/hupe1980/curia/senator"
	"github.com/hupe1980/curia/session"
)

// Options configures the Curia instance.
type Options struct {
	// Logger defaults to NoOp if nil.
	Logger logging.Logger
	// Clock is the simulation calendar; defaults to a fixed date close to
	// the late Republic.
	Clock core.Clock
	// Seed seeds the environment RNG for reproducible sessions; zero keeps
	// a time-derived seed.
	Seed int64
	// Generators enrich the narrative context each time the session
	// advances. Empty means no world events are produced.
	Generators []generator.Generator
	// Store receives session snapshots (defaults to in-memory).
	Store session.Store
}

// Curia is the high-level façade aggregating the orchestrator, the event
// generators and the snapshot store.
type Curia struct {
	opts       Options
	env        *senate.Environment
	generators []generator.Generator
	store      session.Store
	logger     logging.Logger
}

// New creates a new Curia instance around a model backend with optional
// overrides. Any unset service is initialized with a safe default.
func New(backend model.Model, optFns ...func(o *Options)) *Curia {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Store:  session.NewInMemoryStore(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	env := senate.New(backend, func(o *senate.Options) {
		o.Logger = opts.Logger
		if opts.Clock != nil {
			o.Clock = opts.Clock
		}
		o.Seed = opts.Seed
	})

	return &Curia{
		opts:       opts,
		env:        env,
		generators: opts.Generators,
		store:      opts.Store,
		logger:     opts.Logger,
	}
}

// Environment exposes the underlying orchestrator for advanced callers.
func (c *Curia) Environment() *senate.Environment { return c.env }

// InitializeSenators builds the roster; see senate.Environment.
func (c *Curia) InitializeSenators(profiles []senator.Profile) error {
	return c.env.InitializeSenators(profiles)
}

// SetTopics normalizes and installs the topic docket; see senate.Environment.
func (c *Curia) SetTopics(inputs []any) error {
	return c.env.SetTopics(inputs)
}

// AdvanceNarrative runs every registered generator once and appends the
// produced events to the session narrative. Generation is best-effort; a
// failing backend simply yields fewer events.
func (c *Curia) AdvanceNarrative(ctx context.Context) []narrative.Event {
	var produced []narrative.Event
	for _, g := range c.generators {
		events := g.GenerateEvents(ctx, c.env.Clock(), c.env.Narrative())
		for _, ev := range events {
			c.env.Narrative().Append(ev)
			produced = append(produced, ev)
		}
		c.logger.Debug("narrative advanced", "generator", g.Name(), "events", len(events))
	}
	return produced
}

// RunDebate runs one debate round on the given topic input.
func (c *Curia) RunDebate(ctx context.Context, topicInput any) (*senate.DebateResult, error) {
	return c.env.RunDebate(ctx, topicInput)
}

// RunSession advances the narrative once and then debates every topic on
// the docket in order, returning the completed rounds.
func (c *Curia) RunSession(ctx context.Context) ([]*senate.DebateResult, error) {
	topics := c.env.Topics()
	if len(topics) == 0 {
		return nil, fmt.Errorf("curia: no topics set")
	}

	c.AdvanceNarrative(ctx)

	results := make([]*senate.DebateResult, 0, len(topics))
	for _, topic := range topics {
		result, err := c.env.RunDebate(ctx, topic)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Save captures the current session state into the snapshot store and
// returns the snapshot id.
func (c *Curia) Save() (string, error) {
	snap := session.Capture(c.env)
	if err := c.store.Save(snap); err != nil {
		return "", fmt.Errorf("curia: save session: %w", err)
	}
	c.logger.Info("session saved", "snapshot_id", snap.ID)
	return snap.ID, nil
}

// Restore reconstructs a Curia from a stored snapshot: the roster with its
// relationship scores, the topic docket, the narrative log and the debate
// history. The backend and options are supplied fresh since they are
// collaborators, not state.
func Restore(backend model.Model, store session.Store, id string, optFns ...func(o *Options)) (*Curia, error) {
	snap, err := store.Load(id)
	if err != nil {
		return nil, fmt.Errorf("curia: restore session: %w", err)
	}

	c := New(backend, append(optFns, func(o *Options) { o.Store = store })...)

	profiles := make([]senator.Profile, len(snap.Senators))
	for i, st := range snap.Senators {
		profiles[i] = st.Profile
	}
	if err := c.env.InitializeSenators(profiles); err != nil {
		return nil, err
	}
	for i, s := range c.env.Senators() {
		s.Memory().Restore(snap.Senators[i].Relationships)
	}

	inputs := make([]any, len(snap.Topics))
	for i, t := range snap.Topics {
		inputs[i] = t
	}
	if err := c.env.SetTopics(inputs); err != nil {
		return nil, err
	}

	for _, ev := range snap.Events {
		c.env.Narrative().Append(ev)
	}
	c.env.RestoreHistory(snap.History)

	return c, nil
}
