package senate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/logging"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
	"github.com/hupe1980/curia/senator"
)

var (
	// ErrEmptyRoster is returned when a phase runs before senators exist.
	ErrEmptyRoster = errors.New("senate: no senators initialized")
	// ErrRosterInitialized is returned when the roster is initialized twice;
	// membership is immutable after the first call.
	ErrRosterInitialized = errors.New("senate: roster already initialized")
	// ErrDuplicateSenator is returned for duplicate names in the roster input.
	ErrDuplicateSenator = errors.New("senate: duplicate senator name")
)

// defaultAbstainChance models real-world absence or indecision at the roll
// call when deterministic voting is off.
const defaultAbstainChance = 0.10

// DebateResult is everything one completed round produced.
type DebateResult struct {
	Topic         core.Topic             `json:"topic"`
	Speeches      []senator.Speech       `json:"speeches"`
	Interjections []senator.Interjection `json:"interjections"`
	Vote          *VoteResult            `json:"vote"`
}

// Options configure an Environment.
type Options struct {
	Logger logging.Logger
	Clock  core.Clock
	// Seed seeds the environment RNG (interjections, random abstention).
	// Zero keeps a time-derived seed.
	Seed int64
	// AbstainChance overrides the random-abstention probability used when
	// deterministic voting is off. Negative values keep the default.
	AbstainChance float64
}

// Environment owns the roster, the topics and the narrative context for one
// deliberation session and drives the debate and vote phases.
type Environment struct {
	backend   model.Model
	logger    logging.Logger
	clock     core.Clock
	narrative *narrative.Context
	rng       *rand.Rand

	abstainChance float64
	senators      []*senator.Senator
	topics        []core.Topic
	history       []*DebateResult
}

// New creates an Environment around a text-generation backend.
func New(backend model.Model, optFns ...func(o *Options)) *Environment {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		Clock:         core.FixedClock{CurrentYear: -50, CurrentMonth: 0, CurrentDay: 1},
		AbstainChance: -1,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	abstainChance := opts.AbstainChance
	if abstainChance < 0 {
		abstainChance = defaultAbstainChance
	}

	return &Environment{
		backend:       backend,
		logger:        opts.Logger,
		clock:         opts.Clock,
		narrative:     narrative.NewContext(),
		rng:           rng,
		abstainChance: abstainChance,
	}
}

// InitializeSenators builds one senator per profile, preserving input order.
// Roster membership is immutable afterwards; only per-round state changes.
func (e *Environment) InitializeSenators(profiles []senator.Profile) error {
	if len(e.senators) > 0 {
		return ErrRosterInitialized
	}
	if len(profiles) == 0 {
		return ErrEmptyRoster
	}

	seen := make(map[string]bool, len(profiles))
	roster := make([]*senator.Senator, 0, len(profiles))
	for _, p := range profiles {
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSenator, p.Name)
		}
		s, err := senator.New(p, e.backend, func(o *senator.Options) {
			o.Logger = e.logger
			o.Rand = e.rng
		})
		if err != nil {
			return err
		}
		seen[p.Name] = true
		roster = append(roster, s)
	}
	e.senators = roster
	e.logger.Info("roster initialized", "senators", len(roster))
	return nil
}

// SetTopics normalizes mixed-shape topic inputs into canonical Topics,
// preserving order. A malformed input fails the whole call; nothing is
// partially applied.
func (e *Environment) SetTopics(inputs []any) error {
	topics := make([]core.Topic, 0, len(inputs))
	for i, in := range inputs {
		topic, err := core.NormalizeTopic(in)
		if err != nil {
			return fmt.Errorf("senate: topic %d: %w", i, err)
		}
		topics = append(topics, topic)
	}
	e.topics = topics
	return nil
}

// Senators returns the roster in initialization order.
func (e *Environment) Senators() []*senator.Senator {
	out := make([]*senator.Senator, len(e.senators))
	copy(out, e.senators)
	return out
}

// Roster returns the profiles in roster order, for persistence collaborators.
func (e *Environment) Roster() []senator.Profile {
	out := make([]senator.Profile, len(e.senators))
	for i, s := range e.senators {
		out[i] = s.Profile()
	}
	return out
}

// Topics returns the normalized topic list in order.
func (e *Environment) Topics() []core.Topic {
	out := make([]core.Topic, len(e.topics))
	copy(out, e.topics)
	return out
}

// Narrative returns the session's narrative context. The environment owns
// it; callers append through generators and read for prompts or snapshots.
func (e *Environment) Narrative() *narrative.Context { return e.narrative }

// Clock returns the simulation calendar the environment reads.
func (e *Environment) Clock() core.Clock { return e.clock }

// RestoreHistory replaces the recorded debate rounds. Used only when a
// persisted session is reconstructed.
func (e *Environment) RestoreHistory(history []*DebateResult) {
	e.history = append([]*DebateResult(nil), history...)
}

// History returns the completed debate rounds in order.
func (e *Environment) History() []*DebateResult {
	out := make([]*DebateResult, len(e.history))
	copy(out, e.history)
	return out
}

// RunDebate runs one full round on the topic: every senator in roster order
// decides a stance and speaks, every other senator reacts to each speech in
// roster order (relationship updates applied as a side effect), and the
// round closes with a roll-call vote. A single senator's backend failure
// degrades that contribution and never aborts the round.
func (e *Environment) RunDebate(ctx context.Context, topicInput any) (*DebateResult, error) {
	topic, err := core.NormalizeTopic(topicInput)
	if err != nil {
		return nil, err
	}
	if len(e.senators) == 0 {
		return nil, ErrEmptyRoster
	}

	for _, s := range e.senators {
		s.ResetRound()
	}

	result := &DebateResult{Topic: topic}
	for _, speaker := range e.senators {
		if _, err := speaker.DecideStance(ctx, topic, e.narrative); err != nil {
			e.logger.Warn("stance decision degraded to neutral", "senator", speaker.Name(), "error", err)
		}

		speech, err := speaker.GenerateSpeech(ctx, topic, e.narrative)
		if err != nil {
			e.logger.Warn("speech skipped", "senator", speaker.Name(), "error", err)
			continue
		}
		result.Speeches = append(result.Speeches, speech)

		for _, listener := range e.senators {
			if listener.Name() == speaker.Name() {
				continue
			}
			interjection, err := listener.GenerateInterjection(ctx, speaker.Name(), speech.Content, e.narrative)
			if err != nil {
				e.logger.Warn("interjection skipped", "senator", listener.Name(), "error", err)
				continue
			}
			if interjection == nil {
				continue
			}
			result.Interjections = append(result.Interjections, *interjection)
		}
	}

	vote, err := e.RunVote(ctx, topic.Text, false)
	if err != nil {
		return nil, err
	}
	result.Vote = vote

	e.history = append(e.history, result)
	e.logger.Info("debate round completed",
		"topic", topic.Text,
		"speeches", len(result.Speeches),
		"interjections", len(result.Interjections),
		"outcome", vote.Outcome,
	)
	return result, nil
}

// RunVote polls every senator in roster order and tallies the mapped votes
// (support maps to for, oppose to against, abstain to abstain). When
// deterministic is false each senator additionally has a small chance of
// abstaining regardless of its decision, modeling absence at the roll call;
// deterministic true disables that randomization for tests and replays.
// The outcome is PASSED iff for strictly exceeds against.
func (e *Environment) RunVote(ctx context.Context, topicText string, deterministic bool) (*VoteResult, error) {
	if len(e.senators) == 0 {
		return nil, ErrEmptyRoster
	}
	topic := core.Topic{Text: topicText}

	result := &VoteResult{Topic: topicText}
	for _, s := range e.senators {
		vote, reasoning, err := s.Vote(ctx, topic, e.narrative)
		if err != nil {
			e.logger.Warn("vote degraded to abstain", "senator", s.Name(), "error", err)
			vote, reasoning = core.VoteAbstain, "no decision reached"
		}
		if !deterministic && e.rng.Float64() < e.abstainChance {
			vote, reasoning = core.VoteAbstain, "absent from the chamber at the roll call"
		}

		result.Votes.tallyBucket(vote)
		result.VotingRecord = append(result.VotingRecord, VoteRecord{
			Senator:   s.Name(),
			Vote:      vote,
			Reasoning: reasoning,
		})
	}

	result.Total = len(result.VotingRecord)
	result.Outcome = decideOutcome(result.Votes)

	e.logger.Info("vote completed",
		"topic", topicText,
		"for", result.Votes.For,
		"against", result.Votes.Against,
		"abstain", result.Votes.Abstain,
		"outcome", result.Outcome,
	)
	return result, nil
}
