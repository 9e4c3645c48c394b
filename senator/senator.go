package senator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/logging"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
)

// InterjectionType classifies a reaction to another senator's speech.
type InterjectionType string

const (
	// InterjectionAcclamation is vocal agreement with the speaker.
	InterjectionAcclamation InterjectionType = "acclamation"
	// InterjectionObjection is vocal disagreement with the speaker.
	InterjectionObjection InterjectionType = "objection"
	// InterjectionProcedural invokes rules of order rather than substance.
	InterjectionProcedural InterjectionType = "procedural"
	// InterjectionEmotional is an outburst driven by the relationship.
	InterjectionEmotional InterjectionType = "emotional"
)

// Speech is one senator's address on a topic. Content is the canonical
// English rendering; no other language field is guaranteed.
type Speech struct {
	Senator string      `json:"senator"`
	Faction string      `json:"faction"`
	Stance  core.Stance `json:"stance"`
	Content string      `json:"content"`
}

// Interjection is a reaction by one senator to another's speech.
type Interjection struct {
	Senator   string           `json:"senator"` // who interjects
	Target    string           `json:"target"`  // whose speech drew it
	Type      InterjectionType `json:"type"`
	Timing    string           `json:"timing"` // beginning, middle, end
	Content   string           `json:"content"`
	Intensity float64          `json:"intensity"` // 0.5 .. 1.0
}

// Options configure a Senator.
type Options struct {
	Logger logging.Logger
	Rand   *rand.Rand
}

// Senator is one deliberating agent: a profile, a privately owned
// relationship memory, a reference to the shared text-generation backend,
// and the per-round stance cache.
type Senator struct {
	profile Profile
	backend model.Model
	memory  *RelationshipMemory
	logger  logging.Logger
	rng     *rand.Rand

	currentStance core.Stance
	stanceTopic   string
}

// New constructs a Senator bound to a backend. The profile must be valid.
func New(profile Profile, backend model.Model, optFns ...func(o *Options)) (*Senator, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, fmt.Errorf("senator %q: nil backend", profile.Name)
	}
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Senator{
		profile: profile,
		backend: backend,
		memory:  NewRelationshipMemory(),
		logger:  opts.Logger,
		rng:     opts.Rand,
	}, nil
}

// Profile returns the senator's immutable identity.
func (s *Senator) Profile() Profile { return s.profile }

// Name returns the senator's unique name.
func (s *Senator) Name() string { return s.profile.Name }

// Memory returns the senator's relationship memory. Exposed so the
// orchestrator can route reaction side effects and persistence can snapshot
// scores; ownership stays with the senator.
func (s *Senator) Memory() *RelationshipMemory { return s.memory }

// CurrentStance returns the stance cached for the round, or StanceNeutral if
// none has been decided yet.
func (s *Senator) CurrentStance() core.Stance {
	if s.currentStance == "" {
		return core.StanceNeutral
	}
	return s.currentStance
}

// ResetRound clears per-round transient state. The orchestrator calls this
// when a new topic opens.
func (s *Senator) ResetRound() {
	s.currentStance = ""
	s.stanceTopic = ""
}

// DecideStance queries the backend once per topic and caches the result for
// the rest of the round. On backend failure it caches and returns
// StanceNeutral along with the error so the orchestrator can log and move on.
func (s *Senator) DecideStance(ctx context.Context, topic core.Topic, nc *narrative.Context) (core.Stance, error) {
	if s.stanceTopic == topic.Text && s.currentStance != "" {
		return s.currentStance, nil
	}

	resp, err := s.backend.Generate(ctx, model.Request{
		System:      s.systemPrompt(),
		Prompt:      stancePrompt(s.profile, topic, nc),
		Temperature: 0.7,
		MaxTokens:   200,
	})
	if err != nil {
		s.currentStance = core.StanceNeutral
		s.stanceTopic = topic.Text
		return core.StanceNeutral, fmt.Errorf("decide stance for %q: %w", s.profile.Name, err)
	}

	s.currentStance = parseStance(resp.Text)
	s.stanceTopic = topic.Text
	s.logger.Debug("stance decided", "senator", s.profile.Name, "topic", topic.Text, "stance", s.currentStance)
	return s.currentStance, nil
}

// GenerateSpeech produces the senator's address on the topic, argued from
// the cached stance.
func (s *Senator) GenerateSpeech(ctx context.Context, topic core.Topic, nc *narrative.Context) (Speech, error) {
	stance := s.CurrentStance()
	resp, err := s.backend.Generate(ctx, model.Request{
		System:      s.systemPrompt(),
		Prompt:      speechPrompt(s.profile, topic, stance, nc),
		Temperature: 0.8,
		MaxTokens:   600,
	})
	if err != nil {
		return Speech{}, fmt.Errorf("generate speech for %q: %w", s.profile.Name, err)
	}
	return Speech{
		Senator: s.profile.Name,
		Faction: s.profile.Faction,
		Stance:  stance,
		Content: strings.TrimSpace(resp.Text),
	}, nil
}

// GenerateInterjection reacts to another senator's speech. It first decides
// whether to interject at all, as a function of the relationship score
// toward the speaker (unseen speakers read as 0). A nil Interjection with a
// nil error means the senator stayed silent. As a side effect a delivered
// interjection adjusts this senator's opinion of the speaker.
func (s *Senator) GenerateInterjection(ctx context.Context, speakerName, speechContent string, nc *narrative.Context) (*Interjection, error) {
	if speakerName == s.profile.Name {
		return nil, nil
	}

	score := s.memory.Score(speakerName)
	if !s.shouldInterject(score) {
		return nil, nil
	}

	kind := s.interjectionType(score)
	timing := s.interjectionTiming()
	intensity := interjectionIntensity(score)

	resp, err := s.backend.Generate(ctx, model.Request{
		System:      s.systemPrompt(),
		Prompt:      interjectionPrompt(s.profile, speakerName, speechContent, kind),
		Temperature: 0.9,
		MaxTokens:   120,
	})
	if err != nil {
		return nil, fmt.Errorf("generate interjection for %q: %w", s.profile.Name, err)
	}

	s.memory.Update(speakerName, reactionDelta(kind, intensity, score))

	return &Interjection{
		Senator:   s.profile.Name,
		Target:    speakerName,
		Type:      kind,
		Timing:    timing,
		Content:   strings.TrimSpace(resp.Text),
		Intensity: intensity,
	}, nil
}

// Vote polls the senator for its final vote and reasoning. On backend
// failure it returns VoteAbstain with the error so the orchestrator can
// record a safe default and keep the roll call going.
func (s *Senator) Vote(ctx context.Context, topic core.Topic, nc *narrative.Context) (core.VoteValue, string, error) {
	resp, err := s.backend.Generate(ctx, model.Request{
		System:      s.systemPrompt(),
		Prompt:      votePrompt(s.profile, topic, s.CurrentStance(), nc),
		Temperature: 0.5,
		MaxTokens:   250,
	})
	if err != nil {
		return core.VoteAbstain, "", fmt.Errorf("vote for %q: %w", s.profile.Name, err)
	}

	vote, ok := parseVote(resp.Text)
	if !ok {
		// Unparseable output falls back to the decided stance.
		switch s.CurrentStance() {
		case core.StanceSupport:
			vote = core.VoteSupport
		case core.StanceOppose:
			vote = core.VoteOppose
		default:
			vote = core.VoteAbstain
		}
	}
	return vote, strings.TrimSpace(resp.Text), nil
}

// shouldInterject decides silence vs reaction. Strong feelings either way
// make a reaction more likely; a neutral stranger rarely interrupts.
func (s *Senator) shouldInterject(score float64) bool {
	chance := 0.25 + math.Min(math.Abs(score), 10)*0.05
	return s.rng.Float64() < chance
}

func (s *Senator) interjectionType(score float64) InterjectionType {
	switch {
	case score >= 2:
		return InterjectionAcclamation
	case score <= -2:
		return InterjectionObjection
	default:
		if s.rng.Float64() < 0.5 {
			return InterjectionProcedural
		}
		return InterjectionEmotional
	}
}

func (s *Senator) interjectionTiming() string {
	switch s.rng.Intn(3) {
	case 0:
		return "beginning"
	case 1:
		return "middle"
	default:
		return "end"
	}
}

// interjectionIntensity maps |score| in [0,10] onto [0.5,1.0].
func interjectionIntensity(score float64) float64 {
	return 0.5 + math.Min(math.Abs(score), 10)/20
}

// reactionDelta is the opinion shift a delivered interjection causes in the
// interjector toward the speaker.
func reactionDelta(kind InterjectionType, intensity, score float64) float64 {
	switch kind {
	case InterjectionAcclamation:
		return 0.5 * intensity
	case InterjectionObjection:
		return -0.5 * intensity
	case InterjectionEmotional:
		if score < 0 {
			return -0.2 * intensity
		}
		return 0.2 * intensity
	default:
		return 0
	}
}

// parseStance extracts a stance from free model output by earliest keyword.
func parseStance(text string) core.Stance {
	lower := strings.ToLower(text)
	support := earliestIndex(lower, "support", "favor", "in favour")
	oppose := earliestIndex(lower, "oppose", "against", "reject")
	switch {
	case support >= 0 && (oppose < 0 || support < oppose):
		return core.StanceSupport
	case oppose >= 0:
		return core.StanceOppose
	default:
		return core.StanceNeutral
	}
}

// parseVote extracts a vote value from free model output by earliest keyword.
func parseVote(text string) (core.VoteValue, bool) {
	lower := strings.ToLower(text)
	type candidate struct {
		vote core.VoteValue
		pos  int
	}
	candidates := []candidate{
		{core.VoteSupport, earliestIndex(lower, "support", "aye", "in favour", "in favor")},
		{core.VoteOppose, earliestIndex(lower, "oppose", "nay", "against")},
		{core.VoteAbstain, earliestIndex(lower, "abstain")},
	}
	best := candidate{pos: -1}
	for _, c := range candidates {
		if c.pos >= 0 && (best.pos < 0 || c.pos < best.pos) {
			best = c
		}
	}
	if best.pos < 0 {
		return "", false
	}
	return best.vote, true
}

func earliestIndex(text string, keywords ...string) int {
	best := -1
	for _, kw := range keywords {
		if i := strings.Index(text, kw); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}
