package core

// Stance is a senator's position on a topic, decided once per round and
// cached for the speech and vote steps that follow.
type Stance string

const (
	// StanceSupport indicates the senator argues for the topic.
	StanceSupport Stance = "support"
	// StanceOppose indicates the senator argues against the topic.
	StanceOppose Stance = "oppose"
	// StanceNeutral is the safe default when no position could be decided.
	StanceNeutral Stance = "neutral"
)

// VoteValue is the raw decision vocabulary a senator emits when polled.
// It is distinct from the tally buckets (for/against/abstain) so downstream
// consumers can tell raw intent apart from the mapped bucket.
type VoteValue string

const (
	// VoteSupport is a vote in favor; it maps to the "for" tally bucket.
	VoteSupport VoteValue = "support"
	// VoteOppose is a vote against; it maps to the "against" tally bucket.
	VoteOppose VoteValue = "oppose"
	// VoteAbstain is a non-vote; it maps to the "abstain" tally bucket and
	// is also the degradation default when a senator's backend call fails.
	VoteAbstain VoteValue = "abstain"
)
