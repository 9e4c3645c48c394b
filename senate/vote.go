package senate

import "github.com/hupe1980/curia/core"

// Outcome is the final disposition of a vote.
type Outcome string

const (
	// OutcomePassed means the measure carried: for strictly exceeds against.
	OutcomePassed Outcome = "PASSED"
	// OutcomeRejected covers everything else, ties included.
	OutcomeRejected Outcome = "REJECTED"
)

// Tally holds the mapped vote buckets. The bucket vocabulary (for/against/
// abstain) is distinct from the raw vote vocabulary senators emit.
type Tally struct {
	For     int `json:"for"`
	Against int `json:"against"`
	Abstain int `json:"abstain"`
}

// Sum returns the total number of tallied votes.
func (t Tally) Sum() int { return t.For + t.Against + t.Abstain }

// VoteRecord preserves one senator's raw decision. Vote carries the
// originally decided value (support/oppose/abstain), never the bucket name,
// so downstream consumers can tell raw intent from the tally mapping.
type VoteRecord struct {
	Senator   string         `json:"senator"`
	Vote      core.VoteValue `json:"vote"`
	Reasoning string         `json:"reasoning,omitempty"`
}

// VoteResult is the aggregated outcome of one roll call.
type VoteResult struct {
	Topic        string       `json:"topic"`
	Votes        Tally        `json:"votes"`
	Total        int          `json:"total"` // senators actually polled
	Outcome      Outcome      `json:"outcome"`
	VotingRecord []VoteRecord `json:"voting_record"`
}

// tallyBucket maps the raw vote vocabulary into the tally bucket.
func (t *Tally) tallyBucket(v core.VoteValue) {
	switch v {
	case core.VoteSupport:
		t.For++
	case core.VoteOppose:
		t.Against++
	default:
		t.Abstain++
	}
}

// decideOutcome applies the outcome rule: PASSED iff for strictly exceeds
// against. Ties reject; abstentions carry no weight.
func decideOutcome(t Tally) Outcome {
	if t.For > t.Against {
		return OutcomePassed
	}
	return OutcomeRejected
}
