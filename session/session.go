package session

import (
	"errors"
	"time"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/narrative"
	"github.com/hupe1980/curia/senate"
	"github.com/hupe1980/curia/senator"
)

// ErrNotFound is returned when a snapshot id is unknown to a store.
var ErrNotFound = errors.New("session: snapshot not found")

// SenatorState is one senator's persistable state: the immutable profile and
// the relationship score table.
type SenatorState struct {
	Profile       senator.Profile    `json:"profile"`
	Relationships map[string]float64 `json:"relationships"`
}

// Snapshot is the serialized form of an Environment at a point in time. It
// is built purely through the Environment's accessors so stores never need
// to know internal layout.
type Snapshot struct {
	ID       string                 `json:"id"`
	SavedAt  time.Time              `json:"saved_at"`
	Topics   []core.Topic           `json:"topics"`
	Senators []SenatorState         `json:"senators"`
	Events   []narrative.Event      `json:"events"`
	History  []*senate.DebateResult `json:"history"`
}

// Capture builds a snapshot of the environment with a fresh id.
func Capture(env *senate.Environment) *Snapshot {
	snap := &Snapshot{
		ID:      core.NewID(),
		SavedAt: time.Now().UTC(),
		Topics:  env.Topics(),
		Events:  env.Narrative().Events(),
		History: env.History(),
	}
	for _, s := range env.Senators() {
		snap.Senators = append(snap.Senators, SenatorState{
			Profile:       s.Profile(),
			Relationships: s.Memory().Snapshot(),
		})
	}
	return snap
}

// Clone returns a deep copy so store internals can never be mutated through
// a snapshot handed out earlier.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		ID:      s.ID,
		SavedAt: s.SavedAt,
		Topics:  append([]core.Topic(nil), s.Topics...),
		Events:  append([]narrative.Event(nil), s.Events...),
		History: append([]*senate.DebateResult(nil), s.History...),
	}
	for _, st := range s.Senators {
		rel := make(map[string]float64, len(st.Relationships))
		for k, v := range st.Relationships {
			rel[k] = v
		}
		out.Senators = append(out.Senators, SenatorState{Profile: st.Profile, Relationships: rel})
	}
	return out
}

// Store persists snapshots. Implementations must be safe for concurrent use.
type Store interface {
	Save(snap *Snapshot) error
	Load(id string) (*Snapshot, error)
	List() ([]string, error)
}
