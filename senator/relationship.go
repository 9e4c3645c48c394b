package senator

// RelationshipMemory is a senator's private store of signed affinity scores
// toward named colleagues. Scores are additive and unbounded; a name that
// was never updated reads as 0 rather than failing. Only the owning senator
// mutates it, though other senators' reactions reach the owner's Update
// entry point through the orchestrator.
type RelationshipMemory struct {
	scores map[string]float64
}

// NewRelationshipMemory creates an empty relationship memory.
func NewRelationshipMemory() *RelationshipMemory {
	return &RelationshipMemory{scores: make(map[string]float64)}
}

// Score returns the current score toward name, defaulting to 0 for names
// never seen. Lookup never fails; this default is load-bearing for the
// should-interject decision on first encounters.
func (m *RelationshipMemory) Score(name string) float64 {
	return m.scores[name]
}

// Update adds delta to the score toward name (previous value 0 if unseen)
// and returns the new score. No bounds are enforced.
func (m *RelationshipMemory) Update(name string, delta float64) float64 {
	m.scores[name] += delta
	return m.scores[name]
}

// Snapshot returns a copy of all scores, for persistence collaborators.
func (m *RelationshipMemory) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(m.scores))
	for k, v := range m.scores {
		out[k] = v
	}
	return out
}

// Restore replaces the score table with the given snapshot. Used when a
// persisted session is reconstructed.
func (m *RelationshipMemory) Restore(scores map[string]float64) {
	m.scores = make(map[string]float64, len(scores))
	for k, v := range scores {
		m.scores[k] = v
	}
}
