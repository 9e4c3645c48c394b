// Package narrative holds the world-state flavor the deliberation engine
// feeds its agents: an append-only log of immutable events plus a derived
// frequency table of recurring named entities. Events are appended by the
// generators and read back by senators and the orchestrator for prompt
// context; nothing ever mutates or deletes a logged event within a session.
package narrative
