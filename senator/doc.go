// Package senator implements the individual deliberating agent: an immutable
// identity profile, a privately owned relationship memory, and the four
// model-backed operations the orchestrator drives it through each round
// (stance decision, speech, interjection, vote).
//
// Senators never talk to each other directly. Reactions flow through the
// orchestrator, and the only cross-agent state is the relationship score a
// senator keeps about the colleagues it has heard speak.
package senator
