// Package senate implements the orchestrator that owns the roster of
// senators and the active topics, drives the debate phase (stance, speech
// and reactions in strict roster order) and the vote phase (roll call,
// bucket mapping, tallying, outcome), and records completed rounds for
// persistence collaborators.
//
// Execution is strictly sequential. The roster order is load-bearing: the
// order senators are initialized in is the order they speak, react and are
// polled in, and the order their vote records appear in.
package senate
