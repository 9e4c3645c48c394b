// Package generator produces the narrative events the deliberation engine
// feeds its agents. Each implementation covers one thematic category family
// (military, religious, political), owns the category tags it may emit, and
// turns the current simulation date plus recent narrative context into prose
// via the text-generation backend.
//
// Generation is strictly best-effort: a backend failure or malformed output
// yields fewer (possibly zero) events, never an error, so a broken backend
// can never abort a simulation tick.
package generator
