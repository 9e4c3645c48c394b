// Package model defines the text-generation backend abstraction used by
// senators and event generators, plus an in-memory mock for tests. Concrete
// provider adapters live in the subpackages (openai, anthropic, gemini).
//
// The Model interface is intentionally a single blocking, context-aware call:
// the deliberation engine drives agents strictly sequentially and never
// consumes partial output, so the call boundary itself is the suspension
// point. Every caller must treat the returned error as an expected outcome;
// backends can fail or stall arbitrarily.
package model
