// Package core provides the foundational domain types shared by the curia
// deliberation engine. It defines:
//
//   - Topic (the canonical debate subject) and the boundary normalization
//     that converts mixed-shape topic inputs into it
//   - Stance and VoteValue vocabularies used by senators
//   - Clock (the read-only simulation calendar collaborator)
//   - ID generation for events and sessions
//
// The package intentionally keeps implementation concerns (orchestration,
// model backends, persistence) out of scope, exposing small types that the
// other packages compose.
package core
