// Package session provides the serialized form of a deliberation session
// (roster, relationship scores, topics, narrative log, debate history) that
// persistence collaborators save and restore, together with a Store
// interface and a volatile in-memory implementation. A SQLite-backed store
// lives in the sqlite subpackage.
package session
