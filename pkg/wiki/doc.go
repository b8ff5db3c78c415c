// Package wiki implements the page store operations for kpalwiki: pure
// store transforms (create, edit, rename, delete, duplicate, merge),
// substring search, JSON export/import, and a Service that applies a
// transform and then persists the resulting snapshot through an injected
// Storage.
//
// Transforms never mutate their input store; each returns a fresh
// snapshot so callers keep the prior value when an operation fails.
package wiki
