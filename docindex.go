// Package docindex builds portable search indexes for client-side fuzzy
// search. It derives plain text from markup, assigns stable section anchors,
// resolves fields from nested content trees, segments long-form content into
// bounded chunks and aggregates everything into a single JSON index document.
//
// This package contains domain types, interfaces and the pure extraction
// algorithms, following Ben Johnson's Standard Package Layout.
// Implementations that depend on third-party libraries live in
// subdirectories named after their primary dependency (e.g., goquery/,
// markdown/, yaml/).
package docindex
