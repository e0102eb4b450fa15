// Package varcheck verifies that a variant HTML document preserves the
// semantic content of a base HTML document after layout or structural
// edits. It extracts a normalized representation of each document
// (visible text nodes, element ids, anchor href targets) and reports
// any divergence.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., html/,
// goquery/).
package varcheck
