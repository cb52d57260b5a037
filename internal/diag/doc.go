// Package diag defines the diagnostic model shared by the lexer, the lint
// engine, and the fix engine.
//
// Diagnostic is the central record. It carries the reporting rule name, a
// severity, a message, the primary span in the original source, a resolved
// 1-based line/column pair, and zero or more text edits proposed by a
// fixable rule. Internal diagnostics are engine-originated notices
// (deprecations, dropped fixes); they use the sentinel position 0:0, which
// makes them sort ahead of every rule finding.
//
// Producers emit through a Reporter so they stay decoupled from storage.
// BagReporter aggregates into a Bag, which supports deterministic sorting
// and filtering. Package diag performs no IO and no formatting; rendering
// lives in internal/diagfmt and edit application in internal/fix.
package diag
