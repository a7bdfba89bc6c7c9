// Package analysis implements the rule-based review analysis engine:
// tokenization, weighted-lexicon sentiment scoring with negation handling,
// phrase/keyword theme detection, and cross-record aggregation.
//
// All functions are pure and safe for concurrent use; the lexicon and
// taxonomy tables are immutable package-level configuration.
package analysis
