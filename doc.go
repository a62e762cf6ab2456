// Package worddist computes a weighted, token-aware edit distance between
// two strings. It generalizes Damerau–Levenshtein distance with distinct
// costs for insertion/deletion, substitution, adjacent transposition, and
// duplicate-character insertion/deletion, layered with penalties tied to
// token structure (token-initial position, token-separator crossing,
// token-count changes, spaceless equivalence), and supports two kinds of
// early-termination limits: an absolute cost ceiling and a length-normalized
// ("percentage") ceiling, each optionally enforced per token as well as
// globally.
//
// Build a Config with NewBuilder, then call Config.Distance or
// Config.DistanceWithLimits. A Config is immutable once built and safe for
// concurrent use.
package worddist
