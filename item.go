package worddist

import (
	"strings"
	"unicode"
)

// item holds the canonicalized form of one distance operand plus the
// derived data the DP loop and its cost helpers consult on every cell:
// which scalars are digits, the token-separator-stripped text used for the
// spaceless-equality fast path, the set of distinct scalars (for the
// admissible lower-bound prune), and the token/length bookkeeping used by
// the per-token limit and normalization machinery.
type item struct {
	text          []rune
	isDigit       []bool
	spacelessText []rune
	uniqueScalars map[rune]struct{}
	tokenCount    int
	normLength    float64
}

// newItem canonicalizes s (via cfg.canonicalize) and derives every field
// item's cost helpers need. An empty (or all-separator) input yields an
// empty item: text.len == 0, tokenCount == 0, normLength == 0.
func (c *Config) newItem(s string) *item {
	text := []rune(c.canonicalize(s))

	isDigit := make([]bool, len(text))
	spaceless := make([]rune, 0, len(text))
	unique := make(map[rune]struct{}, len(text))
	var tokenCount int
	if len(text) > 0 {
		tokenCount = 1
	}
	var normLength float64
	for i, r := range text {
		isDigit[i] = unicode.IsDigit(r)
		unique[r] = struct{}{}
		dup := i > 0 && text[i] == text[i-1]
		if dup {
			normLength += c.duplicateCost
		} else {
			normLength += c.insDelCost
		}
		if r == c.tokenSep {
			tokenCount++
			continue
		}
		spaceless = append(spaceless, r)
	}

	return &item{
		text:          text,
		isDigit:       isDigit,
		spacelessText: spaceless,
		uniqueScalars: unique,
		tokenCount:    tokenCount,
		normLength:    normLength,
	}
}

// canonicalize tokenizes s with the configured tokenizer and rejoins the
// tokens with tokenSep, so downstream comparisons see a single canonical
// separator regardless of the original whitespace/punctuation run that
// produced it. The result never begins or ends with tokenSep.
func (c *Config) canonicalize(s string) string {
	tokens := c.tokenizer(s)
	if len(tokens) == 0 {
		return ""
	}
	joined := strings.Join(tokens, string(c.tokenSep))
	return strings.Trim(joined, string(c.tokenSep))
}

// duplicate reports whether the scalar at i equals the scalar at i-1;
// index 0 is never a duplicate.
func (it *item) duplicate(i int) bool {
	return i > 0 && it.text[i] == it.text[i-1]
}

// isTokenSep reports whether the scalar at i is the token separator.
func (it *item) isTokenSep(i int, tokenSep rune) bool {
	return it.text[i] == tokenSep
}

// isTokenStart reports whether position i begins a token: it is either the
// first scalar of the string or immediately follows a separator.
func (it *item) isTokenStart(i int, tokenSep rune) bool {
	return i == 0 || it.text[i-1] == tokenSep
}

// isSwapped reports whether the two-scalar window ending at (i, j) is a
// transposition: a.text[i-1..i] is the reverse of b.text[j-1..j]. Indices
// below 1 cannot form such a window and yield false rather than a panic.
func isSwapped(a *item, i int, b *item, j int) bool {
	if i < 1 || j < 1 {
		return false
	}
	return a.text[i-1] == b.text[j] && a.text[i] == b.text[j-1]
}

// uniqueCharMinCost returns an admissible lower bound on the distance
// between a and b derived from the multisets of distinct scalars each
// contains: d is the difference in set sizes, o is the size of the
// intersection, m is the smaller set size. Every scalar present in one set
// but not the other needs at least one insDelCost; every scalar shared in
// size but not identity needs at least one substCost.
func (c *Config) uniqueCharMinCost(a, b *item) float64 {
	overlap := 0
	for r := range a.uniqueScalars {
		if _, ok := b.uniqueScalars[r]; ok {
			overlap++
		}
	}
	na, nb := len(a.uniqueScalars), len(b.uniqueScalars)
	d := na - nb
	if d < 0 {
		d = -d
	}
	m := na
	if nb < m {
		m = nb
	}
	return float64(d)*c.insDelCost + float64(m-overlap)*c.substCost
}

// tokenDiffPenalty charges tokenDeltaPenalty for every token present in one
// operand's token count but not the other's; zero when the two are
// spacelessly equal, since token-count drift caused only by separator
// placement is not a structural difference worth penalizing twice.
func (c *Config) tokenDiffPenalty(a, b *item, spacelessEquals bool) float64 {
	if spacelessEquals {
		return 0
	}
	delta := a.tokenCount - b.tokenCount
	if delta < 0 {
		delta = -delta
	}
	return float64(delta) * c.tokenDeltaPenalty
}

// substCostAt returns the cost of substituting a.text[i] for b.text[j]: 0
// if they're equal, otherwise substCost plus tokenInitialPenalty if either
// side starts a token, tokenSepSubstPenalty if either side is the token
// separator, and digitChangePenalty if both sides are decimal digits.
func (c *Config) substCostAt(a *item, i int, b *item, j int) float64 {
	if a.text[i] == b.text[j] {
		return 0
	}
	cost := c.substCost
	if a.isTokenStart(i, c.tokenSep) || b.isTokenStart(j, c.tokenSep) {
		cost += c.tokenInitialPenalty
	}
	if a.isTokenSep(i, c.tokenSep) || b.isTokenSep(j, c.tokenSep) {
		cost += c.tokenSepSubstPenalty
	}
	if a.isDigit[i] && b.isDigit[j] {
		cost += c.digitChangePenalty
	}
	return cost
}

// swapCostAt returns the cost of transposing the two-scalar window ending
// at (i, j), including digitChangePenalty when both endpoints are digits.
func (c *Config) swapCostAt(a *item, i int, b *item, j int) float64 {
	cost := c.swapCost
	if a.isDigit[i] && b.isDigit[j] {
		cost += c.digitChangePenalty
	}
	return cost
}

// insDelCostAt returns the cost of inserting/deleting it.text[i]. When ctx
// reports the two operands as spacelessly equal and the scalar is the
// token separator, the discounted spaceOnlyCost applies instead of the
// usual duplicate/insDel cost, and no further penalties are added.
// Otherwise the base cost is duplicateCost if the scalar duplicates its
// predecessor, else insDelCost, plus tokenInitialPenalty at a token start
// and digitChangePenalty on a digit.
func (c *Config) insDelCostAt(it *item, i int, ctx comparisonInfo) float64 {
	if ctx.spacelessEquals && it.isTokenSep(i, c.tokenSep) {
		return c.spaceOnlyCost
	}
	var cost float64
	if it.duplicate(i) {
		cost = c.duplicateCost
	} else {
		cost = c.insDelCost
	}
	if it.isTokenStart(i, c.tokenSep) {
		cost += c.tokenInitialPenalty
	}
	if it.isDigit[i] {
		cost += c.digitChangePenalty
	}
	return cost
}
