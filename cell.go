package worddist

import "math"

// comparisonInfo is the small per-call record threaded through every
// cost-evaluation site during one distance computation: the active
// absolute and normalized limits (0 meaning "inactive") and whether the
// two operands are spacelessly equal.
type comparisonInfo struct {
	currEditLimit     float64
	currEditNormLimit float64
	spacelessEquals   bool
}

// cell is one entry of a DP row: the total path cost, the cost accumulated
// since entering the current token, and the current token's normalized
// length up to this cell. A cost of +Inf is a sentinel meaning "over
// limit"; arithmetic on it stays +Inf, which keeps the recurrence uniform.
type cell struct {
	cost            float64
	tokenCost       float64
	tokenNormLength float64
}

// setCosts copies cost and tokenCost from other, leaving tokenNormLength
// untouched — the caller sets that separately via the tokenNormLength
// update rule.
func (c *cell) setCosts(other cell) {
	c.cost = other.cost
	c.tokenCost = other.tokenCost
}

// overTokenEditLimit reports whether this cell's accumulated token cost
// has exceeded the per-token budget. It is always false when perTokenLimit
// is disabled or the operands are spacelessly equal.
func (c *cell) overTokenEditLimit(ctx comparisonInfo, perTokenLimit bool) bool {
	if !perTokenLimit || ctx.spacelessEquals {
		return false
	}
	if ctx.currEditLimit > 0 && c.tokenCost > ctx.currEditLimit {
		return true
	}
	if ctx.currEditNormLimit > 0 && c.tokenCost > c.tokenNormLength*ctx.currEditNormLimit {
		return true
	}
	return false
}

// setCostsAndCheckTokenEdge copies cost and tokenCost from other, then —
// if atTokenEdge and perTokenLimit and the operands are not spacelessly
// equal and other already exceeded its per-token budget — poisons cost to
// +Inf. This is the sole place the per-token limit is enforced as a hard
// gate inside the DP: the instant a transition crosses a token boundary
// out of an over-budget predecessor, every descendant of that transition
// is dominated by +Inf.
func (c *cell) setCostsAndCheckTokenEdge(other cell, ctx comparisonInfo, atTokenEdge, perTokenLimit bool) {
	c.setCosts(other)
	if atTokenEdge && perTokenLimit && !ctx.spacelessEquals && other.overTokenEditLimit(ctx, perTokenLimit) {
		c.cost = math.Inf(1)
	}
}

// incrementCosts adds delta to both cost and tokenCost.
func (c *cell) incrementCosts(delta float64) {
	c.cost += delta
	c.tokenCost += delta
}

// startNewToken zeroes tokenCost and tokenNormLength, marking entry into a
// fresh token.
func (c *cell) startNewToken() {
	c.tokenCost = 0
	c.tokenNormLength = 0
}

// setIfCostsLess replaces c with other when other.cost < c.cost; ties keep
// c, which is what gives the DP's candidate ordering (match/substitute,
// swap, insert, delete) its tie-break priority.
func (c *cell) setIfCostsLess(other cell) {
	if other.cost < c.cost {
		*c = other
	}
}
