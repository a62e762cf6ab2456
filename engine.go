package worddist

import "math"

// distance implements the top-level pipeline: canonicalize both operands,
// take the equality and empty-input fast paths, compute the token-count
// penalty and adjusted limit, run the three-rolling-row DP with per-row
// early termination, and apply the final over-limit checks.
func (c *Config) distance(a, b string, limit, normLimit float64) float64 {
	itemA := c.newItem(a)
	itemB := c.newItem(b)

	if runesEqual(itemA.text, itemB.text) {
		return 0
	}

	spacelessEquals := runesEqual(itemA.spacelessText, itemB.spacelessText)
	ctx := comparisonInfo{
		currEditLimit:     limit,
		currEditNormLimit: normLimit,
		spacelessEquals:   spacelessEquals,
	}

	if len(itemA.text) == 0 || len(itemB.text) == 0 {
		retVal := math.Max(itemA.normLength, itemB.normLength)
		return c.emptyInputResult(retVal, len(itemA.text), ctx)
	}

	delta := c.tokenDiffPenalty(itemA, itemB, spacelessEquals)

	limitsActive := limit > 0 || normLimit > 0
	var adj float64
	if limitsActive {
		adj = c.adjustedLimit(itemA.normLength, itemB.normLength, ctx)
		adj -= delta
		if adj < c.uniqueCharMinCost(itemA, itemB) {
			return math.Inf(1)
		}
	}

	rowPrev := newRow(itemB)
	rowCurr := newRow(itemB)
	rowNext := newRow(itemB)
	c.initFirstRow(rowCurr, itemB, ctx)

	for i := 0; i < len(itemA.text); i++ {
		rowMin := c.initFirstCell(rowNext, rowCurr, itemA, i, ctx)

		for j := 0; j < len(itemB.text); j++ {
			atTokenEdge := itemA.isTokenSep(i, c.tokenSep) || itemB.isTokenSep(j, c.tokenSep)

			var best cell
			best.setCostsAndCheckTokenEdge(rowCurr[j], ctx, atTokenEdge, c.perTokenLimit)
			best.incrementCosts(c.substCostAt(itemA, i, itemB, j))

			if isSwapped(itemA, i, itemB, j) {
				var cand cell
				cand.setCostsAndCheckTokenEdge(rowPrev[j-1], ctx, atTokenEdge, c.perTokenLimit)
				cand.incrementCosts(c.swapCostAt(itemA, i, itemB, j))
				best.setIfCostsLess(cand)
			}

			{
				var cand cell
				cand.setCostsAndCheckTokenEdge(rowNext[j], ctx, atTokenEdge, c.perTokenLimit)
				cand.incrementCosts(c.insDelCostAt(itemB, j, ctx))
				best.setIfCostsLess(cand)
			}

			{
				var cand cell
				cand.setCostsAndCheckTokenEdge(rowCurr[j+1], ctx, atTokenEdge, c.perTokenLimit)
				cand.incrementCosts(c.insDelCostAt(itemA, i, ctx))
				best.setIfCostsLess(cand)
			}

			best.tokenNormLength = c.tokenNormLengthUpdate(itemA, i, itemB, j, rowNext[j], rowCurr[j+1])

			rowNext[j+1] = best
			if atTokenEdge {
				rowNext[j+1].startNewToken()
			}
			if rowNext[j+1].cost < rowMin {
				rowMin = rowNext[j+1].cost
			}
		}

		rowPrev, rowCurr, rowNext = rowCurr, rowNext, rowPrev

		if limitsActive && rowMin > adj {
			return math.Inf(1)
		}
	}

	end := rowCurr[len(itemB.text)]
	if end.overTokenEditLimit(ctx, c.perTokenLimit) {
		return math.Inf(1)
	}
	if limitsActive && end.cost > adj {
		return math.Inf(1)
	}
	return end.cost + delta
}

// tokenNormLengthUpdate computes the new cell's tokenNormLength from the
// left neighbor rowNext[j] (L) and the cell above rowCurr[j+1] (A),
// dispatching on normType. This and adjustedLimit are the two sites that
// switch on normType; an unhandled case panics rather than silently
// picking a default, since a missing case here is a configuration bug
// Build should have already rejected.
func (c *Config) tokenNormLengthUpdate(itemA *item, i int, itemB *item, j int, left, above cell) float64 {
	deltaL := insDelOrDuplicate(itemB, j, c.duplicateCost, c.insDelCost)
	deltaA := insDelOrDuplicate(itemA, i, c.duplicateCost, c.insDelCost)

	switch c.normType {
	case NormMin:
		return math.Min(left.tokenNormLength+deltaL, above.tokenNormLength+deltaA)
	case NormFirst:
		if itemB.isTokenStart(j, c.tokenSep) {
			return above.tokenNormLength + deltaA
		}
		return left.tokenNormLength
	case NormMax:
		if !itemA.isTokenStart(i, c.tokenSep) {
			deltaL = 0
		}
		if i != 0 && !itemB.isTokenStart(j, c.tokenSep) {
			deltaA = 0
		}
		return math.Max(left.tokenNormLength+deltaL, above.tokenNormLength+deltaA)
	default:
		panic("worddist: unhandled NormType in tokenNormLengthUpdate")
	}
}

// insDelOrDuplicate returns duplicateCost if it.text[pos] duplicates its
// predecessor, else insDelCost.
func insDelOrDuplicate(it *item, pos int, duplicateCost, insDelCost float64) float64 {
	if it.duplicate(pos) {
		return duplicateCost
	}
	return insDelCost
}

// adjustedLimit converts the active limit(s) into a single absolute cost
// ceiling for per-row early termination, then widens it by
// insDelCost-swapCost when swaps are cheaper than ins/del: a swap can drop
// the row minimum below the previous row's, so naive per-row pruning would
// otherwise be unsound.
func (c *Config) adjustedLimit(l1, l2 float64, ctx comparisonInfo) float64 {
	var normEditMax float64
	if ctx.currEditNormLimit > 0 {
		normEditMax = ctx.currEditNormLimit * c.normType.pick(l1, l2)
	}

	var adj float64
	if ctx.currEditLimit > 0 && normEditMax > 0 {
		adj = math.Min(ctx.currEditLimit, normEditMax)
	} else {
		adj = math.Max(ctx.currEditLimit, normEditMax)
	}

	if c.swapCost < c.insDelCost {
		adj += c.insDelCost - c.swapCost
	}
	return adj
}

// emptyInputResult resolves the distance when at least one operand
// canonicalized to the empty sequence. retVal is the longer of the two
// normalized lengths; firstLen is len(itemA.text).
func (c *Config) emptyInputResult(retVal float64, firstLen int, ctx comparisonInfo) float64 {
	if retVal == 0 {
		return 0
	}
	if ctx.currEditLimit > 0 && retVal > ctx.currEditLimit {
		return math.Inf(1)
	}
	if ctx.currEditNormLimit > 0 {
		switch {
		case c.normType == NormMin:
			return math.Inf(1)
		case c.normType == NormFirst && firstLen == 0:
			return math.Inf(1)
		case ctx.currEditNormLimit < 1:
			return math.Inf(1)
		}
	}
	return retVal
}

// runesEqual reports whether two rune slices hold the same sequence of
// scalars.
func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
