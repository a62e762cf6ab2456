package worddist

// row is a fixed-length vector of 1+len(item.text) cells. Three rows —
// previous, current, next — rotate through the DP window; a transposition
// candidate reads from the row two iterations back.
type row []cell

// newRow allocates a zero-valued row sized for item2's canonical text.
func newRow(item2 *item) row {
	return make(row, len(item2.text)+1)
}

// initFirstRow fills r as the DP's zeroth row: r[0] is the zero cell
// (already the case for a freshly allocated row); r[i] for i = 1..len is
// built by charging item2's insDelCost for consuming its (i-1)th scalar,
// starting a new token whenever that scalar was the separator.
func (c *Config) initFirstRow(r row, item2 *item, ctx comparisonInfo) {
	for i := 1; i < len(r); i++ {
		r[i].setCosts(r[i-1])
		r[i].incrementCosts(c.insDelCostAt(item2, i-1, ctx))
		if item2.isTokenSep(i-1, c.tokenSep) {
			r[i].startNewToken()
		}
	}
}

// initFirstCell builds the leading cell of the next row from the leading
// cell of rowAbove, charging item1's insDelCost for consuming its i-th
// scalar. It returns the resulting cost, the seed value for that row's
// running minimum.
func (c *Config) initFirstCell(next row, rowAbove row, item1 *item, i int, ctx comparisonInfo) float64 {
	next[0].setCosts(rowAbove[0])
	next[0].incrementCosts(c.insDelCostAt(item1, i, ctx))
	if item1.isTokenSep(i, c.tokenSep) {
		next[0].startNewToken()
	}
	return next[0].cost
}
