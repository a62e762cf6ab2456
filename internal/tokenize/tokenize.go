// Package tokenize builds the default tokenizer used by worddist.Config
// when no custom tokenizer is injected: it splits on a configurable regexp
// of Unicode separator/punctuation/symbol runs and, unless disabled, folds
// case with a locale-aware caser instead of a blind byte/rune lowercase.
//
// Grounded on the reconciliation service's normalize.go pipeline (trim,
// lowercase, split on a fixed regexp) but replaces strings.ToLower with
// golang.org/x/text/cases, since Unicode case folding is locale-sensitive.
package tokenize

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSplit is the split expression used when a Config's builder does
// not set one: runs of Unicode separator, punctuation, or symbol runes.
var DefaultSplit = regexp.MustCompile(`[\p{Z}\p{P}\p{S}]+`)

// Func splits an input string into an ordered sequence of tokens.
type Func func(s string) []string

// Default builds the tokenizer described by spec section 4.1: it trims a
// leading/trailing run matched by split from the input, splits the
// remainder on split, and — when locale is non-nil — lowercases each
// resulting token with a caser bound to that locale before returning it.
// A nil locale disables lowercasing entirely.
func Default(split *regexp.Regexp, locale *language.Tag) Func {
	if split == nil {
		split = DefaultSplit
	}

	var caser cases.Caser
	lowercase := locale != nil
	if lowercase {
		caser = cases.Lower(*locale)
	}

	return func(s string) []string {
		s = trimEdges(split, s)
		if s == "" {
			return nil
		}

		parts := split.Split(s, -1)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p == "" {
				continue
			}
			if lowercase {
				p = caser.String(p)
			}
			out = append(out, p)
		}
		return out
	}
}

// trimEdges removes a single leading and a single trailing match of split
// from s. Because split is expected to match maximal runs (the default
// uses a trailing "+"), one match per edge is sufficient to strip an
// arbitrarily long run of separators.
func trimEdges(split *regexp.Regexp, s string) string {
	if loc := split.FindStringIndex(s); loc != nil && loc[0] == 0 {
		s = s[loc[1]:]
	}
	if matches := split.FindAllStringIndex(s, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		if last[1] == len(s) {
			s = s[:last[0]]
		}
	}
	return s
}
