package worddist

import (
	"fmt"
	"regexp"

	"golang.org/x/text/language"

	"worddist/internal/tokenize"
)

// Tokenizer maps an input string to an ordered sequence of token strings.
// The engine joins the result with the configured token separator and
// never re-examines the raw input after this call.
type Tokenizer func(s string) []string

// Config is an immutable bundle of costs, penalties, limits, and the
// tokenizer/normalization strategy used by Distance and DistanceWithLimits.
// Build one with NewBuilder; a Config has no exported mutators and is safe
// for concurrent use once built.
type Config struct {
	insDelCost           float64
	substCost            float64
	swapCost             float64
	duplicateCost        float64
	digitChangePenalty   float64
	tokenInitialPenalty  float64
	tokenSepSubstPenalty float64
	tokenDeltaPenalty    float64
	spaceOnlyCost        float64
	perTokenLimit        bool
	defaultLimit         float64
	defaultNormLimit     float64
	normType             NormType
	tokenSep             rune
	tokenizer            Tokenizer
}

// Builder stages Config options via independent setters; Build finalizes
// and validates them.
type Builder struct {
	cfg        Config
	locale     *language.Tag
	tokenSplit *regexp.Regexp
	tokenizer  Tokenizer
	err        error
}

// NewBuilder returns a Builder pre-populated with the package defaults
// described in the distance model: insDelCost 1.0, substCost 1.0, swapCost
// 1.25, duplicateCost 0.05, digitChangePenalty 0.33, tokenInitialPenalty
// 0.25, tokenSepSubstPenalty 0.50, tokenDeltaPenalty 0.25, spaceOnlyCost
// 0.10, perTokenLimit true, defaultLimit 2.0, defaultNormLimit 0.0,
// normType max, tokenSep U+0020, and English locale-aware lowercasing.
func NewBuilder() *Builder {
	english := language.English
	return &Builder{
		cfg: Config{
			insDelCost:           1.0,
			substCost:            1.0,
			swapCost:             1.25,
			duplicateCost:        0.05,
			digitChangePenalty:   0.33,
			tokenInitialPenalty:  0.25,
			tokenSepSubstPenalty: 0.50,
			tokenDeltaPenalty:    0.25,
			spaceOnlyCost:        0.10,
			perTokenLimit:        true,
			defaultLimit:         2.0,
			defaultNormLimit:     0.0,
			normType:             NormMax,
			tokenSep:             ' ',
		},
		locale: &english,
	}
}

func (b *Builder) InsDelCost(v float64) *Builder { b.cfg.insDelCost = v; return b }
func (b *Builder) SubstCost(v float64) *Builder  { b.cfg.substCost = v; return b }
func (b *Builder) SwapCost(v float64) *Builder   { b.cfg.swapCost = v; return b }

func (b *Builder) DuplicateCost(v float64) *Builder      { b.cfg.duplicateCost = v; return b }
func (b *Builder) DigitChangePenalty(v float64) *Builder { b.cfg.digitChangePenalty = v; return b }

func (b *Builder) TokenInitialPenalty(v float64) *Builder {
	b.cfg.tokenInitialPenalty = v
	return b
}

func (b *Builder) TokenSepSubstPenalty(v float64) *Builder {
	b.cfg.tokenSepSubstPenalty = v
	return b
}

func (b *Builder) TokenDeltaPenalty(v float64) *Builder { b.cfg.tokenDeltaPenalty = v; return b }
func (b *Builder) SpaceOnlyCost(v float64) *Builder     { b.cfg.spaceOnlyCost = v; return b }

func (b *Builder) PerTokenLimit(v bool) *Builder { b.cfg.perTokenLimit = v; return b }

func (b *Builder) DefaultLimit(v float64) *Builder     { b.cfg.defaultLimit = v; return b }
func (b *Builder) DefaultNormLimit(v float64) *Builder { b.cfg.defaultNormLimit = v; return b }

func (b *Builder) NormType(t NormType) *Builder { b.cfg.normType = t; return b }

// TokenSep sets the scalar used as inter-token separator in the canonical
// form: the tokenizer's output, default or injected via Builder.Tokenizer,
// is always joined with it.
func (b *Builder) TokenSep(r rune) *Builder { b.cfg.tokenSep = r; return b }

// TokenSplit overrides the regexp the default tokenizer splits on. Ignored
// if a custom Tokenizer is injected.
func (b *Builder) TokenSplit(re *regexp.Regexp) *Builder { b.tokenSplit = re; return b }

// Locale sets the locale used for case folding by the default tokenizer.
// Pass nil to disable lowercasing entirely. Ignored if a custom Tokenizer
// is injected.
func (b *Builder) Locale(tag *language.Tag) *Builder { b.locale = tag; return b }

// Tokenizer injects a custom tokenizer, overriding TokenSplit and Locale.
func (b *Builder) Tokenizer(t Tokenizer) *Builder { b.tokenizer = t; return b }

// Build finalizes the Config. It is the sole point at which a configuration
// error (a negative cost, or a NormType with no valid case) is diagnosed;
// once built, a Config never fails mid-computation for a configuration
// reason.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	for name, v := range map[string]float64{
		"insDelCost":           b.cfg.insDelCost,
		"substCost":            b.cfg.substCost,
		"swapCost":             b.cfg.swapCost,
		"duplicateCost":        b.cfg.duplicateCost,
		"digitChangePenalty":   b.cfg.digitChangePenalty,
		"tokenInitialPenalty":  b.cfg.tokenInitialPenalty,
		"tokenSepSubstPenalty": b.cfg.tokenSepSubstPenalty,
		"tokenDeltaPenalty":    b.cfg.tokenDeltaPenalty,
		"spaceOnlyCost":        b.cfg.spaceOnlyCost,
		"defaultLimit":         b.cfg.defaultLimit,
		"defaultNormLimit":     b.cfg.defaultNormLimit,
	} {
		if v < 0 {
			return nil, fmt.Errorf("worddist: %s must be non-negative, got %v", name, v)
		}
	}
	switch b.cfg.normType {
	case NormMax, NormMin, NormFirst:
	default:
		return nil, fmt.Errorf("worddist: unhandled NormType %d", int(b.cfg.normType))
	}
	if b.cfg.tokenSep == 0 {
		return nil, fmt.Errorf("worddist: tokenSep must not be the zero rune")
	}

	out := b.cfg
	if b.tokenizer != nil {
		out.tokenizer = b.tokenizer
	} else {
		out.tokenizer = Tokenizer(tokenize.Default(b.tokenSplit, b.locale))
	}
	return &out, nil
}

// DefaultLimits returns the limit and normLimit a bare Distance call uses.
func (c *Config) DefaultLimits() (limit, normLimit float64) {
	return c.defaultLimit, c.defaultNormLimit
}

// Distance returns the weighted, token-aware edit distance between a and b
// using the Config's default limits. Both empty and non-empty strings are
// accepted symmetrically.
func (c *Config) Distance(a, b string) float64 {
	return c.DistanceWithLimits(a, b, c.defaultLimit, c.defaultNormLimit)
}

// DistanceWithLimits is Distance with an explicit absolute cost ceiling
// (limit) and length-normalized ceiling (normLimit). A limit of 0 means
// "no limit" for that dimension. The result is +Inf when the true distance
// exceeds whichever ceiling is active, including when early termination
// only proves a lower bound above the ceiling.
func (c *Config) DistanceWithLimits(a, b string, limit, normLimit float64) float64 {
	return c.distance(a, b, limit, normLimit)
}
