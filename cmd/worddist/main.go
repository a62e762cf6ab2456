// Command worddist is the command-line front end for the distance engine:
// compare two strings given as arguments, or a file of tab-separated pairs,
// printing "<dist>\t<a>\t<b>" per comparison with 9999 standing in for +Inf.
//
// Flag parsing follows the reconciliation service's habit of building a
// Config once at startup (spf13/pflag gives POSIX-style short/long pairs
// that the standard flag package can't express), and batch evaluation uses
// golang.org/x/sync/errgroup for a bounded worker pool, the same pattern
// riverqueue-river uses for its job workers.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"regexp"
	"runtime"
	"strconv"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"worddist"
	"worddist/internal/pairfile"
)

// rewriteMultiCharShortFlags rewrites the handful of documented single-dash,
// multi-character flag spellings (-dp, -sep, -spl) into their double-dash
// long form before pflag ever sees them: pflag's shorthand mechanism, like
// getopt's, only supports single-character shorthands, so these three
// aliases can't be registered directly.
func rewriteMultiCharShortFlags(args []string) []string {
	aliases := map[string]string{
		"-dp":  "--disablePerTokenLimit",
		"-sep": "--tokenSep",
		"-spl": "--tokenSplit",
	}
	out := make([]string, 0, len(args))
	for _, a := range args {
		if long, ok := aliases[a]; ok {
			out = append(out, long)
			continue
		}
		for short, long := range aliases {
			if prefix := short + "="; len(a) > len(prefix) && a[:len(prefix)] == prefix {
				a = long + a[len(short):]
				break
			}
		}
		out = append(out, a)
	}
	return out
}

func main() {
	fs := flag.NewFlagSet("worddist", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: worddist [flags] <a> <b>\n       worddist [flags] <pairs-file>\n\nflags:\n")
		fs.PrintDefaults()
	}

	editLimit := fs.Float64P("editLimit", "l", 2.0, "absolute cost ceiling (0 = no limit)")
	normEditLimit := fs.Float64P("normEditLimit", "p", 0.0, "length-normalized cost ceiling (0 = no limit)")
	disablePerTokenLimit := fs.Bool("disablePerTokenLimit", false, "do not enforce limits inside each token")
	normType := fs.StringP("normType", "n", "max", "max|min|first")
	dupeCost := fs.Float64P("dupeCost", "d", 0.05, "cost of inserting/deleting a duplicated scalar")
	insDelCost := fs.Float64P("insDelCost", "i", 1.0, "base insert/delete cost")
	substCost := fs.Float64P("substCost", "s", 1.0, "base substitution cost")
	swapCost := fs.Float64P("swapCost", "w", 1.25, "adjacent transposition cost")
	digitChangePenalty := fs.Float64P("digitChangePenalty", "c", 0.33, "penalty when both edit endpoints are digits")
	tokenInitialPenalty := fs.Float64P("tokenInitialPenalty", "t", 0.25, "penalty when the edited scalar starts a token")
	tokenDeltaPenalty := fs.Float64P("tokenDeltaPenalty", "T", 0.25, "penalty per unit of token-count difference")
	tokenSepSubstPenalty := fs.Float64P("tokenSepSubstPenalty", "S", 0.50, "penalty when a substitution touches the token separator")
	spaceOnlyCost := fs.Float64P("spaceOnlyCost", "P", 0.10, "ins/del cost for the separator when inputs are spacelessly equal")
	tokenSep := fs.String("tokenSep", " ", "single-character inter-token separator")
	tokenSplit := fs.String("tokenSplit", "", "override the default tokenizer's split regex")
	workers := fs.Int("workers", 0, "concurrent workers for file batch mode (0 = GOMAXPROCS)")

	if err := fs.Parse(rewriteMultiCharShortFlags(os.Args[1:])); err != nil {
		os.Exit(1)
	}

	nt, err := worddist.ParseNormType(*normType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "worddist:", err)
		os.Exit(1)
	}
	sepRunes := []rune(*tokenSep)
	if len(sepRunes) != 1 {
		fmt.Fprintf(os.Stderr, "worddist: --tokenSep must be exactly one character, got %q\n", *tokenSep)
		os.Exit(1)
	}

	b := worddist.NewBuilder().
		DefaultLimit(*editLimit).
		DefaultNormLimit(*normEditLimit).
		PerTokenLimit(!*disablePerTokenLimit).
		NormType(nt).
		DuplicateCost(*dupeCost).
		InsDelCost(*insDelCost).
		SubstCost(*substCost).
		SwapCost(*swapCost).
		DigitChangePenalty(*digitChangePenalty).
		TokenInitialPenalty(*tokenInitialPenalty).
		TokenDeltaPenalty(*tokenDeltaPenalty).
		TokenSepSubstPenalty(*tokenSepSubstPenalty).
		SpaceOnlyCost(*spaceOnlyCost).
		TokenSep(sepRunes[0])
	if *tokenSplit != "" {
		re, err := regexp.Compile(*tokenSplit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "worddist: --tokenSplit:", err)
			os.Exit(1)
		}
		b = b.TokenSplit(re)
	}

	cfg, err := b.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "worddist:", err)
		os.Exit(1)
	}

	args := fs.Args()
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch len(args) {
	case 2:
		printResult(out, cfg, args[0], args[1])
	case 1:
		if err := runBatch(out, cfg, args[0], *workers); err != nil {
			fmt.Fprintln(os.Stderr, "worddist:", err)
			os.Exit(1)
		}
	default:
		fs.Usage()
		os.Exit(1)
	}
}

// printResult writes one output line: "<dist>\t<a>\t<b>", using 9999 for
// +Inf and %.2f otherwise.
func printResult(out *bufio.Writer, cfg *worddist.Config, a, b string) {
	d := cfg.Distance(a, b)
	fmt.Fprintf(out, "%s\t%s\t%s\n", formatDistance(d), a, b)
}

// formatDistance renders d the way the CLI's output contract requires:
// 9999 for +Inf, otherwise two decimal places.
func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "9999"
	}
	return strconv.FormatFloat(d, 'f', 2, 64)
}

// runBatch reads pairs from filename and evaluates them concurrently with a
// worker pool bounded by workers (or GOMAXPROCS when 0), writing results in
// input order.
func runBatch(out *bufio.Writer, cfg *worddist.Config, filename string, workers int) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	pairs, err := pairfile.ReadAny(f, filename)
	if err != nil {
		return err
	}

	results := make([]string, len(pairs))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, p := range pairs {
		g.Go(func() error {
			results[i] = formatDistance(cfg.Distance(p.A, p.B))
			return nil
		})
	}
	_ = g.Wait()

	for i, p := range pairs {
		fmt.Fprintf(out, "%s\t%s\t%s\n", results[i], p.A, p.B)
	}
	return nil
}
