// Command imagecmp compares byte images by block similarity: two images are
// approximately equal when at least 80% of their bytes match position by
// position.
//
// Usage:
//
//	imagecmp [flags] [image-a image-b]
//
// Images are comma-separated byte values. Without arguments it compares the
// built-in demo pairs.
//
// Examples:
//
//	imagecmp
//	imagecmp 1,2,3,4,5 1,2,3,4,6
//	imagecmp -ratio 1,2,3,4,5 1,2,3,5,6
//	imagecmp -assert 1,2,3,4,5 1,2,3,5,6
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-approxeq/approx"
)

var errArgCount = errors.New("expected zero or two images")

type pair struct {
	nameA, nameB string
	a, b         Image
}

var demoPairs = []pair{
	{"image1", "image2", Image{1, 2, 3, 4, 5}, Image{1, 2, 3, 4, 6}},
	{"image3", "image4", Image{1, 2, 3, 4, 5}, Image{1, 2, 3, 5, 6}},
}

func main() {
	assertMode := flag.Bool("assert", false, "halt with a diagnostic on the first pair that differs")
	showRatio := flag.Bool("ratio", false, "also print the fraction of matching bytes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imagecmp [flags] [image-a image-b]\n\n")
		fmt.Fprintf(os.Stderr, "Compares byte images by block similarity (>= 80%% matching bytes).\n")
		fmt.Fprintf(os.Stderr, "Without arguments, compares the built-in demo pairs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  imagecmp 1,2,3,4,5 1,2,3,4,6\n")
		fmt.Fprintf(os.Stderr, "  imagecmp -assert 1,2,3,4,5 1,2,3,5,6\n")
	}
	flag.Parse()

	pairs, err := resolvePairs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, pairs, *assertMode, *showRatio); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolvePairs(args []string) ([]pair, error) {
	switch len(args) {
	case 0:
		return demoPairs, nil
	case 2:
		a, err := parseImage(args[0])
		if err != nil {
			return nil, fmt.Errorf("image a: %w", err)
		}
		b, err := parseImage(args[1])
		if err != nil {
			return nil, fmt.Errorf("image b: %w", err)
		}
		return []pair{{"a", "b", a, b}}, nil
	default:
		return nil, fmt.Errorf("%w, got %d", errArgCount, len(args))
	}
}

// run prints one line per pair. In assert mode a differing pair panics with
// an *approx.MismatchError after the preceding pairs were printed.
func run(w io.Writer, pairs []pair, assertMode, showRatio bool) error {
	for _, p := range pairs {
		if assertMode {
			approx.Assert(p.a, p.b)
		}
		line := fmt.Sprintf("%s approx %s:%v", p.nameA, p.nameB, p.a.Approx(p.b))
		if showRatio {
			line += fmt.Sprintf(" (ratio %.2f)", p.a.MatchRatio(p.b))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}
