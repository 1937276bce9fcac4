package main

import (
	"os"

	"github.com/exacttw/supertrie/internal/entryio"
	"github.com/exacttw/supertrie/testutil"
	"github.com/spf13/cobra"
)

type genOptions struct {
	n           int
	width       int
	entries     int
	maxBoundary int
	skew        float64
	seed        int64
	out         string
}

func newGenCmd() *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random entry stream",
		Long: `Writes a random entry stream. Boundaries follow a Zipf distribution so that
a few vertices dominate. Output ending in .zst or .lz4 is compressed.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGen(opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.n, "n", 40, "universe size")
	f.IntVar(&opts.width, "width", 6, "width bound written to the header")
	f.IntVar(&opts.entries, "entries", 1000, "number of pairs")
	f.IntVar(&opts.maxBoundary, "max-boundary", 8, "largest boundary drawn")
	f.Float64Var(&opts.skew, "skew", 1.2, "Zipf exponent of boundary vertices")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")
	f.StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func runGen(opts genOptions) error {
	dst, err := entryio.NewCompressor(os.Stdout, entryio.Plain)
	if opts.out != "-" {
		dst, err = entryio.Create(opts.out)
	}
	if err != nil {
		return err
	}

	w, err := entryio.NewWriter(dst, entryio.Header{Universe: opts.n, Width: opts.width})
	if err != nil {
		_ = dst.Close()
		return err
	}

	rng := testutil.NewRNG(opts.seed)
	for _, p := range rng.SkewedPairs(opts.entries, opts.n, opts.maxBoundary, opts.skew) {
		if err := w.Write(p.Block, p.Boundary); err != nil {
			_ = dst.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = dst.Close()
		return err
	}
	logger.Info("entries written", "entries", opts.entries, "out", opts.out)
	return dst.Close()
}
