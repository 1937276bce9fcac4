package main

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/exacttw/supertrie"
	"github.com/exacttw/supertrie/internal/scan"
	"github.com/exacttw/supertrie/testutil"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type checkOptions struct {
	instances   int
	firstSeed   int64
	n           int
	width       int
	entries     int
	queries     int
	maxBoundary int
	skew        float64
	rebuildMin  int
	parallel    int
	fast        bool
	progress    time.Duration
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check trie queries against a linear scan on random instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.instances, "instances", 100, "number of random instances")
	f.Int64Var(&opts.firstSeed, "seed", 1, "seed of the first instance")
	f.IntVar(&opts.n, "n", 40, "universe size")
	f.IntVar(&opts.width, "width", 6, "largest width bound queried")
	f.IntVar(&opts.entries, "entries", 500, "pairs per instance")
	f.IntVar(&opts.queries, "queries", 200, "queries per instance")
	f.IntVar(&opts.maxBoundary, "max-boundary", 8, "largest boundary drawn")
	f.Float64Var(&opts.skew, "skew", 1.2, "Zipf exponent of boundary vertices")
	f.IntVar(&opts.rebuildMin, "rebuild-min", 64, "smallest size that triggers a rebuild")
	f.IntVar(&opts.parallel, "parallel", runtime.GOMAXPROCS(0), "instances checked concurrently")
	f.BoolVar(&opts.fast, "fast", true, "use word-level pruning")
	f.DurationVar(&opts.progress, "progress", 2*time.Second, "interval between progress logs")
	return cmd
}

func runCheck(ctx context.Context, opts checkOptions) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.parallel))

	var done, queries atomic.Int64
	progress := rate.Sometimes{Interval: opts.progress}
	start := time.Now()

	for i := range opts.instances {
		seed := opts.firstSeed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := checkInstance(seed, opts)
			if err != nil {
				return err
			}
			queries.Add(int64(q))
			done.Add(1)
			progress.Do(func() {
				logger.Info("check progress", "done", done.Load(), "total", opts.instances)
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("check passed",
		"instances", done.Load(),
		"queries", queries.Load(),
		"duration", time.Since(start),
	)
	fmt.Printf("ok: %d instances, %d queries\n", done.Load(), queries.Load())
	return nil
}

// checkInstance builds one random instance and compares every query with
// the reference scan. It returns the number of queries run.
func checkInstance(seed int64, opts checkOptions) (int, error) {
	rng := testutil.NewRNG(seed)
	pairs := rng.SkewedPairs(opts.entries, opts.n, opts.maxBoundary, opts.skew)

	idx, err := supertrie.New(opts.n, opts.width,
		supertrie.WithFastPath(opts.fast),
		supertrie.WithRebuildPolicy(supertrie.DoublingPolicy(opts.rebuildMin)),
		supertrie.WithLogger(logger.WithSeed(seed)),
	)
	if err != nil {
		return 0, err
	}
	ref := scan.New(opts.n)

	for _, p := range pairs {
		if err := idx.Insert(p.Block, p.Boundary); err != nil {
			return 0, err
		}
		ref.Insert(p.Block, p.Boundary)
	}
	if err := idx.Audit(); err != nil {
		return 0, fmt.Errorf("seed %d: %w", seed, err)
	}

	for i := range opts.queries {
		block := rng.Set(opts.n, 0.05)
		boundary := rng.Set(opts.n, 0.08)
		width := i % (opts.width + 1)

		got, err := idx.QueryWidth(block, boundary, width)
		if err != nil {
			return i, err
		}
		want := testutil.Keys(ref.Query(block, boundary, width))
		if have := testutil.Keys(got); !slices.Equal(have, want) {
			return i, fmt.Errorf("seed %d, query %d: block %v boundary %v width %d: trie %v, scan %v",
				seed, i, block, boundary, width, have, want)
		}
	}
	return opts.queries, nil
}
