package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/exacttw/supertrie"
	"github.com/exacttw/supertrie/internal/entryio"
	"github.com/spf13/cobra"
)

type latexOptions struct {
	features uint8
	out      string
}

func newLatexCmd() *cobra.Command {
	var opts latexOptions

	cmd := &cobra.Command{
		Use:   "latex [file]",
		Short: "Render the trie of an entry stream as a forest document",
		Long: `Reads an entry stream (stdin when no file is given), inserts every pair
and writes the resulting trie as a standalone LaTeX document.

Feature flags: 1 subtree intersection, 2 subtree union, 4 stored blocks.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in := "-"
			if len(args) == 1 {
				in = args[0]
			}
			return runLatex(in, opts)
		},
	}

	cmd.Flags().Uint8Var(&opts.features, "features", uint8(supertrie.LaTeXAll), "annotation bit flags")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func runLatex(in string, opts latexOptions) error {
	idx, err := loadIndex(in)
	if err != nil {
		return err
	}
	logger.Info("index loaded", "entries", idx.Size(), "nodes", idx.Stats().Nodes)

	features := supertrie.LaTeXFeature(opts.features)
	if opts.out == "-" {
		return idx.WriteLaTeX(os.Stdout, features)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := idx.WriteLaTeX(f, features); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// loadIndex builds an index from the entry stream at path, - meaning stdin.
func loadIndex(path string) (*supertrie.Index, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		rc, err := entryio.Open(path)
		if err != nil {
			return nil, err
		}
		src = rc
	}
	defer src.Close()

	r, err := entryio.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	hdr := r.Header()
	idx, err := supertrie.New(hdr.Universe, hdr.Width, supertrie.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	for {
		block, boundary, err := r.Next()
		if errors.Is(err, io.EOF) {
			return idx, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := idx.Insert(block, boundary); err != nil {
			return nil, err
		}
	}
}
