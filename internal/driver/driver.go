// Package driver formats LaTeX files on disk for the command line
// front end.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dgallion1/texfmt/internal/indent"
)

// Options controls how FormatPaths treats each file.
type Options struct {
	Unit   string // indent unit, repeated literally per level
	Write  bool   // rewrite changed files in place
	Backup bool   // with Write, keep a .bak copy of the original

	// MaxParallel bounds concurrent file processing; <=0 picks a default.
	MaxParallel int
}

// Result reports the outcome for one path.
type Result struct {
	Path      string
	Changed   bool
	Formatted string
	Err       error
}

const defaultParallel = 8

// FormatPaths formats every path concurrently and returns one result per
// path, in input order. Per-file failures land in Result.Err rather than
// aborting the batch; the returned error is only a cancelled context.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	limit := opts.MaxParallel
	if limit <= 0 {
		limit = defaultParallel
	}

	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = formatPath(path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatPath(path string, opts Options) Result {
	res := Result{Path: path}

	original, err := readFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	res.Formatted = indent.Format(original, opts.Unit)
	res.Changed = res.Formatted != original
	if !opts.Write || !res.Changed {
		return res
	}

	if err := writeFile(path, original, res.Formatted, opts.Backup); err != nil {
		res.Err = err
	}
	return res
}

// readFile reads a whole file as UTF-8, tolerating a leading UTF-8 or
// UTF-16 byte-order mark from BOM-happy editors.
func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// writeFile rewrites path atomically, optionally keeping the original as
// a .bak sibling first.
func writeFile(path, original, formatted string, backup bool) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if backup {
		if err := os.WriteFile(path+".bak", []byte(original), perm); err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
	}

	if err := renameio.WriteFile(path, []byte(formatted), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
