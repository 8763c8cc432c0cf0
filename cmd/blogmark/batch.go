package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-blogmark"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// PostConverter is the part of blogmark.Converter the batch needs.
type PostConverter interface {
	Convert(ctx context.Context, input blogmark.Input) (*blogmark.Result, error)
}

// Compile-time interface implementation check.
var _ PostConverter = (*blogmark.Converter)(nil)

// renderParams holds per-post settings shared by the whole batch.
type renderParams struct {
	standalone bool
	lang       string
	css        string
	drafts     bool
}

// RenderResult holds the outcome of a single post.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Skipped    bool // draft left out of the build
	Err        error
	Duration   time.Duration
}

// resolveWorkers returns the worker count, defaulting to GOMAXPROCS.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// renderBatch renders files concurrently. Results keep the order of files.
// A failing post does not stop the others.
func renderBatch(ctx context.Context, conv PostConverter, files []FileToRender, params *renderParams, workers int, logger *slog.Logger) []RenderResult {
	results := make([]RenderResult, len(files))

	var g errgroup.Group
	g.SetLimit(max(1, min(workers, len(files))))
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = RenderResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = renderFile(ctx, conv, f, params)
			if r := results[i]; r.Err != nil {
				logger.Debug("post failed", "input", r.InputPath, "error", r.Err)
			}
			return nil
		})
	}
	_ = g.Wait() // workers record errors in results
	return results
}

// renderFile converts one post and writes its HTML.
func renderFile(ctx context.Context, conv PostConverter, f FileToRender, params *renderParams) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	done := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	res, err := conv.Convert(ctx, blogmark.Input{
		Markdown:   string(content),
		Standalone: params.standalone,
		Title:      postTitle(f.InputPath),
		Lang:       params.lang,
		CSS:        params.css,
	})
	if err != nil {
		return done(err)
	}

	if res.Frontmatter != nil && res.Frontmatter.Draft && !params.drafts {
		result.Skipped = true
		result.OutputPath = ""
		return done(nil)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return done(fmt.Errorf("%w: creating output directory: %v", ErrWriteHTML, err))
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(f.OutputPath, res.HTML, filePermissions); err != nil {
		return done(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}
	return done(nil)
}

// postTitle is the fallback page title: the file name without extension.
func postTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResultSummary holds the count of rendered, skipped and failed posts.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies the batch outcome.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// reportResults prints the batch outcome and returns the joined failures.
func reportResults(results []RenderResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	var errs []error

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			errs = append(errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
			continue
		}

		if quiet {
			continue
		}

		switch {
		case r.Skipped:
			fmt.Fprintf(env.Stdout, "Skipped draft %s\n", r.InputPath)
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", summary.Succeeded, summary.Skipped, summary.Failed)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d post(s) failed: %w", summary.Failed, len(results), errors.Join(errs...))
}
