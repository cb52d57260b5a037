// Package driver runs the lint engine over directories: file discovery,
// parallel execution, and result caching.
package driver

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/lint"
	"github.com/olehManboy/Ethlint/internal/parser"
)

// Options tunes a directory run.
type Options struct {
	// Jobs caps worker goroutines; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, skips re-linting files whose content and
	// configuration are unchanged.
	Cache *DiskCache
	// Progress receives per-file events when non-nil. The caller owns the
	// channel; it is not closed here.
	Progress chan<- Event
}

// FileResult is the outcome for one source file. Err carries the fatal
// engine error (parse failure, defective rule) when linting aborted; the
// diagnostics are empty in that case.
type FileResult struct {
	Path        string
	Diagnostics []diag.Diagnostic
	Err         error
	Cached      bool
}

// HasProblems reports whether the result carries findings or a failure.
func (r FileResult) HasProblems() bool {
	return r.Err != nil || len(r.Diagnostics) > 0
}

// ListSolFiles returns all *.sol files under dir, sorted for deterministic
// scheduling and output.
func ListSolFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sol") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LintDir lints every *.sol file under dir in parallel. The configuration
// is validated once up front; a bad configuration fails the whole run
// instead of repeating per file. Per-file failures (unreadable file, parse
// error) land in that file's result and do not stop the others.
func LintDir(ctx context.Context, reg *lint.Registry, dir string, raw lint.RawConfig, opts Options) ([]FileResult, error) {
	files, err := ListSolFiles(dir)
	if err != nil {
		return nil, err
	}
	return LintFiles(ctx, reg, files, raw, opts)
}

// LintFiles lints an explicit file list in parallel.
func LintFiles(ctx context.Context, reg *lint.Registry, files []string, raw lint.RawConfig, opts Options) ([]FileResult, error) {
	if _, err := lint.BuildEffectiveConfig(reg, raw); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	cfgHash := hashConfig(raw)
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = lintOne(reg, path, raw, cfgHash, opts)
			ev := Event{File: path, Status: StatusDone, Findings: len(results[i].Diagnostics)}
			if results[i].Err != nil {
				ev.Status = StatusError
			}
			emit(opts.Progress, ev)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// lintOne lints a single file, consulting the disk cache first. Each worker
// builds its own session; sessions are not safe for concurrent use.
func lintOne(reg *lint.Registry, path string, raw lint.RawConfig, cfgHash [32]byte, opts Options) FileResult {
	res := FileResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", path, err)
		return res
	}

	key := cacheKey(content, cfgHash)
	if opts.Cache != nil {
		var payload CachePayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			res.Diagnostics = payload.Diagnostics
			res.Cached = true
			return res
		}
	}

	emit(opts.Progress, Event{File: path, Status: StatusLinting})

	session := lint.NewSession(reg, parser.Solidity{})
	diags, err := session.Lint(string(content), raw)
	if err != nil {
		res.Err = err
		return res
	}
	res.Diagnostics = diags

	if opts.Cache != nil {
		// Cache failures are invisible; the lint result stands either way.
		_ = opts.Cache.Put(key, &CachePayload{
			Schema:      cacheSchemaVersion,
			Diagnostics: diags,
		})
	}
	return res
}

// FixOutcome pairs a file with its applied-fix result.
type FixOutcome struct {
	Path    string
	Result  *lint.FixOutcome
	Changed bool
	Err     error
}

// FixFiles lints and fixes files sequentially, rewriting each changed file
// in place unless dryRun is set. Fixing is not parallel: rewriting source
// while other goroutines read neighbouring files invites confusion for no
// measurable win at typical project sizes.
func FixFiles(ctx context.Context, reg *lint.Registry, files []string, raw lint.RawConfig, dryRun bool) ([]FixOutcome, error) {
	if _, err := lint.BuildEffectiveConfig(reg, raw); err != nil {
		return nil, err
	}

	session := lint.NewSession(reg, parser.Solidity{})
	out := make([]FixOutcome, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		o := FixOutcome{Path: path}
		content, err := os.ReadFile(path)
		if err != nil {
			o.Err = err
			out = append(out, o)
			continue
		}
		res, err := session.LintAndFix(string(content), raw)
		if err != nil {
			o.Err = err
			out = append(out, o)
			continue
		}
		o.Result = res
		// res.Fixed is the normalized rewrite; a changed file is written
		// back with LF line endings and no BOM.
		o.Changed = res.Applied > 0 && res.Fixed != string(content)
		if o.Changed && !dryRun {
			info, statErr := os.Stat(path)
			mode := os.FileMode(0o644)
			if statErr == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(path, []byte(res.Fixed), mode); err != nil {
				o.Err = err
			}
		}
		out = append(out, o)
	}
	return out, nil
}

// hashConfig digests the raw configuration deterministically so cached
// results invalidate when rules or options change.
func hashConfig(raw lint.RawConfig) [32]byte {
	names := make([]string, 0, len(raw.Rules))
	for name := range raw.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	fmt.Fprintf(h, "internal=%v;", raw.Options.ReturnInternalIssues)
	for _, name := range names {
		fmt.Fprintf(h, "%s=%v;", name, raw.Rules[name])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func cacheKey(content []byte, cfgHash [32]byte) [32]byte {
	h := sha256.New()
	h.Write(cfgHash[:])
	h.Write(content)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
