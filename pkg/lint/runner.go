// Package lint drives the import-order rule over files and directories and
// applies the fixes the rule emits.
package lint

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	errs "github.com/frontkit/js-imports-order/pkg/errors"
	"github.com/frontkit/js-imports-order/pkg/fix"
	"github.com/frontkit/js-imports-order/pkg/jsast"
	"github.com/frontkit/js-imports-order/pkg/rule"
	"github.com/frontkit/js-imports-order/pkg/utils"
)

// Runner lints JavaScript sources with the import-order rule.
type Runner struct {
	log        *slog.Logger
	fixMode    bool
	extensions []string
	exclude    []string
}

// FileResult is the outcome of linting one file.
type FileResult struct {
	Path        string
	Diagnostics []rule.Diagnostic // violations remaining after any fixing
	Fixed       int               // edits applied in fix mode
}

// New creates a Runner. In fix mode files are rewritten in place and only
// unfixable violations remain in the results.
func New(log *slog.Logger, fixMode bool, extensions, exclude []string) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log, fixMode: fixMode, extensions: extensions, exclude: exclude}
}

// CheckSource lints one source buffer and returns its diagnostics.
func (r *Runner) CheckSource(ctx context.Context, src []byte) ([]rule.Diagnostic, error) {
	decls, err := jsast.ExtractImports(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToParseFile, err)
	}
	return rule.Check(decls), nil
}

// FixSource repeatedly applies the rule's fixes to src until the file
// re-analyzes clean or no fixable diagnostics remain. A single simultaneous
// application normally converges; the pass bound guards against edits that
// interact. Returns the new content, the number of edits applied, and the
// diagnostics left unfixed.
func (r *Runner) FixSource(ctx context.Context, src []byte) ([]byte, int, []rule.Diagnostic, error) {
	applied := 0
	var remaining []rule.Diagnostic

	decls, err := jsast.ExtractImports(ctx, src)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToParseFile, err)
	}
	maxPasses := len(decls) + 1

	for pass := 0; pass < maxPasses; pass++ {
		diags := rule.Check(decls)

		var edits []fix.TextEdit
		remaining = remaining[:0]
		for _, d := range diags {
			if d.Edit != nil {
				edits = append(edits, *d.Edit)
			} else {
				remaining = append(remaining, d)
			}
		}
		if len(edits) == 0 {
			break
		}

		src = fix.Apply(src, edits)
		applied += len(edits)

		decls, err = jsast.ExtractImports(ctx, src)
		if err != nil {
			return nil, applied, nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToParseFile, err)
		}
	}
	return src, applied, remaining, nil
}

// RunFile lints a single file, rewriting it in place when fix mode is on.
func (r *Runner) RunFile(ctx context.Context, path string) (FileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path}, fmt.Errorf("%s: %w", errs.ErrMsgFailedToReadFile, err)
	}

	res := FileResult{Path: path}
	if r.fixMode {
		out, applied, remaining, err := r.FixSource(ctx, src)
		if err != nil {
			return res, err
		}
		res.Fixed = applied
		res.Diagnostics = remaining
		if applied > 0 && !bytes.Equal(out, src) {
			if err := os.WriteFile(path, out, 0644); err != nil {
				return res, fmt.Errorf("%s: %w", errs.ErrMsgFailedToWriteFile, err)
			}
			r.log.Debug("rewrote file", "path", path, "edits", applied)
		}
		return res, nil
	}

	diags, err := r.CheckSource(ctx, src)
	if err != nil {
		return res, err
	}
	res.Diagnostics = diags
	r.log.Debug("checked file", "path", path, "problems", len(diags))
	return res, nil
}

// RunPath lints a file or a directory tree. Results come back in walk
// order, so output is deterministic across runs.
func (r *Runner) RunPath(ctx context.Context, path string) ([]FileResult, error) {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		res, err := r.RunFile(ctx, path)
		if err != nil {
			return nil, err
		}
		return []FileResult{res}, nil
	}

	files, err := utils.FindJSFiles(path, r.extensions, r.exclude)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToFindJSFiles, err)
	}

	var results []FileResult
	for _, f := range files {
		res, err := r.RunFile(ctx, f)
		if err != nil {
			// Keep going: one unreadable or unparsable file should not
			// abort the whole tree.
			r.log.Warn("skipping file", "path", f, "err", err)
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// Problems counts the violations remaining across results.
func Problems(results []FileResult) int {
	n := 0
	for _, res := range results {
		n += len(res.Diagnostics)
	}
	return n
}

// FixedCount counts the edits applied across results.
func FixedCount(results []FileResult) int {
	n := 0
	for _, res := range results {
		n += res.Fixed
	}
	return n
}
