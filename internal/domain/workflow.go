// Package domain holds the dbgc workflows: scanning sources, reporting debug
// statements and rewriting files.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/dbgc/internal/adapter"
	"github.com/mouse-blink/dbgc/internal/controller"
	m "github.com/mouse-blink/dbgc/internal/model"
)

// ScanArgs selects the files to analyze.
type ScanArgs struct {
	Paths     []m.Path
	Exclude   []string
	Recursive bool
	All       bool // flag every output call, not only marked ones
	Config    m.Path
	Threads   int
}

// ListArgs configures the list workflow.
type ListArgs struct {
	ScanArgs
	Reports m.Path
	Save    bool // write a report per file to Reports
	Changed bool // only files that changed since the saved reports
}

// ChangeArgs configures the delete, off and on workflows.
type ChangeArgs struct {
	ScanArgs
	Yes         bool
	Interactive bool
	DryRun      bool
}

// ViewArgs configures the view workflow.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the dbgc operations.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Delete(ctx context.Context, args ChangeArgs) error
	Off(ctx context.Context, args ChangeArgs) error
	On(ctx context.Context, args ChangeArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	profiles    adapter.ProfileStore
	reportStore adapter.ReportStore
	ui          controller.UI
	applier     Applier
	logger      *slog.Logger
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	profiles adapter.ProfileStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	applier Applier,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		profiles:    profiles,
		reportStore: reportStore,
		ui:          ui,
		applier:     applier,
		logger:      logger,
		now:         time.Now,
	}
}

// scan is the state shared by one run.
type scan struct {
	analyzer *analyzer
	files    []m.File
	skipped  int
}

// List reports debug statements without touching the files.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	s, err := w.prepare(args.ScanArgs)
	if err != nil {
		return err
	}

	if args.Changed {
		updated, err := w.reportStore.CheckUpdates(args.Reports, s.files)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		s.files = w.existing(updated, s.files)
		w.logger.Debug("changed files", "count", len(s.files))
	}

	results, err := w.analyze(ctx, s, m.ActionList, args.Threads)
	if err != nil {
		return err
	}

	w.warnFailures(results)

	if err := w.ui.DisplayFindings(results); err != nil {
		return err
	}

	if args.Save {
		if err := w.reportStore.SaveReports(args.Reports, w.toReports(results, m.ActionList)); err != nil {
			return fmt.Errorf("failed to save reports: %w", err)
		}

		w.logger.Info("reports saved", "dir", args.Reports)
	}

	summary := summarize(results, m.ActionList)
	summary.Skipped += s.skipped
	w.ui.DisplaySummary(summary)

	return nil
}

// Delete strips debug statements.
func (w *workflow) Delete(ctx context.Context, args ChangeArgs) error {
	return w.change(ctx, args, m.ActionDelete)
}

// Off comments debug statements out.
func (w *workflow) Off(ctx context.Context, args ChangeArgs) error {
	return w.change(ctx, args, m.ActionCommentOut)
}

// On restores commented-out debug statements.
func (w *workflow) On(ctx context.Context, args ChangeArgs) error {
	return w.change(ctx, args, m.ActionUncomment)
}

// View shows the saved reports, flagging those whose source changed since.
func (w *workflow) View(_ context.Context, args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	stale := make(map[m.Path]bool, len(reports))

	for _, r := range reports {
		path := r.Source.File.Path

		hash, err := w.fsAdapter.HashFile(path)
		if err != nil {
			w.logger.Debug("report source unavailable", "path", path, "err", err)

			stale[path] = true

			continue
		}

		stale[path] = hash != r.Source.File.Hash
	}

	return w.ui.DisplayReports(reports, stale)
}

func (w *workflow) change(ctx context.Context, args ChangeArgs, action m.Action) error {
	s, err := w.prepare(args.ScanArgs)
	if err != nil {
		return err
	}

	results, err := w.analyze(ctx, s, action, args.Threads)
	if err != nil {
		return err
	}

	w.warnFailures(results)

	summary := summarize(results, action)
	summary.DryRun = args.DryRun
	summary.Skipped += s.skipped

	if summary.Findings == 0 {
		w.ui.DisplaySummary(summary)
		return nil
	}

	if err := w.ui.DisplayFindings(results); err != nil {
		return err
	}

	selected, err := w.choose(args, action, results)
	if err != nil {
		return err
	}

	changes, err := buildChanges(s.analyzer, results, selected, action)
	if err != nil {
		return err
	}

	summary.Findings = 0
	for _, c := range changes {
		summary.Findings += len(c.Findings)
	}

	var errs []error

	for _, c := range changes {
		if args.DryRun {
			diff, err := unifiedDiff(c)
			if err != nil {
				return fmt.Errorf("failed to diff %s: %w", c.Source.File.Path, err)
			}

			w.ui.DisplayDiff(c.Source.File.Path, diff)
			summary.Changed++

			continue
		}

		if err := w.applier.Apply(ctx, c); err != nil {
			if errors.Is(err, ErrSourceChanged) {
				w.ui.DisplayWarning(fmt.Sprintf("skipped %s: changed since it was analyzed", c.Source.File.Path))
				summary.Skipped++

				continue
			}

			errs = append(errs, err)
			summary.Skipped++

			continue
		}

		w.logger.Debug("rewrote file", "path", c.Source.File.Path, "action", action, "findings", len(c.Findings))
		summary.Changed++
	}

	w.ui.DisplaySummary(summary)

	return errors.Join(errs...)
}

// prepare loads the profiles and discovers the files of a run.
func (w *workflow) prepare(args ScanArgs) (*scan, error) {
	profiles, err := w.profiles.Load(args.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	a, err := newAnalyzer(profiles, args.All)
	if err != nil {
		return nil, err
	}

	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	s := &scan{analyzer: a}

	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	paths = w.dropUnsupported(paths, a, s)

	s.files, err = w.fsAdapter.Get(paths, adapter.FileFilter{
		Accept:    a.supports,
		Exclude:   exclude,
		Recursive: args.Recursive,
	})
	if err != nil {
		return nil, err
	}

	if wd, err := os.Getwd(); err == nil {
		for i := range s.files {
			s.files[i].Path = w.relative(m.Path(wd), s.files[i].Path)
		}
	}

	w.logger.Debug("discovered files", "count", len(s.files), "roots", len(paths))

	return s, nil
}

// relative shortens paths under the working directory; anything outside it
// stays absolute.
func (w *workflow) relative(wd, path m.Path) m.Path {
	rel, err := w.fsAdapter.RelPath(wd, path)
	if err != nil || rel == ".." || strings.HasPrefix(string(rel), ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}

// dropUnsupported warns about files named explicitly that no profile can
// read. Files found by walking a directory are filtered silently.
func (w *workflow) dropUnsupported(paths []m.Path, a *analyzer, s *scan) []m.Path {
	kept := make([]m.Path, 0, len(paths))

	for _, p := range paths {
		info, err := w.fsAdapter.FileInfo(p)
		if err == nil && !info.IsDir() && !a.supports(string(p)) {
			_, perr := a.profiles.ForPath(string(p))
			w.ui.DisplayWarning(fmt.Sprintf("skipped %s: %v", p, perr))
			s.skipped++

			continue
		}

		kept = append(kept, p)
	}

	return kept
}

// existing keeps the entries of updated that are still on disk.
func (w *workflow) existing(updated, discovered []m.File) []m.File {
	onDisk := make(map[m.Path]struct{}, len(discovered))
	for _, f := range discovered {
		onDisk[f.Path] = struct{}{}
	}

	var files []m.File

	for _, f := range updated {
		if _, ok := onDisk[f.Path]; ok {
			files = append(files, f)
		}
	}

	return files
}

// analyze runs the detector over every file with at most threads workers.
// Per-file failures are recorded on the result; only cancellation aborts.
func (w *workflow) analyze(ctx context.Context, s *scan, action m.Action, threads int) ([]m.FileResult, error) {
	results := make([]m.FileResult, len(s.files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(threads, 1))

	for i, file := range s.files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = w.analyzeFile(gctx, s.analyzer, file, action)

			if errors.Is(results[i].Err, context.Canceled) {
				return results[i].Err
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (w *workflow) analyzeFile(ctx context.Context, a *analyzer, file m.File, action m.Action) m.FileResult {
	source := m.Source{File: file}

	if p, err := a.profiles.ForPath(string(file.Path)); err == nil {
		source.Profile = p.Name
	}

	data, err := w.fsAdapter.ReadFile(file.Path)
	if err != nil {
		return m.FileResult{Source: source, Err: fmt.Errorf("failed to read %s: %w", file.Path, err)}
	}

	// The content read is what a change is computed from; hash it so the
	// applier can tell whether the file moved on.
	source.File.Hash = adapter.HashContent(data)
	content := string(data)

	findings, err := a.Analyze(ctx, source, content, action)
	if err != nil {
		return m.FileResult{Source: source, Err: err}
	}

	w.logger.Debug("analyzed file", "path", file.Path, "profile", source.Profile, "findings", len(findings))

	return m.FileResult{Source: source, Content: content, Findings: findings}
}

func (w *workflow) warnFailures(results []m.FileResult) {
	for _, r := range results {
		if r.Err != nil {
			w.ui.DisplayWarning(fmt.Sprintf("skipped %s: %v", r.Source.File.Path, r.Err))
		}
	}
}

// choose picks the findings to change.
func (w *workflow) choose(args ChangeArgs, action m.Action, results []m.FileResult) ([]m.Finding, error) {
	var actionable []m.Finding

	for _, r := range results {
		for _, f := range r.Findings {
			if f.Actionable() {
				actionable = append(actionable, f)
			}
		}
	}

	switch {
	case args.Interactive:
		return w.ui.SelectFindings(actionable)
	case args.Yes || args.DryRun:
		return actionable, nil
	}

	ok, err := w.ui.Confirm(fmt.Sprintf("%s %d debug %s?", action.Verb(), len(actionable), statementWord(len(actionable))))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	return actionable, nil
}

func (w *workflow) toReports(results []m.FileResult, action m.Action) []m.Report {
	created := w.now()
	reports := make([]m.Report, 0, len(results))

	for _, r := range results {
		if r.Err != nil {
			continue
		}

		reports = append(reports, m.Report{
			Source:    r.Source,
			Action:    action,
			CreatedAt: created,
			Findings:  r.Findings,
		})
	}

	return reports
}

// buildChanges groups the selected findings by file and computes each
// rewrite. Files whose content would not change are left out.
func buildChanges(a *analyzer, results []m.FileResult, selected []m.Finding, action m.Action) ([]m.Change, error) {
	byPath := make(map[m.Path][]m.Finding)
	for _, f := range selected {
		byPath[f.Path] = append(byPath[f.Path], f)
	}

	var changes []m.Change

	for _, r := range results {
		findings := byPath[r.Source.File.Path]
		if r.Err != nil || len(findings) == 0 {
			continue
		}

		sort.Slice(findings, func(i, j int) bool {
			return findings[i].Statement.StartLine < findings[j].Statement.StartLine
		})

		after, err := a.Rewrite(r.Source, r.Content, action, findings)
		if err != nil {
			return nil, err
		}

		if after == r.Content {
			continue
		}

		changes = append(changes, m.Change{
			Source:   r.Source,
			Action:   action,
			Before:   r.Content,
			After:    after,
			Findings: findings,
		})
	}

	return changes, nil
}

func summarize(results []m.FileResult, action m.Action) m.Summary {
	s := m.Summary{Action: action}

	for _, r := range results {
		if r.Err != nil {
			s.Skipped++
			continue
		}

		s.Files++

		for _, f := range r.Findings {
			switch {
			case f.Actionable():
				s.Findings++
			case f.Ignored:
				s.Ignored++
			}
		}
	}

	return s
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		res = append(res, re)
	}

	return res, nil
}

func statementWord(n int) string {
	if n == 1 {
		return "statement"
	}

	return "statements"
}
