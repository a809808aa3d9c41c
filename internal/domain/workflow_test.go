package domain_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dbgc/internal/adapter"
	adaptermocks "github.com/mouse-blink/dbgc/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/dbgc/internal/controller/mocks"
	"github.com/mouse-blink/dbgc/internal/domain"
	domainmocks "github.com/mouse-blink/dbgc/internal/domain/mocks"
	m "github.com/mouse-blink/dbgc/internal/model"
)

const mainSrc = `package main

import "fmt"

func main() {
	fmt.Println("debug: start")
	x := 1
	fmt.Println("result", x)
	fmt.Println("debug: skip") // dbgc:ignore
}
`

const mainStripped = `package main

import "fmt"

func main() {
	x := 1
	fmt.Println("result", x)
	fmt.Println("debug: skip") // dbgc:ignore
}
`

const mainOff = `package main

import "fmt"

func main() {
	// fmt.Println("debug: start")
	x := 1
	fmt.Println("result", x)
	fmt.Println("debug: skip") // dbgc:ignore
}
`

func newTestWorkflow(ui *controllermocks.MockUI) domain.Workflow {
	fs := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(fs, adapter.NewLocalProfileStore(), adapter.NewReportStore(), ui, domain.NewApplier(fs), nil)
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func readSource(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func scanArgs(paths ...string) domain.ScanArgs {
	args := domain.ScanArgs{Recursive: true, Threads: 2}
	for _, p := range paths {
		args.Paths = append(args.Paths, m.Path(p))
	}

	return args
}

// captureSummary records the summary shown at the end of a run.
func captureSummary(ui *controllermocks.MockUI) *m.Summary {
	var got m.Summary

	ui.EXPECT().DisplaySummary(mock.Anything).Run(func(s m.Summary) { got = s }).Once()

	return &got
}

func TestWorkflow_List(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.go", mainSrc)
	writeSource(t, dir, "README.md", "fmt.Println(\"debug: docs\")\n")

	ui := controllermocks.NewMockUI(t)

	var results []m.FileResult

	ui.EXPECT().DisplayFindings(mock.Anything).Run(func(r []m.FileResult) { results = r }).Return(nil).Once()
	summary := captureSummary(ui)

	err := newTestWorkflow(ui).List(context.Background(), domain.ListArgs{ScanArgs: scanArgs(dir)})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, m.Path(path), results[0].Source.File.Path)
	assert.Equal(t, "go", results[0].Source.Profile)
	require.Len(t, results[0].Findings, 2)
	assert.Equal(t, 6, results[0].Findings[0].Statement.StartLine)
	assert.True(t, results[0].Findings[0].Actionable())
	assert.True(t, results[0].Findings[1].Ignored)

	assert.Equal(t, m.Summary{Action: m.ActionList, Files: 1, Findings: 1, Ignored: 1}, *summary)
	assert.Equal(t, mainSrc, readSource(t, path), "list must not touch files")
}

func TestWorkflow_Delete(t *testing.T) {
	t.Run("with --yes rewrites the file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSource(t, dir, "main.go", mainSrc)

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
		summary := captureSummary(ui)

		err := newTestWorkflow(ui).Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir), Yes: true})
		require.NoError(t, err)

		assert.Equal(t, mainStripped, readSource(t, path))
		assert.Equal(t, m.Summary{Action: m.ActionDelete, Files: 1, Changed: 1, Findings: 1, Ignored: 1}, *summary)
	})

	t.Run("declined confirmation keeps the file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSource(t, dir, "main.go", mainSrc)

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
		ui.EXPECT().Confirm("delete 1 debug statement?").Return(false, nil).Once()
		summary := captureSummary(ui)

		err := newTestWorkflow(ui).Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir)})
		require.NoError(t, err)

		assert.Equal(t, mainSrc, readSource(t, path))
		assert.Equal(t, 0, summary.Changed)
		assert.Equal(t, 0, summary.Findings)
	})

	t.Run("accepted confirmation rewrites", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSource(t, dir, "main.go", mainSrc)

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
		ui.EXPECT().Confirm(mock.Anything).Return(true, nil).Once()
		captureSummary(ui)

		err := newTestWorkflow(ui).Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir)})
		require.NoError(t, err)
		assert.Equal(t, mainStripped, readSource(t, path))
	})

	t.Run("confirmation error is returned", func(t *testing.T) {
		dir := t.TempDir()
		writeSource(t, dir, "main.go", mainSrc)

		testErr := errors.New("stdin closed")

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
		ui.EXPECT().Confirm(mock.Anything).Return(false, testErr).Once()

		err := newTestWorkflow(ui).Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir)})
		require.ErrorIs(t, err, testErr)
	})
}

func TestWorkflow_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.go", mainSrc)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()

	var diff string

	ui.EXPECT().DisplayDiff(m.Path(path), mock.Anything).Run(func(_ m.Path, d string) { diff = d }).Once()
	summary := captureSummary(ui)

	err := newTestWorkflow(ui).Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir), DryRun: true})
	require.NoError(t, err)

	assert.Contains(t, diff, "--- "+path+"\toriginal")
	assert.Contains(t, diff, "+++ "+path+"\tdelete")
	assert.Contains(t, diff, "-\tfmt.Println(\"debug: start\")\n")
	assert.NotContains(t, diff, "-\tfmt.Println(\"debug: skip\")")
	assert.Equal(t, mainSrc, readSource(t, path))
	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Changed)
}

func TestWorkflow_OffThenOn(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.go", mainSrc)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Twice()
	ui.EXPECT().DisplaySummary(mock.Anything).Return().Twice()

	wf := newTestWorkflow(ui)

	require.NoError(t, wf.Off(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir), Yes: true}))
	assert.Equal(t, mainOff, readSource(t, path))

	require.NoError(t, wf.On(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir), Yes: true}))
	assert.Equal(t, mainSrc, readSource(t, path))
}

func TestWorkflow_Interactive(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.go", `package main

import "fmt"

func main() {
	fmt.Println("debug: one")
	fmt.Println("debug: two")
}
`)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
	ui.EXPECT().SelectFindings(mock.Anything).RunAndReturn(func(f []m.Finding) ([]m.Finding, error) {
		require.Len(t, f, 2)
		return f[1:], nil
	}).Once()
	captureSummary(ui)

	err := newTestWorkflow(ui).Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir), Interactive: true})
	require.NoError(t, err)

	assert.Equal(t, `package main

import "fmt"

func main() {
	fmt.Println("debug: one")
}
`, readSource(t, path))
}

func TestWorkflow_NoFindings(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.go", "package main\n\nfunc main() {}\n")

	ui := controllermocks.NewMockUI(t)
	summary := captureSummary(ui)

	err := newTestWorkflow(ui).Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir)})
	require.NoError(t, err)
	assert.Equal(t, m.Summary{Action: m.ActionDelete, Files: 1}, *summary)
}

func TestWorkflow_UnsupportedExplicitFile(t *testing.T) {
	dir := t.TempDir()
	notes := writeSource(t, dir, "notes.md", "debug: nothing\n")
	src := writeSource(t, dir, "main.go", mainSrc)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayWarning(fmt.Sprintf("skipped %s: unsupported language: .md", notes)).Once()
	ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
	summary := captureSummary(ui)

	err := newTestWorkflow(ui).List(context.Background(), domain.ListArgs{ScanArgs: scanArgs(notes, src)})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Skipped)
}

func TestWorkflow_Exclude(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.go", mainSrc)
	writeSource(t, dir, "gen.go", mainSrc)

	ui := controllermocks.NewMockUI(t)

	var results []m.FileResult

	ui.EXPECT().DisplayFindings(mock.Anything).Run(func(r []m.FileResult) { results = r }).Return(nil).Once()
	captureSummary(ui)

	args := scanArgs(dir)
	args.Exclude = []string{`gen\.go$`}

	require.NoError(t, newTestWorkflow(ui).List(context.Background(), domain.ListArgs{ScanArgs: args}))
	require.Len(t, results, 1)
	assert.Equal(t, "main.go", filepath.Base(string(results[0].Source.File.Path)))
}

func TestWorkflow_InvalidExclude(t *testing.T) {
	ui := controllermocks.NewMockUI(t)

	args := scanArgs(t.TempDir())
	args.Exclude = []string{"("}

	err := newTestWorkflow(ui).List(context.Background(), domain.ListArgs{ScanArgs: args})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestWorkflow_ProfileLoadError(t *testing.T) {
	testErr := errors.New("bad config")

	profiles := adaptermocks.NewMockProfileStore(t)
	profiles.EXPECT().Load(m.Path("custom.yaml")).Return(m.ProfileSet{}, testErr).Once()

	ui := controllermocks.NewMockUI(t)
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), profiles, adapter.NewReportStore(), ui, domainmocks.NewMockApplier(t), nil)

	args := scanArgs(t.TempDir())
	args.Config = "custom.yaml"

	err := wf.Delete(context.Background(), domain.ChangeArgs{ScanArgs: args, Yes: true})
	require.ErrorIs(t, err, testErr)
	assert.Contains(t, err.Error(), "failed to load profiles")
}

func TestWorkflow_ApplyErrors(t *testing.T) {
	t.Run("changed source is skipped with a warning", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSource(t, dir, "main.go", mainSrc)

		applier := domainmocks.NewMockApplier(t)
		applier.EXPECT().Apply(mock.Anything, mock.Anything).
			Return(fmt.Errorf("%s: %w", path, ErrSourceChanged)).Once()

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
		ui.EXPECT().DisplayWarning(mock.MatchedBy(func(msg string) bool {
			return msg == "skipped "+path+": changed since it was analyzed"
		})).Once()
		summary := captureSummary(ui)

		wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalProfileStore(), adapter.NewReportStore(), ui, applier, nil)

		err := wf.Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir), Yes: true})
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Changed)
		assert.Equal(t, 1, summary.Skipped)
	})

	t.Run("write failure is returned after the summary", func(t *testing.T) {
		dir := t.TempDir()
		writeSource(t, dir, "main.go", mainSrc)

		testErr := errors.New("disk full")

		applier := domainmocks.NewMockApplier(t)
		applier.EXPECT().Apply(mock.Anything, mock.MatchedBy(func(c m.Change) bool {
			return c.Action == m.ActionDelete && c.After == mainStripped && len(c.Findings) == 1
		})).Return(testErr).Once()

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
		captureSummary(ui)

		wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalProfileStore(), adapter.NewReportStore(), ui, applier, nil)

		err := wf.Delete(context.Background(), domain.ChangeArgs{ScanArgs: scanArgs(dir), Yes: true})
		require.ErrorIs(t, err, testErr)
	})
}

func TestWorkflow_ListSaveAndView(t *testing.T) {
	dir := t.TempDir()
	reports := filepath.Join(t.TempDir(), "reports")
	path := writeSource(t, dir, "main.go", mainSrc)
	other := writeSource(t, dir, "clean.go", "package main\n")

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
	captureSummary(ui)

	wf := newTestWorkflow(ui)

	err := wf.List(context.Background(), domain.ListArgs{ScanArgs: scanArgs(dir), Reports: m.Path(reports), Save: true})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(mainStripped), 0o644))

	var (
		loaded []m.Report
		stale  map[m.Path]bool
	)

	ui.EXPECT().DisplayReports(mock.Anything, mock.Anything).Run(func(r []m.Report, s map[m.Path]bool) {
		loaded, stale = r, s
	}).Return(nil).Once()

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: m.Path(reports)}))

	require.Len(t, loaded, 2)
	assert.True(t, stale[m.Path(path)])
	assert.False(t, stale[m.Path(other)])
}

func TestWorkflow_ListChanged(t *testing.T) {
	dir := t.TempDir()
	reports := filepath.Join(t.TempDir(), "reports")
	writeSource(t, dir, "main.go", mainSrc)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
	captureSummary(ui)

	wf := newTestWorkflow(ui)
	require.NoError(t, wf.List(context.Background(), domain.ListArgs{ScanArgs: scanArgs(dir), Reports: m.Path(reports), Save: true}))

	added := writeSource(t, dir, "added.go", mainSrc)

	var results []m.FileResult

	ui.EXPECT().DisplayFindings(mock.Anything).Run(func(r []m.FileResult) { results = r }).Return(nil).Once()
	captureSummary(ui)

	require.NoError(t, wf.List(context.Background(), domain.ListArgs{ScanArgs: scanArgs(dir), Reports: m.Path(reports), Changed: true}))

	require.Len(t, results, 1)
	assert.Equal(t, m.Path(added), results[0].Source.File.Path)
}

func TestWorkflow_ViewLoadError(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	store.EXPECT().LoadReports(m.Path("missing")).Return(nil, os.ErrNotExist).Once()

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalProfileStore(), store, controllermocks.NewMockUI(t), nil, nil)

	err := wf.View(context.Background(), domain.ViewArgs{Reports: "missing"})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWorkflow_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.go", mainSrc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := controllermocks.NewMockUI(t)

	err := newTestWorkflow(ui).List(ctx, domain.ListArgs{ScanArgs: scanArgs(dir)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_AllFlagsEveryOutputCall(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.go", mainSrc)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayFindings(mock.Anything).Return(nil).Once()
	summary := captureSummary(ui)

	args := scanArgs(dir)
	args.All = true

	require.NoError(t, newTestWorkflow(ui).List(context.Background(), domain.ListArgs{ScanArgs: args}))
	assert.Equal(t, 2, summary.Findings)
	assert.Equal(t, 1, summary.Ignored)
}
