package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/dbgc/internal/model"
)

var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	lineNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	ignoredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TUIOption configures a TUI.
type TUIOption func(*TUI)

// WithProgramOptions passes extra options to every Bubble Tea program the TUI
// starts.
func WithProgramOptions(opts ...tea.ProgramOption) TUIOption {
	return func(t *TUI) {
		t.programOpts = append(t.programOpts, opts...)
	}
}

// TUI implements UI using lipgloss styling and Bubble Tea prompts.
type TUI struct {
	input       io.Reader
	output      io.Writer
	programOpts []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer, opts ...TUIOption) *TUI {
	t := &TUI{input: input, output: output}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// DisplayFindings prints findings grouped by file with the matched marker
// highlighted.
func (t *TUI) DisplayFindings(results []m.FileResult) error {
	var b strings.Builder

	for _, r := range results {
		if r.Err != nil || len(r.Findings) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("\n")
		}

		b.WriteString(pathStyle.Render(string(r.Source.File.Path)))
		b.WriteString("\n")

		for _, f := range r.Findings {
			writeStyledFinding(&b, f)
		}
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func writeStyledFinding(b *strings.Builder, f m.Finding) {
	lines := findingLines(f)

	for i, l := range lines {
		num := lineNumStyle.Render(fmt.Sprintf("%d", l.num))

		if f.Ignored {
			text := ignoredStyle.Render(l.text)
			if i == len(lines)-1 {
				text += " " + ignoredStyle.Render("(ignored)")
			}

			fmt.Fprintf(b, "%s:%s\n", num, text)

			continue
		}

		fmt.Fprintf(b, "%s:%s\n", num, highlight(l.text, f.MatchedMarker))
	}
}

func highlight(text, marker string) string {
	start, end := markerRange(text, marker)
	if start < 0 {
		return text
	}

	return text[:start] + markerStyle.Render(text[start:end]) + text[end:]
}

// SelectFindings runs an interactive multi-select list with every finding
// selected up front. Cancelling selects nothing.
func (t *TUI) SelectFindings(findings []m.Finding) ([]m.Finding, error) {
	if len(findings) == 0 {
		return nil, nil
	}

	items := make([]list.Item, 0, len(findings))
	for _, f := range findings {
		items = append(items, findingItem{finding: f, selected: true})
	}

	model := newSelectModel(items)
	if width, height, ok := t.size(); ok {
		model = model.resize(width, height)
	}

	final, err := t.run(model, tea.WithAltScreen())
	if err != nil {
		return nil, err
	}

	sm, ok := final.(selectModel)
	if !ok || sm.aborted {
		return nil, nil
	}

	var selected []m.Finding
	for _, fi := range sm.selectedItems() {
		selected = append(selected, fi.finding)
	}

	return selected, nil
}

// Confirm asks a yes/no question with a single key press.
func (t *TUI) Confirm(prompt string) (bool, error) {
	final, err := t.run(newConfirmModel(prompt))
	if err != nil {
		return false, err
	}

	cm, ok := final.(confirmModel)

	return ok && cm.answer, nil
}

// DisplayDiff prints a colored unified diff.
func (t *TUI) DisplayDiff(_ m.Path, diff string) {
	var b strings.Builder

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		text, nl := strings.CutSuffix(line, "\n")

		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			text = pathStyle.Render(text)
		case strings.HasPrefix(text, "@@"):
			text = hunkStyle.Render(text)
		case strings.HasPrefix(text, "+"):
			text = addedStyle.Render(text)
		case strings.HasPrefix(text, "-"):
			text = removedStyle.Render(text)
		}

		b.WriteString(text)

		if nl {
			b.WriteString("\n")
		}
	}

	_, _ = fmt.Fprint(t.output, b.String())
}

// DisplayWarning prints a highlighted warning line.
func (t *TUI) DisplayWarning(message string) {
	_, _ = fmt.Fprintln(t.output, warningStyle.Render("warning: "+message))
}

// DisplaySummary prints a one-line summary of the run.
func (t *TUI) DisplaySummary(summary m.Summary) {
	_, _ = fmt.Fprintln(t.output)
	_, _ = fmt.Fprintln(t.output, summaryLine(summary))
}

func summaryLine(s m.Summary) string {
	count := func(n int) string { return accentStyle.Render(fmt.Sprintf("%d", n)) }

	var head string

	switch {
	case s.Action == m.ActionList:
		head = fmt.Sprintf("Found %s debug %s in %s %s",
			count(s.Findings), plural(s.Findings, "statement"), count(s.Files), plural(s.Files, "file"))
	case s.DryRun:
		head = fmt.Sprintf("Would %s %s debug %s in %s %s",
			s.Action.Verb(), count(s.Findings), plural(s.Findings, "statement"), count(s.Changed), plural(s.Changed, "file"))
	default:
		head = fmt.Sprintf("%s %s debug %s in %s %s",
			capitalize(s.Action.Verb()), count(s.Findings), plural(s.Findings, "statement"), count(s.Changed), plural(s.Changed, "file"))
	}

	var extra []string
	if s.Ignored > 0 {
		extra = append(extra, fmt.Sprintf("%d ignored", s.Ignored))
	}

	if s.Skipped > 0 {
		extra = append(extra, fmt.Sprintf("%d skipped", s.Skipped))
	}

	if len(extra) == 0 {
		return head
	}

	return head + " (" + strings.Join(extra, ", ") + ")"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// DisplayReports prints one styled line per saved report.
func (t *TUI) DisplayReports(reports []m.Report, stale map[m.Path]bool) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(t.output, "no reports found")
		return err
	}

	var b strings.Builder

	total := 0

	for _, r := range reports {
		c := countFindings(r.Findings)
		total += c.debug

		status := accentStyle.Render("current")
		if stale[r.Source.File.Path] {
			status = warningStyle.Render("stale")
		}

		fmt.Fprintf(&b, "%s  %s debug, %d ignored  %s  %s\n",
			pathStyle.Render(string(r.Source.File.Path)),
			lineNumStyle.Render(fmt.Sprintf("%d", c.debug)),
			c.ignored,
			ignoredStyle.Render(r.CreatedAt.Local().Format("2006-01-02 15:04")),
			status,
		)
	}

	fmt.Fprintf(&b, "\n%d %s, %d debug %s\n", len(reports), plural(len(reports), "report"), total, plural(total, "statement"))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func (t *TUI) run(model tea.Model, extra ...tea.ProgramOption) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithInput(t.input), tea.WithOutput(t.output)}
	opts = append(opts, extra...)
	opts = append(opts, t.programOpts...)

	return tea.NewProgram(model, opts...).Run()
}

func (t *TUI) size() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
