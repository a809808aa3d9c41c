package controller

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// SimpleUI implements UI using cobra Command's output and input streams.
type SimpleUI struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFindings prints findings grouped by file, one numbered line per
// physical line.
func (s *SimpleUI) DisplayFindings(results []m.FileResult) error {
	first := true

	for _, r := range results {
		if r.Err != nil || len(r.Findings) == 0 {
			continue
		}

		if !first {
			s.printf("\n")
		}

		first = false

		s.printf("%s\n", r.Source.File.Path)

		for _, f := range r.Findings {
			s.printFinding(f)
		}
	}

	return nil
}

func (s *SimpleUI) printFinding(f m.Finding) {
	lines := findingLines(f)

	for i, l := range lines {
		sep := ":"
		if i > 0 {
			sep = "-"
		}

		suffix := ""
		if f.Ignored && i == len(lines)-1 {
			suffix = "  [ignored]"
		}

		s.printf("%d%s%s%s\n", l.num, sep, l.text, suffix)
	}
}

// SelectFindings asks about every finding in turn.
func (s *SimpleUI) SelectFindings(findings []m.Finding) ([]m.Finding, error) {
	var selected []m.Finding

	for _, f := range findings {
		ok, err := s.Confirm(fmt.Sprintf("%s:%d: %s", f.Path, f.Statement.StartLine, strings.TrimSpace(f.Statement.Text)))
		if err != nil {
			return nil, err
		}

		if ok {
			selected = append(selected, f)
		}
	}

	return selected, nil
}

// Confirm prints prompt and reads a y/n answer. End of input counts as no.
func (s *SimpleUI) Confirm(prompt string) (bool, error) {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	s.printf("%s [y/N]: ", prompt)

	answer, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	if errors.Is(err, io.EOF) && answer == "" {
		s.printf("\n")
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// DisplayDiff prints a unified diff as is.
func (s *SimpleUI) DisplayDiff(_ m.Path, diff string) {
	s.printf("%s", diff)

	if diff != "" && !strings.HasSuffix(diff, "\n") {
		s.printf("\n")
	}
}

// DisplayWarning prints to the command's error stream.
func (s *SimpleUI) DisplayWarning(message string) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: %s\n", message)
}

// DisplaySummary prints the run totals as a table.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	var tableBuffer bytes.Buffer

	header := []string{"Files", "Debug Statements", "Ignored", "Skipped"}
	row := []string{
		fmt.Sprintf("%d", summary.Files),
		fmt.Sprintf("%d", summary.Findings),
		fmt.Sprintf("%d", summary.Ignored),
		fmt.Sprintf("%d", summary.Skipped),
	}

	if summary.Action != m.ActionList {
		changed := "Changed"
		if summary.DryRun {
			changed = "Would Change"
		}

		header = append(header, changed)
		row = append(row, fmt.Sprintf("%d", summary.Changed))
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append(row)
	table.Render()

	s.printf("\n%s", tableBuffer.String())
}

// DisplayReports prints saved reports as a table.
func (s *SimpleUI) DisplayReports(reports []m.Report, stale map[m.Path]bool) error {
	if len(reports) == 0 {
		s.printf("no reports found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Profile", "Debug", "Ignored", "Scanned", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	total := 0

	for _, r := range reports {
		c := countFindings(r.Findings)
		total += c.debug

		status := "current"
		if stale[r.Source.File.Path] {
			status = "stale"
		}

		table.Append([]string{
			string(r.Source.File.Path),
			r.Source.Profile,
			fmt.Sprintf("%d", c.debug),
			fmt.Sprintf("%d", c.ignored),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			status,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		fmt.Sprintf("%d", total),
		"", "", "",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
