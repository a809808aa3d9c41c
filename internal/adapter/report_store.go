package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/dbgc/internal/model"
)

const indexFileName = "_index.yaml"

// ReportStore persists and retrieves scan reports.
type ReportStore interface {
	// SaveReports writes one YAML file per report, replacing older reports of
	// the same sources, and regenerates the index.
	SaveReports(path m.Path, reports []m.Report) error
	// LoadReports reads every report in the directory, ordered by source path.
	LoadReports(path m.Path) ([]m.Report, error)
	// CheckUpdates returns the files whose stored report is missing or was
	// made from different content, plus stored sources absent from files.
	CheckUpdates(path m.Path, files []m.File) ([]m.File, error)
}

// LocalReportStore keeps reports as YAML files in a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Source    sourceYAML    `yaml:"source"`
	Action    string        `yaml:"action"`
	CreatedAt time.Time     `yaml:"created_at"`
	Findings  []findingYAML `yaml:"findings"`
}

type sourceYAML struct {
	Path    string `yaml:"path"`
	Hash    string `yaml:"hash"`
	Profile string `yaml:"profile,omitempty"`
}

type findingYAML struct {
	StartLine int    `yaml:"start_line"`
	EndLine   int    `yaml:"end_line"`
	Kind      string `yaml:"kind"`
	Text      string `yaml:"text"`
	Debug     bool   `yaml:"debug"`
	Ignored   bool   `yaml:"ignored,omitempty"`
	Marker    string `yaml:"marker,omitempty"`
	Target    string `yaml:"target,omitempty"`
}

type indexYAML struct {
	Files           int          `yaml:"files"`
	TotalFindings   int          `yaml:"total_findings"`
	IgnoredFindings int          `yaml:"ignored_findings"`
	Reports         []indexEntry `yaml:"reports"`
}

type indexEntry struct {
	Path     string `yaml:"path"`
	Hash     string `yaml:"hash"`
	Report   string `yaml:"report"`
	Findings int    `yaml:"findings"`
}

// SaveReports implements ReportStore.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return errors.New("reports directory path is required")
	}

	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	existing, err := rs.readAll(path)
	if err != nil {
		return err
	}

	incoming := make(map[string]struct{}, len(reports))
	for _, r := range reports {
		incoming[string(r.Source.File.Path)] = struct{}{}
	}

	for name, r := range existing {
		if _, replaced := incoming[r.Source.Path]; !replaced {
			continue
		}

		if err := os.Remove(filepath.Join(string(path), name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove stale report %s: %w", name, err)
		}
	}

	for _, r := range reports {
		data, err := yaml.Marshal(toReportYAML(r))
		if err != nil {
			return fmt.Errorf("failed to encode report for %s: %w", r.Source.File.Path, err)
		}

		name := rs.computeReportHash(r) + ".yaml"
		if err := os.WriteFile(filepath.Join(string(path), name), data, 0o600); err != nil {
			return fmt.Errorf("failed to write report %s: %w", name, err)
		}
	}

	return rs.RegenerateIndex(path)
}

// LoadReports implements ReportStore.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	if err := requireDir(path); err != nil {
		return nil, err
	}

	stored, err := rs.readAll(path)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(stored))
	for _, r := range stored {
		reports = append(reports, fromReportYAML(r))
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Source.File.Path < reports[j].Source.File.Path
	})

	return reports, nil
}

// CheckUpdates implements ReportStore.
func (rs *LocalReportStore) CheckUpdates(path m.Path, files []m.File) ([]m.File, error) {
	if path == "" {
		return nil, errors.New("reports directory path is required")
	}

	info, err := os.Stat(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return files, nil
	}

	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	stored, err := rs.readAll(path)
	if err != nil {
		return nil, err
	}

	hashes := make(map[string]string, len(stored))
	for _, r := range stored {
		hashes[r.Source.Path] = r.Source.Hash
	}

	var changed []m.File

	for _, f := range files {
		if h, ok := hashes[string(f.Path)]; !ok || h != f.Hash {
			changed = append(changed, f)
		}

		delete(hashes, string(f.Path))
	}

	missing := make([]string, 0, len(hashes))
	for p := range hashes {
		missing = append(missing, p)
	}

	sort.Strings(missing)

	for _, p := range missing {
		changed = append(changed, m.File{Path: m.Path(p), Hash: hashes[p]})
	}

	return changed, nil
}

// RegenerateIndex rewrites _index.yaml from the reports in the directory.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	stored, err := rs.readAll(path)
	if err != nil {
		return err
	}

	idx := indexYAML{Files: len(stored)}

	for name, r := range stored {
		debug := 0

		for _, f := range r.Findings {
			if !f.Debug {
				continue
			}

			if f.Ignored {
				idx.IgnoredFindings++
				continue
			}

			debug++
		}

		idx.TotalFindings += debug
		idx.Reports = append(idx.Reports, indexEntry{
			Path:     r.Source.Path,
			Hash:     r.Source.Hash,
			Report:   name,
			Findings: debug,
		})
	}

	sort.Slice(idx.Reports, func(i, j int) bool {
		return idx.Reports[i].Path < idx.Reports[j].Path
	})

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	return os.WriteFile(filepath.Join(string(path), indexFileName), data, 0o600)
}

// readAll decodes every report file of the directory keyed by file name.
func (rs *LocalReportStore) readAll(path m.Path) (map[string]reportYAML, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	stored := make(map[string]reportYAML, len(entries))

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == indexFileName || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(path), name))
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", name, err)
		}

		var r reportYAML
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", name, err)
		}

		stored[name] = r
	}

	return stored, nil
}

// computeReportHash names a report after its source path, content hash and
// action, so saving the same scan twice overwrites one file.
func (rs *LocalReportStore) computeReportHash(r m.Report) string {
	h := sha256.New()
	h.Write([]byte(r.Source.File.Path))
	h.Write([]byte{0})
	h.Write([]byte(r.Source.File.Hash))
	h.Write([]byte{0})
	h.Write([]byte(r.Action))

	return hex.EncodeToString(h.Sum(nil))[:16]
}

func requireDir(path m.Path) error {
	if path == "" {
		return errors.New("reports directory path is required")
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return fmt.Errorf("reports directory error: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	return nil
}

func toReportYAML(r m.Report) reportYAML {
	out := reportYAML{
		Source: sourceYAML{
			Path:    string(r.Source.File.Path),
			Hash:    r.Source.File.Hash,
			Profile: r.Source.Profile,
		},
		Action:    string(r.Action),
		CreatedAt: r.CreatedAt.UTC(),
		Findings:  make([]findingYAML, 0, len(r.Findings)),
	}

	for _, f := range r.Findings {
		out.Findings = append(out.Findings, findingYAML{
			StartLine: f.Statement.StartLine,
			EndLine:   f.Statement.EndLine,
			Kind:      string(f.Statement.Kind),
			Text:      f.Statement.Text,
			Debug:     f.IsDebug,
			Ignored:   f.Ignored,
			Marker:    f.MatchedMarker,
			Target:    f.Target,
		})
	}

	return out
}

func fromReportYAML(r reportYAML) m.Report {
	src := m.Source{
		File:    m.File{Path: m.Path(r.Source.Path), Hash: r.Source.Hash},
		Profile: r.Source.Profile,
	}

	out := m.Report{
		Source:    src,
		Action:    m.Action(r.Action),
		CreatedAt: r.CreatedAt,
		Findings:  make([]m.Finding, 0, len(r.Findings)),
	}

	for _, f := range r.Findings {
		out.Findings = append(out.Findings, m.Finding{
			Path: src.File.Path,
			Statement: m.Statement{
				StartLine: f.StartLine,
				EndLine:   f.EndLine,
				Text:      f.Text,
				Kind:      m.Kind(f.Kind),
			},
			Classification: m.Classification{
				IsDebug:       f.Debug,
				MatchedMarker: f.Marker,
				Target:        f.Target,
				Ignored:       f.Ignored,
			},
		})
	}

	return out
}
