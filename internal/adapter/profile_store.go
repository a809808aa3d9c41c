package adapter

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/dbgc/internal/model"
)

//go:embed profiles/builtin.yaml
var builtinProfiles []byte

// DefaultConfigFiles are looked up in the working directory when no config
// path is given.
var DefaultConfigFiles = []string{".dbgc.yaml", ".dbgc.yml", ".dbgc.toml"}

// ProfileStore resolves the language profiles for a run.
type ProfileStore interface {
	// Load returns the built-in profiles overlaid with the config at path.
	// An empty path falls back to DefaultConfigFiles; a missing default file
	// is not an error.
	Load(path m.Path) (m.ProfileSet, error)
}

type profileFile struct {
	Markers  []string        `yaml:"markers,omitempty" toml:"markers,omitempty"`
	Profiles []profileRecord `yaml:"profiles,omitempty" toml:"profiles,omitempty"`
}

type profileRecord struct {
	Name                 string            `yaml:"name" toml:"name"`
	Extensions           []string          `yaml:"extensions,omitempty" toml:"extensions,omitempty"`
	LineComment          *string           `yaml:"line_comment,omitempty" toml:"line_comment,omitempty"`
	BlockComment         *delimitersRecord `yaml:"block_comment,omitempty" toml:"block_comment,omitempty"`
	Quotes               []quoteRecord     `yaml:"quotes,omitempty" toml:"quotes,omitempty"`
	LineContinuation     *string           `yaml:"line_continuation,omitempty" toml:"line_continuation,omitempty"`
	CommentSplicing      *bool             `yaml:"comment_splicing,omitempty" toml:"comment_splicing,omitempty"`
	Terminator           *string           `yaml:"terminator,omitempty" toml:"terminator,omitempty"`
	ContinuationSuffixes []string          `yaml:"continuation_suffixes,omitempty" toml:"continuation_suffixes,omitempty"`
	ContinuationPrefixes []string          `yaml:"continuation_prefixes,omitempty" toml:"continuation_prefixes,omitempty"`
	OutputCalls          []string          `yaml:"output_calls,omitempty" toml:"output_calls,omitempty"`
	DebugCalls           []string          `yaml:"debug_calls,omitempty" toml:"debug_calls,omitempty"`
	Markers              []string          `yaml:"markers,omitempty" toml:"markers,omitempty"`
}

type delimitersRecord struct {
	Open  string `yaml:"open" toml:"open"`
	Close string `yaml:"close" toml:"close"`
}

type quoteRecord struct {
	Delimiter string `yaml:"delimiter" toml:"delimiter"`
	Close     string `yaml:"close,omitempty" toml:"close,omitempty"`
	Escape    string `yaml:"escape,omitempty" toml:"escape,omitempty"`
	Multiline bool   `yaml:"multiline,omitempty" toml:"multiline,omitempty"`
	Char      bool   `yaml:"char,omitempty" toml:"char,omitempty"`
}

// LocalProfileStore reads profile configs from disk.
type LocalProfileStore struct{}

// NewLocalProfileStore constructs a LocalProfileStore.
func NewLocalProfileStore() *LocalProfileStore {
	return &LocalProfileStore{}
}

func builtinFile() (profileFile, error) {
	var base profileFile
	if err := yaml.Unmarshal(builtinProfiles, &base); err != nil {
		return profileFile{}, fmt.Errorf("failed to parse built-in profiles: %w", err)
	}

	return base, nil
}

// DefaultProfiles returns the built-in profiles.
func DefaultProfiles() (m.ProfileSet, error) {
	base, err := builtinFile()
	if err != nil {
		return m.ProfileSet{}, err
	}

	return overlay(nil, nil, base)
}

// Load implements ProfileStore.
func (s *LocalProfileStore) Load(path m.Path) (m.ProfileSet, error) {
	base, err := builtinFile()
	if err != nil {
		return m.ProfileSet{}, err
	}

	set, err := overlay(nil, nil, base)
	if err != nil {
		return m.ProfileSet{}, err
	}

	configPath := string(path)
	if configPath == "" {
		configPath = findDefaultConfig()
		if configPath == "" {
			return set, nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return m.ProfileSet{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	user, err := decodeProfileFile(configPath, data)
	if err != nil {
		return m.ProfileSet{}, err
	}

	return overlay(set.Profiles, base.Markers, user)
}

func findDefaultConfig() string {
	for _, name := range DefaultConfigFiles {
		if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() {
			return name
		}
	}

	return ""
}

func decodeProfileFile(path string, data []byte) (profileFile, error) {
	var pf profileFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &pf); err != nil {
			return profileFile{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return profileFile{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	return pf, nil
}

// overlay applies pf on top of base. Records are matched by name; fields left
// unset in a record keep the base value. File-level markers replace the
// markers of every profile that does not set its own. A new profile without
// markers of either kind gets defaultMarkers.
func overlay(base []m.Profile, defaultMarkers []string, pf profileFile) (m.ProfileSet, error) {
	markers := pf.Markers
	if markers == nil {
		markers = defaultMarkers
	}

	profiles := make([]m.Profile, len(base))
	copy(profiles, base)

	if pf.Markers != nil {
		for i := range profiles {
			profiles[i].DebugMarkers = pf.Markers
		}
	}

	for _, rec := range pf.Profiles {
		if rec.Name == "" {
			return m.ProfileSet{}, errors.New("profile without a name")
		}

		idx := -1

		for i := range profiles {
			if profiles[i].Name == rec.Name {
				idx = i
				break
			}
		}

		if idx < 0 {
			if len(rec.Extensions) == 0 {
				return m.ProfileSet{}, fmt.Errorf("profile %s: extensions are required", rec.Name)
			}

			profiles = append(profiles, m.Profile{Name: rec.Name, DebugMarkers: markers})
			idx = len(profiles) - 1
		}

		if err := applyRecord(&profiles[idx], rec); err != nil {
			return m.ProfileSet{}, err
		}
	}

	return m.ProfileSet{Profiles: profiles}, nil
}

func applyRecord(p *m.Profile, rec profileRecord) error {
	if rec.Extensions != nil {
		p.Extensions = rec.Extensions
	}

	if rec.LineComment != nil {
		p.LineComment = *rec.LineComment
	}

	if rec.BlockComment != nil {
		if rec.BlockComment.Open == "" || rec.BlockComment.Close == "" {
			p.BlockComment = nil
		} else {
			p.BlockComment = &m.Delimiters{Open: rec.BlockComment.Open, Close: rec.BlockComment.Close}
		}
	}

	if rec.Quotes != nil {
		quotes := make([]m.QuoteRule, 0, len(rec.Quotes))

		for _, q := range rec.Quotes {
			if q.Delimiter == "" {
				return fmt.Errorf("profile %s: quote without delimiter", rec.Name)
			}

			if len(q.Escape) > 1 {
				return fmt.Errorf("profile %s: escape %q must be a single byte", rec.Name, q.Escape)
			}

			rule := m.QuoteRule{Delimiter: q.Delimiter, Close: q.Close, Multiline: q.Multiline, Char: q.Char}
			if q.Escape != "" {
				rule.Escape = q.Escape[0]
			}

			quotes = append(quotes, rule)
		}

		p.Quotes = quotes
	}

	if rec.LineContinuation != nil {
		p.LineContinuation = *rec.LineContinuation
	}

	if rec.CommentSplicing != nil {
		p.CommentSplicing = *rec.CommentSplicing
	}

	if rec.Terminator != nil {
		p.Terminator = *rec.Terminator
	}

	if rec.ContinuationSuffixes != nil {
		p.ContinuationSuffixes = rec.ContinuationSuffixes
	}

	if rec.ContinuationPrefixes != nil {
		p.ContinuationPrefixes = rec.ContinuationPrefixes
	}

	if rec.OutputCalls != nil {
		p.OutputCalls = rec.OutputCalls
	}

	if rec.DebugCalls != nil {
		p.DebugCalls = rec.DebugCalls
	}

	if rec.Markers != nil {
		p.DebugMarkers = rec.Markers
	}

	return nil
}
