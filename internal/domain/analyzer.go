package domain

import (
	"context"
	"fmt"

	"github.com/mouse-blink/dbgc/internal/domain/detector"
	m "github.com/mouse-blink/dbgc/internal/model"
)

// analyzer runs the detector matching each file. Detectors are built once per
// run and shared by the workers.
type analyzer struct {
	profiles  m.ProfileSet
	detectors map[string]*detector.Detector
}

func newAnalyzer(profiles m.ProfileSet, detectAll bool) (*analyzer, error) {
	var opts []detector.Option
	if detectAll {
		opts = append(opts, detector.WithDetectAll())
	}

	a := &analyzer{
		profiles:  profiles,
		detectors: make(map[string]*detector.Detector, len(profiles.Profiles)),
	}

	for _, p := range profiles.Profiles {
		d, err := detector.New(p, opts...)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}

		a.detectors[p.Name] = d
	}

	return a, nil
}

func (a *analyzer) supports(path string) bool {
	_, err := a.profiles.ForPath(path)
	return err == nil
}

func (a *analyzer) detectorFor(path m.Path) (*detector.Detector, error) {
	p, err := a.profiles.ForPath(string(path))
	if err != nil {
		return nil, err
	}

	return a.detectors[p.Name], nil
}

// Analyze returns the debug findings of content relevant to action. Uncomment
// looks for commented-out statements; every other action for live ones,
// suppressed findings included.
func (a *analyzer) Analyze(ctx context.Context, source m.Source, content string, action m.Action) ([]m.Finding, error) {
	d, err := a.detectorFor(source.File.Path)
	if err != nil {
		return nil, err
	}

	var found []m.Finding

	if action == m.ActionUncomment {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found = d.FindCommented(content)
	} else {
		all, err := d.ClassifyContext(ctx, content)
		if err != nil {
			return nil, err
		}

		for _, f := range all {
			if f.IsDebug {
				found = append(found, f)
			}
		}
	}

	for i := range found {
		found[i].Path = source.File.Path
	}

	return found, nil
}

// Rewrite applies action to the given findings of content.
func (a *analyzer) Rewrite(source m.Source, content string, action m.Action, findings []m.Finding) (string, error) {
	d, err := a.detectorFor(source.File.Path)
	if err != nil {
		return "", err
	}

	switch action {
	case m.ActionDelete:
		return detector.Remove(content, detector.Spans(findings)), nil
	case m.ActionCommentOut:
		return d.CommentOut(content, findings), nil
	case m.ActionUncomment:
		return d.Uncomment(content, findings), nil
	default:
		return "", fmt.Errorf("action %q does not rewrite files", action)
	}
}
