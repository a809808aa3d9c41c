package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// List item types.
type findingItem struct {
	finding  m.Finding
	selected bool
}

func (f findingItem) FilterValue() string {
	return string(f.finding.Path) + " " + f.finding.Statement.Text
}

func (f findingItem) label() string {
	text := strings.TrimSpace(splitKeepEmpty(f.finding.Statement.Text)[0])
	if f.finding.Statement.Lines() > 1 {
		text += " …"
	}

	return fmt.Sprintf("%s:%d  %s", f.finding.Path, f.finding.Statement.StartLine, text)
}
