package domain

import (
	"testing"

	m "github.com/mouse-blink/dbgc/internal/model"
)

func TestUnifiedDiff(t *testing.T) {
	c := m.Change{
		Source: m.Source{File: m.File{Path: "src/main.c"}},
		Action: m.ActionCommentOut,
		Before: "int main() {\n    printf(\"debug: x\");\n    return 0;\n}\n",
		After:  "int main() {\n    // printf(\"debug: x\");\n    return 0;\n}\n",
	}

	got, err := unifiedDiff(c)
	if err != nil {
		t.Fatalf("unifiedDiff() error = %v", err)
	}

	want := "--- src/main.c\toriginal\n" +
		"+++ src/main.c\tcomment out\n" +
		"@@ -1,4 +1,4 @@\n" +
		" int main() {\n" +
		"-    printf(\"debug: x\");\n" +
		"+    // printf(\"debug: x\");\n" +
		"     return 0;\n" +
		" }\n"

	if got != want {
		t.Errorf("unifiedDiff() =\n%s\nwant\n%s", got, want)
	}
}

func TestUnifiedDiff_NoChange(t *testing.T) {
	c := m.Change{Source: m.Source{File: m.File{Path: "a.go"}}, Before: "x\n", After: "x\n"}

	got, err := unifiedDiff(c)
	if err != nil {
		t.Fatalf("unifiedDiff() error = %v", err)
	}

	if got != "" {
		t.Errorf("unifiedDiff() = %q, want empty", got)
	}
}
