package detector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/dbgc/internal/model"
)

func TestCommentOut_UncommentRoundTrip(t *testing.T) {
	d := newDetector(t, "go")

	src := "func f() {\n" +
		"\tfmt.Println(\"debug: a\",\n" +
		"\t\t1)\n" +
		"\tx := 2\n" +
		"}\n"

	off := d.CommentOut(src, d.Classify(src))
	assert.Equal(t, "func f() {\n"+
		"\t// fmt.Println(\"debug: a\",\n"+
		"\t\t// 1)\n"+
		"\tx := 2\n"+
		"}\n", off)

	assert.Empty(t, Debug(d.Classify(off)))

	commented := d.FindCommented(off)
	require.Len(t, commented, 1)
	assert.Equal(t, m.Span{StartLine: 2, EndLine: 3}, commented[0].Statement.Span())
	assert.Equal(t, m.KindComment, commented[0].Statement.Kind)
	assert.Equal(t, "debug:", commented[0].MatchedMarker)

	assert.Equal(t, src, d.Uncomment(off, commented))
}

func TestCommentOut_UncommentClosureArgument(t *testing.T) {
	d := newDetector(t, "go")

	src := "func f() {\n" +
		"\tlog.Println(\"debug: took\", timed(func() {\n" +
		"\t\twork()\n" +
		"\t}))\n" +
		"}\n"

	off := d.CommentOut(src, d.Classify(src))
	assert.Equal(t, "func f() {\n"+
		"\t// log.Println(\"debug: took\", timed(func() {\n"+
		"\t\t// work()\n"+
		"\t// }))\n"+
		"}\n", off)

	commented := d.FindCommented(off)
	require.Len(t, commented, 1)
	assert.Equal(t, m.Span{StartLine: 2, EndLine: 4}, commented[0].Statement.Span())

	assert.Equal(t, src, d.Uncomment(off, commented))
}

func TestCommentOut_SkipsIgnoredAndBlankLines(t *testing.T) {
	d := newDetector(t, "python")

	src := "print(\"debug: a\",\n\n      1)\nprint(\"debug: b\")  # dbgc:ignore\n"

	want := "# print(\"debug: a\",\n\n      # 1)\nprint(\"debug: b\")  # dbgc:ignore\n"
	assert.Equal(t, want, d.CommentOut(src, d.Classify(src)))
}

func TestCommentOut_BlockCommentFallback(t *testing.T) {
	p := m.Profile{
		Name:         "block",
		BlockComment: &m.Delimiters{Open: "/*", Close: "*/"},
		Quotes:       []m.QuoteRule{{Delimiter: `"`, Escape: '\\'}},
		OutputCalls:  []string{"out"},
		DebugMarkers: []string{"debug:"},
	}

	d, err := New(p)
	require.NoError(t, err)

	src := "  out(\"debug: x\")\nkeep()\n"
	assert.Equal(t, "  /* out(\"debug: x\") */\nkeep()\n", d.CommentOut(src, d.Classify(src)))
	assert.Nil(t, d.FindCommented(src))
}

func TestCommentOut_PreservesCRLF(t *testing.T) {
	d := newDetector(t, "go")

	src := "fmt.Println(\"debug: a\")\r\nx := 1\r\n"
	assert.Equal(t, "// fmt.Println(\"debug: a\")\r\nx := 1\r\n", d.CommentOut(src, d.Classify(src)))
}

func TestFindCommented_Fixture(t *testing.T) {
	d := newDetector(t, "go")

	data, err := os.ReadFile(filepath.Join("testdata", "mixed.go"))
	require.NoError(t, err)

	found := d.FindCommented(string(data))
	require.Len(t, found, 1)
	assert.Equal(t, 17, found[0].Statement.StartLine)
	assert.Equal(t, 17, found[0].Statement.EndLine)
}

func TestFindCommented_SplicedComment(t *testing.T) {
	d := newDetector(t, "cpp")

	src := "// note\n" +
		"// std::cout << \"debug: value=\" << v << \\\n" +
		"\" done\" << std::endl;\n" +
		"int x = 1;\n"

	found := d.FindCommented(src)
	require.Len(t, found, 1)
	assert.Equal(t, m.Span{StartLine: 2, EndLine: 3}, found[0].Statement.Span())

	on := d.Uncomment(src, found)
	assert.Equal(t, "// note\n"+
		"std::cout << \"debug: value=\" << v << \\\n"+
		"\" done\" << std::endl;\n"+
		"int x = 1;\n", on)
}

func TestStripLineComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"\t// x()", "\tx()", true},
		{"//x()", "x()", true},
		{"  #  x()", "  #  x()", false},
		{"x() // y", "x() // y", false},
	}

	for _, tt := range tests {
		got, ok := stripLineComment(tt.in, "//")
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
