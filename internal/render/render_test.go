package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/cornerstones/internal/docs"
	"github.com/itsmostafa/cornerstones/internal/progress"
)

const doc = "## 1. Intro\n" +
	"Welcome **text**.\n" +
	"- [Tour](https://go.dev/tour) - - interactive\n" +
	"### Basics\n" +
	"- Step one\n" +
	"- Step two\n" +
	"---\n" +
	"```go\nif a < b {}\n```\n" +
	"## 2. Next\n"

func TestHTMLSection(t *testing.T) {
	sections := docs.Parse(doc)
	require.Len(t, sections, 2)

	h, err := NewHTML(ModeServer)
	require.NoError(t, err)

	done := progress.ItemKey("1-intro", "basics", 0, 0)
	var buf bytes.Buffer
	require.NoError(t, h.Section(&buf, sections, &sections[0], map[string]bool{done: true}))
	out := buf.String()

	assert.Contains(t, out, "<h1>Intro</h1>")
	assert.Contains(t, out, "Recommended Learning")
	assert.Contains(t, out, "<strong>text</strong>")
	assert.Contains(t, out, `href="https://go.dev/tour"`)
	assert.Contains(t, out, "<span>interactive</span>")
	assert.Contains(t, out, `<li data-key="`+done+`" class="done">`)
	assert.Contains(t, out, `data-key="1-intro:basics:list-0:1"><span`)
	assert.Contains(t, out, "<hr>")
	assert.Contains(t, out, "if a &lt; b {}")
	assert.Contains(t, out, `<section id="basics">`)
	assert.Contains(t, out, `data-mode="server"`)
	assert.Contains(t, out, `<a href="/1-intro" class="active">Intro <small>1/2</small></a>`)
	assert.Contains(t, out, `<a href="/2-next">Next</a>`)
}

func TestHTMLEscapesSource(t *testing.T) {
	sections := docs.Parse("## A\n<script>alert(1)</script>\n- [x](javascript:alert(1))\n")
	h, err := NewHTML(ModeStatic)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.Section(&buf, sections, &sections[0], nil))
	out := buf.String()

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.NotContains(t, out, `href="javascript:`)
	assert.Contains(t, out, `data-mode="static"`)
}

func TestHTMLNoContentAndNotFound(t *testing.T) {
	h, err := NewHTML(ModeServer)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.NoContent(&buf))
	assert.Contains(t, buf.String(), NoContentMessage)

	buf.Reset()
	require.NoError(t, h.NotFound(&buf, docs.Parse(doc)))
	assert.Contains(t, buf.String(), "Not found")
	assert.Contains(t, buf.String(), `href="/2-next"`)
}

func TestToggleScriptIgnoresFailedRequests(t *testing.T) {
	h, err := NewHTML(ModeServer)
	require.NoError(t, err)

	var buf bytes.Buffer
	sections := docs.Parse(doc)
	require.NoError(t, h.Section(&buf, sections, &sections[0], nil))
	out := buf.String()

	assert.Contains(t, out, "if (!r.ok)")
	assert.Contains(t, out, "res.completed === true")
}

func TestTerminalSection(t *testing.T) {
	sections := docs.Parse(doc)

	var buf bytes.Buffer
	term := NewTerminal(&buf, 60)
	done := progress.ItemKey("1-intro", "basics", 0, 1)
	term.Section(&sections[0], map[string]bool{done: true})
	out := buf.String()

	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "1/2 (50%)")
	assert.Contains(t, out, "RECOMMENDED LEARNING")
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "https://go.dev/tour")
	assert.Contains(t, out, "[ ] Step one")
	assert.Contains(t, out, "[✓]")
	assert.Contains(t, out, "GO")
	assert.Contains(t, out, "if a < b {}")
}

func TestSectionTable(t *testing.T) {
	var buf bytes.Buffer
	SectionTable(&buf, docs.Parse(doc), nil)
	out := buf.String()

	assert.Contains(t, out, "1-intro")
	assert.Contains(t, out, "0/2")
	assert.Contains(t, out, "2-next")
	assert.Equal(t, 1, strings.Count(out, "SLUG"))
}

func TestLinkDescription(t *testing.T) {
	assert.Equal(t, "docs", LinkDescription(docs.LinkItem{Description: "- docs"}))
	assert.Equal(t, "docs", LinkDescription(docs.LinkItem{Description: "docs"}))
	assert.Equal(t, "", LinkDescription(docs.LinkItem{}))
}
