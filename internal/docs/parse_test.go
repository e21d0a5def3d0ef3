package docs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseEndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Section
	}{
		{
			name: "intro and link subsection",
			input: "## 1. Intro\n" +
				"Welcome text.\n" +
				"### Basics\n" +
				"- [Docs](https://x.test) - official docs\n" +
				"- [Blog](https://y.test)\n",
			want: []Section{{
				Title: "1. Intro",
				Slug:  "1-intro",
				Intro: []Block{{Type: BlockText, Content: "Welcome text."}},
				Subsections: []Subsection{{
					Title: "Basics",
					Slug:  "basics",
					Blocks: []Block{{
						Type: BlockLinks,
						Links: []LinkItem{
							{Text: "Docs", URL: "https://x.test", Description: "official docs"},
							{Text: "Blog", URL: "https://y.test", Description: ""},
						},
					}},
				}},
			}},
		},
		{
			name:  "checklist subsection",
			input: "## Foundations\n### Practice\n- Step one\n- Step two\n",
			want: []Section{{
				Title: "Foundations",
				Slug:  "foundations",
				Subsections: []Subsection{{
					Title: "Practice",
					Slug:  "practice",
					Blocks: []Block{{
						Type: BlockChecklist,
						Items: []ChecklistItem{
							{ID: "Stepone", Text: "Step one"},
							{ID: "Steptwo", Text: "Step two"},
						},
					}},
				}},
			}},
		},
		{
			name:  "preamble is discarded",
			input: "# Cornerstones\nSome front matter.\n\n## A\nBody",
			want: []Section{{
				Title: "A",
				Slug:  "a",
				Intro: []Block{{Type: BlockText, Content: "Body"}},
			}},
		},
		{
			name:  "empty bodies",
			input: "## A\n## B",
			want: []Section{
				{Title: "A", Slug: "a"},
				{Title: "B", Slug: "b"},
			},
		},
		{
			name:  "whitespace only body",
			input: "## A\n   \n\t\n### Sub\n\n",
			want: []Section{{
				Title:       "A",
				Slug:        "a",
				Subsections: []Subsection{{Title: "Sub", Slug: "sub"}},
			}},
		},
		{
			name:  "header lines split even inside a fence",
			input: "## A\n```bash\n## Next\n### Sub\n```\n",
			want: []Section{
				{
					Title: "A",
					Slug:  "a",
					Intro: []Block{{Type: BlockText, Content: "```bash"}},
				},
				{
					Title: "Next",
					Slug:  "next",
					Subsections: []Subsection{{
						Title:  "Sub",
						Slug:   "sub",
						Blocks: []Block{{Type: BlockText, Content: "```"}},
					}},
				},
			},
		},
		{
			name: "unclosed fence stays in its section",
			input: "## A\n```go\nfmt.Println(1)\n\n" +
				"## B\n### Setup\n```sh\necho hi\n```\n",
			want: []Section{
				{
					Title: "A",
					Slug:  "a",
					Intro: []Block{{Type: BlockText, Content: "```go\nfmt.Println(1)"}},
				},
				{
					Title: "B",
					Slug:  "b",
					Subsections: []Subsection{{
						Title: "Setup",
						Slug:  "setup",
						Blocks: []Block{{
							Type: BlockCode,
							Code: &CodeBlock{Language: "sh", Code: "echo hi"},
						}},
					}},
				},
			},
		},
		{
			name:  "crlf line endings",
			input: "## A\r\nHello\r\n### B\r\n- one\r\n",
			want: []Section{{
				Title: "A",
				Slug:  "a",
				Intro: []Block{{Type: BlockText, Content: "Hello"}},
				Subsections: []Subsection{{
					Title:  "B",
					Slug:   "b",
					Blocks: []Block{{Type: BlockChecklist, Items: []ChecklistItem{{ID: "one", Text: "one"}}}},
				}},
			}},
		},
		{
			name:  "third level marker is not a section",
			input: "### Orphan\n## Real",
			want:  []Section{{Title: "Real", Slug: "real"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# Title only\nno sections here"} {
		got := Parse(input)
		if got == nil {
			t.Errorf("Parse(%q) = nil, want empty slice", input)
		}
		if len(got) != 0 {
			t.Errorf("Parse(%q) returned %d sections, want 0", input, len(got))
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1. Intro", "1-intro"},
		{"Hello, World!", "hello-world"},
		{"C++ & Go", "c-go"},
		{"  padded  ", "padded"},
		{"Déjà vu", "d-j-vu"},
		{"---", ""},
		{"already-slugged", "already-slugged"},
		{"Trailing?", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSubsectionSlugStripsTrailingHyphen(t *testing.T) {
	sections := Parse("## A\n### What is Go?\n")
	if len(sections) != 1 || len(sections[0].Subsections) != 1 {
		t.Fatalf("unexpected tree: %+v", sections)
	}
	if got := sections[0].Subsections[0].Slug; got != "what-is-go" {
		t.Errorf("subsection slug = %q, want %q", got, "what-is-go")
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"1. Intro", "Intro"},
		{"12.Advanced Topics", "Advanced Topics"},
		{"Intro", "Intro"},
		{"2024 Roadmap", "2024 Roadmap"},
	}

	for _, tt := range tests {
		s := Section{Title: tt.title}
		if got := s.DisplayTitle(); got != tt.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFindSection(t *testing.T) {
	sections := Parse("## 1. Intro\n### Basics\ntext\n## 2. Next\n")

	t.Run("found", func(t *testing.T) {
		s, ok := FindSection(sections, "2-next")
		if !ok {
			t.Fatal("expected section 2-next to be found")
		}
		if s.Title != "2. Next" {
			t.Errorf("Title = %q, want %q", s.Title, "2. Next")
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, ok := FindSection(sections, "nope"); ok {
			t.Error("expected missing slug to report not found")
		}
	})

	t.Run("subsection", func(t *testing.T) {
		s, _ := FindSection(sections, "1-intro")
		sub, ok := s.FindSubsection("basics")
		if !ok {
			t.Fatal("expected subsection basics")
		}
		if sub.Title != "Basics" {
			t.Errorf("Title = %q, want %q", sub.Title, "Basics")
		}
		if _, ok := s.FindSubsection("missing"); ok {
			t.Error("expected missing subsection to report not found")
		}
	})
}
