package docs

import (
	"regexp"
	"strings"
)

// BlockType identifies the kind of content a Block holds.
type BlockType string

const (
	BlockText      BlockType = "text"
	BlockHR        BlockType = "hr"
	BlockChecklist BlockType = "checklist"
	BlockLinks     BlockType = "links"
	BlockCode      BlockType = "code"
)

// DefaultLanguage is used for fenced code without a language tag.
const DefaultLanguage = "text"

// LinkItem is one entry of a link grid.
type LinkItem struct {
	Text        string `json:"text" yaml:"text"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// ChecklistItem is one trackable entry of a checklist.
// ID is derived from Text, see ItemID.
type ChecklistItem struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// CodeBlock holds the body of a fenced code region.
type CodeBlock struct {
	Language string `json:"language" yaml:"language"`
	Code     string `json:"code" yaml:"code"`
}

// Block is a single renderable unit of content. Only the fields that belong
// to Type are set. See encoding.go for the serialized form.
type Block struct {
	Type    BlockType
	Content string
	Items   []ChecklistItem
	Links   []LinkItem
	Code    *CodeBlock
}

// Subsection is a second-level division of a Section.
type Subsection struct {
	Title  string  `json:"title" yaml:"title"`
	Slug   string  `json:"slug" yaml:"slug"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Section is a top-level division of the document. Blocks appearing before
// the first subsection header are kept in Intro.
type Section struct {
	Title       string       `json:"title" yaml:"title"`
	Slug        string       `json:"slug" yaml:"slug"`
	Intro       []Block      `json:"intro" yaml:"intro"`
	Subsections []Subsection `json:"subsections" yaml:"subsections"`
}

var ordinalPrefix = regexp.MustCompile(`^[0-9]+\.\s*`)

// DisplayTitle returns the title without a leading ordinal such as "1. ".
func (s *Section) DisplayTitle() string {
	return ordinalPrefix.ReplaceAllString(s.Title, "")
}

// FindSubsection returns the first subsection with the given slug.
func (s *Section) FindSubsection(slug string) (*Subsection, bool) {
	for i := range s.Subsections {
		if s.Subsections[i].Slug == slug {
			return &s.Subsections[i], true
		}
	}
	return nil, false
}

// FindSection returns the first section with the given slug.
func FindSection(sections []Section, slug string) (*Section, bool) {
	for i := range sections {
		if sections[i].Slug == slug {
			return &sections[i], true
		}
	}
	return nil, false
}

// String returns the block type and a short preview, for debugging.
func (b Block) String() string {
	switch b.Type {
	case BlockText:
		return "text(" + truncate(b.Content, 40) + ")"
	case BlockCode:
		if b.Code != nil {
			return "code(" + b.Code.Language + ")"
		}
	case BlockChecklist:
		texts := make([]string, len(b.Items))
		for i, it := range b.Items {
			texts[i] = it.Text
		}
		return "checklist(" + truncate(strings.Join(texts, "; "), 40) + ")"
	case BlockLinks:
		texts := make([]string, len(b.Links))
		for i, l := range b.Links {
			texts[i] = l.Text
		}
		return "links(" + truncate(strings.Join(texts, "; "), 40) + ")"
	}
	return string(b.Type)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
