package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/itsmostafa/cornerstones/internal/docs"
	"github.com/itsmostafa/cornerstones/internal/progress"
	"github.com/itsmostafa/cornerstones/internal/version"
)

// NoContentMessage is shown when the document has no sections.
const NoContentMessage = "No content found."

//go:embed templates/*.html
var templateFS embed.FS

// Mode selects how checklist toggles are persisted by the page script.
type Mode string

const (
	// ModeServer posts toggles to the progress API.
	ModeServer Mode = "server"
	// ModeStatic keeps toggles in the browser's local storage.
	ModeStatic Mode = "static"
)

type navItem struct {
	Title  string
	Href   string
	Active bool
	Done   int
	Total  int
}

type itemView struct {
	Key  string
	Text string
	Done bool
}

type linkView struct {
	Text        string
	URL         string
	Description string
}

type blockView struct {
	Type  docs.BlockType
	HTML  template.HTML
	Items []itemView
	Links []linkView
	Code  *docs.CodeBlock
}

type subsectionView struct {
	Title  string
	Slug   string
	Blocks []blockView
}

type sectionView struct {
	Title       string
	Slug        string
	Intro       []blockView
	Subsections []subsectionView
}

type pageData struct {
	Title    string
	Nav      []navItem
	Section  *sectionView
	Message  string
	Mode     Mode
	Version  string
	NotFound bool
}

// HTML renders pages for the web server and the static export.
type HTML struct {
	tmpl *template.Template
	md   goldmark.Markdown
	mode Mode
}

// NewHTML parses the embedded templates.
func NewHTML(mode Mode) (*HTML, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	return &HTML{tmpl: tmpl, md: md, mode: mode}, nil
}

// Section writes the page for section. completed may be nil.
func (h *HTML) Section(w io.Writer, sections []docs.Section, section *docs.Section, completed map[string]bool) error {
	view := &sectionView{
		Title: section.DisplayTitle(),
		Slug:  section.Slug,
		Intro: h.blocks(section.Slug, progress.IntroContainer, section.Intro, completed),
	}
	for _, sub := range section.Subsections {
		view.Subsections = append(view.Subsections, subsectionView{
			Title:  sub.Title,
			Slug:   sub.Slug,
			Blocks: h.blocks(section.Slug, sub.Slug, sub.Blocks, completed),
		})
	}

	return h.execute(w, pageData{
		Title:   view.Title,
		Nav:     nav(sections, section.Slug, completed),
		Section: view,
	})
}

// NoContent writes the page shown when the document has no sections.
func (h *HTML) NoContent(w io.Writer) error {
	return h.execute(w, pageData{Title: "Cornerstones", Message: NoContentMessage})
}

// NotFound writes the page for an unknown slug.
func (h *HTML) NotFound(w io.Writer, sections []docs.Section) error {
	return h.execute(w, pageData{
		Title:    "Not found",
		Nav:      nav(sections, "", nil),
		Message:  "This page could not be found.",
		NotFound: true,
	})
}

func (h *HTML) execute(w io.Writer, data pageData) error {
	data.Mode = h.mode
	data.Version = version.Version
	if err := h.tmpl.ExecuteTemplate(w, "page.html", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func nav(sections []docs.Section, active string, completed map[string]bool) []navItem {
	items := make([]navItem, 0, len(sections))
	for i := range sections {
		s := &sections[i]
		summary := progress.Summarize(s, completed)
		items = append(items, navItem{
			Title:  s.DisplayTitle(),
			Href:   "/" + s.Slug,
			Active: s.Slug == active,
			Done:   summary.Done,
			Total:  summary.Total,
		})
	}
	return items
}

func (h *HTML) blocks(sectionSlug, container string, blocks []docs.Block, completed map[string]bool) []blockView {
	views := make([]blockView, 0, len(blocks))
	for i, b := range blocks {
		v := blockView{Type: b.Type, Code: b.Code}
		switch b.Type {
		case docs.BlockText:
			v.HTML = h.markdown(b.Content)
		case docs.BlockChecklist:
			for j, it := range b.Items {
				key := progress.ItemKey(sectionSlug, container, i, j)
				v.Items = append(v.Items, itemView{Key: key, Text: it.Text, Done: completed[key]})
			}
		case docs.BlockLinks:
			for _, l := range b.Links {
				v.Links = append(v.Links, linkView{Text: l.Text, URL: l.URL, Description: LinkDescription(l)})
			}
		}
		views = append(views, v)
	}
	return views
}

// markdown renders inline formatting of a paragraph. Raw HTML in the source
// is not passed through.
func (h *HTML) markdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(content), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(content) + "</p>")
	}
	return template.HTML(buf.String())
}
