package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/itsmostafa/cornerstones/internal/docs"
	"github.com/itsmostafa/cornerstones/internal/progress"
)

// accent matches the gold used by the web pages
const accent = lipgloss.Color("178")

var (
	// titleStyle for section titles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	// subtitleStyle for subsection titles
	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for completed items
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// linkStyle for link titles
	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// headerBoxStyle for the section header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	// codeBoxStyle for fenced code
	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Terminal renders sections as styled text.
type Terminal struct {
	w     io.Writer
	width int
	md    *glamour.TermRenderer
}

// NewTerminal creates a Terminal writing to w, wrapping text at width.
func NewTerminal(w io.Writer, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	t := &Terminal{w: w, width: width}

	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err == nil {
		t.md = md
	}
	return t
}

// Section writes one section with its subsections. completed holds the
// done flags by progress key and may be nil.
func (t *Terminal) Section(section *docs.Section, completed map[string]bool) {
	summary := progress.Summarize(section, completed)

	header := titleStyle.Render(section.DisplayTitle())
	if summary.Total > 0 {
		header += "\n" + dimStyle.Render(fmt.Sprintf("Progress: %d/%d (%d%%)", summary.Done, summary.Total, summary.Percent()))
	}
	fmt.Fprintln(t.w, headerBoxStyle.Render(header))

	if len(section.Intro) > 0 {
		fmt.Fprintln(t.w)
		fmt.Fprintln(t.w, dimStyle.Render("RECOMMENDED LEARNING"))
		t.blocks(section.Slug, progress.IntroContainer, section.Intro, completed)
	}

	for _, sub := range section.Subsections {
		fmt.Fprintln(t.w)
		fmt.Fprintf(t.w, "%s %s\n", titleStyle.Render("●"), subtitleStyle.Render(sub.Title))
		t.blocks(section.Slug, sub.Slug, sub.Blocks, completed)
	}
}

func (t *Terminal) blocks(sectionSlug, container string, blocks []docs.Block, completed map[string]bool) {
	for i, b := range blocks {
		switch b.Type {
		case docs.BlockText:
			t.text(b.Content)
		case docs.BlockHR:
			fmt.Fprintln(t.w, dimStyle.Render(strings.Repeat("─", t.width)))
		case docs.BlockChecklist:
			for j, it := range b.Items {
				key := progress.ItemKey(sectionSlug, container, i, j)
				if completed[key] {
					fmt.Fprintf(t.w, "  %s %s\n", successStyle.Render("[✓]"), dimStyle.Render(it.Text))
				} else {
					fmt.Fprintf(t.w, "  [ ] %s\n", it.Text)
				}
			}
		case docs.BlockLinks:
			for _, l := range b.Links {
				fmt.Fprintf(t.w, "  %s %s\n", linkStyle.Render(l.Text), dimStyle.Render(l.URL))
				if desc := LinkDescription(l); desc != "" {
					fmt.Fprintf(t.w, "    %s\n", desc)
				}
			}
		case docs.BlockCode:
			fmt.Fprintln(t.w, dimStyle.Render(strings.ToUpper(b.Code.Language)))
			fmt.Fprintln(t.w, codeBoxStyle.Render(b.Code.Code))
		}
	}
}

func (t *Terminal) text(content string) {
	if t.md != nil {
		if out, err := t.md.Render(content); err == nil {
			fmt.Fprint(t.w, out)
			return
		}
	}
	// Fallback to plain text if glamour is unavailable
	fmt.Fprintln(t.w, content)
}

// SectionTable writes an overview table of all sections.
func SectionTable(w io.Writer, sections []docs.Section, completed map[string]bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Slug", "Title", "Subsections", "Progress"})

	for i := range sections {
		s := &sections[i]
		summary := progress.Summarize(s, completed)
		prog := "-"
		if summary.Total > 0 {
			prog = fmt.Sprintf("%d/%d", summary.Done, summary.Total)
		}
		table.Append([]string{s.Slug, s.DisplayTitle(), fmt.Sprint(len(s.Subsections)), prog})
	}

	table.Render()
}

// NoContent writes the message shown when the document has no sections.
func NoContent(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Cornerstones"))
	fmt.Fprintln(w, dimStyle.Render(NoContentMessage))
}

// LinkDescription returns the description without a leading "- ".
func LinkDescription(l docs.LinkItem) string {
	return strings.TrimPrefix(l.Description, "- ")
}
