package docs

import (
	"regexp"
	"strings"
)

// Header markers. Sections use level two, subsections level three.
const (
	sectionMarker    = "## "
	subsectionMarker = "### "
)

var slugSeparatorPattern = regexp.MustCompile(`[^a-z0-9]+`)

// headerChunk is the text following one header line, up to the next header
// of the same level.
type headerChunk struct {
	title string
	body  string
}

// Parse converts a whole document into its ordered sections. Text before the
// first section header is discarded. Parse never fails: malformed input
// degrades into paragraphs.
func Parse(text string) []Section {
	_, chunks := splitOnHeader(normalizeNewlines(text), sectionMarker)

	sections := make([]Section, 0, len(chunks))
	for _, chunk := range chunks {
		sections = append(sections, parseSection(chunk))
	}
	return sections
}

func parseSection(chunk headerChunk) Section {
	introRaw, subChunks := splitOnHeader(chunk.body, subsectionMarker)

	section := Section{
		Title:       chunk.title,
		Slug:        Slugify(chunk.title),
		Intro:       ParseBlocks(introRaw),
		Subsections: make([]Subsection, 0, len(subChunks)),
	}

	for _, sub := range subChunks {
		section.Subsections = append(section.Subsections, Subsection{
			Title:  sub.title,
			Slug:   Slugify(sub.title),
			Blocks: ParseBlocks(sub.body),
		})
	}

	return section
}

// splitOnHeader splits text on lines starting with marker. It returns the
// text before the first header and one chunk per header, in order. Fences are
// not considered here, so a malformed fence stays inside its own chunk.
func splitOnHeader(text, marker string) (string, []headerChunk) {
	lines := strings.Split(text, "\n")

	var preamble []string
	var chunks []headerChunk
	var body []string

	flush := func() {
		if len(chunks) > 0 {
			chunks[len(chunks)-1].body = strings.Join(body, "\n")
		}
		body = nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, marker) {
			flush()
			chunks = append(chunks, headerChunk{
				title: strings.TrimSpace(line[len(marker):]),
			})
			continue
		}

		if len(chunks) == 0 {
			preamble = append(preamble, line)
		} else {
			body = append(body, line)
		}
	}
	flush()

	return strings.Join(preamble, "\n"), chunks
}

// Slugify derives a URL-safe identifier from a header title: lower-cased,
// every run of characters outside [a-z0-9] collapsed to a single hyphen,
// with leading and trailing hyphens removed.
func Slugify(title string) string {
	slug := slugSeparatorPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
