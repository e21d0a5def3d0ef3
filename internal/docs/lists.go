package docs

import (
	"regexp"
	"strings"
)

// LinkThresholdPercent is the minimum share of link-shaped lines for a list
// run to be treated as a link grid.
const LinkThresholdPercent = 70

// MaxIDSource is how many characters of item text feed ItemID.
const MaxIDSource = 32

// PlaceholderURL is used for lines in a link run that carry no link.
const PlaceholderURL = "#"

var (
	// "- item" with at least one space; "---" does not match
	listLinePattern = regexp.MustCompile(`^-\s+`)

	// loose pre-check used for the majority vote
	linkShapePattern = regexp.MustCompile(`^-\s*\[.*\]\(.*\)`)

	// - [text](url) - description
	linkItemPattern = regexp.MustCompile(`^-\s*\[(.*?)\]\((.*?)\)\s*-?\s*(.*)$`)

	listMarkerPattern   = regexp.MustCompile(`^-\s*`)
	uncheckedBoxPattern = regexp.MustCompile(`^\[ \]\s*`)
	nonAlnumPattern     = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// IsListLine reports whether a trimmed line is a bullet list item.
func IsListLine(line string) bool {
	return listLinePattern.MatchString(line)
}

// IsLinkShaped reports whether a list line looks like "- [text](url)".
func IsLinkShaped(line string) bool {
	return linkShapePattern.MatchString(line)
}

// IsLinkRun reports whether a list run should render as links: at least one
// line is link-shaped and link-shaped lines make up LinkThresholdPercent of
// the run.
func IsLinkRun(lines []string) bool {
	count := 0
	for _, line := range lines {
		if IsLinkShaped(line) {
			count++
		}
	}
	return count > 0 && count*100 >= len(lines)*LinkThresholdPercent
}

// ClassifyRun turns one list run into a single links or checklist block.
// Runs are never split, whatever their mix of lines.
func ClassifyRun(lines []string) Block {
	if IsLinkRun(lines) {
		links := make([]LinkItem, 0, len(lines))
		for _, line := range lines {
			links = append(links, ParseLink(line))
		}
		return Block{Type: BlockLinks, Links: links}
	}

	items := make([]ChecklistItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, ParseChecklistItem(line))
	}
	return Block{Type: BlockChecklist, Items: items}
}

// ParseLink extracts a link item from a list line. Lines that do not carry a
// link keep their text and point at PlaceholderURL.
func ParseLink(line string) LinkItem {
	if m := linkItemPattern.FindStringSubmatch(line); m != nil {
		return LinkItem{Text: m[1], URL: m[2], Description: m[3]}
	}
	return LinkItem{
		Text: listMarkerPattern.ReplaceAllString(line, ""),
		URL:  PlaceholderURL,
	}
}

// ParseChecklistItem strips the list marker and an unchecked "[ ]" box from a
// list line and derives the item id.
func ParseChecklistItem(line string) ChecklistItem {
	text := listMarkerPattern.ReplaceAllString(line, "")
	text = strings.TrimSpace(uncheckedBoxPattern.ReplaceAllString(text, ""))
	return ChecklistItem{ID: ItemID(text), Text: text}
}

// ItemID derives a checklist item id: the first MaxIDSource characters of
// text with everything outside [A-Za-z0-9] removed. Distinct texts sharing
// that prefix get the same id.
func ItemID(text string) string {
	r := []rune(text)
	if len(r) > MaxIDSource {
		r = r[:MaxIDSource]
	}
	return nonAlnumPattern.ReplaceAllString(string(r), "")
}
