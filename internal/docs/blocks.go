package docs

import (
	"strings"
)

// Separator tokens that produce a horizontal rule.
const (
	ruleDashes    = "---"
	ruleAsterisks = "***"
)

const fenceMarker = "```"

// ParseBlocks converts the raw text of an intro or subsection into content
// blocks. Fenced code is isolated first so its contents are never segmented
// into lists, rules or paragraphs.
//
// An opening fence without a closing fence is treated as ordinary text.
func ParseBlocks(text string) []Block {
	lines := strings.Split(normalizeNewlines(text), "\n")
	blocks := []Block{}

	var pending []string
	for i := 0; i < len(lines); i++ {
		lang, ok := fenceOpen(lines[i])
		if !ok {
			pending = append(pending, lines[i])
			continue
		}

		end := fenceClose(lines, i+1)
		if end < 0 {
			// No closing fence anywhere below, so no later opener can close either.
			pending = append(pending, lines[i:]...)
			break
		}

		blocks = append(blocks, segmentLines(pending)...)
		pending = nil

		blocks = append(blocks, Block{
			Type: BlockCode,
			Code: &CodeBlock{
				Language: lang,
				Code:     strings.TrimSpace(strings.Join(lines[i+1:end], "\n")),
			},
		})
		i = end
	}

	return append(blocks, segmentLines(pending)...)
}

// fenceOpen reports whether line opens a code fence and returns its language
// tag, or DefaultLanguage when none is given.
func fenceOpen(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fenceMarker) {
		return "", false
	}

	tag := strings.TrimLeft(trimmed, "`")
	if fields := strings.Fields(tag); len(fields) > 0 {
		return fields[0], true
	}
	return DefaultLanguage, true
}

// isFenceClose reports whether line is made only of backticks, at least three.
func isFenceClose(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, fenceMarker) && strings.Trim(trimmed, "`") == ""
}

// fenceClose returns the index of the first closing fence at or after from,
// or -1.
func fenceClose(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if isFenceClose(lines[j]) {
			return j
		}
	}
	return -1
}

func isRule(s string) bool {
	return s == ruleDashes || s == ruleAsterisks
}

// segmenter splits fence-free lines into paragraphs, rules and list runs.
// At most one of para and list is non-empty at any time.
type segmenter struct {
	blocks []Block
	para   []string
	list   []string
}

func segmentLines(lines []string) []Block {
	s := &segmenter{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case IsListLine(trimmed):
			s.flushParagraph()
			s.list = append(s.list, trimmed)
		case isRule(trimmed):
			s.flushParagraph()
			s.flushList()
			s.blocks = append(s.blocks, Block{Type: BlockHR})
		default:
			s.flushList()
			s.para = append(s.para, trimmed)
		}
	}

	s.flushParagraph()
	s.flushList()
	return s.blocks
}

func (s *segmenter) flushParagraph() {
	if len(s.para) == 0 {
		return
	}
	content := strings.TrimSpace(strings.Join(s.para, "\n"))
	s.para = nil

	switch {
	case content == "":
	case isRule(content):
		s.blocks = append(s.blocks, Block{Type: BlockHR})
	default:
		s.blocks = append(s.blocks, Block{Type: BlockText, Content: content})
	}
}

func (s *segmenter) flushList() {
	if len(s.list) == 0 {
		return
	}
	s.blocks = append(s.blocks, ClassifyRun(s.list))
	s.list = nil
}
