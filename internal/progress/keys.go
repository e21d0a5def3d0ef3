package progress

import (
	"strconv"
	"strings"

	"github.com/itsmostafa/cornerstones/internal/docs"
)

// IntroContainer names the intro blocks of a section in item keys. Slugs
// never contain an underscore, so no subsection can share it.
const IntroContainer = "_intro"

// keySeparator joins key parts. Slugs never contain it.
const keySeparator = ":"

// ItemKey builds the storage key of one checklist item from the section, the
// container (IntroContainer or a subsection slug) and the positions of the
// block and of the item within it. Item ids can collide, positions cannot.
func ItemKey(sectionSlug, container string, blockIndex, itemIndex int) string {
	return strings.Join([]string{
		sectionSlug,
		container,
		"list-" + strconv.Itoa(blockIndex),
		strconv.Itoa(itemIndex),
	}, keySeparator)
}

// TrackedItem is a checklist item together with its storage key.
type TrackedItem struct {
	Key  string
	Item docs.ChecklistItem
}

// SectionItems lists every checklist item of a section in document order.
func SectionItems(section *docs.Section) []TrackedItem {
	var items []TrackedItem
	collect := func(container string, blocks []docs.Block) {
		for i, b := range blocks {
			if b.Type != docs.BlockChecklist {
				continue
			}
			for j, it := range b.Items {
				items = append(items, TrackedItem{
					Key:  ItemKey(section.Slug, container, i, j),
					Item: it,
				})
			}
		}
	}

	collect(IntroContainer, section.Intro)
	for _, sub := range section.Subsections {
		collect(sub.Slug, sub.Blocks)
	}
	return items
}

// Summary counts completed checklist items.
type Summary struct {
	Done  int
	Total int
}

// Percent returns the completed share in whole percent.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Done * 100 / s.Total
}

// Summarize counts the completed items of a section.
func Summarize(section *docs.Section, completed map[string]bool) Summary {
	var s Summary
	for _, it := range SectionItems(section) {
		s.Total++
		if completed[it.Key] {
			s.Done++
		}
	}
	return s
}

// KnownKeys returns the set of keys that exist in the current document.
func KnownKeys(sections []docs.Section) map[string]bool {
	keys := map[string]bool{}
	for i := range sections {
		for _, it := range SectionItems(&sections[i]) {
			keys[it.Key] = true
		}
	}
	return keys
}
