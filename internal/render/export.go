package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/itsmostafa/cornerstones/internal/docs"
)

// Export writes a static site to dir: one <slug>/index.html per section, an
// index.html that redirects to the first section (or says there is no
// content) and a 404.html. Progress is kept in the browser.
func Export(dir string, sections []docs.Section) ([]string, error) {
	pages, err := NewHTML(ModeStatic)
	if err != nil {
		return nil, err
	}

	var written []string
	write := func(rel string, render func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return err
		}
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
		written = append(written, rel)
		return nil
	}

	for i := range sections {
		section := &sections[i]
		err := write(filepath.Join(section.Slug, "index.html"), func(buf *bytes.Buffer) error {
			return pages.Section(buf, sections, section, nil)
		})
		if err != nil {
			return written, err
		}
	}

	err = write("index.html", func(buf *bytes.Buffer) error {
		if len(sections) == 0 {
			return pages.NoContent(buf)
		}
		fmt.Fprintf(buf, "<!DOCTYPE html><meta http-equiv=\"refresh\" content=\"0; url=/%s\">\n", sections[0].Slug)
		return nil
	})
	if err != nil {
		return written, err
	}

	err = write("404.html", func(buf *bytes.Buffer) error {
		return pages.NotFound(buf, sections)
	})
	return written, err
}
