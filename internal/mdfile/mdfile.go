// Package mdfile reads markdown files into pages for bulk import. An
// optional YAML frontmatter block may carry the page title; otherwise
// the file's base name (without extension) is used.
package mdfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

// matter is the recognized frontmatter shape. Unknown keys are ignored.
type matter struct {
	Title string `yaml:"title"`
}

// ReadPage reads one markdown file into a Page. The returned content is
// the body with the frontmatter block stripped.
func ReadPage(path string, now time.Time) (types.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Page{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var meta matter
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return types.Page{}, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if title == "" {
		return types.Page{}, fmt.Errorf("%w: %s", types.ErrEmptyTitle, path)
	}

	return types.Page{
		Title:   title,
		Content: string(body),
		Updated: types.TimestampMillis(now),
	}, nil
}

// ReadPages reads several markdown files into a store fragment suitable
// for merging. When two files resolve to the same title, the later file
// wins, matching the merge policy for imports.
func ReadPages(paths []string, now time.Time) (types.Store, error) {
	fragment := types.Store{}
	for _, path := range paths {
		page, err := ReadPage(path, now)
		if err != nil {
			return nil, err
		}
		fragment[page.Title] = page
	}
	return fragment, nil
}
