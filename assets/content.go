package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/starfolio/shared/resume"
)

var (
	//go:embed all:content
	contentFS embed.FS
)

// ResumePath is the embedded content map shown by the portfolio scene.
const ResumePath = "content/resume.tmx"

// LoadResume parses the embedded content map.
func LoadResume() (*resume.Document, error) {
	doc, err := resume.Load(contentFS, ResumePath)
	if err != nil {
		return nil, fmt.Errorf("load resume content: %w", err)
	}
	return doc, nil
}
