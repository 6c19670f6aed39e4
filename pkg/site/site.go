package site

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultRoot is the checkout of the landing site the résumé is published into
	DefaultRoot = "/Users/blake/Projects/drksci-landing"

	// ResumeFilename is the name of the emitted PDF inside the public directory
	ResumeFilename = "blake-carter-resume.pdf"
)

// Site represents the static site whose public directory receives the résumé
type Site struct {
	RootPath   string
	PublicPath string
}

// New returns the landing site at its fixed location
func New() *Site {
	return NewAt(DefaultRoot)
}

// NewAt returns a site rooted at rootPath
func NewAt(rootPath string) *Site {
	return &Site{
		RootPath:   rootPath,
		PublicPath: filepath.Join(rootPath, "public"),
	}
}

// ResumePath returns the absolute path of the résumé PDF
func (s *Site) ResumePath() string {
	return filepath.Join(s.PublicPath, ResumeFilename)
}

// Fragment returns path relative to the site root, using forward slashes.
// Paths outside the root are returned unchanged.
func (s *Site) Fragment(path string) string {
	rel, err := filepath.Rel(s.RootPath, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
