package domain

// Destination identifies where a payload is persisted
type Destination struct {
	Path     string // Absolute filesystem path
	Fragment string // Path relative to the site root, used in messages
}

// DisplayName returns the fragment, or the full path when no fragment is set
func (d Destination) DisplayName() string {
	if d.Fragment != "" {
		return d.Fragment
	}
	return d.Path
}
