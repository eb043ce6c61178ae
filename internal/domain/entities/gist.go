package entities

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Gist is a single remote-hosted snippet exposed as a clonable Git repository.
type Gist struct {
	ID          string
	Description string
	PullURL     string // HTTPS URL used to clone or refresh the local copy
}

// DirectoryName derives the local directory name for the gist from its pull
// URL: the last path segment with the ".git" suffix stripped. Returns an
// error for URLs that do not carry a usable path segment.
func (g Gist) DirectoryName() (string, error) {
	parsed, err := url.Parse(g.PullURL)
	if err != nil {
		return "", fmt.Errorf("invalid pull URL %q: %w", g.PullURL, err)
	}

	segment := path.Base(parsed.Path)
	name := strings.TrimSuffix(segment, ".git")
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("cannot derive directory name from pull URL %q", g.PullURL)
	}

	return name, nil
}
