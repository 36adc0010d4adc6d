package uiutil

import "strings"

// DefaultPlaceholder is shown for records without an image.
const DefaultPlaceholder = "/climber_no_photo.svg"

// Images resolves stored image paths against the image host.
type Images struct {
	BaseURL     string
	Placeholder string
}

// URL returns BaseURL joined with path, or the placeholder when path is empty.
// Exactly one slash separates the two parts.
func (i Images) URL(path string) string {
	if strings.TrimSpace(path) == "" {
		if i.Placeholder == "" {
			return DefaultPlaceholder
		}
		return i.Placeholder
	}
	if i.BaseURL == "" {
		return path
	}
	return strings.TrimRight(i.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// ImageURL resolves path with the given base URL and the default placeholder.
func ImageURL(baseURL, path string) string {
	return Images{BaseURL: baseURL}.URL(path)
}
