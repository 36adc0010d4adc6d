package config

import (
	"strings"
	"time"
)

const (
	defaultPlaceholder  = "/climber_no_photo.svg"
	defaultTitle        = "Вершины"
	defaultItemsPerPage = 20
)

// UIConfig holds presentation settings shared by all pages.
type UIConfig struct {
	// ImageBaseURL is prepended to stored image paths (usually an object storage bucket URL).
	ImageBaseURL string `env:"UI_IMAGE_BASE_URL" envDefault:""`

	// ImagePlaceholder is served when a record has no image.
	ImagePlaceholder string `env:"UI_IMAGE_PLACEHOLDER" envDefault:"/climber_no_photo.svg"`

	// DefaultTitle is the document title for routes without a title of their own.
	DefaultTitle string `env:"UI_DEFAULT_TITLE" envDefault:"Вершины"`

	// PreserveScroll keeps the list anchor in place across page changes.
	PreserveScroll bool `env:"UI_PRESERVE_SCROLL" envDefault:"true"`

	// ScrollRestoreDelay is how long the browser waits before restoring the scroll offset.
	ScrollRestoreDelay time.Duration `env:"UI_SCROLL_RESTORE_DELAY" envDefault:"100ms"`

	// DefaultLocale is used when the request expresses no supported language preference.
	DefaultLocale string `env:"UI_DEFAULT_LOCALE" envDefault:"ru"`

	// ItemsPerPage must match the API's page size to derive page counts.
	ItemsPerPage int `env:"UI_ITEMS_PER_PAGE" envDefault:"20"`

	// RoutesFile optionally replaces the embedded route table.
	RoutesFile string `env:"UI_ROUTES_FILE"`
}

// Sanitize applies guardrails to UI configuration values.
func (u *UIConfig) Sanitize() {
	u.ImageBaseURL = strings.TrimSpace(u.ImageBaseURL)
	if u.ImagePlaceholder = strings.TrimSpace(u.ImagePlaceholder); u.ImagePlaceholder == "" {
		u.ImagePlaceholder = defaultPlaceholder
	}
	if u.DefaultTitle = strings.TrimSpace(u.DefaultTitle); u.DefaultTitle == "" {
		u.DefaultTitle = defaultTitle
	}
	if u.ScrollRestoreDelay < 0 {
		u.ScrollRestoreDelay = 0
	}
	if u.DefaultLocale = strings.TrimSpace(u.DefaultLocale); u.DefaultLocale == "" {
		u.DefaultLocale = "ru"
	}
	if u.ItemsPerPage <= 0 {
		u.ItemsPerPage = defaultItemsPerPage
	}
	u.RoutesFile = strings.TrimSpace(u.RoutesFile)
}
