package ports

import (
	"net/url"
	"time"
)

// QueryPort is read/write access to the query parameters of the URL the visitor sees.
type QueryPort interface {
	// Values returns a copy of the current query parameters.
	Values() url.Values
	// Replace swaps the visible URL's query for values without adding a history entry
	// and without triggering the browser's scroll restoration.
	Replace(values url.Values)
}

// ScrollPort captures and restores the vertical position of the pagination anchor.
type ScrollPort interface {
	// AnchorOffset returns the anchor's document offset, or false when there is no anchor.
	AnchorOffset() (int, bool)
	// RestoreAfter scrolls the window to top once delay has elapsed after new content settles.
	RestoreAfter(top int, delay time.Duration)
}
