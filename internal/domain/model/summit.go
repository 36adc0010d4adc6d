// Package model holds the climbing-log records rendered by the web tier.
package model

// Ridge groups summits; Color is used for the ridge badge.
type Ridge struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SummitImage is an uploaded photo of a summit.
type SummitImage struct {
	Filename string `json:"filename"`
	Comment  string `json:"comment"`
}

// Summit is the full summit record served by GET /api/summit/{ridge}/{summit}.
type Summit struct {
	ID             string        `json:"id"`
	Name           *string       `json:"name"`
	NameAlt        *string       `json:"name_alt"`
	Interpretation *string       `json:"interpretation"`
	Description    *string       `json:"description"`
	Height         int           `json:"height"`
	Coordinates    [2]float32    `json:"coordinates"`
	Ridge          *Ridge        `json:"ridge"`
	Images         []SummitImage `json:"images"`
	// ClimbData is present only when the request carried an authenticated session
	// and the user has logged a climb of this summit.
	ClimbData *ClimbData `json:"climb_data,omitempty"`
}

// DisplayName returns the summit name, falling back to its height for unnamed summits.
func (s Summit) DisplayName() string {
	if s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	return unnamedSummit(s.Height)
}

// Path returns the web path of the summit page.
func (s Summit) Path() string {
	if s.Ridge == nil {
		return ""
	}
	return "/" + s.Ridge.ID + "/" + s.ID
}

// SummitsTableItem is one row of the summits index.
type SummitsTableItem struct {
	ID     string  `json:"id"`
	Name   *string `json:"name"`
	Height int     `json:"height"`
	// Lat is used for sorting.
	Lat       float32 `json:"lat"`
	RidgeName string  `json:"ridge"`
	RidgeID   string  `json:"ridge_id"`
	Visitors  int     `json:"visitors"`
	Rank      int     `json:"rank"`
	IsMain    bool    `json:"is_main"`
	Climbed   bool    `json:"climbed"`
}

// DisplayName mirrors Summit.DisplayName for table rows.
func (s SummitsTableItem) DisplayName() string {
	if s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	return unnamedSummit(s.Height)
}

// Path returns the web path of the summit page.
func (s SummitsTableItem) Path() string {
	return "/" + s.RidgeID + "/" + s.ID
}

// SummitsTable is the payload of GET /api/summits.
type SummitsTable struct {
	Summits []SummitsTableItem `json:"summits"`
}
