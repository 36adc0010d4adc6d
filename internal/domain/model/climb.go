package model

import (
	"fmt"
	"strconv"
)

// ItemsPerPage is the page size the API uses for every paginated list.
const ItemsPerPage = 20

// ClimbData is the current user's record of climbing a summit.
type ClimbData struct {
	Date    InexactDate `json:"date"`
	Comment string      `json:"comment"`
}

// SummitClimb is one entry of a summit's climb log.
type SummitClimb struct {
	UserID    int64       `json:"user_id"`
	UserName  string      `json:"user_name"`
	UserImage string      `json:"user_image"`
	Date      InexactDate `json:"date"`
	Comment   string      `json:"comment"`
}

// SummitClimbs is the payload of GET /api/summit/{ridge}/{summit}/climbs?page=N.
type SummitClimbs struct {
	Climbs      []SummitClimb `json:"climbs"`
	TotalClimbs int           `json:"total_climbs"`
	Page        int           `json:"page"`
}

// TotalPages derives the page count from the total number of climbs.
func (c SummitClimbs) TotalPages() int {
	return TotalPages(c.TotalClimbs, ItemsPerPage)
}

// UserClimb is one entry of a user's climb list.
type UserClimb struct {
	SummitID   string      `json:"summit_id"`
	SummitName *string     `json:"summit_name"`
	RidgeID    string      `json:"ridge_id"`
	Height     int         `json:"height"`
	Date       InexactDate `json:"date"`
	Comment    string      `json:"comment"`
}

// Path returns the web path of the climbed summit.
func (c UserClimb) Path() string {
	return "/" + c.RidgeID + "/" + c.SummitID
}

// DisplayName returns the summit name or its height when unnamed.
func (c UserClimb) DisplayName() string {
	if c.SummitName != nil && *c.SummitName != "" {
		return *c.SummitName
	}
	return unnamedSummit(c.Height)
}

// TopItem is one row of the climbers leaderboard.
type TopItem struct {
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	ClimbsNum int    `json:"climbs_num"`
	Place     int    `json:"place"`
}

// UserPath returns the public profile path of the climber.
func (t TopItem) UserPath() string {
	return "/user/" + strconv.FormatInt(t.UserID, 10)
}

// Top is the payload of GET /api/top?page=N.
type Top struct {
	Items      []TopItem `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// TotalPages returns ceil(total/perPage), never less than 1.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

func unnamedSummit(height int) string {
	return fmt.Sprintf("Безымянная (%d)", height)
}
