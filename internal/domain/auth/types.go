package auth

// Package auth contains domain-level types describing who the visitor is.
// It is pure and free of framework/adapter concerns.

import "strconv"

// User is the record returned by the API "who am I" endpoint.
// A nil *User means the visitor is not authenticated.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// ProfilePath returns the public profile path of the user.
func (u User) ProfilePath() string {
	return "/user/" + strconv.FormatInt(u.ID, 10)
}

// Snapshot is the serialisable outcome of one auth-status fetch.
// It is what gets shared between web instances for a page session.
type Snapshot struct {
	User        *User `json:"user"`
	Initialized bool  `json:"initialized"`
	// Session fingerprints the session cookie the snapshot was resolved with.
	Session string `json:"session"`
}

// Authenticated reports whether the snapshot carries a user.
func (s Snapshot) Authenticated() bool { return s.User != nil }
