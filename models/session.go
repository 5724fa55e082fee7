package models

import "time"

// Session is the login state the terminal client keeps between runs.
type Session struct {
	Token   string
	User    User
	SavedAt time.Time
}

// IsZero reports whether no one is logged in.
func (s Session) IsZero() bool {
	return s.Token == ""
}
