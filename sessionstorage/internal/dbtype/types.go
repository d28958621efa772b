// Package dbtype contains types used by the database driver packages for session storage.
package dbtype

// Session defines the structure for storing session data in the database.
// Time is the last activity in seconds since the Unix epoch.
type Session struct {
	ID   string  `spanner:"session_id" db:"session_id"`
	Data *string `spanner:"data"       db:"data"`
	Time int64   `spanner:"time"       db:"time"`
}

// SessionData is the projection used when only the payload is read.
type SessionData struct {
	Data *string `spanner:"data" db:"data"`
}
