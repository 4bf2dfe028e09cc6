package models

import "time"

// User is an operator account. The console records user ids on audit
// entries and assignments but does not authenticate against this table.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
