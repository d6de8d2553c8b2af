package domain

import "time"

type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Home         string    `json:"home"`
	Email        string    `json:"email"`
	Roles        Role      `json:"roles"`
	IsLoggedIn   bool      `json:"isLoggedIn"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

// DefaultEmail derives the campus address for a username.
func DefaultEmail(username, domainName string) string {
	return username + "@" + domainName
}
