package entity

import "time"

// User is the profile document kept in the user collection alongside the
// platform account it belongs to.
type User struct {
	ID        string    `json:"$id"`
	AccountID string    `json:"accountId"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"$createdAt"`
	UpdatedAt time.Time `json:"$updatedAt"`
}

// Account is the authenticated platform account.
type Account struct {
	ID    string
	Name  string
	Email string
}

// Session is a signed-in platform session. Secret authenticates later calls.
type Session struct {
	ID        string
	AccountID string
	Secret    string
	ExpiresAt time.Time
}
