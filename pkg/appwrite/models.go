package appwrite

import (
	"encoding/json"
	"time"
)

// Document is a raw collection document. System attributes are prefixed with "$".
type Document map[string]interface{}

func (d Document) ID() string {
	return d.String("$id")
}

func (d Document) CollectionID() string {
	return d.String("$collectionId")
}

func (d Document) CreatedAt() time.Time {
	return d.Time("$createdAt")
}

func (d Document) UpdatedAt() time.Time {
	return d.Time("$updatedAt")
}

// String returns the attribute as a string, or "" when absent or of another type.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Time parses an ISO-8601 attribute; the zero time is returned on failure.
func (d Document) Time(key string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, d.String(key))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Decode re-encodes the document into a typed struct.
func (d Document) Decode(out interface{}) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// User is the account of the signed-in user.
type User struct {
	ID                string    `json:"$id"`
	CreatedAt         time.Time `json:"$createdAt"`
	UpdatedAt         time.Time `json:"$updatedAt"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Status            bool      `json:"status"`
	EmailVerification bool      `json:"emailVerification"`
	Labels            []string  `json:"labels"`
}

type Session struct {
	ID         string    `json:"$id"`
	CreatedAt  time.Time `json:"$createdAt"`
	UserID     string    `json:"userId"`
	Expire     time.Time `json:"expire"`
	Provider   string    `json:"provider"`
	ClientName string    `json:"clientName"`
	OSName     string    `json:"osName"`
	Current    bool      `json:"current"`
	// Secret is only filled by the platform for server-side calls; otherwise it is
	// recovered from the session cookie.
	Secret string `json:"secret"`
}
