package appwrite

import (
	"net/url"
	"strconv"
)

type Avatars struct {
	client *Client
}

func NewAvatars(client *Client) *Avatars {
	return &Avatars{client: client}
}

// GetInitials builds the URL of an initials avatar for name. No request is made;
// width and height are omitted when zero.
func (a *Avatars) GetInitials(name string, width, height int) string {
	params := url.Values{}
	if name != "" {
		params.Set("name", name)
	}
	if width > 0 {
		params.Set("width", strconv.Itoa(width))
	}
	if height > 0 {
		params.Set("height", strconv.Itoa(height))
	}
	params.Set("project", a.client.projectID)

	return a.client.endpoint + "/avatars/initials?" + params.Encode()
}
