package appwrite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Account wraps the /account endpoints, acting as the client's session.
type Account struct {
	client *Client
}

func NewAccount(client *Client) *Account {
	return &Account{client: client}
}

func (a *Account) Create(ctx context.Context, userID, email, password, name string) (*User, error) {
	body := map[string]interface{}{
		"userId":   userID,
		"email":    email,
		"password": password,
	}
	if name != "" {
		body["name"] = name
	}

	var user User
	if _, err := a.client.call(ctx, http.MethodPost, "/account", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateEmailPasswordSession signs in and returns the session. The session
// secret is read from the response body or, for client-side calls, the cookies.
func (a *Account) CreateEmailPasswordSession(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	var session Session
	resp, err := a.client.call(ctx, http.MethodPost, "/account/sessions/email", nil, body, &session)
	if err != nil {
		return nil, err
	}
	if session.Secret == "" {
		session.Secret = a.sessionSecretFromResponse(resp)
	}
	return &session, nil
}

func (a *Account) Get(ctx context.Context) (*User, error) {
	var user User
	if _, err := a.client.call(ctx, http.MethodGet, "/account", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteSession removes a session; "current" refers to the client's own session.
func (a *Account) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := a.client.call(ctx, http.MethodDelete, "/account/sessions/"+url.PathEscape(sessionID), nil, nil, nil)
	return err
}

// DeleteSessions signs the account out of every device.
func (a *Account) DeleteSessions(ctx context.Context) error {
	_, err := a.client.call(ctx, http.MethodDelete, "/account/sessions", nil, nil, nil)
	return err
}

func (a *Account) sessionCookieName() string {
	return "a_session_" + a.client.projectID
}

func (a *Account) sessionSecretFromResponse(resp *http.Response) string {
	name := a.sessionCookieName()
	for _, c := range resp.Cookies() {
		if c.Name == name && c.Value != "" {
			return c.Value
		}
	}

	// Platforms without cookie storage receive the cookies mirrored in this header.
	fallback := resp.Header.Get("X-Fallback-Cookies")
	if fallback == "" {
		return ""
	}
	cookies := map[string]string{}
	if err := json.Unmarshal([]byte(fallback), &cookies); err != nil {
		return ""
	}
	return cookies[name]
}
