package appwrite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{Endpoint: srv.URL + "/", ProjectID: "proj-1", Platform: "com.example.salon"})
}

func TestClientSendsProjectHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"$id":"acc-1","email":"a@b.com"}`))
	})

	if _, err := NewAccount(client.WithSession("secret-1")).Get(context.Background()); err != nil {
		t.Fatalf("get account: %v", err)
	}

	checks := map[string]string{
		"X-Appwrite-Project":         "proj-1",
		"X-Appwrite-Response-Format": responseFormat,
		"X-Appwrite-Session":         "secret-1",
		"Origin":                     "appwrite-android://com.example.salon",
	}
	for k, want := range checks {
		if v := got.Get(k); v != want {
			t.Errorf("header %s = %q, want %q", k, v, want)
		}
	}
}

func TestClientWithoutSessionOmitsHeader(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	})

	if _, err := NewAccount(client).Get(context.Background()); err != nil {
		t.Fatalf("get account: %v", err)
	}
	if v := got.Get("X-Appwrite-Session"); v != "" {
		t.Fatalf("unexpected session header %q", v)
	}
	if client.WithSession("x").Session() != "x" || client.Session() != "" {
		t.Fatal("WithSession must not mutate the parent client")
	}
}

func TestClientDecodesErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Document with the requested ID could not be found.","code":404,"type":"document_not_found"}`))
	})

	_, err := NewDatabases(client).GetDocument(context.Background(), "db", "col", "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	apiErr := err.(*Error)
	if apiErr.Type != "document_not_found" {
		t.Fatalf("type = %q", apiErr.Type)
	}
}

func TestClientNonJSONError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := NewAccount(client).Get(context.Background())
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Code != http.StatusBadGateway || apiErr.Message != "upstream down" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestCreateEmailPasswordSessionSecret(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		want    string
	}{
		{
			name: "body",
			respond: func(w http.ResponseWriter) {
				w.Write([]byte(`{"$id":"s1","userId":"u1","secret":"from-body"}`))
			},
			want: "from-body",
		},
		{
			name: "cookie",
			respond: func(w http.ResponseWriter) {
				http.SetCookie(w, &http.Cookie{Name: "a_session_proj-1", Value: "from-cookie"})
				w.Write([]byte(`{"$id":"s1","userId":"u1","secret":""}`))
			},
			want: "from-cookie",
		},
		{
			name: "fallback header",
			respond: func(w http.ResponseWriter) {
				w.Header().Set("X-Fallback-Cookies", `{"a_session_proj-1":"from-fallback"}`)
				w.Write([]byte(`{"$id":"s1","userId":"u1"}`))
			},
			want: "from-fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/account/sessions/email" {
					t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
				}
				json.NewDecoder(r.Body).Decode(&body)
				tt.respond(w)
			})

			session, err := NewAccount(client).CreateEmailPasswordSession(context.Background(), "a@b.com", "pw")
			if err != nil {
				t.Fatalf("create session: %v", err)
			}
			if session.Secret != tt.want {
				t.Fatalf("secret = %q, want %q", session.Secret, tt.want)
			}
			if body["email"] != "a@b.com" || body["password"] != "pw" {
				t.Fatalf("unexpected body %v", body)
			}
		})
	}
}

func TestAccountCreateAndDeleteSessions(t *testing.T) {
	var paths []string
	var created map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&created)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"$id":"acc-9","name":"Jo","email":"jo@x.io"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	account := NewAccount(client)
	user, err := account.Create(context.Background(), "acc-9", "jo@x.io", "secret123", "Jo")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID != "acc-9" || user.Name != "Jo" {
		t.Fatalf("unexpected user %+v", user)
	}
	if created["userId"] != "acc-9" || created["name"] != "Jo" {
		t.Fatalf("unexpected body %v", created)
	}
	if err := account.DeleteSession(context.Background(), "current"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if err := account.DeleteSessions(context.Background()); err != nil {
		t.Fatalf("delete sessions: %v", err)
	}

	want := []string{"POST /account", "DELETE /account/sessions/current", "DELETE /account/sessions"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, paths[i], want[i])
		}
	}
}
