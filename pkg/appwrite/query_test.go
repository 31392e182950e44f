package appwrite

import (
	"regexp"
	"testing"
	"time"
)

func TestQueryEncoding(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"equal", Equal("accountId", "abc"), `{"method":"equal","attribute":"accountId","values":["abc"]}`},
		{"equal many", Equal("status", "Booked", "Done"), `{"method":"equal","attribute":"status","values":["Booked","Done"]}`},
		{"not equal", NotEqual("status", "Cancelled"), `{"method":"notEqual","attribute":"status","values":["Cancelled"]}`},
		{"search", Search("title", "salon"), `{"method":"search","attribute":"title","values":["salon"]}`},
		{"order desc", OrderDesc("$createdAt"), `{"method":"orderDesc","attribute":"$createdAt"}`},
		{"order asc", OrderAsc("date"), `{"method":"orderAsc","attribute":"date"}`},
		{"limit", Limit(25), `{"method":"limit","values":[25]}`},
		{"offset", Offset(0), `{"method":"offset","values":[0]}`},
		{"cursor", CursorAfter("d9"), `{"method":"cursorAfter","values":["d9"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.query) != tt.want {
				t.Fatalf("got %s, want %s", tt.query, tt.want)
			}
		})
	}
}

var idPattern = regexp.MustCompile(`^[0-9a-f]{20}$`)

func TestUniqueID(t *testing.T) {
	at := time.Unix(1721901000, 123*int64(time.Millisecond))
	id := uniqueAt(at)
	if !idPattern.MatchString(id) {
		t.Fatalf("id %q does not match %s", id, idPattern)
	}
	if id[:13] != "66a21fc80007b" {
		t.Fatalf("timestamp prefix = %q", id[:13])
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := ID.Unique()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestGetInitials(t *testing.T) {
	client := New(Config{Endpoint: "https://cloud.appwrite.io/v1", ProjectID: "p1"})

	got := NewAvatars(client).GetInitials("Jane Doe", 0, 0)
	want := "https://cloud.appwrite.io/v1/avatars/initials?name=Jane+Doe&project=p1"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
