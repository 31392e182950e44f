package appwrite

import "encoding/json"

// Query is a single encoded query string as accepted by list endpoints.
type Query string

type queryPayload struct {
	Method    string        `json:"method"`
	Attribute string        `json:"attribute,omitempty"`
	Values    []interface{} `json:"values,omitempty"`
}

func newQuery(method, attribute string, values ...interface{}) Query {
	b, _ := json.Marshal(queryPayload{Method: method, Attribute: attribute, Values: values})
	return Query(b)
}

func toValues[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func Equal[T any](attribute string, values ...T) Query {
	return newQuery("equal", attribute, toValues(values)...)
}

func NotEqual[T any](attribute string, values ...T) Query {
	return newQuery("notEqual", attribute, toValues(values)...)
}

func Search(attribute, value string) Query {
	return newQuery("search", attribute, value)
}

func OrderAsc(attribute string) Query {
	return newQuery("orderAsc", attribute)
}

func OrderDesc(attribute string) Query {
	return newQuery("orderDesc", attribute)
}

func Limit(n int) Query {
	return newQuery("limit", "", n)
}

func Offset(n int) Query {
	return newQuery("offset", "", n)
}

func CursorAfter(documentID string) Query {
	return newQuery("cursorAfter", "", documentID)
}
