package appwrite

import (
	"context"
	"net/http"
	"net/url"
)

type Databases struct {
	client *Client
}

func NewDatabases(client *Client) *Databases {
	return &Databases{client: client}
}

func documentsPath(databaseID, collectionID string) string {
	return "/databases/" + url.PathEscape(databaseID) + "/collections/" + url.PathEscape(collectionID) + "/documents"
}

func documentPath(databaseID, collectionID, documentID string) string {
	return documentsPath(databaseID, collectionID) + "/" + url.PathEscape(documentID)
}

func encodeQueries(queries []Query) url.Values {
	if len(queries) == 0 {
		return nil
	}
	values := url.Values{}
	for _, q := range queries {
		values.Add("queries[]", string(q))
	}
	return values
}

func (d *Databases) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data interface{}, permissions ...string) (Document, error) {
	body := map[string]interface{}{
		"documentId": documentID,
		"data":       data,
	}
	if len(permissions) > 0 {
		body["permissions"] = permissions
	}

	var doc Document
	if _, err := d.client.call(ctx, http.MethodPost, documentsPath(databaseID, collectionID), nil, body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Databases) GetDocument(ctx context.Context, databaseID, collectionID, documentID string, queries ...Query) (Document, error) {
	var doc Document
	if _, err := d.client.call(ctx, http.MethodGet, documentPath(databaseID, collectionID, documentID), encodeQueries(queries), nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Databases) ListDocuments(ctx context.Context, databaseID, collectionID string, queries ...Query) (*DocumentList, error) {
	var list DocumentList
	if _, err := d.client.call(ctx, http.MethodGet, documentsPath(databaseID, collectionID), encodeQueries(queries), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (d *Databases) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	_, err := d.client.call(ctx, http.MethodDelete, documentPath(databaseID, collectionID, documentID), nil, nil, nil)
	return err
}
