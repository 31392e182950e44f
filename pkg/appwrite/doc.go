// Package appwrite is a small REST client for the Appwrite endpoints used by
// the salon app: account sessions, collection documents and avatars.
//
//	client := appwrite.New(appwrite.Config{Endpoint: endpoint, ProjectID: project, Platform: bundleID})
//	session, err := appwrite.NewAccount(client).CreateEmailPasswordSession(ctx, email, password)
//	docs, err := appwrite.NewDatabases(client.WithSession(session.Secret)).
//		ListDocuments(ctx, databaseID, collectionID, appwrite.Equal("accountId", session.UserID))
package appwrite
