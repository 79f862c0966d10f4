// Package api is the HTTP client for the study-tracking backend.
//
// Every call is a GET carrying "Authorization: Bearer <token>". Non-2xx
// responses become *StatusError with the message taken from the backend's
// {"message": "..."} body when there is one. Successful bodies must carry the
// expected top-level field ("stats" or "notes").
package api
