// Package devapi is a local stand-in for the study backend. It serves fixed
// dashboard and note payloads behind HS256 bearer tokens so the client can be
// run and tested without the real service.
package devapi
