// Package credentials keeps the bearer tokens the client presents to the
// backend.
//
// Loaders only ever see the read side (Store). The CLI writes through
// SQLiteStore when the user runs `login` or `logout`. Tokens are opaque here;
// Inspect decodes JWT claims for display without verifying the signature.
package credentials
