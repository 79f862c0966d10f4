// Package cli provides the interactive studydash command-line client.
//
// It wires configuration, the local credential store, the backend API
// client and one loader per view, then runs a REPL:
//
//   - dashboard / notes render a single view
//   - refresh reloads both views concurrently
//   - login / logout / whoami manage the stored ID token
//   - tui switches to the full-screen interface
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
