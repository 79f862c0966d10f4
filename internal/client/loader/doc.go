// Package loader runs the fetch lifecycle shared by every view.
//
// Each activation moves the loader's State to Loading, reads the bearer
// token from the credential store, calls the view's fetch function and
// finally settles on Error or Ready. Activations are numbered; only the most
// recent one may write the state, and starting a new activation cancels the
// previous one's context. Failures land in two independent sinks: the State
// itself and the configured report.Reporter.
//
// Synchronous callers use Load. Callers that dispatch work elsewhere (the
// TUI) call Begin on their own goroutine, then Run wherever the work happens,
// and compare State.Generation to drop late results.
package loader
