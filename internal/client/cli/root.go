package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus(ctx context.Context) string {
	claims, err := a.currentClaims(ctx)
	if err != nil {
		return "(signed out)"
	}
	return fmt.Sprintf("(%s)", displayIdentity(claims))
}

// Run prints the banner and blocks in the REPL until the user exits, the
// input ends, or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "starting studydash", "api", a.config.APIBaseURL)
	a.println("Welcome to studydash (type 'help' for commands)")

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.scanner)
}
