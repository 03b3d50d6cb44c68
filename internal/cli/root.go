package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/cheaguirre/nexuscards/internal/models"
)

// getStatus renders the prompt fragment showing who is signed in.
func (a *App) getStatus() string {
	switch a.sessions.Role() {
	case models.RoleAdministrator:
		return "(administrator)"
	case models.RoleCollector:
		if username, ok := a.sessions.CurrentUser(); ok {
			return fmt.Sprintf("(%s)", username)
		}
	}
	return "(signed out)"
}

// Run starts the interactive session and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to NexusCards (type 'help' for commands)")
	if username, ok := a.sessions.CurrentUser(); ok {
		fmt.Fprintf(a.out, "Restored session for %s.\n", username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
