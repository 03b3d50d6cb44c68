package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cheaguirre/nexuscards/internal/common"
)

// Wipe deletes every account, collection, and wishlist in the local store.
// Administrator only, and it asks for confirmation because there is no undo.
// The administrator is signed out afterwards.
func (a *App) Wipe(ctx context.Context) error {
	if !a.sessions.IsAdministrator() {
		fmt.Fprintln(a.out, "Administrator access required.")
		return nil
	}

	ok, err := getConfirmation(a.reader, "Delete ALL accounts and collections? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Wipe cancelled.")
		return nil
	}

	if err := a.admin.WipeAll(ctx); err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			fmt.Fprintln(a.out, "Administrator access required.")
			return nil
		}
		a.log.Error(ctx, "wipe failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "All data deleted. You have been signed out.")
	return nil
}
