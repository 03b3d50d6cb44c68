package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cheaguirre/nexuscards/internal/common"
	"github.com/cheaguirre/nexuscards/internal/services"
)

// Export writes the signed-in collector's account, collection, and wishlist
// to a JSON file suitable for importing on another machine.
//
// The file contains the salted credential hashes, so it should be treated
// as carefully as any other credential backup.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: export <file>")
		return nil
	}
	path := args[0]

	doc, err := a.transfer.ExportUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			fmt.Fprintln(a.out, "Sign in first.")
			return nil
		}
		a.log.Error(ctx, "export failed", "error", err)
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Fprintln(a.out, "Could not write file:", err)
		return err
	}

	fmt.Fprintf(a.out, "Exported %d collection entries and %d wishlist entries to %s.\n",
		len(doc.Collection), len(doc.Wishlist), path)
	return nil
}

// Import loads an exported account from a JSON file. Any existing local data
// for that username is replaced, and the imported user becomes the active
// session, so the command asks for confirmation first.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: import <file>")
		return nil
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(a.out, "Could not read file:", err)
		return nil
	}

	doc, err := services.ParseDocument(data)
	if err != nil {
		fmt.Fprintln(a.out, "Not a valid export file:", err)
		return nil
	}

	prompt := fmt.Sprintf("Import account %q, replacing any local data it has here?", doc.User.Username)
	ok, err := getConfirmation(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Import cancelled.")
		return nil
	}

	if err := a.transfer.ImportUser(ctx, doc); err != nil {
		if errors.Is(err, common.ErrInvalidDocument) {
			fmt.Fprintln(a.out, "Not a valid export file:", err)
			return nil
		}
		a.log.Error(ctx, "import failed", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Imported %q with %d collection entries and %d wishlist entries. You are now signed in as %q.\n",
		doc.User.Username, len(doc.Collection), len(doc.Wishlist), doc.User.Username)
	return nil
}
