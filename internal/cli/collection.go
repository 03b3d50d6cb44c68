package cli

import (
	"context"
	"fmt"
	"strconv"
)

// SetCount sets the owned count for a card. A count of zero (or below)
// removes the card from the collection.
func (a *App) SetCount(ctx context.Context, args []string) error {
	if _, ok := a.sessions.CurrentUser(); !ok {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: set <id> <count>")
		return nil
	}
	id, ok := a.parseItemID(args[:1], "Usage: set <id> <count>")
	if !ok {
		return nil
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(a.out, "Not a count:", args[1])
		return nil
	}

	if err := a.collection.SetCount(ctx, id, count); err != nil {
		a.log.Error(ctx, "error updating collection", "item", id, "error", err)
		return err
	}

	if count <= 0 {
		fmt.Fprintf(a.out, "Card %d removed from your collection.\n", id)
	} else {
		fmt.Fprintf(a.out, "Card %d set to x%d.\n", id, count)
	}
	return nil
}

// Wish toggles a card's wishlist membership and reports the new state.
func (a *App) Wish(ctx context.Context, args []string) error {
	if _, ok := a.sessions.CurrentUser(); !ok {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}
	id, ok := a.parseItemID(args, "Usage: wish <id>")
	if !ok {
		return nil
	}

	wished, err := a.collection.ToggleWishlist(ctx, id)
	if err != nil {
		a.log.Error(ctx, "error updating wishlist", "item", id, "error", err)
		return err
	}

	if wished {
		fmt.Fprintf(a.out, "Card %d added to your wishlist.\n", id)
	} else {
		fmt.Fprintf(a.out, "Card %d removed from your wishlist.\n", id)
	}
	return nil
}

// Collection lists the signed-in collector's owned cards with counts.
func (a *App) Collection(ctx context.Context) error {
	entries, err := a.collection.GetCollection(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Your collection is empty.")
		return nil
	}

	total := 0
	for _, e := range entries {
		total += e.Count
		fmt.Fprintf(a.out, "%4d  %-14s x%d\n", e.ItemID, a.itemName(ctx, e.ItemID), e.Count)
	}
	fmt.Fprintf(a.out, "%d distinct cards, %d total.\n", len(entries), total)
	return nil
}

// Wishlist lists the signed-in collector's wished-for cards.
func (a *App) Wishlist(ctx context.Context) error {
	entries, err := a.collection.GetWishlist(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Your wishlist is empty.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(a.out, "%4d  %s\n", e.ItemID, a.itemName(ctx, e.ItemID))
	}
	return nil
}

// itemName resolves an item id to its catalog name for display. When the
// catalog is unreachable the id alone still identifies the card.
func (a *App) itemName(ctx context.Context, id int64) string {
	item, err := a.findItem(ctx, id)
	if err != nil || item == nil {
		return "(unknown card)"
	}
	return item.Name
}
