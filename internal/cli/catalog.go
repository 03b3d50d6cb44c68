package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cheaguirre/nexuscards/internal/catalog"
)

// Catalog renders the card list with the current search, sort, and rarity
// settings applied. The underlying client fetches from the remote API once
// and serves from cache afterwards.
func (a *App) Catalog(ctx context.Context) error {
	items, err := a.catalog.Items(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Catalog unavailable:", err)
		return err
	}

	visible := a.filter.Apply(items)
	if len(visible) == 0 {
		fmt.Fprintln(a.out, "No cards match the current view.")
		return nil
	}

	for _, it := range visible {
		owned, err := a.collection.GetCount(ctx, it.ID)
		if err != nil {
			return err
		}
		marker := " "
		if owned > 0 {
			marker = fmt.Sprintf("x%d", owned)
		}
		fmt.Fprintf(a.out, "%4d  %-14s %-22s %-10s %s\n", it.ID, it.Name, it.Types, it.Rarity, marker)
	}
	fmt.Fprintf(a.out, "%d of %d cards shown (search=%q sort=%s rarity=%s)\n",
		len(visible), len(items), a.filter.Term, a.filter.Sort, a.filter.Rarity)
	return nil
}

// Search sets the name/type filter term. With no argument the term is
// cleared. The new view is rendered immediately.
func (a *App) Search(ctx context.Context, args []string) error {
	a.filter.Term = strings.Join(args, " ")
	return a.Catalog(ctx)
}

// Sort sets the catalog ordering and re-renders the view.
func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: sort id|name-asc|name-desc|rarity")
		return nil
	}
	switch args[0] {
	case catalog.SortByID, catalog.SortByNameAsc, catalog.SortByNameDesc, catalog.SortByRarity:
		a.filter.Sort = args[0]
	default:
		fmt.Fprintln(a.out, "Unknown sort order:", args[0])
		return nil
	}
	return a.Catalog(ctx)
}

// Rarity sets the rarity filter tier and re-renders the view.
func (a *App) Rarity(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: rarity all|common|rare|ultra")
		return nil
	}
	switch args[0] {
	case catalog.FilterRarityAll, catalog.FilterRarityCommon, catalog.FilterRarityRare, catalog.FilterRarityUltra:
		a.filter.Rarity = args[0]
	default:
		fmt.Fprintln(a.out, "Unknown rarity tier:", args[0])
		return nil
	}
	return a.Catalog(ctx)
}

// Show prints a single card in full, including the signed-in collector's
// owned count and wishlist state.
func (a *App) Show(ctx context.Context, args []string) error {
	id, ok := a.parseItemID(args, "Usage: show <id>")
	if !ok {
		return nil
	}

	item, err := a.findItem(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		fmt.Fprintln(a.out, "No card with id", id)
		return nil
	}

	owned, err := a.collection.GetCount(ctx, id)
	if err != nil {
		return err
	}
	wished, err := a.collection.IsInWishlist(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "#%d %s\n", item.ID, item.Name)
	fmt.Fprintln(a.out, "  Types: ", item.Types)
	fmt.Fprintln(a.out, "  Rarity:", item.Rarity)
	fmt.Fprintln(a.out, "  Image: ", item.ImageURL)
	fmt.Fprintln(a.out, " ", item.Text)
	fmt.Fprintln(a.out, "  Owned: ", owned)
	if wished {
		fmt.Fprintln(a.out, "  On your wishlist")
	}
	return nil
}

// Reload discards the cached catalog and refetches it from the API.
// Administrator only.
func (a *App) Reload(ctx context.Context) error {
	if !a.sessions.IsAdministrator() {
		fmt.Fprintln(a.out, "Administrator access required.")
		return nil
	}
	items, err := a.catalog.Reload(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Reload failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Catalog reloaded, %d cards.\n", len(items))
	return nil
}

func (a *App) parseItemID(args []string, usage string) (int64, bool) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, "Not a card id:", args[0])
		return 0, false
	}
	return id, true
}

// findItem returns the cached catalog item with the given id, or nil.
func (a *App) findItem(ctx context.Context, id int64) (*catalog.Item, error) {
	items, err := a.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}
