package catalog

import (
	"sort"
	"strings"
)

// Sort orders accepted by FilterState.
const (
	SortByID       = "id"
	SortByNameAsc  = "name-asc"
	SortByNameDesc = "name-desc"
	SortByRarity   = "rarity"
)

// Rarity filter values accepted by FilterState ("all" disables the filter).
const (
	FilterRarityAll    = "all"
	FilterRarityCommon = "common"
	FilterRarityRare   = "rare"
	FilterRarityUltra  = "ultra"
)

// FilterState holds the user's current search, sort, and rarity filter.
// The zero value plus DefaultFilter() sorts by id with no filtering.
type FilterState struct {
	Term   string
	Sort   string
	Rarity string
}

// DefaultFilter returns the initial filter state.
func DefaultFilter() FilterState {
	return FilterState{Sort: SortByID, Rarity: FilterRarityAll}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// rarityRank orders tiers from rarest to most common for SortByRarity.
func rarityRank(rarity string) int {
	switch rarity {
	case RarityUltraRare:
		return 0
	case RarityRare:
		return 1
	case RarityCommon:
		return 2
	default:
		return 99
	}
}

// Apply returns the items matching the filter, in the requested order.
// The input slice is never modified.
func (f FilterState) Apply(items []Item) []Item {
	result := make([]Item, 0, len(items))

	term := normalize(f.Term)
	for _, it := range items {
		if term != "" &&
			!strings.Contains(normalize(it.Name), term) &&
			!strings.Contains(normalize(it.Types), term) {
			continue
		}

		switch f.Rarity {
		case "", FilterRarityAll:
		case FilterRarityCommon:
			if it.Rarity != RarityCommon {
				continue
			}
		case FilterRarityRare:
			if it.Rarity != RarityRare {
				continue
			}
		case FilterRarityUltra:
			if it.Rarity != RarityUltraRare {
				continue
			}
		}

		result = append(result, it)
	}

	switch f.Sort {
	case SortByNameAsc:
		sort.Slice(result, func(i, j int) bool {
			return normalize(result[i].Name) < normalize(result[j].Name)
		})
	case SortByNameDesc:
		sort.Slice(result, func(i, j int) bool {
			return normalize(result[i].Name) > normalize(result[j].Name)
		})
	case SortByRarity:
		sort.Slice(result, func(i, j int) bool {
			ri, rj := rarityRank(result[i].Rarity), rarityRank(result[j].Rarity)
			if ri != rj {
				return ri < rj
			}
			return normalize(result[i].Name) < normalize(result[j].Name)
		})
	default: // SortByID
		sort.Slice(result, func(i, j int) bool {
			return result[i].ID < result[j].ID
		})
	}

	return result
}
