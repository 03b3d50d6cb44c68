// Package catalog loads the card catalog from the remote read-only API and
// keeps it cached in memory. The persistence core only ever sees item ids;
// everything else here exists for display and browsing.
package catalog

// Rarity tiers, derived from an item's base attack stat.
const (
	RarityCommon    = "Common"
	RarityRare      = "Rare"
	RarityUltraRare = "Ultra Rare"
)

// Item is one catalog card as shown to the user.
type Item struct {
	ID       int64
	Name     string
	Types    string
	Rarity   string
	ImageURL string
	Text     string
}

// RarityFromBaseStat maps a base attack stat to a rarity tier:
// >= 90 is ultra rare, >= 70 is rare, anything below is common.
func RarityFromBaseStat(stat int) string {
	switch {
	case stat >= 90:
		return RarityUltraRare
	case stat >= 70:
		return RarityRare
	default:
		return RarityCommon
	}
}
