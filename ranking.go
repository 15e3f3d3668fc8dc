package kurashi

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// maxShopsPerItem bounds the per-item ranking to the three cheapest
// distinct shops.
const maxShopsPerItem = 3

// ShopPrice is one entry of a per-item ranking: a shop and the cheapest
// unit price ever recorded there for the item.
type ShopPrice struct {
	ShopName  string
	UnitPrice decimal.Decimal
}

// RankByItem groups records by exact item name and returns, per item, the
// cheapest known unit prices of at most three distinct shops, ascending.
//
// Deduplication is by shop, not by record: a shop that appears twice in a
// group is counted once, at its cheapest price. Two records with the same
// unit price keep their input order (stable sort, no secondary key).
// Items without records never appear in the result; an empty input yields
// an empty map, never an error.
func RankByItem(records []PriceRecord) map[string][]ShopPrice {
	grouped := make(map[string][]PriceRecord)
	for _, r := range records {
		grouped[r.ItemName] = append(grouped[r.ItemName], r)
	}

	result := make(map[string][]ShopPrice, len(grouped))
	for item, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].UnitPrice.LessThan(group[j].UnitPrice)
		})

		seen := make(map[string]bool)
		shops := make([]ShopPrice, 0, maxShopsPerItem)
		for _, r := range group {
			if seen[r.ShopName] {
				continue
			}
			seen[r.ShopName] = true
			shops = append(shops, ShopPrice{ShopName: r.ShopName, UnitPrice: r.UnitPrice})
			if len(shops) >= maxShopsPerItem {
				break
			}
		}
		result[item] = shops
	}
	return result
}

// BestMatch is the answer to a live "best price so far" lookup.
type BestMatch struct {
	BestPrice decimal.Decimal // cheapest unit price among the matches
	ShopName  string          // shop holding that price
	Count     int             // how many records matched
}

// BestPriceFor answers the live lookup performed on every keystroke while
// a new entry is being composed: among all records whose item name
// case-insensitively contains partial, it returns the minimum unit price,
// its shop, and the number of matches.
//
// The match is an unanchored substring on purpose, looser than the exact
// grouping RankByItem uses, so "mil" already surfaces the best known
// price for "milk" while typing. The second return is false when partial
// is empty or nothing matches. A single linear scan, no side effects.
func BestPriceFor(partial string, records []PriceRecord) (BestMatch, bool) {
	if partial == "" {
		return BestMatch{}, false
	}

	needle := strings.ToLower(partial)
	var best BestMatch
	for _, r := range records {
		if !strings.Contains(strings.ToLower(r.ItemName), needle) {
			continue
		}
		if best.Count == 0 || r.UnitPrice.LessThan(best.BestPrice) {
			best.BestPrice = r.UnitPrice
			best.ShopName = r.ShopName
		}
		best.Count++
	}
	if best.Count == 0 {
		return BestMatch{}, false
	}
	return best, true
}
