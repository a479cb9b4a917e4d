package pricing

import (
	"math"
	"sort"
)

// Marketplace identifiers used for cross-source blending.
const (
	SourceCardmarket = "cardmarket"
	SourceTCGPlayer  = "tcgplayer"
)

// SourceWeights is the fixed blending policy of Aggregate. Unlisted
// sources fall back to DefaultSourceWeight.
var SourceWeights = map[string]float64{
	SourceCardmarket: 0.7,
	SourceTCGPlayer:  0.3,
}

const DefaultSourceWeight = 0.5

// The variant names a raw quote is expected to carry. A quote may also
// carry arbitrary additional keys; those are handled generically.
var EnumeratedVariants = []string{
	"normal",
	"holofoil",
	"reverseHolofoil",
	"1stEditionNormal",
	"1stEditionHolofoil",
}

// VariantQuote is one finish's sub-prices on a raw marketplace quote.
// Any field may be missing (nil) or carry junk (zero, negative).
type VariantQuote struct {
	Market *float64 `json:"market"`
	Mid    *float64 `json:"mid"`
	Low    *float64 `json:"low"`
	High   *float64 `json:"high"`
}

// SourceQuote is one marketplace's normalized view of a card's value,
// used by the cross-source weighted blend.
type SourceQuote struct {
	Source  string   `json:"source"`
	Trend   *float64 `json:"trend"`
	Average *float64 `json:"average"`
}

// ResolveVariantPrice picks the representative price of a single
// variant: market, else mid, else low, first positive value wins.
// High is deliberately never used; it is a listing price, not a
// representative one. Zero and negative values count as absent.
func ResolveVariantPrice(q *VariantQuote) *float64 {
	if q == nil {
		return nil
	}
	for _, p := range []*float64{q.Market, q.Mid, q.Low} {
		if p != nil && *p > 0 {
			return p
		}
	}
	return nil
}

// Aggregate blends quotes from multiple marketplaces into one
// indicative price using the fixed source weights. Per quote the trend
// price is used when present, else the average price. Returns 0 for an
// empty input or when no quote carries a usable value.
func Aggregate(quotes []SourceQuote) float64 {
	var sum, totalWeight float64
	for _, q := range quotes {
		value := q.Trend
		if value == nil {
			value = q.Average
		}
		if value == nil {
			continue
		}
		weight, ok := SourceWeights[q.Source]
		if !ok {
			weight = DefaultSourceWeight
		}
		sum += *value * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}

// AllVariantAverage reduces a single marketplace's raw multi-variant
// quote to one indicative number: the mean of every variant's resolved
// price, rounded to 2 decimals. Nil when no variant resolves.
func AllVariantAverage(raw map[string]*VariantQuote) *float64 {
	var sum float64
	var n int
	for _, key := range quoteKeys(raw) {
		if p := ResolveVariantPrice(raw[key]); p != nil {
			sum += *p
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(sum/float64(n)*100) / 100
	return &avg
}

// RepresentativePrice resolves a raw quote to the single price used by
// a sync: the first variant (enumerated order, then any extra keys)
// with a usable price.
func RepresentativePrice(raw map[string]*VariantQuote) *float64 {
	for _, key := range quoteKeys(raw) {
		if p := ResolveVariantPrice(raw[key]); p != nil {
			return p
		}
	}
	return nil
}

// quoteKeys returns the enumerated variants first, then any extra keys
// sorted, so iteration order is deterministic.
func quoteKeys(raw map[string]*VariantQuote) []string {
	keys := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(EnumeratedVariants))
	for _, key := range EnumeratedVariants {
		seen[key] = true
		if _, ok := raw[key]; ok {
			keys = append(keys, key)
		}
	}
	var extras []string
	for key := range raw {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return append(keys, extras...)
}
