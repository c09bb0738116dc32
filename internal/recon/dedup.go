package recon

import (
	"sort"

	"github.com/satvik-g4s/Hour-Recon/internal/shared/keynorm"
)

// DedupInvoicePeriods picks the authoritative period per order number: the
// row with the latest invoice date wins, ties resolve to the earlier source
// row. The stable sort makes the result independent of input ordering beyond
// the defined keys.
func DedupInvoicePeriods(periods []InvoicePeriod) map[string]InvoicePeriod {
	sorted := make([]InvoicePeriod, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InvoiceDate.After(sorted[j].InvoiceDate)
	})

	out := make(map[string]InvoicePeriod, len(sorted))
	for _, p := range sorted {
		key := keynorm.MatchKey(p.OrderNo)
		if key == "" {
			continue
		}
		if _, exists := out[key]; !exists {
			out[key] = p
		}
	}
	return out
}
